package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"halocat-queries/internal/app/config"
	"halocat-queries/internal/app/ds"
	"halocat-queries/internal/app/repository"
)

type PartitionHandler struct {
	repo *repository.Repository
	cfg  *config.Config
}

func NewPartitionHandler(repo *repository.Repository, cfg *config.Config) *PartitionHandler {
	return &PartitionHandler{
		repo: repo,
		cfg:  cfg,
	}
}

// GetPartition godoc
// @Summary Get sub-volume grid
// @Description Enumerate the N^3 sub-volumes of the simulation box with bounds and comparison operators
// @Tags Partition
// @Produce json
// @Param lbox query number false "Box side length"
// @Param nsub query int false "Subdivisions per axis"
// @Success 200 {object} ds.PartitionResponse
// @Failure 400 {object} map[string]string
// @Router /partition [get]
func (h *PartitionHandler) GetPartition(ctx *gin.Context) {
	req, err := requestFromQuery(ctx, h.cfg)
	if err != nil {
		respondError(ctx, err, "Failed to parse parameters")
		return
	}

	subvols, err := h.repo.Queries.Partition(req.Box)
	if err != nil {
		respondError(ctx, err, "Failed to enumerate sub-volumes")
		return
	}

	ctx.JSON(http.StatusOK, ds.PartitionResponse{
		Box:        req.Box,
		Total:      len(subvols),
		SubVolumes: subvols,
	})
}
