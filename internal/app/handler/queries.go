package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"halocat-queries/internal/app/config"
	"halocat-queries/internal/app/ds"
	"halocat-queries/internal/app/middleware"
	"halocat-queries/internal/app/query"
	"halocat-queries/internal/app/repository"
)

type QueryHandler struct {
	repo *repository.Repository
	cfg  *config.Config
}

func NewQueryHandler(repo *repository.Repository, cfg *config.Config) *QueryHandler {
	return &QueryHandler{
		repo: repo,
		cfg:  cfg,
	}
}

// GetQueries godoc
// @Summary Get query list
// @Description Render the fetch or count query list for every sub-volume
// @Tags Queries
// @Produce json
// @Produce plain
// @Param kind path string true "fetch or count"
// @Param lbox query number false "Box side length"
// @Param nsub query int false "Subdivisions per axis"
// @Param snapnum query string false "Snapshot id"
// @Param table query string false "Source table"
// @Param id_column query string false "Id column for count queries"
// @Param format query string false "Number format: fixed or legacy"
// @Param as query string false "Set to text to get the list file body"
// @Success 200 {object} ds.QueriesResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /queries/{kind} [get]
func (h *QueryHandler) GetQueries(ctx *gin.Context) {
	kind, err := ds.ParseQueryKind(ctx.Param("kind"))
	if err != nil {
		respondError(ctx, err, "Invalid query kind")
		return
	}

	req, err := requestFromQuery(ctx, h.cfg)
	if err != nil {
		respondError(ctx, err, "Failed to parse parameters")
		return
	}

	if ctx.Query("as") == "text" {
		body, err := h.repo.Queries.ListBody(ctx.Request.Context(), req, kind)
		if err != nil {
			respondError(ctx, err, "Failed to render query list")
			return
		}
		ctx.String(http.StatusOK, body)
		return
	}

	lists, err := h.repo.Queries.Generate(req)
	if err != nil {
		respondError(ctx, err, "Failed to render query list")
		return
	}

	format, _ := query.ParseFormat(req.Format)
	records := lists.Of(kind)
	ctx.JSON(http.StatusOK, ds.QueriesResponse{
		Kind:    kind,
		Box:     req.Box,
		Params:  req.Params,
		Format:  string(format),
		Total:   len(records),
		Records: records,
	})
}

// Publish godoc
// @Summary Publish query lists
// @Description Render both query lists and upload them to the object store (publisher only)
// @Tags Queries
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body GenerationBody false "Overrides of the configured parameters"
// @Success 201 {object} ds.PublishResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /queries/publish [post]
func (h *QueryHandler) Publish(ctx *gin.Context) {
	var body GenerationBody
	if ctx.Request.ContentLength != 0 {
		if err := ctx.ShouldBindJSON(&body); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data"})
			return
		}
	}
	req := body.apply(defaultRequest(h.cfg))

	lists, err := h.repo.Queries.Generate(req)
	if err != nil {
		respondError(ctx, err, "Failed to render query lists")
		return
	}

	resp, err := h.repo.Queries.Publish(ctx.Request.Context(), lists, req.Params.Snapshot, h.cfg.FetchOutput, h.cfg.CountOutput)
	if err != nil {
		respondError(ctx, err, "Failed to publish query lists")
		return
	}

	publisher, _ := middleware.GetPublisher(ctx)
	logrus.Infof("Query lists published by %s: %v", publisher, resp.Objects)

	ctx.JSON(http.StatusCreated, resp)
}
