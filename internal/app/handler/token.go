package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"halocat-queries/internal/app/middleware"
	"halocat-queries/internal/app/repository"
)

type TokenHandler struct {
	repo *repository.Repository
}

func NewTokenHandler(repo *repository.Repository) *TokenHandler {
	return &TokenHandler{
		repo: repo,
	}
}

// Revoke godoc
// @Summary Revoke token
// @Description Put the current bearer token into the Redis blacklist
// @Tags Tokens
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /tokens/revoke [post]
func (h *TokenHandler) Revoke(ctx *gin.Context) {
	blacklist := h.repo.GetBlacklist()
	if blacklist == nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"error": "Token blacklist is not configured"})
		return
	}

	token, exists := middleware.GetToken(ctx)
	if !exists {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	ttl := time.Until(time.Unix(middleware.GetExpiresAt(ctx), 0))
	if ttl <= 0 {
		ttl = time.Minute
	}

	if err := blacklist.AddToBlacklist(ctx.Request.Context(), token, ttl); err != nil {
		logrus.Error("Failed to revoke token: ", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to revoke token"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Token revoked successfully"})
}
