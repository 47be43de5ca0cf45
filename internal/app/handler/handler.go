package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"halocat-queries/internal/app/config"
	"halocat-queries/internal/app/ds"
	"halocat-queries/internal/app/middleware"
	"halocat-queries/internal/app/repository"
)

// RegisterHandlers регистрирует все обработчики
func RegisterHandlers(router *gin.Engine, repo *repository.Repository, cfg *config.Config) {
	apiRouter := router.Group("/api")

	// Создаем хендлеры
	partitionHandler := NewPartitionHandler(repo, cfg)
	queryHandler := NewQueryHandler(repo, cfg)
	tokenHandler := NewTokenHandler(repo)

	// Public routes - доступны без аутентификации
	public := apiRouter.Group("")
	{
		public.GET("/health", Health)
		public.GET("/partition", partitionHandler.GetPartition)
		public.GET("/queries/:kind", queryHandler.GetQueries)
	}

	// Protected routes - требуют аутентификации
	protected := apiRouter.Group("")
	protected.Use(middleware.AuthMiddleware(repo, cfg.JWTSecret))
	{
		protected.POST("/tokens/revoke", tokenHandler.Revoke)
	}

	// Publisher only routes - требуют права публикации
	publisher := apiRouter.Group("")
	publisher.Use(middleware.AuthMiddleware(repo, cfg.JWTSecret), middleware.PublisherOnly())
	{
		publisher.POST("/queries/publish", queryHandler.Publish)
	}
}

// Health godoc
// @Summary Liveness probe
// @Tags Service
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// respondError переводит ошибку домена в HTTP статус
func respondError(ctx *gin.Context, err error, message string) {
	switch {
	case errors.Is(err, ds.ErrInvalidConfiguration), errors.Is(err, ds.ErrUnknownQueryKind):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, ds.ErrStoreUnavailable):
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
	default:
		logrus.Error(message, ": ", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": message})
	}
}
