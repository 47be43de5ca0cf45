package pkg

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"halocat-queries/internal/app/config"
	"halocat-queries/internal/app/handler"
	"halocat-queries/internal/app/repository"
)

const shutdownTimeout = 10 * time.Second

type Application struct {
	Config *config.Config
	Router *gin.Engine
	Repo   *repository.Repository
}

func NewApp(c *config.Config, r *gin.Engine, repo *repository.Repository) *Application {
	app := &Application{
		Config: c,
		Router: r,
		Repo:   repo,
	}

	handler.RegisterHandlers(app.Router, app.Repo, app.Config)
	app.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return app
}

// RunApp запускает HTTP сервер и останавливает его при отмене ctx
func (a *Application) RunApp(ctx context.Context) error {
	logrus.Info("Server start up")

	serverAddress := fmt.Sprintf("%s:%d", a.Config.ServiceHost, a.Config.ServicePort)
	srv := &http.Server{
		Addr:    serverAddress,
		Handler: a.Router,
	}

	errCh := make(chan error, 1)
	go func() {
		logrus.Infof("Listening on %s", serverAddress)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	a.Repo.Close()

	logrus.Info("Server down")
	return nil
}
