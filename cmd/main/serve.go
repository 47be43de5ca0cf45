package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	_ "halocat-queries/docs"
	"halocat-queries/internal/app/repository"
	"halocat-queries/internal/pkg"
)

func newServeCmd() *cobra.Command {
	var (
		host string
		port int
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve partitions and query lists over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, nil)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("host") {
				cfg.ServiceHost = host
			}
			if cmd.Flags().Changed("port") {
				cfg.ServicePort = port
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			// Инициализируем репозиторий
			repo, err := repository.NewRepository(cfg)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			application := pkg.NewApp(cfg, gin.Default(), repo)
			return application.RunApp(ctx)
		},
	}
	cmd.Flags().StringVar(&host, "host", "localhost", "listen host")
	cmd.Flags().IntVar(&port, "port", 8080, "listen port")
	return cmd
}
