package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"halocat-queries/internal/app/config"
)

// @title Halocat Query Service API
// @version 1.0
// @description Sub-volume partition and catalog query list generator

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT Bearer token. Example: "Bearer {token}"

// @tag.name Partition
// @tag.description Sub-volume grid
// @tag.name Queries
// @tag.description Fetch and count query lists
// @tag.name Tokens
// @tag.description Publisher token management
func main() {
	if err := newRootCmd().Execute(); err != nil {
		logrus.Fatalf("halocat: %v", err)
	}
}

var logLevel string

func newRootCmd() *cobra.Command {
	gen := newGenerateCmd()

	root := &cobra.Command{
		Use:   "halocat",
		Short: "Split a simulation box into sub-volumes and emit catalog queries",
		Long: `halocat partitions a cubic simulation volume into an N x N x N grid and writes,
for every sub-volume, a fetch query and a count query for the halo catalog.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogging(logLevel)
		},
		// Без подкоманды выполняется generate
		RunE: gen.RunE,
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	root.Flags().AddFlagSet(gen.Flags())

	root.AddCommand(gen, newServeCmd(), newTokenCmd())
	return root
}

func setupLogging(level string) error {
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if level == "" {
		return nil
	}
	return applyLogLevel(level)
}

func applyLogLevel(level string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	logrus.SetLevel(lvl)
	return nil
}

// loadConfig загружает конфигурацию и накладывает поверх нее явно заданные флаги
func loadConfig(cmd *cobra.Command, opts *generateOptions) (*config.Config, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, err
	}
	// Флаг --log-level важнее конфигурации
	if logLevel == "" && cfg.LogLevel != "" {
		if err := applyLogLevel(cfg.LogLevel); err != nil {
			return nil, err
		}
	}
	if opts != nil {
		opts.applyTo(cmd, cfg)
	}
	return cfg, nil
}
