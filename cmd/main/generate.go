package main

import (
	"fmt"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"halocat-queries/internal/app/config"
	"halocat-queries/internal/app/ds"
	"halocat-queries/internal/app/repository"
)

type generateOptions struct {
	lbox        float64
	nsub        int
	snapnum     string
	table       string
	idColumn    string
	fetchOutput string
	countOutput string
	format      string
	maxCells    int
	publish     bool
}

func (o *generateOptions) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.Float64Var(&o.lbox, "lbox", config.DefaultLBox, "box side length")
	f.IntVar(&o.nsub, "nsub", config.DefaultNSub, "subdivisions per axis (N^3 sub-volumes)")
	f.StringVar(&o.snapnum, "snapnum", config.DefaultSnapnum, "snapshot id")
	f.StringVar(&o.table, "table", config.DefaultTable, "catalog table")
	f.StringVar(&o.idColumn, "id-column", config.DefaultIDColumn, "id column used by count queries")
	f.StringVar(&o.fetchOutput, "fetch-out", config.DefaultFetchOutput, "fetch query list path")
	f.StringVar(&o.countOutput, "count-out", config.DefaultCountOutput, "count query list path")
	f.StringVar(&o.format, "format", config.DefaultFormat, "number format: fixed or legacy")
	f.IntVar(&o.maxCells, "max-cells", ds.DefaultMaxCells, "upper limit on the number of sub-volumes")
	f.BoolVar(&o.publish, "publish", false, "upload both lists to MinIO after writing")
}

// applyTo переносит в конфигурацию только флаги, заданные пользователем
func (o *generateOptions) applyTo(cmd *cobra.Command, cfg *config.Config) {
	f := cmd.Flags()
	if f.Changed("lbox") {
		cfg.LBox = o.lbox
	}
	if f.Changed("nsub") {
		cfg.NSub = o.nsub
	}
	if f.Changed("snapnum") {
		cfg.Snapnum = o.snapnum
	}
	if f.Changed("table") {
		cfg.Table = o.table
	}
	if f.Changed("id-column") {
		cfg.IDColumn = o.idColumn
	}
	if f.Changed("fetch-out") {
		cfg.FetchOutput = o.fetchOutput
	}
	if f.Changed("count-out") {
		cfg.CountOutput = o.countOutput
	}
	if f.Changed("format") {
		cfg.Format = o.format
	}
	if f.Changed("max-cells") {
		cfg.MaxCells = o.maxCells
	}
}

func newGenerateCmd() *cobra.Command {
	opts := &generateOptions{}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write the fetch and count query lists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			return runGenerate(cmd, cfg, opts.publish)
		},
	}
	opts.register(cmd)
	return cmd
}

func runGenerate(cmd *cobra.Command, cfg *config.Config, publish bool) error {
	// Проверяем все параметры до записи файлов
	if err := cfg.Validate(); err != nil {
		return err
	}

	repoOpts := repository.Options{}
	if publish {
		if filepath.Base(cfg.FetchOutput) == filepath.Base(cfg.CountOutput) {
			return fmt.Errorf("%w: fetch and count lists share the object name %q",
				ds.ErrInvalidConfiguration, filepath.Base(cfg.FetchOutput))
		}
		if !cfg.MinIOEnabled() {
			return ds.ErrStoreUnavailable
		}
		store, err := repository.InitMinIOStore(cfg)
		if err != nil {
			return err
		}
		repoOpts.Store = store
	}
	repo := repository.NewRepositoryWith(repoOpts)

	req := ds.GenerationRequest{Box: cfg.Box(), Params: cfg.QueryParams(), Format: cfg.Format}
	lists, err := repo.Queries.Generate(req)
	if err != nil {
		return err
	}

	if err := repo.Queries.WriteFiles(lists, cfg.FetchOutput, cfg.CountOutput); err != nil {
		return err
	}

	if publish {
		resp, err := repo.Queries.Publish(cmd.Context(), lists, cfg.Snapnum, cfg.FetchOutput, cfg.CountOutput)
		if err != nil {
			return err
		}
		logrus.Infof("published to %s: %v", resp.Bucket, resp.Objects)
	}
	return nil
}
