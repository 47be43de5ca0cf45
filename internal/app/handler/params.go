package handler

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"halocat-queries/internal/app/config"
	"halocat-queries/internal/app/ds"
)

// GenerationBody - тело запроса публикации; пустые поля берутся из конфигурации
type GenerationBody struct {
	LBox     *float64 `json:"lbox"`
	NSub     *int     `json:"nsub"`
	Snapnum  *string  `json:"snapnum"`
	Table    *string  `json:"table"`
	IDColumn *string  `json:"id_column"`
	Format   *string  `json:"format"`
}

func defaultRequest(cfg *config.Config) ds.GenerationRequest {
	return ds.GenerationRequest{
		Box:    cfg.Box(),
		Params: cfg.QueryParams(),
		Format: cfg.Format,
	}
}

// requestFromQuery накладывает query-параметры URL на значения из конфигурации
func requestFromQuery(ctx *gin.Context, cfg *config.Config) (ds.GenerationRequest, error) {
	req := defaultRequest(cfg)

	if s := ctx.Query("lbox"); s != "" {
		lbox, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return req, fmt.Errorf("%w: invalid lbox parameter %q", ds.ErrInvalidConfiguration, s)
		}
		req.Box.SideLength = lbox
	}
	if s := ctx.Query("nsub"); s != "" {
		nsub, err := strconv.Atoi(s)
		if err != nil {
			return req, fmt.Errorf("%w: invalid nsub parameter %q", ds.ErrInvalidConfiguration, s)
		}
		req.Box.Subdivisions = nsub
	}
	if s := ctx.Query("snapnum"); s != "" {
		req.Params.Snapshot = s
	}
	if s := ctx.Query("table"); s != "" {
		req.Params.Table = s
	}
	if s := ctx.Query("id_column"); s != "" {
		req.Params.IDColumn = s
	}
	if s := ctx.Query("format"); s != "" {
		req.Format = s
	}

	return req, nil
}

func (b GenerationBody) apply(req ds.GenerationRequest) ds.GenerationRequest {
	if b.LBox != nil {
		req.Box.SideLength = *b.LBox
	}
	if b.NSub != nil {
		req.Box.Subdivisions = *b.NSub
	}
	if b.Snapnum != nil {
		req.Params.Snapshot = *b.Snapnum
	}
	if b.Table != nil {
		req.Params.Table = *b.Table
	}
	if b.IDColumn != nil {
		req.Params.IDColumn = *b.IDColumn
	}
	if b.Format != nil {
		req.Format = *b.Format
	}
	return req
}
