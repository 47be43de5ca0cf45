package ds

import (
	"fmt"
	"strconv"
)

// GenerationRequest - полный набор входных параметров генерации списков
type GenerationRequest struct {
	Box    BoxSpec     `json:"box"`
	Params QueryParams `json:"params"`
	Format string      `json:"format"`
}

// CacheKey - ключ кэша для тела списка указанного варианта
func (r GenerationRequest) CacheKey(kind QueryKind) string {
	return fmt.Sprintf("%s:%s:%d:%s:%s:%s:%s",
		kind,
		strconv.FormatFloat(r.Box.SideLength, 'g', -1, 64),
		r.Box.Subdivisions,
		r.Params.Snapshot,
		r.Params.Table,
		r.Params.IDColumn,
		r.Format,
	)
}
