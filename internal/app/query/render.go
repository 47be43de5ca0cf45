// Package query строит тексты запросов к каталогу и имена файлов для каждого подобъема.
package query

import (
	"fmt"
	"strings"

	"halocat-queries/internal/app/ds"
	"halocat-queries/internal/app/partition"
)

type Renderer struct {
	params ds.QueryParams
	format Format
}

func NewRenderer(params ds.QueryParams, format Format) (*Renderer, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	format, err := ParseFormat(string(format))
	if err != nil {
		return nil, err
	}
	return &Renderer{params: params, format: format}, nil
}

func (r *Renderer) Params() ds.QueryParams { return r.params }

func (r *Renderer) Format() Format { return r.format }

// Render строит запись для одного подобъема; оба варианта отличаются только заголовком запроса и именем файла
func (r *Renderer) Render(kind ds.QueryKind, seq int, sv ds.SubVolume) (ds.QueryRecord, error) {
	var head, prefix string
	switch kind {
	case ds.FetchAll:
		head = "SELECT *"
		prefix = "subvol_"
	case ds.CountOnly:
		head = fmt.Sprintf("SELECT COUNT(%s)", r.params.IDColumn)
		prefix = "subvol_N_"
	default:
		return ds.QueryRecord{}, fmt.Errorf("%w: %d", ds.ErrUnknownQueryKind, int(kind))
	}

	var sb strings.Builder
	sb.WriteString(head)
	sb.WriteString(" FROM ")
	sb.WriteString(r.params.Table)
	sb.WriteString(" WHERE snapnum=")
	sb.WriteString(r.params.Snapshot)

	b := sv.Bounds
	r.writeAxis(&sb, "x", sv.Inclusion.X, b.XMin, b.XMax)
	r.writeAxis(&sb, "y", sv.Inclusion.Y, b.YMin, b.YMax)
	r.writeAxis(&sb, "z", sv.Inclusion.Z, b.ZMin, b.ZMax)

	return ds.QueryRecord{
		Sequence: seq,
		Kind:     kind,
		Index:    sv.Index,
		Query:    sb.String(),
		Filename: fmt.Sprintf("%s%d_%d_%d_snapnum_%s.csv", prefix, sv.Index.I, sv.Index.J, sv.Index.K, r.params.Snapshot),
	}, nil
}

func (r *Renderer) writeAxis(sb *strings.Builder, axis string, inc ds.AxisInclusion, lo, hi float64) {
	fmt.Fprintf(sb, " AND %s %s %s AND %s %s %s",
		axis, inc.LowerOp(), r.format.Bound(lo),
		axis, inc.UpperOp(), r.format.Bound(hi))
}

// RenderFetch строит запрос полной выборки записей подобъема
func (r *Renderer) RenderFetch(seq int, sv ds.SubVolume) ds.QueryRecord {
	// Render ошибается только на неизвестном варианте
	rec, _ := r.Render(ds.FetchAll, seq, sv)
	return rec
}

// RenderCount строит запрос подсчета записей подобъема
func (r *Renderer) RenderCount(seq int, sv ds.SubVolume) ds.QueryRecord {
	// Render ошибается только на неизвестном варианте
	rec, _ := r.Render(ds.CountOnly, seq, sv)
	return rec
}

// Stream строит поток записей одного варианта. Номер записи - позиция в срезе плюс один.
func (r *Renderer) Stream(kind ds.QueryKind, subvols []ds.SubVolume) ([]ds.QueryRecord, error) {
	records := make([]ds.QueryRecord, len(subvols))
	for pos, sv := range subvols {
		rec, err := r.Render(kind, pos+1, sv)
		if err != nil {
			return nil, err
		}
		records[pos] = rec
	}
	return records, nil
}

// Lists - оба независимых потока запросов
type Lists struct {
	Box   ds.BoxSpec
	Fetch []ds.QueryRecord
	Count []ds.QueryRecord
}

// Of возвращает поток указанного варианта
func (l *Lists) Of(kind ds.QueryKind) []ds.QueryRecord {
	if kind == ds.CountOnly {
		return l.Count
	}
	return l.Fetch
}

// Generate разбивает куб и строит оба потока запросов
func (r *Renderer) Generate(box ds.BoxSpec) (*Lists, error) {
	subvols, err := partition.Enumerate(box)
	if err != nil {
		return nil, err
	}

	fetch, err := r.Stream(ds.FetchAll, subvols)
	if err != nil {
		return nil, err
	}
	count, err := r.Stream(ds.CountOnly, subvols)
	if err != nil {
		return nil, err
	}

	return &Lists{Box: box, Fetch: fetch, Count: count}, nil
}
