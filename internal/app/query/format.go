package query

import (
	"fmt"
	"strconv"
	"strings"

	"halocat-queries/internal/app/ds"
)

// Format задает, как числовые границы попадают в текст запроса
type Format string

const (
	// FormatFixed - ровно 4 знака после точки, без обрезки
	FormatFixed Format = "fixed"
	// FormatLegacy - 4 знака после точки, затем обрезка до 6 символов.
	// Совпадает побайтно со старыми списками, но портит значения >= 1000.
	FormatLegacy Format = "legacy"

	legacyWidth = 6
	decimals    = 4
)

// ParseFormat разбирает имя формата; пустая строка означает FormatFixed
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatFixed:
		return FormatFixed, nil
	case FormatLegacy:
		return FormatLegacy, nil
	}
	return "", fmt.Errorf("%w: unknown number format %q", ds.ErrInvalidConfiguration, s)
}

// Bound форматирует одну границу подобъема
func (f Format) Bound(v float64) string {
	s := strconv.FormatFloat(v, 'f', decimals, 64)
	if f == FormatLegacy && len(s) > legacyWidth {
		s = s[:legacyWidth]
	}
	return s
}
