// Package writer сериализует списки запросов в текстовые файлы старого формата.
package writer

import (
	"bufio"
	"fmt"
	"io"

	"halocat-queries/internal/app/ds"
)

const (
	fetchHeader = "#index      query     filename"
	countHeader = "#index     query     filename"
	fieldSep    = "     "
)

// Header возвращает строку заголовка для варианта запроса
func Header(kind ds.QueryKind) string {
	if kind == ds.CountOnly {
		return countHeader
	}
	return fetchHeader
}

// FormatLine возвращает строку списка без перевода строки
func FormatLine(rec ds.QueryRecord) string {
	return fmt.Sprintf("%3d%s\"%s\"%s%s", rec.Sequence, fieldSep, rec.Query, fieldSep, rec.Filename)
}

// Encode пишет заголовок и все записи потока в w
func Encode(w io.Writer, kind ds.QueryKind, records []ds.QueryRecord) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, Header(kind)); err != nil {
		return err
	}
	for _, rec := range records {
		if _, err := fmt.Fprintln(bw, FormatLine(rec)); err != nil {
			return err
		}
	}
	return bw.Flush()
}
