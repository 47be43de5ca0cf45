package ds

import (
	"fmt"
	"strings"
)

// QueryKind - вариант запроса: полная выборка или подсчет строк
type QueryKind int

const (
	FetchAll QueryKind = iota
	CountOnly
)

func (k QueryKind) String() string {
	switch k {
	case FetchAll:
		return "fetch"
	case CountOnly:
		return "count"
	default:
		return fmt.Sprintf("QueryKind(%d)", int(k))
	}
}

// ParseQueryKind разбирает имя варианта из URL или флага
func ParseQueryKind(s string) (QueryKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fetch", "all", "fetchall":
		return FetchAll, nil
	case "count", "countonly":
		return CountOnly, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownQueryKind, s)
}

func (k QueryKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// QueryRecord - одна строка списка запросов
type QueryRecord struct {
	Sequence int            `json:"index"`
	Kind     QueryKind      `json:"kind"`
	Index    SubVolumeIndex `json:"subvolume"`
	Query    string         `json:"query"`
	Filename string         `json:"filename"`
}

// QueryParams - параметры каталога, общие для обоих потоков
type QueryParams struct {
	Snapshot string `json:"snapnum"`
	Table    string `json:"table"`
	IDColumn string `json:"id_column"`
}

// Validate проверяет, что строки запроса не окажутся пустыми
func (p QueryParams) Validate() error {
	if strings.TrimSpace(p.Snapshot) == "" {
		return fmt.Errorf("%w: snapshot id is empty", ErrInvalidConfiguration)
	}
	if strings.TrimSpace(p.Table) == "" {
		return fmt.Errorf("%w: table name is empty", ErrInvalidConfiguration)
	}
	if strings.TrimSpace(p.IDColumn) == "" {
		return fmt.Errorf("%w: id column is empty", ErrInvalidConfiguration)
	}
	return nil
}
