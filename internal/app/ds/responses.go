package ds

// PartitionResponse - ответ со списком подобъемов
type PartitionResponse struct {
	Box        BoxSpec     `json:"box"`
	Total      int         `json:"total"`
	SubVolumes []SubVolume `json:"subvolumes"`
}

// QueriesResponse - ответ со списком запросов одного потока
type QueriesResponse struct {
	Kind    QueryKind     `json:"kind"`
	Box     BoxSpec       `json:"box"`
	Params  QueryParams   `json:"params"`
	Format  string        `json:"format"`
	Total   int           `json:"total"`
	Records []QueryRecord `json:"records"`
}

// PublishResponse - результат выгрузки списков в объектное хранилище
type PublishResponse struct {
	Bucket  string   `json:"bucket"`
	Objects []string `json:"objects"`
}
