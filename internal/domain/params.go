package domain

// ListParams - параметры постраничных запросов.
// Нулевые значения означают «параметр не задан»: он не попадает ни в
// query-строку, ни в ключ кэша.
type ListParams struct {
	Page     int    `json:"page,omitempty"`
	PageSize int    `json:"page_size,omitempty"`
	Status   string `json:"status,omitempty"`
}

// PageParams - параметры страниц отгрузок и возвратов (без фильтра по статусу).
type PageParams struct {
	Page     int `json:"page,omitempty"`
	PageSize int `json:"page_size,omitempty"`
}
