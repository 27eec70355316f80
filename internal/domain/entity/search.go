package entity

// SearchResult resultado de la búsqueda global.
type SearchResult struct {
	ID          int64  `json:"id"`
	Type        string `json:"type"`
	Name        string `json:"name"`
	Description string `json:"description"`
	URL         string `json:"url"`
}
