package dto

import "time"

// SearchEntryResponse registro del historial de búsquedas.
type SearchEntryResponse struct {
	ID          string    `json:"id"`
	Query       string    `json:"query"`
	Category    string    `json:"category"`
	Latitude    *float64  `json:"latitude"`
	Longitude   *float64  `json:"longitude"`
	ResultCount int       `json:"result_count"`
	CreatedAt   time.Time `json:"created_at"`
}

// SearchCountResponse término/categoría con su número de búsquedas.
type SearchCountResponse struct {
	Term  string `json:"term"`
	Count int    `json:"count"`
}

// SearchStatsResponse resumen del historial de un usuario.
type SearchStatsResponse struct {
	TopQueries    []SearchCountResponse `json:"top_queries"`
	TopCategories []SearchCountResponse `json:"top_categories"`
}
