package entity

import "time"

// SearchEntry registro del historial de búsquedas de un usuario.
type SearchEntry struct {
	ID          string
	UserID      string
	Query       string
	Category    string
	Latitude    *float64
	Longitude   *float64
	ResultCount int
	CreatedAt   time.Time
}

// SearchCount agregado consulta/categoría -> número de búsquedas.
type SearchCount struct {
	Term  string
	Count int
}
