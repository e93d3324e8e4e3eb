package entity

import "time"

// Product dato de referencia inmutable del catálogo: lo que se compra,
// independiente de dónde y a qué precio.
type Product struct {
	ID          string
	Name        string
	Description string
	Category    string
	Brand       string
	Barcode     string
	ImageURL    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
