package entity

import "time"

// Store cadena o comercio. Las sucursales físicas viven en StoreLocation.
type Store struct {
	ID          string
	Name        string
	Description string
	LogoURL     string
	Website     string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
