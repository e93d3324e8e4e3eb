package dto

import "time"

// CreateStoreRequest entrada para crear una tienda.
type CreateStoreRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=200"`
	Description string `json:"description"`
	LogoURL     string `json:"logo_url"`
	Website     string `json:"website"`
}

// UpdateStoreRequest entrada para actualizar una tienda (parcial).
type UpdateStoreRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	LogoURL     *string `json:"logo_url"`
	Website     *string `json:"website"`
}

// StoreResponse salida de una tienda.
type StoreResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	LogoURL     string    `json:"logo_url"`
	Website     string    `json:"website"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// StoreWithLocationsResponse tienda con todas sus sucursales.
type StoreWithLocationsResponse struct {
	StoreResponse
	Locations []StoreLocationResponse `json:"locations"`
}

// CreateStoreLocationRequest entrada para agregar una sucursal.
type CreateStoreLocationRequest struct {
	Address   string  `json:"address" validate:"required"`
	City      string  `json:"city"`
	State     string  `json:"state"`
	ZipCode   string  `json:"zip_code"`
	Country   string  `json:"country"`
	Latitude  float64 `json:"latitude" validate:"required"`
	Longitude float64 `json:"longitude" validate:"required"`
	Phone     string  `json:"phone"`
	Hours     string  `json:"hours"`
}

// UpdateStoreLocationRequest entrada para actualizar una sucursal (parcial).
type UpdateStoreLocationRequest struct {
	Address   *string  `json:"address"`
	City      *string  `json:"city"`
	State     *string  `json:"state"`
	ZipCode   *string  `json:"zip_code"`
	Country   *string  `json:"country"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Phone     *string  `json:"phone"`
	Hours     *string  `json:"hours"`
}

// StoreLocationResponse salida de una sucursal.
type StoreLocationResponse struct {
	ID        string    `json:"id"`
	StoreID   string    `json:"store_id"`
	Address   string    `json:"address"`
	City      string    `json:"city"`
	State     string    `json:"state"`
	ZipCode   string    `json:"zip_code"`
	Country   string    `json:"country"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Phone     string    `json:"phone"`
	Hours     string    `json:"hours"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NearbyStoreResponse sucursal con tienda y distancia al punto de consulta.
type NearbyStoreResponse struct {
	StoreLocationResponse
	StoreName    string  `json:"store_name"`
	StoreLogoURL string  `json:"store_logo_url"`
	DistanceKm   float64 `json:"distance_km"`
}
