package entity

import "time"

// StoreLocation sucursal física de un Store, con coordenadas geográficas.
// Muchas sucursales por tienda.
type StoreLocation struct {
	ID        string
	StoreID   string
	Address   string
	City      string
	State     string
	ZipCode   string
	Country   string
	Latitude  float64
	Longitude float64
	Phone     string
	Hours     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// StoreLocationInfo modelo de lectura: sucursal con los datos de su tienda
// (nombre y logo) ya resueltos en el join. Es lo que consume el motor de
// precios y lo que se devuelve en búsquedas por cercanía.
type StoreLocationInfo struct {
	StoreLocation
	StoreName    string
	StoreLogoURL string
}
