package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecordPriceRequest entrada para reportar una observación de precio.
type RecordPriceRequest struct {
	ProductID       string           `json:"product_id" validate:"required,uuid"`
	StoreLocationID string           `json:"store_location_id" validate:"required,uuid"`
	Price           decimal.Decimal  `json:"price" validate:"required"`
	SalePrice       *decimal.Decimal `json:"sale_price"`
	SaleEnds        *time.Time       `json:"sale_ends"`
	Currency        string           `json:"currency"`
}

// CorrectPriceRequest entrada para corregir una observación existente.
// La corrección reescribe los montos; no es una observación nueva.
type CorrectPriceRequest struct {
	Price     decimal.Decimal  `json:"price" validate:"required"`
	SalePrice *decimal.Decimal `json:"sale_price"`
	SaleEnds  *time.Time       `json:"sale_ends"`
}

// PricePointResponse salida de una observación de precio.
type PricePointResponse struct {
	ID              string           `json:"id"`
	ProductID       string           `json:"product_id"`
	StoreLocationID string           `json:"store_location_id"`
	Price           decimal.Decimal  `json:"price"`
	SalePrice       *decimal.Decimal `json:"sale_price"`
	SaleEnds        *time.Time       `json:"sale_ends"`
	Currency        string           `json:"currency"`
	ReportedBy      string           `json:"reported_by"`
	RecordedAt      time.Time        `json:"recorded_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

// PriceHistoryEntry observación del historial con datos de la sucursal.
type PriceHistoryEntry struct {
	PricePointResponse
	StoreName string `json:"store_name"`
	Address   string `json:"address"`
	City      string `json:"city"`
}
