package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PricePoint observación del precio de un producto en una sucursal en un
// momento dado. Es un registro de solo-anexado: nunca se muta salvo por una
// corrección explícita (que reescribe price/sale_price/sale_ends sin tocar
// RecordedAt) y solo un administrador puede eliminarlo.
//
// SalePrice puede ser mayor o menor que Price; la fuente no impone orden.
type PricePoint struct {
	ID              string
	ProductID       string
	StoreLocationID string
	Price           decimal.Decimal
	SalePrice       *decimal.Decimal
	SaleEnds        *time.Time
	Currency        string
	ReportedBy      string // ID del usuario que reportó
	RecordedAt      time.Time
	UpdatedAt       time.Time
}
