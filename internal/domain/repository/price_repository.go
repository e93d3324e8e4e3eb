package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/PrecioVecino-api/internal/domain/entity"
)

// PriceCorrection corrección en sitio de una observación de precio.
// No toca RecordedAt: una corrección no cambia qué observación es la última.
type PriceCorrection struct {
	Price     decimal.Decimal
	SalePrice *decimal.Decimal
	SaleEnds  *time.Time
}

// PriceRepository puerto de persistencia para PricePoint.
// Los PricePoints son solo-anexado; Correct y Delete son las únicas
// mutaciones y Delete es acción administrativa explícita.
type PriceRepository interface {
	Record(ctx context.Context, pp *entity.PricePoint) error
	GetByID(ctx context.Context, id string) (*entity.PricePoint, error)
	// ListByProductsAndLocations devuelve TODOS los PricePoints de los pares
	// (producto, sucursal) solicitados; la deduplicación temporal la hace el
	// PriceResolver en un solo lugar testeable.
	ListByProductsAndLocations(ctx context.Context, productIDs, locationIDs []string) ([]entity.PricePoint, error)
	History(ctx context.Context, productID, storeLocationID string) ([]entity.PricePoint, error)
	Correct(ctx context.Context, id string, c PriceCorrection) (*entity.PricePoint, error)
	Delete(ctx context.Context, id string) error
}
