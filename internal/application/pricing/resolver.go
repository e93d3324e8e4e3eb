package pricing

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/PrecioVecino-api/internal/domain"
	"github.com/jhoicas/PrecioVecino-api/internal/domain/entity"
)

// PairKey identifica un par (producto, sucursal).
type PairKey struct {
	ProductID       string
	StoreLocationID string
}

// ResolvedPrice precio "vigente" de un par (producto, sucursal): la
// observación más reciente con su precio efectivo ya calculado.
type ResolvedPrice struct {
	ProductID       string
	StoreLocationID string
	EffectivePrice  decimal.Decimal
	Price           decimal.Decimal
	SalePrice       *decimal.Decimal
	Currency        string
	RecordedAt      time.Time
}

// PriceResolver resuelve la observación más reciente por par
// (producto, sucursal) y calcula su precio efectivo. La regla vive aquí y en
// ningún otro lugar: sale_price si existe (sujeto a la política de
// vencimiento), si no price.
type PriceResolver struct {
	prices          PricePointSource
	honorSaleExpiry bool
	now             func() time.Time
}

// NewPriceResolver construye el resolver. honorSaleExpiry controla si un
// sale_price con sale_ends vencido deja de ser efectivo (la fuente original
// no lo verificaba; default de la app: false).
func NewPriceResolver(prices PricePointSource, honorSaleExpiry bool) *PriceResolver {
	return &PriceResolver{prices: prices, honorSaleExpiry: honorSaleExpiry, now: time.Now}
}

// Resolve devuelve un ResolvedPrice por cada par (producto, sucursal) con al
// menos una observación. Pares sin observaciones simplemente no aparecen:
// ausencia significa "precio desconocido", nunca cero.
//
// Dentro de cada grupo gana el RecordedAt máximo; a igual RecordedAt gana el
// ID (UUID) lexicográficamente mayor, para que llamadas repetidas resuelvan
// siempre igual.
func (r *PriceResolver) Resolve(ctx context.Context, productIDs, locationIDs []string) (map[PairKey]ResolvedPrice, error) {
	resolved := make(map[PairKey]ResolvedPrice)
	if len(productIDs) == 0 || len(locationIDs) == 0 {
		return resolved, nil
	}

	points, err := r.prices.ListByProductsAndLocations(ctx, productIDs, locationIDs)
	if err != nil {
		return nil, fmt.Errorf("%w: listar observaciones: %v", domain.ErrResolutionFailed, err)
	}

	latest := make(map[PairKey]entity.PricePoint, len(points))
	for _, pp := range points {
		key := PairKey{ProductID: pp.ProductID, StoreLocationID: pp.StoreLocationID}
		best, ok := latest[key]
		if !ok || newerThan(pp, best) {
			latest[key] = pp
		}
	}

	for key, pp := range latest {
		resolved[key] = ResolvedPrice{
			ProductID:       pp.ProductID,
			StoreLocationID: pp.StoreLocationID,
			EffectivePrice:  r.effectivePrice(pp),
			Price:           pp.Price,
			SalePrice:       pp.SalePrice,
			Currency:        pp.Currency,
			RecordedAt:      pp.RecordedAt,
		}
	}
	return resolved, nil
}

// newerThan true si a debe ganar sobre b en la resolución.
func newerThan(a, b entity.PricePoint) bool {
	if !a.RecordedAt.Equal(b.RecordedAt) {
		return a.RecordedAt.After(b.RecordedAt)
	}
	return a.ID > b.ID
}

func (r *PriceResolver) effectivePrice(pp entity.PricePoint) decimal.Decimal {
	if pp.SalePrice == nil {
		return pp.Price
	}
	if r.honorSaleExpiry && pp.SaleEnds != nil && pp.SaleEnds.Before(r.now()) {
		return pp.Price
	}
	return *pp.SalePrice
}
