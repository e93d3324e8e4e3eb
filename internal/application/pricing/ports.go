package pricing

import (
	"context"

	"github.com/jhoicas/PrecioVecino-api/internal/domain"
	"github.com/jhoicas/PrecioVecino-api/internal/domain/entity"
	"github.com/jhoicas/PrecioVecino-api/pkg/geo"
)

// Puertos de lectura del motor. El motor nunca toca estado global: sus
// fuentes de datos se inyectan en la construcción y cada invocación es un
// pipeline puro sobre datos recién leídos.

// LocationSource provee el conjunto candidato de sucursales.
// Los repositorios de postgres lo satisfacen implícitamente.
type LocationSource interface {
	ListAllLocations(ctx context.Context) ([]entity.StoreLocationInfo, error)
}

// PricePointSource provee las observaciones de precio crudas de los pares
// (producto, sucursal) pedidos. El resolver hace la deduplicación temporal.
type PricePointSource interface {
	ListByProductsAndLocations(ctx context.Context, productIDs, locationIDs []string) ([]entity.PricePoint, error)
}

// GeoQuery consulta geográfica ya tipada: el parsing de query params es
// responsabilidad de la capa HTTP.
type GeoQuery struct {
	Latitude  float64
	Longitude float64
	RadiusKm  float64
}

// Validate retorna ErrInvalidQuery si el centro es inválido o el radio <= 0.
func (q GeoQuery) Validate() error {
	if err := geo.ValidateCoordinate(q.Latitude, q.Longitude); err != nil {
		return domain.ErrInvalidQuery
	}
	if q.RadiusKm <= 0 {
		return domain.ErrInvalidQuery
	}
	return nil
}
