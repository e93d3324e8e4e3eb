package pricing

import (
	"context"
	"fmt"
	"sort"

	"github.com/jhoicas/PrecioVecino-api/internal/domain"
	"github.com/jhoicas/PrecioVecino-api/internal/domain/entity"
	"github.com/jhoicas/PrecioVecino-api/pkg/geo"
)

// NearbyLocation sucursal anotada con su distancia al centro de búsqueda.
type NearbyLocation struct {
	Location   entity.StoreLocationInfo
	DistanceKm float64
}

// ProximityFilter filtra sucursales por radio geográfico. Solo lectura,
// sin estado mutable entre invocaciones.
type ProximityFilter struct {
	locations LocationSource
}

// NewProximityFilter construye el filtro con su fuente de sucursales.
func NewProximityFilter(locations LocationSource) *ProximityFilter {
	return &ProximityFilter{locations: locations}
}

// Nearby devuelve las sucursales con distancia estrictamente menor al radio,
// ordenadas ascendente por distancia; empates se rompen por ID de sucursal
// para que el resultado sea determinista.
//
// Sucursales con coordenadas persistidas corruptas se omiten del resultado:
// solo las coordenadas del llamador producen ErrInvalidQuery.
func (f *ProximityFilter) Nearby(ctx context.Context, q GeoQuery) ([]NearbyLocation, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	candidates, err := f.locations.ListAllLocations(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: listar sucursales: %v", domain.ErrResolutionFailed, err)
	}

	result := make([]NearbyLocation, 0, len(candidates))
	for _, loc := range candidates {
		d, err := geo.DistanceKm(q.Latitude, q.Longitude, loc.Latitude, loc.Longitude)
		if err != nil {
			continue
		}
		if d < q.RadiusKm {
			result = append(result, NearbyLocation{Location: loc, DistanceKm: d})
		}
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].DistanceKm != result[j].DistanceKm {
			return result[i].DistanceKm < result[j].DistanceKm
		}
		return result[i].Location.ID < result[j].Location.ID
	})

	return result, nil
}
