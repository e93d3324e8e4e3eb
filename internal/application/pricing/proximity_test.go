package pricing_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/PrecioVecino-api/internal/application/pricing"
	"github.com/jhoicas/PrecioVecino-api/internal/domain"
	"github.com/jhoicas/PrecioVecino-api/internal/domain/entity"
)

// Centro de búsqueda para todos los tests: origen (0,0). Sobre el ecuador,
// 0.01° de longitud ≈ 1.11 km, lo que facilita armar distancias conocidas.
var testQuery = pricing.GeoQuery{Latitude: 0, Longitude: 0, RadiusKm: 10}

func TestNearby_FiltraPorRadioEstricto(t *testing.T) {
	src := &fakeLocations{locs: []entity.StoreLocationInfo{
		testLocation("loc-cerca", "Éxito", 0, 0.01),   // ≈ 1.1 km
		testLocation("loc-media", "Carulla", 0, 0.05), // ≈ 5.6 km
		testLocation("loc-lejos", "D1", 0, 0.2),       // ≈ 22 km, fuera
	}}
	filter := pricing.NewProximityFilter(src)

	out, err := filter.Nearby(context.Background(), testQuery)
	require.NoError(t, err)
	require.Len(t, out, 2, "solo las sucursales dentro del radio deben volver")

	for _, nl := range out {
		assert.Less(t, nl.DistanceKm, testQuery.RadiusKm,
			"toda distancia devuelta debe ser estrictamente menor al radio")
	}
}

func TestNearby_OrdenAscendentePorDistancia(t *testing.T) {
	src := &fakeLocations{locs: []entity.StoreLocationInfo{
		testLocation("loc-b", "Carulla", 0, 0.05),
		testLocation("loc-a", "Éxito", 0, 0.01),
		testLocation("loc-c", "D1", 0, 0.03),
	}}
	filter := pricing.NewProximityFilter(src)

	out, err := filter.Nearby(context.Background(), testQuery)
	require.NoError(t, err)
	require.Len(t, out, 3)

	assert.Equal(t, "loc-a", out[0].Location.ID)
	assert.Equal(t, "loc-c", out[1].Location.ID)
	assert.Equal(t, "loc-b", out[2].Location.ID)
	assert.True(t, out[0].DistanceKm <= out[1].DistanceKm && out[1].DistanceKm <= out[2].DistanceKm,
		"el orden debe ser ascendente por distancia")
}

// Empate exacto de distancia (mismas coordenadas): desempata por ID para que
// llamadas repetidas devuelvan siempre el mismo orden.
func TestNearby_EmpateDesempataPorID(t *testing.T) {
	src := &fakeLocations{locs: []entity.StoreLocationInfo{
		testLocation("loc-z", "Carulla", 0, 0.02),
		testLocation("loc-a", "Éxito", 0, 0.02),
	}}
	filter := pricing.NewProximityFilter(src)

	out, err := filter.Nearby(context.Background(), testQuery)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "loc-a", out[0].Location.ID)
	assert.Equal(t, "loc-z", out[1].Location.ID)
}

func TestNearby_SinCandidatos_ResultadoVacioSinError(t *testing.T) {
	filter := pricing.NewProximityFilter(&fakeLocations{})
	out, err := filter.Nearby(context.Background(), testQuery)
	require.NoError(t, err)
	assert.Empty(t, out, "sin sucursales en rango el resultado es vacío, no un error")
}

// Coordenadas persistidas corruptas se omiten; no tumban la consulta entera.
func TestNearby_CoordenadaCorruptaSeOmite(t *testing.T) {
	src := &fakeLocations{locs: []entity.StoreLocationInfo{
		testLocation("loc-ok", "Éxito", 0, 0.01),
		testLocation("loc-mala", "Carulla", math.NaN(), 0.01),
	}}
	filter := pricing.NewProximityFilter(src)

	out, err := filter.Nearby(context.Background(), testQuery)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "loc-ok", out[0].Location.ID)
}

// ── Errores ──────────────────────────────────────────────────────────────────

func TestNearby_CentroInvalido_RetornaInvalidQuery(t *testing.T) {
	filter := pricing.NewProximityFilter(&fakeLocations{})

	_, err := filter.Nearby(context.Background(), pricing.GeoQuery{Latitude: 91, Longitude: 0, RadiusKm: 10})
	assert.ErrorIs(t, err, domain.ErrInvalidQuery)

	_, err = filter.Nearby(context.Background(), pricing.GeoQuery{Latitude: math.NaN(), Longitude: 0, RadiusKm: 10})
	assert.ErrorIs(t, err, domain.ErrInvalidQuery)
}

func TestNearby_RadioNoPositivo_RetornaInvalidQuery(t *testing.T) {
	filter := pricing.NewProximityFilter(&fakeLocations{})

	_, err := filter.Nearby(context.Background(), pricing.GeoQuery{Latitude: 0, Longitude: 0, RadiusKm: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidQuery)

	_, err = filter.Nearby(context.Background(), pricing.GeoQuery{Latitude: 0, Longitude: 0, RadiusKm: -5})
	assert.ErrorIs(t, err, domain.ErrInvalidQuery)
}

func TestNearby_FallaDeAlmacenamiento_RetornaResolutionFailed(t *testing.T) {
	filter := pricing.NewProximityFilter(&fakeLocations{err: errStorage})
	_, err := filter.Nearby(context.Background(), testQuery)
	assert.ErrorIs(t, err, domain.ErrResolutionFailed)
}
