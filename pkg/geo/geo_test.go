package geo_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/PrecioVecino-api/pkg/geo"
)

// Coordenadas de referencia: centros urbanos con distancias conocidas.
const (
	bogotaLat   = 4.7110
	bogotaLon   = -74.0721
	medellinLat = 6.2442
	medellinLon = -75.5812
)

// TestDistanceKm_VectorConocido Bogotá ↔ Medellín ≈ 238.67 km (gran círculo
// sobre R=6371, calculado a mano para estas coordenadas exactas).
func TestDistanceKm_VectorConocido(t *testing.T) {
	d, err := geo.DistanceKm(bogotaLat, bogotaLon, medellinLat, medellinLon)
	require.NoError(t, err)
	assert.InDelta(t, 238.67, d, 0.5,
		"Bogotá-Medellín debe estar alrededor de 238.67 km")
}

// TestDistanceKm_Simetrica d(A,B) == d(B,A) exactamente.
func TestDistanceKm_Simetrica(t *testing.T) {
	d1, err1 := geo.DistanceKm(bogotaLat, bogotaLon, medellinLat, medellinLon)
	d2, err2 := geo.DistanceKm(medellinLat, medellinLon, bogotaLat, bogotaLon)
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, d1, d2, "la distancia debe ser simétrica")
}

// TestDistanceKm_MismoPunto d(A,A) == 0 sin error de dominio.
func TestDistanceKm_MismoPunto(t *testing.T) {
	d, err := geo.DistanceKm(bogotaLat, bogotaLon, bogotaLat, bogotaLon)
	require.NoError(t, err)
	assert.Zero(t, d, "la distancia de un punto a sí mismo debe ser 0")
}

// TestDistanceKm_PuntosMuyCercanos el redondeo flotante puede empujar el
// argumento de acos apenas por encima de 1; el recorte debe evitar NaN.
func TestDistanceKm_PuntosMuyCercanos(t *testing.T) {
	d, err := geo.DistanceKm(45.0, 45.0, 45.0, 45.0000000001)
	require.NoError(t, err)
	assert.False(t, math.IsNaN(d), "puntos casi idénticos no deben producir NaN")
	assert.GreaterOrEqual(t, d, 0.0)
	assert.Less(t, d, 0.001)
}

// TestDistanceKm_Antipodas estabilidad numérica cerca de puntos antipodales:
// medio perímetro terrestre ≈ π * 6371 ≈ 20015 km.
func TestDistanceKm_Antipodas(t *testing.T) {
	d, err := geo.DistanceKm(0, 0, 0, 180)
	require.NoError(t, err)
	assert.False(t, math.IsNaN(d))
	assert.InDelta(t, math.Pi*geo.EarthRadiusKm, d, 1.0)
}

// TestDistanceKm_Ecuador un grado de longitud sobre el ecuador ≈ 111.19 km.
func TestDistanceKm_Ecuador(t *testing.T) {
	d, err := geo.DistanceKm(0, 0, 0, 1)
	require.NoError(t, err)
	assert.InDelta(t, 111.19, d, 0.5)
}

// ── Entradas inválidas ───────────────────────────────────────────────────────

func TestDistanceKm_LatitudFueraDeRango(t *testing.T) {
	_, err := geo.DistanceKm(91, 0, 0, 0)
	assert.ErrorIs(t, err, geo.ErrInvalidCoordinate)

	_, err = geo.DistanceKm(0, 0, -90.5, 0)
	assert.ErrorIs(t, err, geo.ErrInvalidCoordinate)
}

func TestDistanceKm_LongitudFueraDeRango(t *testing.T) {
	_, err := geo.DistanceKm(0, 181, 0, 0)
	assert.ErrorIs(t, err, geo.ErrInvalidCoordinate)
}

func TestDistanceKm_NaNeInfinito(t *testing.T) {
	_, err := geo.DistanceKm(math.NaN(), 0, 0, 0)
	assert.ErrorIs(t, err, geo.ErrInvalidCoordinate)

	_, err = geo.DistanceKm(0, 0, 0, math.Inf(1))
	assert.ErrorIs(t, err, geo.ErrInvalidCoordinate)
}

func TestValidateCoordinate_LimitesExactos(t *testing.T) {
	assert.NoError(t, geo.ValidateCoordinate(90, 180))
	assert.NoError(t, geo.ValidateCoordinate(-90, -180))
	assert.Error(t, geo.ValidateCoordinate(90.0001, 0))
}
