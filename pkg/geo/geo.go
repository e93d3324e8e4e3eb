// Package geo implementa el cálculo de distancia ortodrómica (gran círculo)
// entre coordenadas geográficas. Es la única implementación de la fórmula en
// todo el proyecto: filtros de proximidad y consultas de precios dependen de
// este paquete, nunca de SQL embebido.
package geo

import (
	"errors"
	"math"
)

// EarthRadiusKm radio medio terrestre usado por la fórmula haversine.
const EarthRadiusKm = 6371.0

// ErrInvalidCoordinate coordenada fuera de rango, NaN o infinita.
var ErrInvalidCoordinate = errors.New("coordenada inválida")

// ValidateCoordinate verifica que lat ∈ [-90, 90] y lon ∈ [-180, 180] y que
// ninguno sea NaN/Inf.
func ValidateCoordinate(lat, lon float64) error {
	if math.IsNaN(lat) || math.IsInf(lat, 0) || lat < -90 || lat > 90 {
		return ErrInvalidCoordinate
	}
	if math.IsNaN(lon) || math.IsInf(lon, 0) || lon < -180 || lon > 180 {
		return ErrInvalidCoordinate
	}
	return nil
}

// DistanceKm distancia de gran círculo en kilómetros entre dos puntos.
// Simétrica: DistanceKm(A,B) == DistanceKm(B,A). Cero si y solo si las
// coordenadas son idénticas. El argumento de acos se recorta a [-1, 1] para
// evitar errores de dominio por redondeo flotante cerca de puntos idénticos
// o antipodales.
func DistanceKm(lat1, lon1, lat2, lon2 float64) (float64, error) {
	if err := ValidateCoordinate(lat1, lon1); err != nil {
		return 0, err
	}
	if err := ValidateCoordinate(lat2, lon2); err != nil {
		return 0, err
	}
	if lat1 == lat2 && lon1 == lon2 {
		return 0, nil
	}

	rlat1 := radians(lat1)
	rlat2 := radians(lat2)
	dlon := radians(lon2 - lon1)

	// cos(c) = cos(φ1)cos(φ2)cos(Δλ) + sin(φ1)sin(φ2)
	cosC := math.Cos(rlat1)*math.Cos(rlat2)*math.Cos(dlon) + math.Sin(rlat1)*math.Sin(rlat2)
	cosC = clamp(cosC, -1, 1)

	return EarthRadiusKm * math.Acos(cosC), nil
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
