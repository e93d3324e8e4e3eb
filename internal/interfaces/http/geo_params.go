package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/PrecioVecino-api/internal/application/dto"
	"github.com/jhoicas/PrecioVecino-api/internal/application/pricing"
)

// parseGeoQuery lee latitude, longitude y radius de los query params.
// latitude y longitude son obligatorios; radius es opcional y cae al default
// configurado. Devuelve el ErrorResponse listo para 400 cuando falten o no
// parseen; la validación de rangos la hace el motor.
func parseGeoQuery(c *fiber.Ctx, defaultRadiusKm float64) (pricing.GeoQuery, *dto.ErrorResponse) {
	latStr := c.Query("latitude")
	lonStr := c.Query("longitude")
	if latStr == "" || lonStr == "" {
		return pricing.GeoQuery{}, &dto.ErrorResponse{Code: "MISSING_COORDINATES", Message: "latitude y longitude son requeridos"}
	}
	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return pricing.GeoQuery{}, &dto.ErrorResponse{Code: "INVALID_QUERY", Message: "latitude inválida"}
	}
	lon, err := strconv.ParseFloat(lonStr, 64)
	if err != nil {
		return pricing.GeoQuery{}, &dto.ErrorResponse{Code: "INVALID_QUERY", Message: "longitude inválida"}
	}
	radius := defaultRadiusKm
	if radiusStr := c.Query("radius"); radiusStr != "" {
		radius, err = strconv.ParseFloat(radiusStr, 64)
		if err != nil {
			return pricing.GeoQuery{}, &dto.ErrorResponse{Code: "INVALID_QUERY", Message: "radius inválido"}
		}
	}
	return pricing.GeoQuery{Latitude: lat, Longitude: lon, RadiusKm: radius}, nil
}
