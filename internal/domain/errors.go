package domain

import "errors"

// Errores de dominio (sin dependencias externas).
//
// La ausencia de datos válidos (ej. producto sin precios en la zona) NO es un
// error: se representa con resultados vacíos u opcionales. ErrResolutionFailed
// se reserva para fallas reales de almacenamiento al resolver precios.
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")

	// ErrInvalidQuery parámetros geográficos inválidos (coordenadas faltantes
	// o fuera de rango, radio <= 0). Error del llamador, equivale a un 4xx.
	ErrInvalidQuery = errors.New("consulta geográfica inválida")

	// ErrResolutionFailed falla de almacenamiento al resolver precios o
	// ubicaciones. Equivale a un 5xx; el motor no reintenta.
	ErrResolutionFailed = errors.New("fallo al resolver precios")
)
