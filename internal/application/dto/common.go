package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// SuccessResponse confirmación simple para operaciones de borrado.
type SuccessResponse struct {
	Success bool `json:"success"`
}
