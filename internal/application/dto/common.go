package dto

// PageRequest paginación para listados (page empieza en 0).
type PageRequest struct {
	Page int `query:"page"`
	Size int `query:"size"`
}

// PageResponse metadatos de página en respuestas.
type PageResponse struct {
	Number        int `json:"number"`
	Size          int `json:"size"`
	TotalElements int `json:"totalElements"`
	TotalPages    int `json:"totalPages"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
