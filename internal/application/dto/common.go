package dto

// ListResponse envelope estándar de listados paginados.
type ListResponse struct {
	Page  int         `json:"page"`
	Pages int         `json:"pages"` // ceil(total / page_size)
	Total int         `json:"total"`
	Data  interface{} `json:"data"`
}

// MessageResponse envelope estándar de respuestas individuales y de borrado.
type MessageResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorResponse envelope estándar de error, con errores por campo cuando aplica.
type ErrorResponse struct {
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

// Pages calcula el total de páginas para un total de filas y un tamaño de página.
func Pages(total, pageSize int) int {
	if pageSize <= 0 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}
