package dto

import "time"

// CreateCategoryRequest entrada para crear una categoría.
// IsActive es *bool para que required no rechace el valor false.
type CreateCategoryRequest struct {
	Code     string `json:"code" validate:"required,max=10"`
	Name     string `json:"name" validate:"required,max=50"`
	IsActive *bool  `json:"is_active" validate:"required"`
}

// UpdateCategoryRequest entrada para actualizar una categoría (reemplazo completo).
type UpdateCategoryRequest struct {
	Code     string `json:"code" validate:"required,max=10"`
	Name     string `json:"name" validate:"required,max=50"`
	IsActive *bool  `json:"is_active" validate:"required"`
}

// ListCategoriesRequest query string del listado de categorías.
type ListCategoriesRequest struct {
	Search   string `query:"search"`
	Page     int    `query:"page" validate:"omitempty,min=1"`
	PageSize int    `query:"page_size" validate:"omitempty,min=1,max=100"`
	Order    string `query:"order" validate:"omitempty,oneof=id code name is_active"`
	Dir      string `query:"dir" validate:"omitempty,oneof=asc desc"`
	IsActive *bool  `query:"is_active"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID        string    `json:"id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
