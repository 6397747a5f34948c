package dto

import "time"

// CreateCategorySubRequest entrada para crear una subcategoría.
// El campo se llama "category" en el wire (id de la categoría padre).
type CreateCategorySubRequest struct {
	Category string `json:"category" validate:"required,uuid"`
	Code     string `json:"code" validate:"required,max=20"`
	Name     string `json:"name" validate:"required,max=50"`
	IsActive *bool  `json:"is_active" validate:"required"`
}

// UpdateCategorySubRequest entrada para actualizar una subcategoría (permite reasignar el padre).
type UpdateCategorySubRequest struct {
	Category string `json:"category" validate:"required,uuid"`
	Code     string `json:"code" validate:"required,max=20"`
	Name     string `json:"name" validate:"required,max=50"`
	IsActive *bool  `json:"is_active" validate:"required"`
}

// ListCategorySubsRequest query string del listado de subcategorías.
type ListCategorySubsRequest struct {
	Search   string `query:"search"`
	Page     int    `query:"page" validate:"omitempty,min=1"`
	PageSize int    `query:"page_size" validate:"omitempty,min=1,max=100"`
	Order    string `query:"order" validate:"omitempty,oneof=id code name is_active"`
	Dir      string `query:"dir" validate:"omitempty,oneof=asc desc"`
	IsActive *bool  `query:"is_active"`
}

// CategorySubResponse salida de una subcategoría. CategoryName viene del join
// (puede faltar en la respuesta del create, que no hace join).
type CategorySubResponse struct {
	ID           string    `json:"id"`
	CategoryID   string    `json:"category_id"`
	CategoryName *string   `json:"category_name,omitempty"`
	Code         string    `json:"code"`
	Name         string    `json:"name"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
