package dto

import "time"

// CreateRoleRequest entrada para crear un rol. DefPath es opcional.
type CreateRoleRequest struct {
	Code    string `json:"code" validate:"required,max=10"`
	Name    string `json:"name" validate:"required,max=50"`
	DefPath string `json:"def_path" validate:"omitempty,max=255"`
}

// UpdateRoleRequest entrada para actualizar un rol.
type UpdateRoleRequest struct {
	Code    string `json:"code" validate:"required,max=10"`
	Name    string `json:"name" validate:"required,max=50"`
	DefPath string `json:"def_path" validate:"omitempty,max=255"`
}

// ListRolesRequest query string del listado de roles (sin filtro is_active).
type ListRolesRequest struct {
	Search   string `query:"search"`
	Page     int    `query:"page" validate:"omitempty,min=1"`
	PageSize int    `query:"page_size" validate:"omitempty,min=1,max=100"`
	Order    string `query:"order" validate:"omitempty,oneof=id code name"`
	Dir      string `query:"dir" validate:"omitempty,oneof=asc desc"`
}

// RoleResponse salida de un rol.
type RoleResponse struct {
	ID        string    `json:"id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	DefPath   string    `json:"def_path"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
