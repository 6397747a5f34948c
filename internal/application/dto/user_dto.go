package dto

import "time"

// CreateUserRequest entrada para crear un usuario (password en texto, se hashea en el use case).
type CreateUserRequest struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"required,max=50"`
	IsActive *bool  `json:"is_active" validate:"required"`
	RoleID   string `json:"role_id" validate:"required,uuid"`
}

// UpdateUserRequest entrada para actualizar un usuario. Password vacío = no cambia.
type UpdateUserRequest struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"omitempty,min=8"`
	Name     string `json:"name" validate:"required,max=50"`
	IsActive *bool  `json:"is_active" validate:"required"`
	RoleID   string `json:"role_id" validate:"required,uuid"`
}

// ListUsersRequest query string del listado de usuarios (interno, sin rutas por ahora).
type ListUsersRequest struct {
	Search   string `query:"search"`
	Page     int    `query:"page" validate:"omitempty,min=1"`
	PageSize int    `query:"page_size" validate:"omitempty,min=1,max=100"`
	Order    string `query:"order" validate:"omitempty,oneof=id email name is_active"`
	Dir      string `query:"dir" validate:"omitempty,oneof=asc desc"`
	IsActive *bool  `query:"is_active"`
}

// UserResponse salida de un usuario (sin password_hash).
type UserResponse struct {
	ID                string     `json:"id"`
	Email             string     `json:"email"`
	Name              string     `json:"name"`
	IsActive          bool       `json:"is_active"`
	RoleID            string     `json:"role_id"`
	PasswordChangedAt *time.Time `json:"password_changed_at,omitempty"`
	LastLoginAt       *time.Time `json:"last_login_at,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}
