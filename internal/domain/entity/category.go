package entity

import "time"

// Category categoría principal del catálogo maestro.
type Category struct {
	ID        string
	Code      string // único global, máx 10 caracteres
	Name      string
	IsActive  bool
	CreatedBy *string
	UpdatedBy *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
