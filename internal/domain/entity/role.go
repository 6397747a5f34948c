package entity

import "time"

// Role rol de usuario con ruta de navegación por defecto opcional.
type Role struct {
	ID        string
	Code      string // único global, máx 10 caracteres
	Name      string
	DefPath   string // ruta por defecto tras login; puede estar vacía
	CreatedBy *string
	UpdatedBy *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
