package entity

import "time"

// CategorySub subcategoría; pertenece a exactamente una Category.
// Code es único por categoría (constraint compuesto en DB).
type CategorySub struct {
	ID         string
	CategoryID string
	Code       string // máx 20 caracteres
	Name       string
	IsActive   bool
	CreatedBy  *string
	UpdatedBy  *string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// CategoryName se llena solo en lecturas con join a categories (puede ser nil).
	CategoryName *string
}
