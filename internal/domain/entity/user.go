package entity

import "time"

// User usuario del sistema. Sin rutas HTTP expuestas por ahora; se gestiona
// internamente (seeder y casos de uso).
type User struct {
	ID                string
	Email             string // único global
	PasswordHash      string
	Name              string
	IsActive          bool
	RoleID            string
	PasswordChangedAt *time.Time
	LastLoginAt       *time.Time
	CreatedBy         *string
	UpdatedBy         *string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
