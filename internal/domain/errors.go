package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound  = errors.New("recurso no encontrado")
	ErrDuplicate = errors.New("recurso duplicado")
)

// ConflictError violación de unicidad con mensaje listo para el cliente (409).
type ConflictError struct {
	Message string
}

func (e ConflictError) Error() string {
	return e.Message
}

// ValidationError fallo de validación referencial con errores agrupados por campo (422).
// La clave es el primer segmento del path del campo (nombre de campo o índice de array).
type ValidationError struct {
	Fields map[string][]string
}

func (e ValidationError) Error() string {
	return "entrada no procesable"
}

// NewValidationError crea un ValidationError con un solo campo.
func NewValidationError(field, message string) ValidationError {
	return ValidationError{Fields: map[string][]string{field: {message}}}
}
