package repository

import "github.com/jhoicas/Catalogo-api/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para Category (DIP).
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	Update(category *entity.Category) error
	// List devuelve la página de filas y el total de filas que cumplen el filtro.
	List(params ListParams) ([]*entity.Category, int, error)
	ExistsByID(id string) (bool, error)
	// ExistsByCode verifica unicidad de código; excludeID vacío = sin exclusión.
	ExistsByCode(code, excludeID string) (bool, error)
	// ExistingIDs devuelve el subconjunto de ids que sí existen (chequeo de borrado masivo).
	ExistingIDs(ids []string) ([]string, error)
	// DeleteByIDs borra por lista de ids y devuelve los ids efectivamente borrados.
	DeleteByIDs(ids []string) ([]string, error)
}
