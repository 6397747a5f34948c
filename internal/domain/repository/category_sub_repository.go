package repository

import "github.com/jhoicas/Catalogo-api/internal/domain/entity"

// CategorySubRepository define el puerto de persistencia para CategorySub (DIP).
// Las lecturas llevan LEFT JOIN a categories para exponer CategoryName.
type CategorySubRepository interface {
	Create(sub *entity.CategorySub) error
	GetByID(id string) (*entity.CategorySub, error)
	Update(sub *entity.CategorySub) error
	List(params ListParams) ([]*entity.CategorySub, int, error)
	ExistsByID(id string) (bool, error)
	// ExistsByCode verifica unicidad de código DENTRO de la categoría padre.
	ExistsByCode(categoryID, code, excludeID string) (bool, error)
	ExistingIDs(ids []string) ([]string, error)
	DeleteByIDs(ids []string) ([]string, error)
}
