package repository

import "github.com/jhoicas/Catalogo-api/internal/domain/entity"

// RoleRepository define el puerto de persistencia para Role (DIP).
type RoleRepository interface {
	Create(role *entity.Role) error
	GetByID(id string) (*entity.Role, error)
	Update(role *entity.Role) error
	List(params ListParams) ([]*entity.Role, int, error)
	ExistsByID(id string) (bool, error)
	ExistsByCode(code, excludeID string) (bool, error)
	ExistingIDs(ids []string) ([]string, error)
	DeleteByIDs(ids []string) ([]string, error)
}
