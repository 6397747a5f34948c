package repository

import "github.com/jhoicas/Catalogo-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error
	List(params ListParams) ([]*entity.User, int, error)
	ExistsByID(id string) (bool, error)
	ExistsByEmail(email, excludeID string) (bool, error)
	ExistingIDs(ids []string) ([]string, error)
	DeleteByIDs(ids []string) ([]string, error)
}
