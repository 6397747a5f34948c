package usecase

import (
	"context"

	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

// Repos repositorios atados a una misma transacción.
type Repos struct {
	Categories repository.CategoryRepository
	Subs       repository.CategorySubRepository
	Roles      repository.RoleRepository
	Users      repository.UserRepository
}

// TxRunner ejecuta un callback con repos transaccionales: el chequeo de
// conflicto/existencia y la escritura quedan en UNA transacción, cerrando la
// carrera check-then-write entre requests concurrentes.
type TxRunner interface {
	Run(ctx context.Context, fn func(r Repos) error) error
}
