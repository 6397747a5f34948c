package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

const roleConflictMsg = "Role already exists"

// RoleUseCase casos de uso CRUD para roles.
type RoleUseCase struct {
	repo     repository.RoleRepository
	tx       TxRunner
	pageSize int
}

// NewRoleUseCase construye el caso de uso.
func NewRoleUseCase(repo repository.RoleRepository, tx TxRunner, pageSize int) *RoleUseCase {
	return &RoleUseCase{repo: repo, tx: tx, pageSize: pageSize}
}

// List devuelve una página de roles.
func (uc *RoleUseCase) List(in dto.ListRolesRequest) (*dto.ListResponse, error) {
	page, size := normalizePage(in.Page, in.PageSize, uc.pageSize)

	rows, total, err := uc.repo.List(repository.ListParams{
		Search: in.Search,
		Order:  in.Order,
		Dir:    in.Dir,
		Limit:  size,
		Offset: (page - 1) * size,
	})
	if err != nil {
		return nil, err
	}

	data := make([]dto.RoleResponse, 0, len(rows))
	for _, role := range rows {
		data = append(data, *toRoleResponse(role))
	}
	return &dto.ListResponse{Page: page, Pages: dto.Pages(total, size), Total: total, Data: data}, nil
}

// Create crea un rol. ConflictError si el código ya existe.
func (uc *RoleUseCase) Create(ctx context.Context, in dto.CreateRoleRequest) (*dto.RoleResponse, error) {
	var out *dto.RoleResponse
	err := uc.tx.Run(ctx, func(r Repos) error {
		taken, err := r.Roles.ExistsByCode(in.Code, "")
		if err != nil {
			return err
		}
		if taken {
			return domain.ConflictError{Message: roleConflictMsg}
		}

		now := time.Now()
		role := &entity.Role{
			ID:        uuid.New().String(),
			Code:      in.Code,
			Name:      in.Name,
			DefPath:   in.DefPath,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := r.Roles.Create(role); err != nil {
			if errors.Is(err, domain.ErrDuplicate) {
				return domain.ConflictError{Message: roleConflictMsg}
			}
			return err
		}
		out = toRoleResponse(role)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID obtiene un rol por ID. Devuelve ErrNotFound si no existe.
func (uc *RoleUseCase) GetByID(id string) (*dto.RoleResponse, error) {
	role, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, domain.ErrNotFound
	}
	return toRoleResponse(role), nil
}

// Update reemplaza los campos editables de un rol.
func (uc *RoleUseCase) Update(ctx context.Context, id string, in dto.UpdateRoleRequest) (*dto.RoleResponse, error) {
	var out *dto.RoleResponse
	err := uc.tx.Run(ctx, func(r Repos) error {
		role, err := r.Roles.GetByID(id)
		if err != nil {
			return err
		}
		if role == nil {
			return domain.ErrNotFound
		}

		taken, err := r.Roles.ExistsByCode(in.Code, id)
		if err != nil {
			return err
		}
		if taken {
			return domain.ConflictError{Message: roleConflictMsg}
		}

		role.Code = in.Code
		role.Name = in.Name
		role.DefPath = in.DefPath
		role.UpdatedAt = time.Now()
		if err := r.Roles.Update(role); err != nil {
			if errors.Is(err, domain.ErrDuplicate) {
				return domain.ConflictError{Message: roleConflictMsg}
			}
			return err
		}
		out = toRoleResponse(role)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete borra por lista de ids con chequeo atómico de existencia.
// Si un rol está referenciado por usuarios, el restrict de la FK rechaza el borrado.
func (uc *RoleUseCase) Delete(ctx context.Context, ids []string) ([]string, error) {
	var deleted []string
	err := uc.tx.Run(ctx, func(r Repos) error {
		found, err := r.Roles.ExistingIDs(ids)
		if err != nil {
			return err
		}
		if fields := missingIDFields(ids, found); len(fields) > 0 {
			return domain.ValidationError{Fields: fields}
		}
		deleted, err = r.Roles.DeleteByIDs(ids)
		return err
	})
	if err != nil {
		return nil, err
	}
	return deleted, nil
}

func toRoleResponse(r *entity.Role) *dto.RoleResponse {
	if r == nil {
		return nil
	}
	return &dto.RoleResponse{
		ID:        r.ID,
		Code:      r.Code,
		Name:      r.Name,
		DefPath:   r.DefPath,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}
