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
	"golang.org/x/crypto/bcrypt"
)

const userConflictMsg = "User email already exists"

// UserUseCase casos de uso CRUD para usuarios. Sin rutas HTTP expuestas por
// ahora: lo consumen el seeder y futuros módulos de autenticación.
type UserUseCase struct {
	repo     repository.UserRepository
	tx       TxRunner
	pageSize int
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository, tx TxRunner, pageSize int) *UserUseCase {
	return &UserUseCase{repo: repo, tx: tx, pageSize: pageSize}
}

// List devuelve una página de usuarios.
func (uc *UserUseCase) List(in dto.ListUsersRequest) (*dto.ListResponse, error) {
	page, size := normalizePage(in.Page, in.PageSize, uc.pageSize)

	rows, total, err := uc.repo.List(repository.ListParams{
		Search:   in.Search,
		IsActive: in.IsActive,
		Order:    in.Order,
		Dir:      in.Dir,
		Limit:    size,
		Offset:   (page - 1) * size,
	})
	if err != nil {
		return nil, err
	}

	data := make([]dto.UserResponse, 0, len(rows))
	for _, u := range rows {
		data = append(data, *toUserResponse(u))
	}
	return &dto.ListResponse{Page: page, Pages: dto.Pages(total, size), Total: total, Data: data}, nil
}

// Create crea un usuario: hashea el password con bcrypt y persiste.
// El rol debe existir (422 si no); ConflictError si el email ya está registrado.
func (uc *UserUseCase) Create(ctx context.Context, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	var out *dto.UserResponse
	err := uc.tx.Run(ctx, func(r Repos) error {
		taken, err := r.Users.ExistsByEmail(in.Email, "")
		if err != nil {
			return err
		}
		if taken {
			return domain.ConflictError{Message: userConflictMsg}
		}

		roleOK, err := r.Roles.ExistsByID(in.RoleID)
		if err != nil {
			return err
		}
		if !roleOK {
			return domain.NewValidationError("role_id", "Role does not exist")
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}

		now := time.Now()
		user := &entity.User{
			ID:                uuid.New().String(),
			Email:             in.Email,
			PasswordHash:      string(hash),
			Name:              in.Name,
			IsActive:          *in.IsActive,
			RoleID:            in.RoleID,
			PasswordChangedAt: &now,
			CreatedAt:         now,
			UpdatedAt:         now,
		}
		if err := r.Users.Create(user); err != nil {
			if errors.Is(err, domain.ErrDuplicate) {
				return domain.ConflictError{Message: userConflictMsg}
			}
			return err
		}
		out = toUserResponse(user)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID obtiene un usuario por ID. Devuelve ErrNotFound si no existe.
func (uc *UserUseCase) GetByID(id string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	return toUserResponse(user), nil
}

// Update reemplaza los campos editables. Password vacío conserva el hash actual;
// si viene, se rehashea y se refresca password_changed_at.
func (uc *UserUseCase) Update(ctx context.Context, id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	var out *dto.UserResponse
	err := uc.tx.Run(ctx, func(r Repos) error {
		user, err := r.Users.GetByID(id)
		if err != nil {
			return err
		}
		if user == nil {
			return domain.ErrNotFound
		}

		taken, err := r.Users.ExistsByEmail(in.Email, id)
		if err != nil {
			return err
		}
		if taken {
			return domain.ConflictError{Message: userConflictMsg}
		}

		roleOK, err := r.Roles.ExistsByID(in.RoleID)
		if err != nil {
			return err
		}
		if !roleOK {
			return domain.NewValidationError("role_id", "Role does not exist")
		}

		now := time.Now()
		if in.Password != "" {
			hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
			if err != nil {
				return err
			}
			user.PasswordHash = string(hash)
			user.PasswordChangedAt = &now
		}
		user.Email = in.Email
		user.Name = in.Name
		user.IsActive = *in.IsActive
		user.RoleID = in.RoleID
		user.UpdatedAt = now
		if err := r.Users.Update(user); err != nil {
			if errors.Is(err, domain.ErrDuplicate) {
				return domain.ConflictError{Message: userConflictMsg}
			}
			return err
		}
		out = toUserResponse(user)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete borra por lista de ids con chequeo atómico de existencia.
func (uc *UserUseCase) Delete(ctx context.Context, ids []string) ([]string, error) {
	var deleted []string
	err := uc.tx.Run(ctx, func(r Repos) error {
		found, err := r.Users.ExistingIDs(ids)
		if err != nil {
			return err
		}
		if fields := missingIDFields(ids, found); len(fields) > 0 {
			return domain.ValidationError{Fields: fields}
		}
		deleted, err = r.Users.DeleteByIDs(ids)
		return err
	})
	if err != nil {
		return nil, err
	}
	return deleted, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:                u.ID,
		Email:             u.Email,
		Name:              u.Name,
		IsActive:          u.IsActive,
		RoleID:            u.RoleID,
		PasswordChangedAt: u.PasswordChangedAt,
		LastLoginAt:       u.LastLoginAt,
		CreatedAt:         u.CreatedAt,
		UpdatedAt:         u.UpdatedAt,
	}
}
