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

const categorySubConflictMsg = "Sub category code already exists"

// CategorySubUseCase casos de uso CRUD para subcategorías.
// El código es único POR categoría: el mismo código bajo otra categoría es válido.
type CategorySubUseCase struct {
	repo     repository.CategorySubRepository
	tx       TxRunner
	pageSize int
}

// NewCategorySubUseCase construye el caso de uso.
func NewCategorySubUseCase(repo repository.CategorySubRepository, tx TxRunner, pageSize int) *CategorySubUseCase {
	return &CategorySubUseCase{repo: repo, tx: tx, pageSize: pageSize}
}

// List devuelve una página de subcategorías (con nombre de la categoría padre vía join).
func (uc *CategorySubUseCase) List(in dto.ListCategorySubsRequest) (*dto.ListResponse, error) {
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

	data := make([]dto.CategorySubResponse, 0, len(rows))
	for _, s := range rows {
		data = append(data, *toCategorySubResponse(s))
	}
	return &dto.ListResponse{Page: page, Pages: dto.Pages(total, size), Total: total, Data: data}, nil
}

// Create crea una subcategoría. La categoría padre debe existir (422 si no);
// ConflictError si el código ya está usado dentro de esa categoría.
func (uc *CategorySubUseCase) Create(ctx context.Context, in dto.CreateCategorySubRequest) (*dto.CategorySubResponse, error) {
	var out *dto.CategorySubResponse
	err := uc.tx.Run(ctx, func(r Repos) error {
		parentOK, err := r.Categories.ExistsByID(in.Category)
		if err != nil {
			return err
		}
		if !parentOK {
			return domain.NewValidationError("category", "Category does not exist")
		}

		taken, err := r.Subs.ExistsByCode(in.Category, in.Code, "")
		if err != nil {
			return err
		}
		if taken {
			return domain.ConflictError{Message: categorySubConflictMsg}
		}

		now := time.Now()
		sub := &entity.CategorySub{
			ID:         uuid.New().String(),
			CategoryID: in.Category,
			Code:       in.Code,
			Name:       in.Name,
			IsActive:   *in.IsActive,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		if err := r.Subs.Create(sub); err != nil {
			if errors.Is(err, domain.ErrDuplicate) {
				return domain.ConflictError{Message: categorySubConflictMsg}
			}
			return err
		}
		out = toCategorySubResponse(sub)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID obtiene una subcategoría por ID. Devuelve ErrNotFound si no existe.
func (uc *CategorySubUseCase) GetByID(id string) (*dto.CategorySubResponse, error) {
	sub, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, domain.ErrNotFound
	}
	return toCategorySubResponse(sub), nil
}

// Update reemplaza los campos editables, incluida la categoría padre.
func (uc *CategorySubUseCase) Update(ctx context.Context, id string, in dto.UpdateCategorySubRequest) (*dto.CategorySubResponse, error) {
	var out *dto.CategorySubResponse
	err := uc.tx.Run(ctx, func(r Repos) error {
		sub, err := r.Subs.GetByID(id)
		if err != nil {
			return err
		}
		if sub == nil {
			return domain.ErrNotFound
		}

		parentOK, err := r.Categories.ExistsByID(in.Category)
		if err != nil {
			return err
		}
		if !parentOK {
			return domain.NewValidationError("category", "Category does not exist")
		}

		taken, err := r.Subs.ExistsByCode(in.Category, in.Code, id)
		if err != nil {
			return err
		}
		if taken {
			return domain.ConflictError{Message: categorySubConflictMsg}
		}

		sub.CategoryID = in.Category
		sub.Code = in.Code
		sub.Name = in.Name
		sub.IsActive = *in.IsActive
		sub.UpdatedAt = time.Now()
		if err := r.Subs.Update(sub); err != nil {
			if errors.Is(err, domain.ErrDuplicate) {
				return domain.ConflictError{Message: categorySubConflictMsg}
			}
			return err
		}
		out = toCategorySubResponse(sub)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete borra por lista de ids con chequeo atómico de existencia.
func (uc *CategorySubUseCase) Delete(ctx context.Context, ids []string) ([]string, error) {
	var deleted []string
	err := uc.tx.Run(ctx, func(r Repos) error {
		found, err := r.Subs.ExistingIDs(ids)
		if err != nil {
			return err
		}
		if fields := missingIDFields(ids, found); len(fields) > 0 {
			return domain.ValidationError{Fields: fields}
		}
		deleted, err = r.Subs.DeleteByIDs(ids)
		return err
	})
	if err != nil {
		return nil, err
	}
	return deleted, nil
}

func toCategorySubResponse(s *entity.CategorySub) *dto.CategorySubResponse {
	if s == nil {
		return nil
	}
	return &dto.CategorySubResponse{
		ID:           s.ID,
		CategoryID:   s.CategoryID,
		CategoryName: s.CategoryName,
		Code:         s.Code,
		Name:         s.Name,
		IsActive:     s.IsActive,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}
