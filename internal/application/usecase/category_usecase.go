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

const categoryConflictMsg = "Category code already exists"

// CategoryUseCase casos de uso CRUD para categorías.
// Las escrituras corren dentro del TxRunner: chequeo + write en una transacción.
type CategoryUseCase struct {
	repo     repository.CategoryRepository
	tx       TxRunner
	pageSize int
}

// NewCategoryUseCase construye el caso de uso. pageSize es el tamaño de página por defecto.
func NewCategoryUseCase(repo repository.CategoryRepository, tx TxRunner, pageSize int) *CategoryUseCase {
	return &CategoryUseCase{repo: repo, tx: tx, pageSize: pageSize}
}

// List devuelve una página de categorías con el envelope {page, pages, total, data}.
func (uc *CategoryUseCase) List(in dto.ListCategoriesRequest) (*dto.ListResponse, error) {
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

	data := make([]dto.CategoryResponse, 0, len(rows))
	for _, c := range rows {
		data = append(data, *toCategoryResponse(c))
	}
	return &dto.ListResponse{Page: page, Pages: dto.Pages(total, size), Total: total, Data: data}, nil
}

// Create crea una categoría. Devuelve ConflictError si el código ya existe.
func (uc *CategoryUseCase) Create(ctx context.Context, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	var out *dto.CategoryResponse
	err := uc.tx.Run(ctx, func(r Repos) error {
		taken, err := r.Categories.ExistsByCode(in.Code, "")
		if err != nil {
			return err
		}
		if taken {
			return domain.ConflictError{Message: categoryConflictMsg}
		}

		now := time.Now()
		category := &entity.Category{
			ID:        uuid.New().String(),
			Code:      in.Code,
			Name:      in.Name,
			IsActive:  *in.IsActive,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := r.Categories.Create(category); err != nil {
			// Backstop: el constraint único gana si otra tx se coló entre chequeo y write.
			if errors.Is(err, domain.ErrDuplicate) {
				return domain.ConflictError{Message: categoryConflictMsg}
			}
			return err
		}
		out = toCategoryResponse(category)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID obtiene una categoría por ID. Devuelve ErrNotFound si no existe.
func (uc *CategoryUseCase) GetByID(id string) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	return toCategoryResponse(category), nil
}

// Update reemplaza los campos editables. ErrNotFound si el id no existe,
// ConflictError si el nuevo código choca con otra fila.
func (uc *CategoryUseCase) Update(ctx context.Context, id string, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	var out *dto.CategoryResponse
	err := uc.tx.Run(ctx, func(r Repos) error {
		category, err := r.Categories.GetByID(id)
		if err != nil {
			return err
		}
		if category == nil {
			return domain.ErrNotFound
		}

		taken, err := r.Categories.ExistsByCode(in.Code, id)
		if err != nil {
			return err
		}
		if taken {
			return domain.ConflictError{Message: categoryConflictMsg}
		}

		category.Code = in.Code
		category.Name = in.Name
		category.IsActive = *in.IsActive
		category.UpdatedAt = time.Now()
		if err := r.Categories.Update(category); err != nil {
			if errors.Is(err, domain.ErrDuplicate) {
				return domain.ConflictError{Message: categoryConflictMsg}
			}
			return err
		}
		out = toCategoryResponse(category)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete borra por lista de ids. Si algún id no existe devuelve ValidationError
// (agrupado por índice del array) y no borra nada.
func (uc *CategoryUseCase) Delete(ctx context.Context, ids []string) ([]string, error) {
	var deleted []string
	err := uc.tx.Run(ctx, func(r Repos) error {
		found, err := r.Categories.ExistingIDs(ids)
		if err != nil {
			return err
		}
		if fields := missingIDFields(ids, found); len(fields) > 0 {
			return domain.ValidationError{Fields: fields}
		}
		deleted, err = r.Categories.DeleteByIDs(ids)
		return err
	})
	if err != nil {
		return nil, err
	}
	return deleted, nil
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	if c == nil {
		return nil
	}
	return &dto.CategoryResponse{
		ID:        c.ID,
		Code:      c.Code,
		Name:      c.Name,
		IsActive:  c.IsActive,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
