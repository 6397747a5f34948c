package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación del puerto CategoryRepository sobre PostgreSQL (usable con pool o tx).
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador de persistencia para categorías. Pasar pool o tx (Querier).
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

var categoryListSpec = listSpec{
	selectSQL:  `SELECT id, code, name, is_active, created_by, updated_by, created_at, updated_at FROM categories`,
	countSQL:   `SELECT count(*) FROM categories`,
	searchCols: []string{"code", "name"},
	activeCol:  "is_active",
	orderCols: map[string]string{
		"id": "id", "code": "code", "name": "name", "is_active": "is_active",
	},
}

// Create persiste una nueva categoría.
func (r *CategoryRepo) Create(category *entity.Category) error {
	query := `
		INSERT INTO categories (id, code, name, is_active, created_by, updated_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		category.ID, category.Code, category.Name, category.IsActive,
		category.CreatedBy, category.UpdatedBy, category.CreatedAt, category.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

// GetByID obtiene una categoría por ID. Devuelve nil, nil si no existe.
func (r *CategoryRepo) GetByID(id string) (*entity.Category, error) {
	query := `
		SELECT id, code, name, is_active, created_by, updated_by, created_at, updated_at
		FROM categories WHERE id = $1`
	var c entity.Category
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.Code, &c.Name, &c.IsActive, &c.CreatedBy, &c.UpdatedBy, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return &c, nil
}

// Update actualiza una categoría existente (reemplazo completo de campos editables).
func (r *CategoryRepo) Update(category *entity.Category) error {
	query := `
		UPDATE categories SET code = $2, name = $3, is_active = $4, updated_by = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		category.ID, category.Code, category.Name, category.IsActive,
		category.UpdatedBy, category.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update category: %w", err)
	}
	return nil
}

// List devuelve la página filtrada/ordenada y el total de filas del mismo filtro.
func (r *CategoryRepo) List(params repository.ListParams) ([]*entity.Category, int, error) {
	dataSQL, dataArgs, countSQL, countArgs := buildListQueries(categoryListSpec, params)

	rows, err := r.q.Query(context.Background(), dataSQL, dataArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var list []*entity.Category
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.Code, &c.Name, &c.IsActive, &c.CreatedBy, &c.UpdatedBy, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int
	if err := r.q.QueryRow(context.Background(), countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count categories: %w", err)
	}
	return list, total, nil
}

// ExistsByID probe de existencia por ID.
func (r *CategoryRepo) ExistsByID(id string) (bool, error) {
	return exists(r.q, `SELECT 1 FROM categories WHERE id = $1 LIMIT 1`, id)
}

// ExistsByCode probe de unicidad de código; excludeID excluye la propia fila en updates.
func (r *CategoryRepo) ExistsByCode(code, excludeID string) (bool, error) {
	if excludeID == "" {
		return exists(r.q, `SELECT 1 FROM categories WHERE code = $1 LIMIT 1`, code)
	}
	return exists(r.q, `SELECT 1 FROM categories WHERE code = $1 AND id <> $2 LIMIT 1`, code, excludeID)
}

// ExistingIDs devuelve el subconjunto de ids presentes en la tabla.
func (r *CategoryRepo) ExistingIDs(ids []string) ([]string, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id FROM categories WHERE id = ANY($1::uuid[])`, ids)
	if err != nil {
		return nil, fmt.Errorf("existing category ids: %w", err)
	}
	defer rows.Close()
	var found []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		found = append(found, id)
	}
	return found, rows.Err()
}

// DeleteByIDs borra por lista de ids y devuelve los borrados.
func (r *CategoryRepo) DeleteByIDs(ids []string) ([]string, error) {
	rows, err := r.q.Query(context.Background(),
		`DELETE FROM categories WHERE id = ANY($1::uuid[]) RETURNING id`, ids)
	if err != nil {
		return nil, fmt.Errorf("delete categories: %w", err)
	}
	defer rows.Close()
	var deleted []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		deleted = append(deleted, id)
	}
	return deleted, rows.Err()
}
