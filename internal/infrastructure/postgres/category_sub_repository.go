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

var _ repository.CategorySubRepository = (*CategorySubRepo)(nil)

// CategorySubRepo implementación del puerto CategorySubRepository sobre PostgreSQL (usable con pool o tx).
// Las lecturas llevan LEFT JOIN a categories: una fila con padre colgante igual aparece,
// con category_name en NULL.
type CategorySubRepo struct {
	q Querier
}

// NewCategorySubRepository construye el adaptador de persistencia para subcategorías. Pasar pool o tx (Querier).
func NewCategorySubRepository(q Querier) *CategorySubRepo {
	return &CategorySubRepo{q: q}
}

var categorySubListSpec = listSpec{
	selectSQL: `SELECT cs.id, cs.category_id, cat.name AS category_name, cs.code, cs.name, cs.is_active,
		cs.created_by, cs.updated_by, cs.created_at, cs.updated_at FROM category_subs cs`,
	countSQL:   `SELECT count(*) FROM category_subs cs`,
	join:       ` LEFT JOIN categories cat ON cat.id = cs.category_id`,
	searchCols: []string{"cs.code", "cs.name", "cat.name"},
	activeCol:  "cs.is_active",
	orderCols: map[string]string{
		"id": "cs.id", "code": "cs.code", "name": "cs.name", "is_active": "cs.is_active",
	},
}

// Create persiste una nueva subcategoría.
func (r *CategorySubRepo) Create(sub *entity.CategorySub) error {
	query := `
		INSERT INTO category_subs (id, category_id, code, name, is_active, created_by, updated_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		sub.ID, sub.CategoryID, sub.Code, sub.Name, sub.IsActive,
		sub.CreatedBy, sub.UpdatedBy, sub.CreatedAt, sub.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert category sub: %w", err)
	}
	return nil
}

// GetByID obtiene una subcategoría por ID con el nombre de su categoría. Devuelve nil, nil si no existe.
func (r *CategorySubRepo) GetByID(id string) (*entity.CategorySub, error) {
	query := `
		SELECT cs.id, cs.category_id, cat.name AS category_name, cs.code, cs.name, cs.is_active,
			cs.created_by, cs.updated_by, cs.created_at, cs.updated_at
		FROM category_subs cs
		LEFT JOIN categories cat ON cat.id = cs.category_id
		WHERE cs.id = $1`
	var s entity.CategorySub
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.CategoryID, &s.CategoryName, &s.Code, &s.Name, &s.IsActive,
		&s.CreatedBy, &s.UpdatedBy, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category sub: %w", err)
	}
	return &s, nil
}

// Update actualiza una subcategoría existente (incluye reasignación de categoría padre).
func (r *CategorySubRepo) Update(sub *entity.CategorySub) error {
	query := `
		UPDATE category_subs SET category_id = $2, code = $3, name = $4, is_active = $5, updated_by = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		sub.ID, sub.CategoryID, sub.Code, sub.Name, sub.IsActive,
		sub.UpdatedBy, sub.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update category sub: %w", err)
	}
	return nil
}

// List devuelve la página filtrada/ordenada (con join) y el total con el mismo filtro y join.
func (r *CategorySubRepo) List(params repository.ListParams) ([]*entity.CategorySub, int, error) {
	dataSQL, dataArgs, countSQL, countArgs := buildListQueries(categorySubListSpec, params)

	rows, err := r.q.Query(context.Background(), dataSQL, dataArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("list category subs: %w", err)
	}
	defer rows.Close()

	var list []*entity.CategorySub
	for rows.Next() {
		var s entity.CategorySub
		if err := rows.Scan(&s.ID, &s.CategoryID, &s.CategoryName, &s.Code, &s.Name, &s.IsActive,
			&s.CreatedBy, &s.UpdatedBy, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan category sub: %w", err)
		}
		list = append(list, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int
	if err := r.q.QueryRow(context.Background(), countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count category subs: %w", err)
	}
	return list, total, nil
}

// ExistsByID probe de existencia por ID.
func (r *CategorySubRepo) ExistsByID(id string) (bool, error) {
	return exists(r.q, `SELECT 1 FROM category_subs WHERE id = $1 LIMIT 1`, id)
}

// ExistsByCode probe de unicidad de código dentro de la categoría padre.
func (r *CategorySubRepo) ExistsByCode(categoryID, code, excludeID string) (bool, error) {
	if excludeID == "" {
		return exists(r.q,
			`SELECT 1 FROM category_subs WHERE category_id = $1 AND code = $2 LIMIT 1`,
			categoryID, code)
	}
	return exists(r.q,
		`SELECT 1 FROM category_subs WHERE category_id = $1 AND code = $2 AND id <> $3 LIMIT 1`,
		categoryID, code, excludeID)
}

// ExistingIDs devuelve el subconjunto de ids presentes en la tabla.
func (r *CategorySubRepo) ExistingIDs(ids []string) ([]string, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id FROM category_subs WHERE id = ANY($1::uuid[])`, ids)
	if err != nil {
		return nil, fmt.Errorf("existing category sub ids: %w", err)
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
func (r *CategorySubRepo) DeleteByIDs(ids []string) ([]string, error) {
	rows, err := r.q.Query(context.Background(),
		`DELETE FROM category_subs WHERE id = ANY($1::uuid[]) RETURNING id`, ids)
	if err != nil {
		return nil, fmt.Errorf("delete category subs: %w", err)
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
