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

var _ repository.RoleRepository = (*RoleRepo)(nil)

// RoleRepo implementación del puerto RoleRepository sobre PostgreSQL (usable con pool o tx).
type RoleRepo struct {
	q Querier
}

// NewRoleRepository construye el adaptador de persistencia para roles. Pasar pool o tx (Querier).
func NewRoleRepository(q Querier) *RoleRepo {
	return &RoleRepo{q: q}
}

var roleListSpec = listSpec{
	selectSQL:  `SELECT id, code, name, def_path, created_by, updated_by, created_at, updated_at FROM roles`,
	countSQL:   `SELECT count(*) FROM roles`,
	searchCols: []string{"code", "name"},
	orderCols: map[string]string{
		"id": "id", "code": "code", "name": "name",
	},
}

// Create persiste un nuevo rol.
func (r *RoleRepo) Create(role *entity.Role) error {
	query := `
		INSERT INTO roles (id, code, name, def_path, created_by, updated_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		role.ID, role.Code, role.Name, role.DefPath,
		role.CreatedBy, role.UpdatedBy, role.CreatedAt, role.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert role: %w", err)
	}
	return nil
}

// GetByID obtiene un rol por ID. Devuelve nil, nil si no existe.
func (r *RoleRepo) GetByID(id string) (*entity.Role, error) {
	query := `
		SELECT id, code, name, def_path, created_by, updated_by, created_at, updated_at
		FROM roles WHERE id = $1`
	var role entity.Role
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&role.ID, &role.Code, &role.Name, &role.DefPath,
		&role.CreatedBy, &role.UpdatedBy, &role.CreatedAt, &role.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get role: %w", err)
	}
	return &role, nil
}

// Update actualiza un rol existente.
func (r *RoleRepo) Update(role *entity.Role) error {
	query := `
		UPDATE roles SET code = $2, name = $3, def_path = $4, updated_by = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		role.ID, role.Code, role.Name, role.DefPath, role.UpdatedBy, role.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update role: %w", err)
	}
	return nil
}

// List devuelve la página filtrada/ordenada y el total de filas del mismo filtro.
func (r *RoleRepo) List(params repository.ListParams) ([]*entity.Role, int, error) {
	dataSQL, dataArgs, countSQL, countArgs := buildListQueries(roleListSpec, params)

	rows, err := r.q.Query(context.Background(), dataSQL, dataArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("list roles: %w", err)
	}
	defer rows.Close()

	var list []*entity.Role
	for rows.Next() {
		var role entity.Role
		if err := rows.Scan(&role.ID, &role.Code, &role.Name, &role.DefPath,
			&role.CreatedBy, &role.UpdatedBy, &role.CreatedAt, &role.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan role: %w", err)
		}
		list = append(list, &role)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int
	if err := r.q.QueryRow(context.Background(), countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count roles: %w", err)
	}
	return list, total, nil
}

// ExistsByID probe de existencia por ID.
func (r *RoleRepo) ExistsByID(id string) (bool, error) {
	return exists(r.q, `SELECT 1 FROM roles WHERE id = $1 LIMIT 1`, id)
}

// ExistsByCode probe de unicidad de código; excludeID excluye la propia fila en updates.
func (r *RoleRepo) ExistsByCode(code, excludeID string) (bool, error) {
	if excludeID == "" {
		return exists(r.q, `SELECT 1 FROM roles WHERE code = $1 LIMIT 1`, code)
	}
	return exists(r.q, `SELECT 1 FROM roles WHERE code = $1 AND id <> $2 LIMIT 1`, code, excludeID)
}

// ExistingIDs devuelve el subconjunto de ids presentes en la tabla.
func (r *RoleRepo) ExistingIDs(ids []string) ([]string, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id FROM roles WHERE id = ANY($1::uuid[])`, ids)
	if err != nil {
		return nil, fmt.Errorf("existing role ids: %w", err)
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
// Un rol referenciado por usuarios lo protege el restrict de la FK.
func (r *RoleRepo) DeleteByIDs(ids []string) ([]string, error) {
	rows, err := r.q.Query(context.Background(),
		`DELETE FROM roles WHERE id = ANY($1::uuid[]) RETURNING id`, ids)
	if err != nil {
		return nil, fmt.Errorf("delete roles: %w", err)
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
