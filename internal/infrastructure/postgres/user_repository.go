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

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL (usable con pool o tx).
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios. Pasar pool o tx (Querier).
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

const userColumns = `id, email, password_hash, name, is_active, role_id,
	password_changed_at, last_login_at, created_by, updated_by, created_at, updated_at`

var userListSpec = listSpec{
	selectSQL:  `SELECT ` + userColumns + ` FROM users`,
	countSQL:   `SELECT count(*) FROM users`,
	searchCols: []string{"email", "name"},
	activeCol:  "is_active",
	orderCols: map[string]string{
		"id": "id", "email": "email", "name": "name", "is_active": "is_active",
	},
}

func scanUser(row pgx.Row) (*entity.User, error) {
	var u entity.User
	err := row.Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.IsActive, &u.RoleID,
		&u.PasswordChangedAt, &u.LastLoginAt, &u.CreatedBy, &u.UpdatedBy, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Create persiste un nuevo usuario (password ya hasheado en el use case).
func (r *UserRepo) Create(user *entity.User) error {
	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		user.ID, user.Email, user.PasswordHash, user.Name, user.IsActive, user.RoleID,
		user.PasswordChangedAt, user.LastLoginAt, user.CreatedBy, user.UpdatedBy,
		user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID. Devuelve nil, nil si no existe.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	u, err := scanUser(r.q.QueryRow(context.Background(),
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

// GetByEmail obtiene un usuario por email. Devuelve nil, nil si no existe.
func (r *UserRepo) GetByEmail(email string) (*entity.User, error) {
	u, err := scanUser(r.q.QueryRow(context.Background(),
		`SELECT `+userColumns+` FROM users WHERE email = $1`, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return u, nil
}

// Update actualiza un usuario existente (el hash solo cambia si el use case lo reemplazó).
func (r *UserRepo) Update(user *entity.User) error {
	query := `
		UPDATE users SET email = $2, password_hash = $3, name = $4, is_active = $5, role_id = $6,
			password_changed_at = $7, last_login_at = $8, updated_by = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		user.ID, user.Email, user.PasswordHash, user.Name, user.IsActive, user.RoleID,
		user.PasswordChangedAt, user.LastLoginAt, user.UpdatedBy, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// List devuelve la página filtrada/ordenada y el total de filas del mismo filtro.
func (r *UserRepo) List(params repository.ListParams) ([]*entity.User, int, error) {
	dataSQL, dataArgs, countSQL, countArgs := buildListQueries(userListSpec, params)

	rows, err := r.q.Query(context.Background(), dataSQL, dataArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var list []*entity.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, u)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int
	if err := r.q.QueryRow(context.Background(), countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count users: %w", err)
	}
	return list, total, nil
}

// ExistsByID probe de existencia por ID.
func (r *UserRepo) ExistsByID(id string) (bool, error) {
	return exists(r.q, `SELECT 1 FROM users WHERE id = $1 LIMIT 1`, id)
}

// ExistsByEmail probe de unicidad de email; excludeID excluye la propia fila en updates.
func (r *UserRepo) ExistsByEmail(email, excludeID string) (bool, error) {
	if excludeID == "" {
		return exists(r.q, `SELECT 1 FROM users WHERE email = $1 LIMIT 1`, email)
	}
	return exists(r.q, `SELECT 1 FROM users WHERE email = $1 AND id <> $2 LIMIT 1`, email, excludeID)
}

// ExistingIDs devuelve el subconjunto de ids presentes en la tabla.
func (r *UserRepo) ExistingIDs(ids []string) ([]string, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id FROM users WHERE id = ANY($1::uuid[])`, ids)
	if err != nil {
		return nil, fmt.Errorf("existing user ids: %w", err)
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
func (r *UserRepo) DeleteByIDs(ids []string) ([]string, error) {
	rows, err := r.q.Query(context.Background(),
		`DELETE FROM users WHERE id = ANY($1::uuid[]) RETURNING id`, ids)
	if err != nil {
		return nil, fmt.Errorf("delete users: %w", err)
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
