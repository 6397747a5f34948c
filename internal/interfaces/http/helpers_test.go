package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Catalogo-api/internal/application/usecase"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
	apphttp "github.com/jhoicas/Catalogo-api/internal/interfaces/http"
	"github.com/jhoicas/Catalogo-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositorios en memoria: mismo contrato que los adapters de postgres,
// suficientes para ejercitar handlers y use cases sin base de datos.
// ──────────────────────────────────────────────────────────────────────────────

func matches(search string, cols ...string) bool {
	if search == "" {
		return true
	}
	s := strings.ToLower(search)
	for _, col := range cols {
		if strings.Contains(strings.ToLower(col), s) {
			return true
		}
	}
	return false
}

func pageSlice[T any](rows []T, limit, offset int) []T {
	if offset >= len(rows) {
		return nil
	}
	end := offset + limit
	if end > len(rows) {
		end = len(rows)
	}
	return rows[offset:end]
}

func deleteByIDs[T any](rows []T, ids []string, idOf func(T) string) ([]T, []string) {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	var kept []T
	var deleted []string
	for _, r := range rows {
		if _, ok := set[idOf(r)]; ok {
			deleted = append(deleted, idOf(r))
			continue
		}
		kept = append(kept, r)
	}
	return kept, deleted
}

type memCategoryRepo struct {
	rows []*entity.Category
}

func (m *memCategoryRepo) Create(c *entity.Category) error {
	cp := *c
	m.rows = append(m.rows, &cp)
	return nil
}

func (m *memCategoryRepo) GetByID(id string) (*entity.Category, error) {
	for _, r := range m.rows {
		if r.ID == id {
			cp := *r
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memCategoryRepo) Update(c *entity.Category) error {
	for i, r := range m.rows {
		if r.ID == c.ID {
			cp := *c
			m.rows[i] = &cp
		}
	}
	return nil
}

func (m *memCategoryRepo) List(p repository.ListParams) ([]*entity.Category, int, error) {
	var filtered []*entity.Category
	for _, r := range m.rows {
		if p.IsActive != nil && r.IsActive != *p.IsActive {
			continue
		}
		if !matches(p.Search, r.Code, r.Name) {
			continue
		}
		filtered = append(filtered, r)
	}
	if p.Order == "code" && p.Dir != "" {
		sort.Slice(filtered, func(i, j int) bool {
			if p.Dir == "desc" {
				return filtered[i].Code > filtered[j].Code
			}
			return filtered[i].Code < filtered[j].Code
		})
	}
	return pageSlice(filtered, p.Limit, p.Offset), len(filtered), nil
}

func (m *memCategoryRepo) ExistsByID(id string) (bool, error) {
	c, _ := m.GetByID(id)
	return c != nil, nil
}

func (m *memCategoryRepo) ExistsByCode(code, excludeID string) (bool, error) {
	for _, r := range m.rows {
		if r.Code == code && r.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (m *memCategoryRepo) ExistingIDs(ids []string) ([]string, error) {
	var found []string
	for _, id := range ids {
		if ok, _ := m.ExistsByID(id); ok {
			found = append(found, id)
		}
	}
	return found, nil
}

func (m *memCategoryRepo) DeleteByIDs(ids []string) ([]string, error) {
	var deleted []string
	m.rows, deleted = deleteByIDs(m.rows, ids, func(c *entity.Category) string { return c.ID })
	return deleted, nil
}

type memSubRepo struct {
	rows       []*entity.CategorySub
	categories *memCategoryRepo // para resolver CategoryName como el join
}

func (m *memSubRepo) withCategoryName(s *entity.CategorySub) *entity.CategorySub {
	cp := *s
	if cat, _ := m.categories.GetByID(s.CategoryID); cat != nil {
		name := cat.Name
		cp.CategoryName = &name
	}
	return &cp
}

func (m *memSubRepo) Create(s *entity.CategorySub) error {
	cp := *s
	m.rows = append(m.rows, &cp)
	return nil
}

func (m *memSubRepo) GetByID(id string) (*entity.CategorySub, error) {
	for _, r := range m.rows {
		if r.ID == id {
			return m.withCategoryName(r), nil
		}
	}
	return nil, nil
}

func (m *memSubRepo) Update(s *entity.CategorySub) error {
	for i, r := range m.rows {
		if r.ID == s.ID {
			cp := *s
			m.rows[i] = &cp
		}
	}
	return nil
}

func (m *memSubRepo) List(p repository.ListParams) ([]*entity.CategorySub, int, error) {
	var filtered []*entity.CategorySub
	for _, r := range m.rows {
		joined := m.withCategoryName(r)
		catName := ""
		if joined.CategoryName != nil {
			catName = *joined.CategoryName
		}
		if p.IsActive != nil && r.IsActive != *p.IsActive {
			continue
		}
		if !matches(p.Search, r.Code, r.Name, catName) {
			continue
		}
		filtered = append(filtered, joined)
	}
	return pageSlice(filtered, p.Limit, p.Offset), len(filtered), nil
}

func (m *memSubRepo) ExistsByID(id string) (bool, error) {
	s, _ := m.GetByID(id)
	return s != nil, nil
}

func (m *memSubRepo) ExistsByCode(categoryID, code, excludeID string) (bool, error) {
	for _, r := range m.rows {
		if r.CategoryID == categoryID && r.Code == code && r.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (m *memSubRepo) ExistingIDs(ids []string) ([]string, error) {
	var found []string
	for _, id := range ids {
		if ok, _ := m.ExistsByID(id); ok {
			found = append(found, id)
		}
	}
	return found, nil
}

func (m *memSubRepo) DeleteByIDs(ids []string) ([]string, error) {
	var deleted []string
	m.rows, deleted = deleteByIDs(m.rows, ids, func(s *entity.CategorySub) string { return s.ID })
	return deleted, nil
}

type memRoleRepo struct {
	rows []*entity.Role
}

func (m *memRoleRepo) Create(r *entity.Role) error {
	cp := *r
	m.rows = append(m.rows, &cp)
	return nil
}

func (m *memRoleRepo) GetByID(id string) (*entity.Role, error) {
	for _, r := range m.rows {
		if r.ID == id {
			cp := *r
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memRoleRepo) Update(role *entity.Role) error {
	for i, r := range m.rows {
		if r.ID == role.ID {
			cp := *role
			m.rows[i] = &cp
		}
	}
	return nil
}

func (m *memRoleRepo) List(p repository.ListParams) ([]*entity.Role, int, error) {
	var filtered []*entity.Role
	for _, r := range m.rows {
		if !matches(p.Search, r.Code, r.Name) {
			continue
		}
		filtered = append(filtered, r)
	}
	return pageSlice(filtered, p.Limit, p.Offset), len(filtered), nil
}

func (m *memRoleRepo) ExistsByID(id string) (bool, error) {
	r, _ := m.GetByID(id)
	return r != nil, nil
}

func (m *memRoleRepo) ExistsByCode(code, excludeID string) (bool, error) {
	for _, r := range m.rows {
		if r.Code == code && r.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (m *memRoleRepo) ExistingIDs(ids []string) ([]string, error) {
	var found []string
	for _, id := range ids {
		if ok, _ := m.ExistsByID(id); ok {
			found = append(found, id)
		}
	}
	return found, nil
}

func (m *memRoleRepo) DeleteByIDs(ids []string) ([]string, error) {
	var deleted []string
	m.rows, deleted = deleteByIDs(m.rows, ids, func(r *entity.Role) string { return r.ID })
	return deleted, nil
}

type memUserRepo struct {
	rows []*entity.User
}

func (m *memUserRepo) Create(u *entity.User) error {
	cp := *u
	m.rows = append(m.rows, &cp)
	return nil
}

func (m *memUserRepo) GetByID(id string) (*entity.User, error) {
	for _, r := range m.rows {
		if r.ID == id {
			cp := *r
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, r := range m.rows {
		if r.Email == email {
			cp := *r
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memUserRepo) Update(u *entity.User) error {
	for i, r := range m.rows {
		if r.ID == u.ID {
			cp := *u
			m.rows[i] = &cp
		}
	}
	return nil
}

func (m *memUserRepo) List(p repository.ListParams) ([]*entity.User, int, error) {
	var filtered []*entity.User
	for _, r := range m.rows {
		if p.IsActive != nil && r.IsActive != *p.IsActive {
			continue
		}
		if !matches(p.Search, r.Email, r.Name) {
			continue
		}
		filtered = append(filtered, r)
	}
	return pageSlice(filtered, p.Limit, p.Offset), len(filtered), nil
}

func (m *memUserRepo) ExistsByID(id string) (bool, error) {
	u, _ := m.GetByID(id)
	return u != nil, nil
}

func (m *memUserRepo) ExistsByEmail(email, excludeID string) (bool, error) {
	for _, r := range m.rows {
		if r.Email == email && r.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (m *memUserRepo) ExistingIDs(ids []string) ([]string, error) {
	var found []string
	for _, id := range ids {
		if ok, _ := m.ExistsByID(id); ok {
			found = append(found, id)
		}
	}
	return found, nil
}

func (m *memUserRepo) DeleteByIDs(ids []string) ([]string, error) {
	var deleted []string
	m.rows, deleted = deleteByIDs(m.rows, ids, func(u *entity.User) string { return u.ID })
	return deleted, nil
}

// stubTxRunner ejecuta el callback sin transacción real; los repos en memoria
// no la necesitan y los use cases no notan la diferencia.
type stubTxRunner struct {
	repos usecase.Repos
}

func (s stubTxRunner) Run(_ context.Context, fn func(r usecase.Repos) error) error {
	return fn(s.repos)
}

// ──────────────────────────────────────────────────────────────────────────────
// Construcción de la app de test
// ──────────────────────────────────────────────────────────────────────────────

const testPageSize = 10

type testEnv struct {
	app        *fiber.App
	categories *memCategoryRepo
	subs       *memSubRepo
	roles      *memRoleRepo
	users      *memUserRepo
}

// buildTestApp arma la app Fiber completa (error handler + router) sobre
// repositorios en memoria, igual que el main pero sin postgres.
func buildTestApp(t *testing.T) *testEnv {
	t.Helper()

	categories := &memCategoryRepo{}
	subs := &memSubRepo{categories: categories}
	roles := &memRoleRepo{}
	users := &memUserRepo{}
	tx := stubTxRunner{repos: usecase.Repos{
		Categories: categories,
		Subs:       subs,
		Roles:      roles,
		Users:      users,
	}}

	log := logger.New(logger.Config{Env: "test", Level: "error"})
	app := fiber.New(fiber.Config{
		ErrorHandler: apphttp.NewErrorHandler(log),
	})
	apphttp.Router(app, apphttp.RouterDeps{
		CategoryUC:    usecase.NewCategoryUseCase(categories, tx, testPageSize),
		CategorySubUC: usecase.NewCategorySubUseCase(subs, tx, testPageSize),
		RoleUC:        usecase.NewRoleUseCase(roles, tx, testPageSize),
	})

	return &testEnv{app: app, categories: categories, subs: subs, roles: roles, users: users}
}

// doJSON lanza una petición con body JSON opcional y devuelve la respuesta.
func doJSON(t *testing.T, app *fiber.App, method, target string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// decodeBody decodifica el body JSON en un mapa genérico.
func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func boolPtr(b bool) *bool { return &b }
