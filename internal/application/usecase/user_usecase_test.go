package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes mínimos: el módulo de usuarios no tiene rutas HTTP, así que se prueba
// directo contra el use case.
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	rows []*entity.User
}

func (f *fakeUserRepo) Create(u *entity.User) error {
	cp := *u
	f.rows = append(f.rows, &cp)
	return nil
}

func (f *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	for _, r := range f.rows {
		if r.ID == id {
			cp := *r
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, r := range f.rows {
		if r.Email == email {
			cp := *r
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Update(u *entity.User) error {
	for i, r := range f.rows {
		if r.ID == u.ID {
			cp := *u
			f.rows[i] = &cp
		}
	}
	return nil
}

func (f *fakeUserRepo) List(p repository.ListParams) ([]*entity.User, int, error) {
	return f.rows, len(f.rows), nil
}

func (f *fakeUserRepo) ExistsByID(id string) (bool, error) {
	u, _ := f.GetByID(id)
	return u != nil, nil
}

func (f *fakeUserRepo) ExistsByEmail(email, excludeID string) (bool, error) {
	for _, r := range f.rows {
		if r.Email == email && r.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserRepo) ExistingIDs(ids []string) ([]string, error) {
	var found []string
	for _, id := range ids {
		if ok, _ := f.ExistsByID(id); ok {
			found = append(found, id)
		}
	}
	return found, nil
}

func (f *fakeUserRepo) DeleteByIDs(ids []string) ([]string, error) {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	var kept []*entity.User
	var deleted []string
	for _, r := range f.rows {
		if _, ok := set[r.ID]; ok {
			deleted = append(deleted, r.ID)
			continue
		}
		kept = append(kept, r)
	}
	f.rows = kept
	return deleted, nil
}

// fakeRoleRepo solo responde a ExistsByID; el resto no se usa desde usuarios.
type fakeRoleRepo struct {
	ids map[string]bool
}

func (f *fakeRoleRepo) Create(*entity.Role) error            { return nil }
func (f *fakeRoleRepo) GetByID(string) (*entity.Role, error) { return nil, nil }
func (f *fakeRoleRepo) Update(*entity.Role) error            { return nil }
func (f *fakeRoleRepo) List(repository.ListParams) ([]*entity.Role, int, error) {
	return nil, 0, nil
}
func (f *fakeRoleRepo) ExistsByID(id string) (bool, error)        { return f.ids[id], nil }
func (f *fakeRoleRepo) ExistsByCode(string, string) (bool, error) { return false, nil }
func (f *fakeRoleRepo) ExistingIDs([]string) ([]string, error)    { return nil, nil }
func (f *fakeRoleRepo) DeleteByIDs([]string) ([]string, error)    { return nil, nil }

type fakeTx struct {
	repos Repos
}

func (f fakeTx) Run(_ context.Context, fn func(r Repos) error) error {
	return fn(f.repos)
}

func newUserFixture() (*UserUseCase, *fakeUserRepo, string) {
	users := &fakeUserRepo{}
	roleID := uuid.New().String()
	roles := &fakeRoleRepo{ids: map[string]bool{roleID: true}}
	tx := fakeTx{repos: Repos{Users: users, Roles: roles}}
	return NewUserUseCase(users, tx, 10), users, roleID
}

func activePtr() *bool {
	b := true
	return &b
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// El create guarda un hash bcrypt verificable, nunca el password en claro.
func TestUserCreate_HasheaPassword(t *testing.T) {
	uc, users, roleID := newUserFixture()

	out, err := uc.Create(context.Background(), dto.CreateUserRequest{
		Email: "admin@example.com", Password: "changeme123", Name: "Admin",
		IsActive: activePtr(), RoleID: roleID,
	})
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.NotNil(t, out.PasswordChangedAt, "el create debe fijar password_changed_at")

	stored, err := users.GetByEmail("admin@example.com")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "changeme123", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("changeme123")))
}

// Email ya registrado: conflicto con mensaje legible.
func TestUserCreate_EmailDuplicado(t *testing.T) {
	uc, _, roleID := newUserFixture()
	in := dto.CreateUserRequest{
		Email: "admin@example.com", Password: "changeme123", Name: "Admin",
		IsActive: activePtr(), RoleID: roleID,
	}

	_, err := uc.Create(context.Background(), in)
	require.NoError(t, err)

	_, err = uc.Create(context.Background(), in)
	var cErr domain.ConflictError
	require.ErrorAs(t, err, &cErr)
	assert.Equal(t, "User email already exists", cErr.Message)
}

// El rol referenciado debe existir: si no, error de validación bajo role_id.
func TestUserCreate_RolInexistente(t *testing.T) {
	uc, _, _ := newUserFixture()

	_, err := uc.Create(context.Background(), dto.CreateUserRequest{
		Email: "admin@example.com", Password: "changeme123", Name: "Admin",
		IsActive: activePtr(), RoleID: uuid.New().String(),
	})
	var vErr domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields["role_id"], "Role does not exist")
}

// Update con password vacío conserva el hash; con password nuevo lo reemplaza.
func TestUserUpdate_PasswordOpcional(t *testing.T) {
	uc, users, roleID := newUserFixture()

	out, err := uc.Create(context.Background(), dto.CreateUserRequest{
		Email: "admin@example.com", Password: "changeme123", Name: "Admin",
		IsActive: activePtr(), RoleID: roleID,
	})
	require.NoError(t, err)
	before, _ := users.GetByID(out.ID)

	_, err = uc.Update(context.Background(), out.ID, dto.UpdateUserRequest{
		Email: "admin@example.com", Name: "Administrator",
		IsActive: activePtr(), RoleID: roleID,
	})
	require.NoError(t, err)
	after, _ := users.GetByID(out.ID)
	assert.Equal(t, before.PasswordHash, after.PasswordHash, "password vacío no debe tocar el hash")

	_, err = uc.Update(context.Background(), out.ID, dto.UpdateUserRequest{
		Email: "admin@example.com", Password: "otroPassword1", Name: "Administrator",
		IsActive: activePtr(), RoleID: roleID,
	})
	require.NoError(t, err)
	after, _ = users.GetByID(out.ID)
	assert.NotEqual(t, before.PasswordHash, after.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(after.PasswordHash), []byte("otroPassword1")))
}

// GetByID sobre id inexistente mapea a ErrNotFound.
func TestUserGetByID_Inexistente(t *testing.T) {
	uc, _, _ := newUserFixture()

	_, err := uc.GetByID(uuid.New().String())
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

// Borrado masivo con un id inexistente: error agrupado por índice y nada borrado.
func TestUserDelete_IdInexistente(t *testing.T) {
	uc, users, roleID := newUserFixture()

	out, err := uc.Create(context.Background(), dto.CreateUserRequest{
		Email: "admin@example.com", Password: "changeme123", Name: "Admin",
		IsActive: activePtr(), RoleID: roleID,
	})
	require.NoError(t, err)

	_, err = uc.Delete(context.Background(), []string{out.ID, uuid.New().String()})
	var vErr domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields["1"], "id does not exist")

	still, _ := users.GetByID(out.ID)
	assert.NotNil(t, still)
}

// La respuesta de usuario nunca expone el hash (el DTO ni siquiera tiene el campo).
func TestUserList_NoExponeHash(t *testing.T) {
	uc, _, roleID := newUserFixture()

	_, err := uc.Create(context.Background(), dto.CreateUserRequest{
		Email: "admin@example.com", Password: "changeme123", Name: "Admin",
		IsActive: activePtr(), RoleID: roleID,
	})
	require.NoError(t, err)

	out, err := uc.List(dto.ListUsersRequest{})
	require.NoError(t, err)
	assert.Equal(t, 1, out.Total)
	rows := out.Data.([]dto.UserResponse)
	assert.Equal(t, "admin@example.com", rows[0].Email)
}
