package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/printagehq/printage-api/internal/application/auth"
	"github.com/printagehq/printage-api/internal/application/dto"
	"github.com/printagehq/printage-api/internal/domain"
	"github.com/printagehq/printage-api/internal/domain/entity"
	"github.com/printagehq/printage-api/internal/domain/policy"
	"github.com/printagehq/printage-api/internal/domain/repository"
)

// fakeUserRepo in-memory UserRepository for use case tests.
type fakeUserRepo struct {
	users map[string]*entity.User
}

var _ repository.UserRepository = (*fakeUserRepo)(nil)

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) Create(user *entity.User) error {
	for _, u := range r.users {
		if u.Username == user.Username {
			return domain.Duplicate("Username already exists")
		}
	}
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	if u, ok := r.users[id]; ok {
		clone := *u
		return &clone, nil
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByUsername(username string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			clone := *u
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) CountByRole(role string) (int, error) {
	n := 0
	for _, u := range r.users {
		if u.Role == role {
			n++
		}
	}
	return n, nil
}

func (r *fakeUserRepo) List(scope policy.UserScope) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.users {
		if scope.Role != "" && u.Role != scope.Role {
			continue
		}
		if scope.CreatedBy != "" && u.CreatedBy != scope.CreatedBy {
			continue
		}
		clone := *u
		out = append(out, &clone)
	}
	return out, nil
}

func (r *fakeUserRepo) Delete(id string) (bool, error) {
	if _, ok := r.users[id]; !ok {
		return false, nil
	}
	delete(r.users, id)
	return true, nil
}

func (r *fakeUserRepo) seed(t *testing.T, id, username, password, role, createdBy string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	r.users[id] = &entity.User{
		ID: id, Username: username, PasswordHash: string(hash),
		Role: role, CreatedBy: createdBy,
	}
}

func newUseCase(repo *fakeUserRepo) *auth.AuthUseCase {
	return auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     "test-secret",
		ExpMinutes: 60,
		Issuer:     "printage-api-test",
	})
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	repo := newFakeUserRepo()
	repo.seed(t, "u1", "boss", "sup3rsecret", entity.RoleSystemAdmin, "")
	uc := newUseCase(repo)

	user, token, err := uc.Login(dto.LoginRequest{Username: "boss", Password: "sup3rsecret"})
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "boss", user.Username)
	assert.Equal(t, entity.RoleSystemAdmin, user.Role)
}

func TestLogin_WrongPasswordAndUnknownUserFailIdentically(t *testing.T) {
	repo := newFakeUserRepo()
	repo.seed(t, "u1", "boss", "sup3rsecret", entity.RoleSystemAdmin, "")
	uc := newUseCase(repo)

	_, _, errWrongPass := uc.Login(dto.LoginRequest{Username: "boss", Password: "nope"})
	_, _, errNoUser := uc.Login(dto.LoginRequest{Username: "ghost", Password: "nope"})

	require.Error(t, errWrongPass)
	require.Error(t, errNoUser)
	assert.ErrorIs(t, errWrongPass, domain.ErrUnauthorized)
	assert.ErrorIs(t, errNoUser, domain.ErrUnauthorized)
	assert.Equal(t, errWrongPass.Error(), errNoUser.Error(),
		"the message must not leak whether the username exists")
	assert.Equal(t, "Incorrect username or password", errWrongPass.Error())
}

// ──────────────────────────────────────────────────────────────────────────────
// Register
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_AdminCreatesStaff(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newUseCase(repo)
	actor := policy.Actor{ID: "adm", Role: entity.RoleAdmin}

	user, err := uc.Register(actor, dto.RegisterRequest{
		Username: "frontdesk", Password: "longenough", Role: entity.RoleStaff,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleStaff, user.Role)

	stored, err := repo.GetByID(user.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "adm", stored.CreatedBy, "creator must be recorded")
	assert.NotEqual(t, "longenough", stored.PasswordHash, "password must be hashed")
}

func TestRegister_PolicyDenials(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newUseCase(repo)

	_, err := uc.Register(policy.Actor{ID: "adm", Role: entity.RoleAdmin},
		dto.RegisterRequest{Username: "x", Password: "longenough", Role: entity.RoleAdmin})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = uc.Register(policy.Actor{ID: "stf", Role: entity.RoleStaff},
		dto.RegisterRequest{Username: "x", Password: "longenough", Role: entity.RoleStaff})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	repo := newFakeUserRepo()
	repo.seed(t, "u1", "taken", "whatever1", entity.RoleStaff, "adm")
	uc := newUseCase(repo)

	_, err := uc.Register(policy.Actor{ID: "sys", Role: entity.RoleSystemAdmin},
		dto.RegisterRequest{Username: "taken", Password: "longenough", Role: entity.RoleStaff})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Equal(t, "Username already exists", err.Error())
}

// ──────────────────────────────────────────────────────────────────────────────
// Delete user
// ──────────────────────────────────────────────────────────────────────────────

func TestDeleteUser_LastSystemAdminProtected(t *testing.T) {
	repo := newFakeUserRepo()
	repo.seed(t, "sys1", "boss", "whatever1", entity.RoleSystemAdmin, "")
	uc := newUseCase(repo)

	err := uc.DeleteUser(policy.Actor{ID: "sys1", Role: entity.RoleSystemAdmin}, "sys1")
	require.Error(t, err, "the sole system admin cannot be deleted, even by itself")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// A second system admin lifts the guard.
	repo.seed(t, "sys2", "boss2", "whatever2", entity.RoleSystemAdmin, "")
	require.NoError(t, uc.DeleteUser(policy.Actor{ID: "sys2", Role: entity.RoleSystemAdmin}, "sys1"))

	n, err := repo.CountByRole(entity.RoleSystemAdmin)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestDeleteUser_AdminScopeRules(t *testing.T) {
	repo := newFakeUserRepo()
	repo.seed(t, "stf1", "mine", "whatever1", entity.RoleStaff, "adm")
	repo.seed(t, "stf2", "other", "whatever2", entity.RoleStaff, "someone-else")
	uc := newUseCase(repo)
	actor := policy.Actor{ID: "adm", Role: entity.RoleAdmin}

	assert.ErrorIs(t, uc.DeleteUser(actor, "stf2"), domain.ErrForbidden,
		"admin cannot delete staff they did not create")
	assert.NoError(t, uc.DeleteUser(actor, "stf1"))
	assert.ErrorIs(t, uc.DeleteUser(actor, "missing"), domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// List users
// ──────────────────────────────────────────────────────────────────────────────

func TestListUsers_ScopedForAdmin(t *testing.T) {
	repo := newFakeUserRepo()
	repo.seed(t, "sys1", "boss", "whatever1", entity.RoleSystemAdmin, "")
	repo.seed(t, "stf1", "mine", "whatever2", entity.RoleStaff, "adm")
	repo.seed(t, "stf2", "other", "whatever3", entity.RoleStaff, "someone-else")
	uc := newUseCase(repo)

	mine, err := uc.ListUsers(policy.Actor{ID: "adm", Role: entity.RoleAdmin})
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "mine", mine[0].Username)

	all, err := uc.ListUsers(policy.Actor{ID: "sys1", Role: entity.RoleSystemAdmin})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	_, err = uc.ListUsers(policy.Actor{ID: "stf1", Role: entity.RoleStaff})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// ──────────────────────────────────────────────────────────────────────────────
// Bootstrap
// ──────────────────────────────────────────────────────────────────────────────

func TestEnsureDefaultSystemAdmin_Idempotent(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newUseCase(repo)

	created, err := uc.EnsureDefaultSystemAdmin("root", "changeme123")
	require.NoError(t, err)
	assert.True(t, created)

	n, err := repo.CountByRole(entity.RoleSystemAdmin)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	// Second run is a no-op.
	created, err = uc.EnsureDefaultSystemAdmin("root", "changeme123")
	require.NoError(t, err)
	assert.False(t, created)

	n, err = repo.CountByRole(entity.RoleSystemAdmin)
	require.NoError(t, err)
	assert.Equal(t, 1, n, "bootstrap must never create a second system admin")
}

func TestEnsureDefaultSystemAdmin_MissingCredentials(t *testing.T) {
	uc := newUseCase(newFakeUserRepo())
	_, err := uc.EnsureDefaultSystemAdmin("", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
