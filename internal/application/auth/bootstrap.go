package auth

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/printagehq/printage-api/internal/domain"
	"github.com/printagehq/printage-api/internal/domain/entity"
)

// EnsureDefaultSystemAdmin creates the initial system admin from the
// configured default credentials when none exists yet. Idempotent: safe to
// run on every start. Returns true when an account was created.
func (uc *AuthUseCase) EnsureDefaultSystemAdmin(username, password string) (bool, error) {
	count, err := uc.users.CountByRole(entity.RoleSystemAdmin)
	if err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}
	if username == "" || password == "" {
		return false, domain.Invalid("default system admin credentials are not configured")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return false, err
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     username,
		PasswordHash: string(hash),
		Role:         entity.RoleSystemAdmin,
		CreatedAt:    time.Now(),
	}
	if err := uc.users.Create(user); err != nil {
		return false, err
	}
	return true, nil
}
