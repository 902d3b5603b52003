package auth

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/printagehq/printage-api/internal/application/dto"
	"github.com/printagehq/printage-api/internal/domain"
	"github.com/printagehq/printage-api/internal/domain/entity"
	"github.com/printagehq/printage-api/internal/domain/policy"
	"github.com/printagehq/printage-api/internal/domain/repository"
	"github.com/printagehq/printage-api/pkg/jwt"
)

// JWTConfig token generation settings.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase authentication and account management: login, registration,
// user listing and deletion, plus the system admin bootstrap.
type AuthUseCase struct {
	users  repository.UserRepository
	jwtCfg JWTConfig
}

// NewAuthUseCase builds the auth use case.
func NewAuthUseCase(users repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{users: users, jwtCfg: jwtCfg}
}

// Login verifies username/password and issues a signed session token.
// Unknown username and wrong password fail identically so the response
// leaks nothing about which was wrong.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (dto.UserSummary, string, error) {
	user, err := uc.users.GetByUsername(in.Username)
	if err != nil {
		return dto.UserSummary{}, "", err
	}
	if user == nil {
		return dto.UserSummary{}, "", domain.Unauthorized("Incorrect username or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return dto.UserSummary{}, "", domain.Unauthorized("Incorrect username or password")
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Username, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return dto.UserSummary{}, "", err
	}
	return toUserSummary(user), token, nil
}

// Register creates a new account on behalf of actor, subject to the role
// policy: staff never, admins only staff, system admins anyone.
func (uc *AuthUseCase) Register(actor policy.Actor, in dto.RegisterRequest) (dto.UserSummary, error) {
	if in.Username == "" || in.Password == "" {
		return dto.UserSummary{}, domain.Invalid("Username and password are required")
	}
	if !entity.ValidRole(in.Role) {
		return dto.UserSummary{}, domain.Invalid("Invalid role")
	}
	if err := policy.CanCreateUser(actor, in.Role); err != nil {
		return dto.UserSummary{}, err
	}
	existing, err := uc.users.GetByUsername(in.Username)
	if err != nil {
		return dto.UserSummary{}, err
	}
	if existing != nil {
		return dto.UserSummary{}, domain.Duplicate("Username already exists")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return dto.UserSummary{}, err
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     in.Username,
		PasswordHash: string(hash),
		Role:         in.Role,
		CreatedBy:    actor.ID,
		CreatedAt:    time.Now(),
	}
	if err := uc.users.Create(user); err != nil {
		return dto.UserSummary{}, err
	}
	return toUserSummary(user), nil
}

// ListUsers returns the accounts actor may see: all of them for a system
// admin, only self-created staff for an admin.
func (uc *AuthUseCase) ListUsers(actor policy.Actor) ([]dto.UserResponse, error) {
	scope, err := policy.UserListScope(actor)
	if err != nil {
		return nil, err
	}
	users, err := uc.users.List(scope)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, dto.UserResponse{
			ID:        u.ID,
			Username:  u.Username,
			Role:      u.Role,
			CreatedBy: u.CreatedBy,
			CreatedAt: u.CreatedAt,
		})
	}
	return out, nil
}

// DeleteUser removes an account, subject to the deletion policy including
// the last-system-admin guard.
func (uc *AuthUseCase) DeleteUser(actor policy.Actor, userID string) error {
	target, err := uc.users.GetByID(userID)
	if err != nil {
		return err
	}
	if target == nil {
		return domain.NotFound("User not found")
	}
	systemAdmins := 0
	if target.Role == entity.RoleSystemAdmin {
		systemAdmins, err = uc.users.CountByRole(entity.RoleSystemAdmin)
		if err != nil {
			return err
		}
	}
	if err := policy.CanDeleteUser(actor, target, systemAdmins); err != nil {
		return err
	}
	if _, err := uc.users.Delete(userID); err != nil {
		return err
	}
	return nil
}

func toUserSummary(u *entity.User) dto.UserSummary {
	return dto.UserSummary{ID: u.ID, Username: u.Username, Role: u.Role}
}
