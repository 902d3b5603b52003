package repository

import (
	"github.com/printagehq/printage-api/internal/domain/entity"
	"github.com/printagehq/printage-api/internal/domain/policy"
)

// UserRepository is the persistence port for User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
	CountByRole(role string) (int, error)
	// List returns users matching the scope, newest first.
	List(scope policy.UserScope) ([]*entity.User, error)
	// Delete removes a user and reports whether it existed.
	Delete(id string) (bool, error)
}
