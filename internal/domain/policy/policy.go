// Package policy holds the pure authorization decisions for the role
// hierarchy. Every rule lives here instead of being scattered across
// handlers, so the whole table is testable without HTTP or a database.
package policy

import (
	"github.com/printagehq/printage-api/internal/domain"
	"github.com/printagehq/printage-api/internal/domain/entity"
)

// Actor is the authenticated identity taken from the session token.
type Actor struct {
	ID   string
	Role string
}

// UserScope restricts a user listing. Empty fields mean "no restriction".
type UserScope struct {
	Role      string // only users with this role
	CreatedBy string // only users created by this user ID
}

// CanCreateUser decides whether actor may register a user with newRole.
// Staff create nobody; admins create staff only; system admins create
// anyone.
func CanCreateUser(actor Actor, newRole string) error {
	if actor.Role == entity.RoleStaff {
		return domain.Forbidden("Staff members cannot create users")
	}
	if actor.Role == entity.RoleAdmin {
		switch newRole {
		case entity.RoleSystemAdmin:
			return domain.Forbidden("Admin cannot create a System Admin")
		case entity.RoleAdmin:
			return domain.Forbidden("Admin cannot create another Admin")
		}
	}
	return nil
}

// CanDeleteUser decides whether actor may delete target. systemAdminCount
// is the current number of system admins; the last one can never be
// deleted, not even by itself.
func CanDeleteUser(actor Actor, target *entity.User, systemAdminCount int) error {
	if actor.Role == entity.RoleStaff {
		return domain.Forbidden("Staff cannot delete users")
	}
	if actor.Role == entity.RoleAdmin {
		if target.Role == entity.RoleAdmin || target.Role == entity.RoleSystemAdmin {
			return domain.Forbidden("Admin cannot delete other admins or system admin")
		}
		if target.CreatedBy != actor.ID {
			return domain.Forbidden("Cannot delete users you did not create")
		}
	}
	if target.Role == entity.RoleSystemAdmin && systemAdminCount <= 1 {
		return domain.Invalid("Cannot delete the only system admin")
	}
	return nil
}

// UserListScope returns the listing restriction for actor. Admins only see
// the staff accounts they created; system admins see everyone; staff see
// nothing.
func UserListScope(actor Actor) (UserScope, error) {
	switch actor.Role {
	case entity.RoleStaff:
		return UserScope{}, domain.Forbidden("Unauthorized access")
	case entity.RoleAdmin:
		return UserScope{Role: entity.RoleStaff, CreatedBy: actor.ID}, nil
	default:
		return UserScope{}, nil
	}
}
