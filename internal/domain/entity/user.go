package entity

import "time"

// Valid roles for User. The hierarchy is systemAdmin > admin > staff.
const (
	RoleSystemAdmin = "systemAdmin"
	RoleAdmin       = "admin"
	RoleStaff       = "staff"
)

// ValidRole reports whether role is one of the three known roles.
func ValidRole(role string) bool {
	return role == RoleSystemAdmin || role == RoleAdmin || role == RoleStaff
}

// User is an account of the print shop back office. CreatedBy points to the
// user that registered this account; it is empty for the bootstrapped
// system admin.
type User struct {
	ID           string
	Username     string
	PasswordHash string // bcrypt hash, never plaintext after persisting
	Role         string // systemAdmin, admin, staff
	CreatedBy    string // creator user ID, empty = none
	CreatedAt    time.Time
}
