package dto

import "time"

// LoginRequest credentials for /auth/login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest input for creating a user (password in plaintext, hashed
// in the use case).
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=1,max=100"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"required,oneof=systemAdmin admin staff"`
}

// UserSummary the identity fields exposed on login, register and
// current-user responses.
type UserSummary struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// LoginResponse body for a successful login; the token itself travels in
// the HTTP-only cookie, never in the body.
type LoginResponse struct {
	Message string      `json:"message"`
	User    UserSummary `json:"user"`
}

// RegisterResponse body for a successful registration.
type RegisterResponse struct {
	Message string      `json:"message"`
	User    UserSummary `json:"user"`
}

// CurrentUserResponse body for /auth/current-user.
type CurrentUserResponse struct {
	User UserSummary `json:"user"`
}

// UserResponse a user in listings (never includes the password hash).
type UserResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	CreatedBy string    `json:"createdBy,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
