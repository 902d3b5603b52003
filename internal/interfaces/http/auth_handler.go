package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/printagehq/printage-api/internal/application/auth"
	"github.com/printagehq/printage-api/internal/application/dto"
)

// CookieConfig how the session cookie is transmitted. Production uses
// Secure + SameSite=None so the browser sends it cross-site.
type CookieConfig struct {
	Secure   bool
	SameSite string
	MaxAge   time.Duration
}

// AuthHandler login, logout, registration and user administration.
type AuthHandler struct {
	uc     *auth.AuthUseCase
	cookie CookieConfig
}

// NewAuthHandler builds the auth handler.
func NewAuthHandler(uc *auth.AuthUseCase, cookie CookieConfig) *AuthHandler {
	return &AuthHandler{uc: uc, cookie: cookie}
}

// Login authenticates username/password and sets the session cookie.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Invalid request body"})
	}
	user, token, err := h.uc.Login(in)
	if err != nil {
		return respondError(c, err)
	}
	c.Cookie(&fiber.Cookie{
		Name:     CookieName,
		Value:    token,
		HTTPOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: h.cookie.SameSite,
		MaxAge:   int(h.cookie.MaxAge.Seconds()),
	})
	return c.Status(fiber.StatusOK).JSON(dto.LoginResponse{
		Message: "Authentication successful",
		User:    user,
	})
}

// Logout clears the session cookie. The token itself stays valid until its
// natural expiry; there is no server-side revocation list.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     CookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: h.cookie.SameSite,
	})
	return c.Status(fiber.StatusOK).JSON(dto.MessageResponse{Message: "Logged out successfully"})
}

// Register creates a new user subject to the role policy.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Invalid request body"})
	}
	user, err := h.uc.Register(Actor(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.RegisterResponse{
		Message: "User created successfully",
		User:    user,
	})
}

// ListUsers returns the accounts visible to the caller (scoped for admins).
func (h *AuthHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.uc.ListUsers(Actor(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(users)
}

// DeleteUser deletes an account subject to the deletion policy.
func (h *AuthHandler) DeleteUser(c *fiber.Ctx) error {
	if err := h.uc.DeleteUser(Actor(c), c.Params("userId")); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(dto.MessageResponse{Message: "User deleted successfully"})
}

// CurrentUser returns the caller identity from the session claims.
func (h *AuthHandler) CurrentUser(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(dto.CurrentUserResponse{
		User: dto.UserSummary{
			ID:       GetUserID(c),
			Username: GetUsername(c),
			Role:     GetRole(c),
		},
	})
}
