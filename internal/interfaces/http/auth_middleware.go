package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/printagehq/printage-api/internal/application/dto"
	"github.com/printagehq/printage-api/internal/domain/entity"
	"github.com/printagehq/printage-api/internal/domain/policy"
	"github.com/printagehq/printage-api/pkg/jwt"
)

// CookieName is the cookie carrying the session token.
const CookieName = "jwt"

// Locals keys for the session identity in Fiber.
const (
	LocalUserID   = "user_id"
	LocalUsername = "username"
	LocalRole     = "role"
)

// AuthMiddleware validates the session JWT and loads the identity claims
// into c.Locals. The token is read from the "jwt" HTTP-only cookie, with an
// Authorization: Bearer fallback for non-browser clients.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := c.Cookies(CookieName)
		if tokenString == "" {
			if header := c.Get("Authorization"); header != "" {
				parts := strings.SplitN(header, " ", 2)
				if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
					tokenString = strings.TrimSpace(parts[1])
				}
			}
		}
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Message: "Unauthorized - No user found"})
		}
		userID, username, role, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Message: "Unauthorized - No user found"})
		}
		c.Locals(LocalUserID, userID)
		c.Locals(LocalUsername, username)
		c.Locals(LocalRole, role)
		return c.Next()
	}
}

// RequireRole rejects requests whose session role is not in the allowed
// list. Must run after AuthMiddleware.
func RequireRole(roles ...string) fiber.Handler {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Message: "Unauthorized - No user found"})
		}
		if !allowed[role] {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Message: "Forbidden - Insufficient permissions"})
		}
		return c.Next()
	}
}

// StaffReadOnly blocks every non-GET request from staff except logout.
// Redundant with the per-route RequireRole guards; kept as an optional
// defense-in-depth layer behind STAFF_READ_ONLY.
func StaffReadOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if GetRole(c) == entity.RoleStaff &&
			c.Method() != fiber.MethodGet &&
			c.Path() != "/auth/logout" {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Message: "Staff members have read-only access"})
		}
		return c.Next()
	}
}

// Actor returns the authenticated identity for policy decisions.
func Actor(c *fiber.Ctx) policy.Actor {
	return policy.Actor{ID: GetUserID(c), Role: GetRole(c)}
}

// GetUserID returns the user ID from the context (after AuthMiddleware).
func GetUserID(c *fiber.Ctx) string { return localString(c, LocalUserID) }

// GetUsername returns the username from the context (after AuthMiddleware).
func GetUsername(c *fiber.Ctx) string { return localString(c, LocalUsername) }

// GetRole returns the role from the context (after AuthMiddleware).
func GetRole(c *fiber.Ctx) string { return localString(c, LocalRole) }

func localString(c *fiber.Ctx, key string) string {
	v := c.Locals(key)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
