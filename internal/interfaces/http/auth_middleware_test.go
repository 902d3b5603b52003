package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/printagehq/printage-api/internal/interfaces/http"
	pkgjwt "github.com/printagehq/printage-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Test helpers
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testUsername  = "tester"
	testIssuer    = "printage-api-test"
	testExpMin    = 60
)

// buildTestApp builds a minimal Fiber app with:
//   - AuthMiddleware to parse the session JWT into locals
//   - RequireRole to gate access
//   - a dummy handler returning 200 when both pass
func buildTestApp(allowedRoles ...string) *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequireRole(allowedRoles...),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":   true,
				"role": apphttp.GetRole(c),
			})
		},
	)
	return app
}

// tokenForRole generates a session JWT with the given role.
func tokenForRole(t *testing.T, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testUsername, role, testIssuer, testExpMin)
	require.NoError(t, err, "a valid JWT must be generated")
	return tok
}

// doCookieRequest sends GET /protected with the token in the jwt cookie.
func doCookieRequest(t *testing.T, app *fiber.App, token string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: apphttp.CookieName, Value: token})
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// RequireRole tests
// ──────────────────────────────────────────────────────────────────────────────

// Case 1: the user has the required role → HTTP 200.
func TestRequireRole_AdminReachesAdminRoute(t *testing.T) {
	app := buildTestApp("admin")
	resp := doCookieRequest(t, app, tokenForRole(t, "admin"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"admin must reach a route restricted to admin")

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, "admin", body["role"])
}

// Case 1b: one of several allowed roles → HTTP 200.
func TestRequireRole_SystemAdminReachesAdminRoute(t *testing.T) {
	app := buildTestApp("systemAdmin", "admin")
	resp := doCookieRequest(t, app, tokenForRole(t, "systemAdmin"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// Case 2: a different role → HTTP 403. Staff never passes a write gate.
func TestRequireRole_StaffBlockedOnAdminRoute(t *testing.T) {
	app := buildTestApp("systemAdmin", "admin")
	resp := doCookieRequest(t, app, tokenForRole(t, "staff"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"staff must not reach a route restricted to admins")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "Insufficient permissions")
}

// Case 3: no cookie at all → HTTP 401.
func TestRequireRole_NoToken_Returns401(t *testing.T) {
	app := buildTestApp("admin")
	resp := doCookieRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Case 4: invalid / malformed token → HTTP 401.
func TestRequireRole_InvalidToken_Returns401(t *testing.T) {
	app := buildTestApp("admin")
	resp := doCookieRequest(t, app, "not.a.token")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Case 5: expired token → HTTP 401.
func TestRequireRole_ExpiredToken_Returns401(t *testing.T) {
	app := buildTestApp("admin")
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testUsername, "admin", testIssuer, -1)
	require.NoError(t, err)

	resp := doCookieRequest(t, app, tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// AuthMiddleware — claim extraction and transports
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_ExtractsClaimsFromCookie(t *testing.T) {
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(testJWTSecret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id":  apphttp.GetUserID(c),
			"username": apphttp.GetUsername(c),
			"role":     apphttp.GetRole(c),
		})
	})

	resp := func() *http.Response {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.AddCookie(&http.Cookie{Name: apphttp.CookieName, Value: tokenForRole(t, "admin")})
		r, err := app.Test(req, -1)
		require.NoError(t, err)
		return r
	}()
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body["user_id"])
	assert.Equal(t, testUsername, body["username"])
	assert.Equal(t, "admin", body["role"])
}

func TestAuthMiddleware_BearerFallback(t *testing.T) {
	app := buildTestApp("admin")

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tokenForRole(t, "admin"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"the Authorization header must work when no cookie is present")
}

// ──────────────────────────────────────────────────────────────────────────────
// StaffReadOnly — optional blanket layer
// ──────────────────────────────────────────────────────────────────────────────

func TestStaffReadOnly_BlocksStaffWrites(t *testing.T) {
	app := fiber.New()
	app.Use(apphttp.AuthMiddleware(testJWTSecret), apphttp.StaffReadOnly())
	app.Get("/orders", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })
	app.Post("/orders", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusCreated) })
	app.Post("/auth/logout", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	send := func(method, path, role string) int {
		req := httptest.NewRequest(method, path, nil)
		req.AddCookie(&http.Cookie{Name: apphttp.CookieName, Value: tokenForRole(t, role)})
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		defer resp.Body.Close()
		return resp.StatusCode
	}

	assert.Equal(t, http.StatusOK, send(http.MethodGet, "/orders", "staff"), "staff GET passes")
	assert.Equal(t, http.StatusForbidden, send(http.MethodPost, "/orders", "staff"), "staff write blocked")
	assert.Equal(t, http.StatusOK, send(http.MethodPost, "/auth/logout", "staff"), "logout is exempt")
	assert.Equal(t, http.StatusCreated, send(http.MethodPost, "/orders", "admin"), "admins unaffected")
}

// ──────────────────────────────────────────────────────────────────────────────
// JWT pkg — generate/parse round trip
// ──────────────────────────────────────────────────────────────────────────────

func TestJWT_GenerateAndParse(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testUsername, "staff", testIssuer, testExpMin)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, username, role, err := pkgjwt.Parse(testJWTSecret, tok)
	require.NoError(t, err)

	assert.Equal(t, testUserID, userID)
	assert.Equal(t, testUsername, username)
	assert.Equal(t, "staff", role)
}

func TestJWT_WrongSecret_ReturnsError(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testUsername, "admin", testIssuer, testExpMin)
	require.NoError(t, err)

	_, _, _, err = pkgjwt.Parse("a-completely-different-secret", tok)
	assert.Error(t, err, "a wrong secret must invalidate the token")
}
