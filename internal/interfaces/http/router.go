package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/printagehq/printage-api/internal/application/auth"
	"github.com/printagehq/printage-api/internal/application/usecase"
	"github.com/printagehq/printage-api/internal/domain/entity"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	OrderUC       *usecase.OrderUseCase
	CompanyUC     *usecase.CompanyUseCase
	JWTSecret     string
	Cookie        CookieConfig
	StaffReadOnly bool // optional blanket layer on top of the route guards
}

// Router registers the API routes. Writes require admin or systemAdmin via
// RequireRole; reads only require a valid session.
func Router(app *fiber.App, deps RouterDeps) {
	authenticated := AuthMiddleware(deps.JWTSecret)
	adminOnly := RequireRole(entity.RoleSystemAdmin, entity.RoleAdmin)

	guards := func(extra ...fiber.Handler) []fiber.Handler {
		h := []fiber.Handler{authenticated}
		if deps.StaffReadOnly {
			h = append(h, StaffReadOnly())
		}
		return append(h, extra...)
	}

	// Auth
	authHandler := NewAuthHandler(deps.AuthUC, deps.Cookie)
	authGroup := app.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", append(guards(), authHandler.Logout)...)
	authGroup.Post("/register", append(guards(adminOnly), authHandler.Register)...)
	authGroup.Get("/users", append(guards(adminOnly), authHandler.ListUsers)...)
	authGroup.Delete("/users/:userId", append(guards(adminOnly), authHandler.DeleteUser)...)
	authGroup.Get("/current-user", append(guards(), authHandler.CurrentUser)...)

	// Orders
	orderHandler := NewOrderHandler(deps.OrderUC)
	orders := app.Group("/orders", guards()...)
	orders.Get("/", orderHandler.List)
	orders.Get("/:orderId", orderHandler.GetByID)
	orders.Post("/", adminOnly, orderHandler.Create)
	orders.Post("/:orderId/copy", adminOnly, orderHandler.Copy)
	orders.Put("/:orderId", adminOnly, orderHandler.Update)
	orders.Delete("/:orderId", adminOnly, orderHandler.Delete)

	// Companies
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies := app.Group("/companies", guards()...)
	companies.Get("/", companyHandler.List)
	companies.Post("/", adminOnly, companyHandler.Create)
	companies.Put("/:id", adminOnly, companyHandler.Update)
}
