package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/printagehq/printage-api/internal/application/auth"
	"github.com/printagehq/printage-api/internal/application/usecase"
	"github.com/printagehq/printage-api/internal/infrastructure/postgres"
	httpRouter "github.com/printagehq/printage-api/internal/interfaces/http"
	"github.com/printagehq/printage-api/pkg/config"
	"github.com/printagehq/printage-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("PostgreSQL connection")
	}
	defer pool.Close()

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("schema bootstrap")
	}

	userRepo := postgres.NewUserRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	companyRepo := postgres.NewCompanyRepository(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	orderUC := usecase.NewOrderUseCase(orderRepo)
	companyUC := usecase.NewCompanyUseCase(companyRepo)

	// The first system admin must exist before any authorization-gated
	// traffic is served.
	created, err := authUC.EnsureDefaultSystemAdmin(
		cfg.Auth.DefaultSystemAdminUsername, cfg.Auth.DefaultSystemAdminPassword)
	if err != nil {
		log.Fatal().Err(err).Msg("system admin bootstrap")
	}
	if created {
		log.Info().Msg("system admin created")
	} else {
		log.Info().Msg("system admin already exists")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Join(cfg.HTTP.CORSOrigins, ","),
		AllowCredentials: true,
	}))
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Printage API",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Hello, Printage Backend is running!")
	})
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	secureCookies := cfg.App.Env == "production"
	sameSite := "Lax"
	if secureCookies {
		sameSite = "None"
	}
	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:    authUC,
		OrderUC:   orderUC,
		CompanyUC: companyUC,
		JWTSecret: cfg.JWT.Secret,
		Cookie: httpRouter.CookieConfig{
			Secure:   secureCookies,
			SameSite: sameSite,
			MaxAge:   time.Duration(cfg.JWT.Expiration) * time.Minute,
		},
		StaffReadOnly: cfg.Auth.StaffReadOnly,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
