package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	swagger "github.com/gofiber/swagger"
	"github.com/localnerve/jam-build-viewdb/data"
	"github.com/localnerve/jam-build-viewdb/internal/config"
	"github.com/localnerve/jam-build-viewdb/internal/database"
	"github.com/localnerve/jam-build-viewdb/internal/handlers"
	"github.com/localnerve/jam-build-viewdb/internal/middleware"
	"github.com/localnerve/jam-build-viewdb/internal/services"

	_ "github.com/localnerve/jam-build-viewdb/docs/api" // Swagger docs
)

// @title ViewDB API
// @version 1.0.0
// @description Multi-view database engine and data service
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url https://github.com/localnerve/jam-build-viewdb
// @contact.email info@localnerve.com

// @license.name AGPL-3.0
// @license.url https://www.gnu.org/licenses/agpl-3.0.html

// @host localhost:3000
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name cookie_session

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	if cfg.SeedDemo {
		if _, created, err := services.SeedDatabase(db, data.DemoSeed); err != nil {
			log.Fatalf("Failed to seed demo database: %v", err)
		} else if !created {
			log.Printf("Demo database already present, skipping seed")
		}
	}

	var validator services.SessionValidator
	if cfg.AuthEnabled() {
		// client is created on the first authenticated request
		validator = services.NewAuthorizerValidator(cfg)
		log.Printf("Sessions validated by authorizer at %s", cfg.AuthzURL)
	} else {
		log.Printf("AUTHZ_URL not set, all callers get full access")
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())

	// Prometheus metrics, engine collectors share the default registry
	prometheus := fiberprometheus.New("viewdb")
	prometheus.RegisterAt(app, "/metrics")
	app.Use(prometheus.Middleware)

	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Get("/health", func(c *fiber.Ctx) error {
		result := services.HealthCheck(c.UserContext(), cfg, db)
		status := fiber.StatusOK
		if result.Status != "healthy" {
			status = fiber.StatusServiceUnavailable
		}
		return c.Status(status).JSON(result)
	})

	api := app.Group("/api")
	api.Use(middleware.VersionMiddleware())
	handlers.Register(api, db, validator)

	app.Use(handlers.NotFound)

	// Graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		log.Println("Gracefully shutting down...")
		_ = app.Shutdown()
	}()

	log.Printf("Starting server on port %s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}

	log.Println("Server stopped")
}
