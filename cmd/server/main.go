package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	swagger "github.com/gofiber/swagger"
	"github.com/localnerve/seedledger/internal/accounts"
	"github.com/localnerve/seedledger/internal/config"
	"github.com/localnerve/seedledger/internal/database"
	"github.com/localnerve/seedledger/internal/handlers"
	"github.com/localnerve/seedledger/internal/middleware"
	"github.com/localnerve/seedledger/internal/records"
	"github.com/localnerve/seedledger/internal/services"

	_ "github.com/localnerve/seedledger/docs/api" // Swagger docs
)

// @title SeedLedger API
// @version 1.0.0
// @description Farmer, seed inventory, distribution, logistics and payment records per account
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url https://github.com/localnerve/seedledger
// @contact.email info@localnerve.com

// @license.name AGPL-3.0
// @license.url https://www.gnu.org/licenses/agpl-3.0.html

// @host localhost:3000
// @BasePath /api
// @schemes http https

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	// Open the storage backend
	store, closeStore, err := database.OpenStore(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to open %s storage: %v", cfg.StoreDriver, err)
	}
	defer func() {
		if err := closeStore(); err != nil {
			log.Printf("Failed to close storage: %v", err)
		}
	}()

	codec, err := accounts.NewCodec(cfg.PasswordScheme, cfg.BcryptCost)
	if err != nil {
		log.Fatalf("Failed to configure passwords: %v", err)
	}

	recordStore := records.New(store)
	directory := accounts.NewDirectory(store, recordStore, codec)
	workspace := services.NewWorkspace(recordStore)

	// Pick up where the last process left off
	if session, ok, err := directory.Resume(ctx); err != nil {
		log.Printf("Failed to resume session: %v", err)
	} else if ok {
		log.Printf("Resumed session for %s", session.Username)
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use(compress.New())

	// Prometheus metrics
	prometheus := fiberprometheus.New("seedledger")
	prometheus.RegisterAt(app, "/metrics")
	app.Use(prometheus.Middleware)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Health
	app.Get("/health", func(c *fiber.Ctx) error {
		result := services.HealthCheck(c.UserContext(), cfg, store)
		status := fiber.StatusOK
		if result.Status != "healthy" {
			status = fiber.StatusServiceUnavailable
		}
		return c.Status(status).JSON(result)
	})

	// API routes under /api
	handlers.Register(app.Group("/api"), directory, workspace, cfg.ActivityLimit)

	// 404 handler
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"status":    fiber.StatusNotFound,
			"message":   "[404] Resource Not Found",
			"ok":        false,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"url":       c.OriginalURL(),
		})
	})

	// Graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("Gracefully shutting down...")
		_ = app.Shutdown()
	}()

	// Start server
	port := cfg.Port
	log.Printf("Starting server on port %s (storage: %s, passwords: %s)", port, store.Driver(), codec.Name())
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}

	log.Println("Server stopped")
}
