package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/framekit/sitedb/internal/config"
	"github.com/framekit/sitedb/internal/database"
	"github.com/framekit/sitedb/internal/handlers"
	"github.com/framekit/sitedb/internal/middleware"
	"github.com/framekit/sitedb/internal/types"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	swagger "github.com/gofiber/swagger"

	_ "github.com/framekit/sitedb/docs/api" // Swagger docs
)

// @title SiteDB API
// @version 1.0.0
// @description Go Fiber multi-site content management data service
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url https://github.com/framekit/sitedb

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

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler:          customErrorHandler,
		DisableStartupMessage: false,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())

	// Prometheus metrics
	prometheus := fiberprometheus.New("sitedb")
	prometheus.RegisterAt(app, "/metrics")
	app.Use(prometheus.Middleware)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API routes under /api
	api := app.Group("/api")

	// Version middleware
	api.Use(middleware.VersionMiddleware())

	// Create handlers
	siteHandler := &handlers.SiteHandler{DB: db}
	folderHandler := &handlers.FolderHandler{DB: db}
	nodeHandler := &handlers.NodeHandler{DB: db}

	// Website routes (public GET, admin mutations)
	api.Get("/sites", siteHandler.ListSites)
	api.Get("/sites/:site", siteHandler.GetSite)
	api.Get("/hostnames/:hostname", siteHandler.GetHostname)
	api.Post("/sites", middleware.AuthAdmin(cfg), siteHandler.CreateSite)
	api.Put("/sites/:site", middleware.AuthAdmin(cfg), siteHandler.UpdateSite)
	api.Delete("/sites/:site", middleware.AuthAdmin(cfg), siteHandler.DeleteSite)
	api.Post("/sites/:site/hostnames", middleware.AuthAdmin(cfg), siteHandler.AttachHostname)

	// Folder routes
	api.Get("/sites/:site/folders/:folder", folderHandler.GetFolder)
	api.Get("/sites/:site/folders/:folder/export", folderHandler.ExportFolder)
	api.Post("/sites/:site/folders", middleware.AuthAdmin(cfg), folderHandler.CreateFolder)
	api.Put("/sites/:site/folders/:folder/theme", middleware.AuthAdmin(cfg), folderHandler.UpdateFolderTheme)
	api.Delete("/sites/:site/folders/:folder", middleware.AuthAdmin(cfg), folderHandler.DeleteFolder)
	api.Post("/sites/:site/folders/:folder/import", middleware.AuthAdmin(cfg), folderHandler.ImportFolder)

	// Node routes
	api.Get("/sites/:site/folders/:folder/nodes/:node", nodeHandler.GetNode)
	api.Post("/sites/:site/folders/:folder/nodes", middleware.AuthAdmin(cfg), nodeHandler.CreateNode)
	api.Put("/sites/:site/folders/:folder/nodes/:node", middleware.AuthAdmin(cfg), nodeHandler.RenameNode)
	api.Delete("/sites/:site/folders/:folder/nodes/:node", middleware.AuthAdmin(cfg), nodeHandler.DeleteNode)

	// Node property routes
	api.Get("/sites/:site/folders/:folder/nodes/:node/properties", nodeHandler.GetProperties)
	api.Get("/sites/:site/folders/:folder/nodes/:node/properties/:property", nodeHandler.GetProperty)
	api.Post("/sites/:site/folders/:folder/nodes/:node/properties", middleware.AuthAdmin(cfg), nodeHandler.ReplaceProperties)
	api.Put("/sites/:site/folders/:folder/nodes/:node/properties/:property", middleware.AuthAdmin(cfg), nodeHandler.SetProperty)
	api.Delete("/sites/:site/folders/:folder/nodes/:node/properties/:property", middleware.AuthAdmin(cfg), nodeHandler.DeleteProperty)

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

	// The Authorizer client is initialized lazily in the auth middleware
	log.Printf("Authorizer will be initialized on first authenticated request")

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
	log.Printf("Starting server on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}

	log.Println("Server stopped")
}

// customErrorHandler handles errors globally
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := err.Error()
	errorType := "unknown"

	// Check if it's a Fiber error
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	// Check if it's one of ours
	if e, ok := err.(*types.CustomError); ok {
		code = e.Code
		message = e.Message
		errorType = e.Type
	}

	return c.Status(code).JSON(fiber.Map{
		"status":    code,
		"message":   message,
		"ok":        false,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"url":       c.OriginalURL(),
		"type":      errorType,
	})
}
