package main

import (
	"log"

	"github.com/labstack/echo/v4"
	"github.com/mkhalid11/openblog/backend/internal/router"
	"github.com/mkhalid11/openblog/backend/pkg/config"
	"github.com/mkhalid11/openblog/backend/validators"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database connection
	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.CloseDB() // Ensure database connection is closed when main exits

	// Create Echo instance
	e := echo.New()

	// Setup global middleware
	router.SetupMiddleware(e)

	// Setup routes and dependencies
	router.SetupRoutes(e, db.Gorm, cfg)

	// Validator
	e.Validator = validators.NewValidator()

	// Start server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
