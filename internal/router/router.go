package router

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/mkhalid11/openblog/backend/internal/apperr"
	"github.com/mkhalid11/openblog/backend/internal/controllers"
	"github.com/mkhalid11/openblog/backend/internal/handlers"
	"github.com/mkhalid11/openblog/backend/internal/middleware"
	"github.com/mkhalid11/openblog/backend/internal/models"
	"github.com/mkhalid11/openblog/backend/internal/repositories"
	"github.com/mkhalid11/openblog/backend/pkg/config"
	"gorm.io/gorm"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	log.Println("Global middleware configured.")
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, db *gorm.DB, cfg *config.Config) {
	e.HTTPErrorHandler = apperr.EchoHTTPErrorHandler(e)

	// AutoMigrate models
	err := db.AutoMigrate(
		&models.User{},
		&models.Group{},
		&models.Post{},
		&models.Comment{},
	)
	if err != nil {
		log.Fatalf("Failed to auto migrate models: %v", err)
	}
	log.Println("Auto-migrations completed for all models.")

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"message": "openblog API"})
	})

	// --- Initialize Repositories ---
	userRepo := repositories.NewGormUserRepository(db)
	groupRepo := repositories.NewGormGroupRepository(db)
	postRepo := repositories.NewGormPostRepository(db)
	commentRepo := repositories.NewGormCommentRepository(db)

	// --- Unprotected routes for authentication ---
	authGroup := e.Group("/api/v1/auth")
	authHandler := handlers.NewAuthHandler(userRepo, cfg.JWTSecret)
	authHandler.RegisterAuthRoutes(authGroup)
	log.Println("Auth routes configured.")

	// --- Resource routes ---
	// Caller resolution is optional on purpose: reads stay open to
	// anonymous callers, and controllers enforce authentication where the
	// contract requires it.
	api := e.Group("/api/v1")
	api.Use(middleware.ResolveCaller(cfg.JWTSecret))
	log.Println("Caller resolution middleware applied to /api/v1 group.")

	// Group routes
	groupHandler := handlers.NewGroupHandler(controllers.NewGroupController(groupRepo))
	groupHandler.RegisterGroupRoutes(api)
	log.Println("Group routes configured.")

	// Post routes
	postHandler := handlers.NewPostHandler(controllers.NewPostController(postRepo, groupRepo))
	postHandler.RegisterPostRoutes(api)
	log.Println("Post routes configured.")

	// Comment routes
	commentHandler := handlers.NewCommentHandler(controllers.NewCommentController(commentRepo, postRepo))
	commentHandler.RegisterCommentRoutes(api)
	log.Println("Comment routes configured.")

	log.Println("All routes configured.")
}
