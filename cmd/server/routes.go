package main

import (
	"github.com/gin-gonic/gin"
	"github.com/hiveproductions/hive/backend/internal/config"
	"github.com/hiveproductions/hive/backend/internal/handlers"
	"github.com/hiveproductions/hive/backend/internal/middleware"
	"github.com/hiveproductions/hive/backend/pkg/logger"
	"gorm.io/gorm"
)

// registerRoutes sets up all HTTP routes on the given Gin engine.
func registerRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	// Middleware
	r.Use(logger.RequestID(), logger.GinLogger(), logger.GinRecovery())
	r.RedirectTrailingSlash = false
	r.RedirectFixedPath = false
	r.Use(middleware.CORS())

	// Health check
	healthHandler := handlers.NewHealthHandler(db)
	r.GET("/health", healthHandler.CheckHealth)

	// Auth routes (public, rate limited)
	authHandler := handlers.NewAuthHandler(db, cfg)
	authLimiter := middleware.NewRateLimiter(10, 20)
	auth := r.Group("/auth", authLimiter.Middleware())
	{
		auth.POST("/login", authHandler.Login)
		auth.POST("/signup", authHandler.Signup)
		auth.POST("/verify-code", authHandler.VerifyCode)
	}
	r.GET("/auth/me", middleware.AuthRequired(), authHandler.GetCurrentUser)

	// Organizations
	organizationHandler := handlers.NewOrganizationHandler(db)
	r.GET("/organizations", organizationHandler.List)
	r.GET("/organizations/:id", organizationHandler.GetByID)
	r.POST("/organizations", organizationHandler.Create)
	r.PUT("/organizations/:id", organizationHandler.Update)
	r.DELETE("/organizations/:id", organizationHandler.Delete)

	// Users
	userHandler := handlers.NewUserHandler(db)
	r.GET("/users", userHandler.List)
	r.GET("/users/:id", userHandler.GetByID)
	r.POST("/users", userHandler.Create)
	r.PUT("/users/:id", userHandler.Update)
	r.DELETE("/users/:id", userHandler.Delete)

	// Projects
	projectHandler := handlers.NewProjectHandler(db)
	r.GET("/projects", projectHandler.List)
	r.GET("/projects/:id", projectHandler.GetByID)
	r.POST("/projects", projectHandler.Create)
	r.PUT("/projects/:id", projectHandler.Update)
	r.DELETE("/projects/:id", projectHandler.Delete)
	r.GET("/projects/:id/events", projectHandler.ListEvents)
	r.GET("/projects/:id/key-personnel", projectHandler.ListKeyPersonnel)
	r.PUT("/projects/:id/key-personnel", projectHandler.ReplaceKeyPersonnel)

	// Events
	eventHandler := handlers.NewEventHandler(db)
	r.GET("/events", eventHandler.List)
	r.GET("/events/:id", eventHandler.GetByID)
	r.POST("/events", eventHandler.Create)
	r.PUT("/events/:id", eventHandler.Update)
	r.DELETE("/events/:id", eventHandler.Delete)
	r.GET("/events/:id/personnel", eventHandler.ListPersonnel)
	r.POST("/events/:id/personnel/:pid", eventHandler.AssignPersonnel)
	r.DELETE("/events/:id/personnel/:pid", eventHandler.UnassignPersonnel)
	r.GET("/events/:id/users", eventHandler.ListUsers)
	r.POST("/events/:id/users/:uid", eventHandler.AssignUser)
	r.GET("/events/:id/shots", eventHandler.ListShots)

	// Personnel
	personnelHandler := handlers.NewPersonnelHandler(db)
	r.GET("/personnel", personnelHandler.List)
	r.GET("/personnel/:id", personnelHandler.GetByID)
	r.POST("/personnel", personnelHandler.Create)
	r.PUT("/personnel/:id", personnelHandler.Update)
	r.DELETE("/personnel/:id", personnelHandler.Delete)
	r.GET("/photographers", personnelHandler.ListPhotographers)

	// Shots
	shotHandler := handlers.NewShotHandler(db)
	r.GET("/shots", shotHandler.List)
	r.GET("/shots/:id", shotHandler.GetByID)
	r.POST("/shots", shotHandler.Create)
	r.PUT("/shots/:id", shotHandler.Update)
	r.DELETE("/shots/:id", shotHandler.Delete)

	// Shot requests
	shotRequestHandler := handlers.NewShotRequestHandler(db)
	r.GET("/shot-requests", shotRequestHandler.List)
	r.GET("/shot-requests/:id", shotRequestHandler.GetByID)
	r.POST("/shot-requests", shotRequestHandler.Create)
	r.PUT("/shot-requests/:id", shotRequestHandler.Update)
	r.DELETE("/shot-requests/:id", shotRequestHandler.Delete)
}
