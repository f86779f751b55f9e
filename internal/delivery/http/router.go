package http

import (
	"github.com/gin-gonic/gin"
	"github.com/spotlight-dating/spotlight-backend/internal/delivery/http/handler"
	"github.com/spotlight-dating/spotlight-backend/internal/delivery/http/middleware"
)

type Router struct {
	authHandler      *handler.AuthHandler
	profileHandler   *handler.ProfileHandler
	spectatorHandler *handler.SpectatorHandler
	authMiddleware   *middleware.AuthMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	profileHandler *handler.ProfileHandler,
	spectatorHandler *handler.SpectatorHandler,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		authHandler:      authHandler,
		profileHandler:   profileHandler,
		spectatorHandler: spectatorHandler,
		authMiddleware:   authMiddleware,
	}
}

func (r *Router) Setup() *gin.Engine {
	handler.RegisterValidations()

	router := gin.Default()

	// Health check (supports both GET and HEAD)
	healthHandler := func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	}
	router.GET("/health", healthHandler)
	router.HEAD("/health", healthHandler)

	// API v1
	v1 := router.Group("/api/v1")
	{
		// Auth routes
		auth := v1.Group("/auth")
		{
			auth.POST("/signup", r.authHandler.Signup)
			auth.POST("/login", r.authHandler.Login)
			auth.POST("/logout", r.authMiddleware.RequireAuth(), r.authHandler.Logout)
			auth.GET("/me", r.authMiddleware.RequireAuth(), r.authHandler.Me)
		}

		// Profile management (owner side)
		profiles := v1.Group("/profiles")
		profiles.Use(r.authMiddleware.RequireAuth())
		{
			profiles.GET("", r.profileHandler.List)
			profiles.POST("", r.profileHandler.Create)
			profiles.GET("/:id", r.profileHandler.Get)
			profiles.PATCH("/:id", r.profileHandler.Update)
			profiles.DELETE("/:id", r.profileHandler.Delete)
			profiles.GET("/:id/analytics", r.profileHandler.Analytics)
			profiles.POST("/:id/images", r.profileHandler.UploadImage)
			profiles.DELETE("/:id/images/:image_id", r.profileHandler.DeleteImage)
		}

		// Spectator browsing (anonymous or logged in)
		spectator := v1.Group("/spectator")
		spectator.Use(middleware.EnsureViewerSession(), r.authMiddleware.OptionalAuth())
		{
			spectator.GET("/index", r.spectatorHandler.Index)
			spectator.GET("/show/:id", r.spectatorHandler.Show)
			spectator.POST("/track/:id", r.spectatorHandler.Track)
			spectator.POST("/reset", r.spectatorHandler.Reset)
		}
	}

	return router
}
