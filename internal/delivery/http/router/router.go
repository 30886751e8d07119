// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"chirp/internal/delivery/http/middleware"
	"chirp/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	PostHandler    *handler.PostHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	postHandler    *handler.PostHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		postHandler:    params.PostHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public auth routes
	e.POST("/signup", r.authHandler.Signup)
	e.POST("/login", r.authHandler.Login)

	// Post routes require authentication
	postGroup := e.Group("/posts")
	postGroup.Use(r.authMiddleware.Authenticate)
	{
		postGroup.POST("", r.postHandler.Create)
		postGroup.GET("", r.postHandler.List)
		postGroup.DELETE("", r.postHandler.Delete)
	}
}
