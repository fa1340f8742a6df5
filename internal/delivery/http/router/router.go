// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"recipebox/internal/delivery/http/middleware"
	"recipebox/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	RecipeHandler  *handler.RecipeHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	recipeHandler  *handler.RecipeHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		recipeHandler:  params.RecipeHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
	}

	// Read endpoints resolve the current user when a token is present but
	// stay open to anonymous callers.
	readGroup := e.Group("/recipes")
	readGroup.Use(r.authMiddleware.OptionalAuthenticate)
	{
		readGroup.GET("", r.recipeHandler.List)
		readGroup.GET("/search", r.recipeHandler.Search)
		readGroup.GET("/category/:category", r.recipeHandler.ByCategory)
		readGroup.GET("/:id", r.recipeHandler.Get)
	}

	// Mutations require a logged-in user.
	writeGroup := e.Group("/recipes")
	writeGroup.Use(r.authMiddleware.Authenticate)
	{
		writeGroup.POST("", r.recipeHandler.Create)
		writeGroup.PUT("/:id", r.recipeHandler.Update)
		writeGroup.DELETE("/:id", r.recipeHandler.Delete)
	}
}
