// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"cookbook/internal/delivery/http/middleware"
	"cookbook/internal/delivery/http/router/handler"

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
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		recipeHandler:  params.RecipeHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// Session checks are attached per route so unknown paths still answer 404.
func (r *router) RegisterRoutes(e *echo.Echo) {
	requireSession := r.authMiddleware.RequireSession

	e.GET("/health", handler.HealthCheck)

	e.POST("/signup", r.authHandler.Signup)
	e.POST("/login", r.authHandler.Login)
	e.GET("/check_session", r.authHandler.CheckSession, requireSession)
	e.DELETE("/logout", r.authHandler.Logout, requireSession)

	e.GET("/recipes", r.recipeHandler.List, requireSession)
	e.POST("/recipes", r.recipeHandler.Create, requireSession)
}
