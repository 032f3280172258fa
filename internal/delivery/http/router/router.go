// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"herald/internal/delivery/http/middleware"
	"herald/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	MessageHandler *handler.MessageHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	messageHandler *handler.MessageHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		messageHandler: params.MessageHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Message submission requires an application token
	appGroup := e.Group("/applications")
	appGroup.Use(r.authMiddleware.Authenticate)
	{
		appGroup.POST("/messages", r.messageHandler.SendMessage)
	}
}
