// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"harvest/internal/delivery/http/middleware"
	"harvest/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SessionHandler    *handler.SessionHandler
	ChatHandler       *handler.ChatHandler
	ProductHandler    *handler.ProductHandler
	EventHandler      *handler.EventHandler
	SessionMiddleware *middleware.SessionMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	sessionHandler    *handler.SessionHandler
	chatHandler       *handler.ChatHandler
	productHandler    *handler.ProductHandler
	eventHandler      *handler.EventHandler
	sessionMiddleware *middleware.SessionMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		sessionHandler:    params.SessionHandler,
		chatHandler:       params.ChatHandler,
		productHandler:    params.ProductHandler,
		eventHandler:      params.EventHandler,
		sessionMiddleware: params.SessionMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Session routes
	sessionGroup := e.Group("/session")
	{
		sessionGroup.POST("", r.sessionHandler.Start)
		sessionGroup.GET("", r.sessionHandler.Current)
		sessionGroup.DELETE("", r.sessionHandler.End)
	}

	// Chat routes need a signed-in user
	chatGroup := e.Group("/chat")
	chatGroup.Use(r.sessionMiddleware.RequireSession)
	{
		chatGroup.GET("", r.chatHandler.Snapshot)
		chatGroup.POST("/open", r.chatHandler.Open)
		chatGroup.POST("/close", r.chatHandler.Close)
		chatGroup.POST("/back", r.chatHandler.Back)
		chatGroup.GET("/conversations", r.chatHandler.ListConversations)
		chatGroup.POST("/conversations", r.chatHandler.OpenConversation)
		chatGroup.POST("/conversations/:id/select", r.chatHandler.SelectConversation)
		chatGroup.POST("/conversations/:id/messages", r.chatHandler.SendMessage)
		chatGroup.GET("/events", r.eventHandler.Stream)
	}

	// Product browsing is public
	productGroup := e.Group("/products")
	{
		productGroup.GET("", r.productHandler.List)
		productGroup.GET("/ranking", r.productHandler.Ranking)
		productGroup.PUT("/viewer", r.productHandler.SetViewer)
		productGroup.DELETE("/viewer", r.productHandler.ClearViewer)
	}
}
