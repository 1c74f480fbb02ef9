// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"bureau/internal/delivery/http/middleware"
	"bureau/internal/delivery/http/router/handler"
	"bureau/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler         *handler.AuthHandler
	CustomerHandler     *handler.CustomerHandler
	LookupHandler       *handler.LookupHandler
	NotificationHandler *handler.NotificationHandler
	EmployeeHandler     *handler.EmployeeHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler         *handler.AuthHandler
	customerHandler     *handler.CustomerHandler
	lookupHandler       *handler.LookupHandler
	notificationHandler *handler.NotificationHandler
	employeeHandler     *handler.EmployeeHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:         params.AuthHandler,
		customerHandler:     params.CustomerHandler,
		lookupHandler:       params.LookupHandler,
		notificationHandler: params.NotificationHandler,
		employeeHandler:     params.EmployeeHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/refresh", r.authHandler.Refresh)
	}

	// Customer lifecycle routes. Team scoping happens in the usecase; the
	// middleware only establishes identity.
	customerGroup := e.Group("/customers")
	customerGroup.Use(r.authMiddleware.Authenticate)
	{
		customerGroup.GET("", r.customerHandler.ListCustomers)
		customerGroup.GET("/:user_id", r.customerHandler.GetCustomer)
		customerGroup.PATCH("/:user_id", r.customerHandler.UpdateTrack)
		customerGroup.GET("/:user_id/qr", r.customerHandler.ProfileQR)
	}

	// Assignment routes that require authentication and the "admin" role
	assignGroup := e.Group("/assign")
	assignGroup.Use(r.authMiddleware.Authenticate)
	assignGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		assignGroup.POST("/customer-to-employee", r.customerHandler.AssignCustomer)
	}

	// Lookup options backing the select fields
	lookupGroup := e.Group("/lookups")
	lookupGroup.Use(r.authMiddleware.Authenticate)
	{
		lookupGroup.GET("/:category", r.lookupHandler.ListOptions)
	}

	// Notification feed
	notificationGroup := e.Group("/notifications")
	notificationGroup.Use(r.authMiddleware.Authenticate)
	{
		notificationGroup.GET("", r.notificationHandler.ListNotifications)
		notificationGroup.POST("/:id/read", r.notificationHandler.MarkRead)
	}

	// Team roster routes that require authentication and the "admin" role
	teamGroup := e.Group("/team")
	teamGroup.Use(r.authMiddleware.Authenticate)
	teamGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		teamGroup.GET("", r.employeeHandler.ListTeam)
		teamGroup.POST("/register", r.employeeHandler.RegisterEmployee)
	}
}
