// Package router contains routing for the API server.
package router

import (
	"allserve/internal/delivery/api/router/handler"
	"allserve/internal/delivery/middleware"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	BookingHandler *handler.BookingHandler
	ReviewHandler  *handler.ReviewHandler
	AdminHandler   *handler.AdminHandler
	SearchHandler  *handler.SearchHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	bookingHandler *handler.BookingHandler
	reviewHandler  *handler.ReviewHandler
	adminHandler   *handler.AdminHandler
	searchHandler  *handler.SearchHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		bookingHandler: params.BookingHandler,
		reviewHandler:  params.ReviewHandler,
		adminHandler:   params.AdminHandler,
		searchHandler:  params.SearchHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	// Public plain HTTP endpoint
	e.Any("/fetchProvidersNearby", r.searchHandler.FetchProvidersNearby)

	// Callable operations
	v1 := e.Group("/v1")
	v1.Use(r.authMiddleware.Authenticate)
	{
		v1.POST("/createBooking", r.bookingHandler.CreateBooking)
		v1.POST("/updateBookingStatus", r.bookingHandler.UpdateBookingStatus)
		v1.POST("/postReview", r.reviewHandler.PostReview)
		v1.POST("/flagReview", r.reviewHandler.FlagReview)
		v1.POST("/adminApproveProvider", r.adminHandler.ApproveProvider)
		v1.POST("/sendAnnouncement", r.adminHandler.SendAnnouncement)
	}
}
