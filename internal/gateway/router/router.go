// Package router contains routing setup for the gateway.
package router

import (
	"shareit/internal/gateway/handler"
	"shareit/internal/gateway/middleware"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams defines the required parameters
type RouterParams struct {
	fx.In

	UserHandler        *handler.UserHandler
	ItemHandler        *handler.ItemHandler
	BookingHandler     *handler.BookingHandler
	RequestHandler     *handler.RequestHandler
	IdentityMiddleware *middleware.IdentityMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler        *handler.UserHandler
	itemHandler        *handler.ItemHandler
	bookingHandler     *handler.BookingHandler
	requestHandler     *handler.RequestHandler
	identityMiddleware *middleware.IdentityMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:        params.UserHandler,
		itemHandler:        params.ItemHandler,
		bookingHandler:     params.BookingHandler,
		requestHandler:     params.RequestHandler,
		identityMiddleware: params.IdentityMiddleware,
	}
}

// RegisterRoutes mirrors the server's surface. The identity header is
// checked everywhere except the user endpoints and item search.
func (r *router) RegisterRoutes(e *echo.Echo) {
	userGroup := e.Group("/users")
	{
		userGroup.POST("", r.userHandler.Create)
		userGroup.PATCH("/:id", r.userHandler.Update)
		userGroup.GET("/:id", r.userHandler.GetByID)
		userGroup.GET("", r.userHandler.List)
		userGroup.DELETE("/:id", r.userHandler.Delete)
	}

	itemGroup := e.Group("/items")
	{
		itemGroup.GET("/search", r.itemHandler.Search)

		authed := itemGroup.Group("", r.identityMiddleware.Require)
		authed.POST("", r.itemHandler.Create)
		authed.PATCH("/:id", r.itemHandler.Update)
		authed.GET("/:id", r.itemHandler.GetByID)
		authed.GET("", r.itemHandler.ListByOwner)
		authed.POST("/:id/comment", r.itemHandler.PostComment)
	}

	bookingGroup := e.Group("/bookings", r.identityMiddleware.Require)
	{
		bookingGroup.POST("", r.bookingHandler.Create)
		bookingGroup.PATCH("/:id", r.bookingHandler.Approve)
		bookingGroup.GET("/owner", r.bookingHandler.ListByOwner)
		bookingGroup.GET("/:id", r.bookingHandler.GetByID)
		bookingGroup.GET("", r.bookingHandler.ListByBooker)
	}

	requestGroup := e.Group("/requests", r.identityMiddleware.Require)
	{
		requestGroup.POST("", r.requestHandler.Create)
		requestGroup.GET("/all", r.requestHandler.ListAll)
		requestGroup.GET("/:id", r.requestHandler.GetByID)
		requestGroup.GET("", r.requestHandler.ListOwn)
	}
}
