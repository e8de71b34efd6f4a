// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"marketplace/internal/delivery/http/middleware"
	"marketplace/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	HomeHandler    *handler.HomeHandler
	AuthHandler    *handler.AuthHandler
	ProductHandler *handler.ProductHandler
	CartHandler    *handler.CartHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	homeHandler    *handler.HomeHandler
	authHandler    *handler.AuthHandler
	productHandler *handler.ProductHandler
	cartHandler    *handler.CartHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		homeHandler:    params.HomeHandler,
		authHandler:    params.AuthHandler,
		productHandler: params.ProductHandler,
		cartHandler:    params.CartHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	// Public pages resolve the identity when a session is present.
	e.GET("/", r.homeHandler.Home, r.authMiddleware.Identify)
	e.GET("/contact", r.homeHandler.Contact, r.authMiddleware.Identify)

	authGroup := e.Group("/auth")
	{
		authGroup.GET("/register", r.authHandler.RegisterForm)
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.GET("/login", r.authHandler.LoginForm)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.GET("/logout", r.authHandler.Logout)
	}

	productGroup := e.Group("/product")
	{
		productGroup.GET("/search_results", r.productHandler.Search, r.authMiddleware.Identify)
		productGroup.GET("/browse", r.homeHandler.Browse, r.authMiddleware.Identify)

		// Listing management requires a session.
		productGroup.GET("/add", r.productHandler.AddForm, r.authMiddleware.Authenticate)
		productGroup.POST("/add", r.productHandler.Add, r.authMiddleware.Authenticate)
		productGroup.GET("/my-products", r.productHandler.MyProducts, r.authMiddleware.Authenticate)
		productGroup.GET("/update/:id", r.productHandler.UpdateForm, r.authMiddleware.Authenticate)
		productGroup.POST("/update/:id", r.productHandler.Update, r.authMiddleware.Authenticate)
		productGroup.GET("/delete/:id", r.productHandler.Delete, r.authMiddleware.Authenticate)

		// The detail page is public; registered last so the static
		// segments above win.
		productGroup.GET("/:id", r.productHandler.Detail, r.authMiddleware.Identify)
	}

	cartGroup := e.Group("/cart")
	cartGroup.Use(r.authMiddleware.Authenticate)
	{
		cartGroup.GET("", r.cartHandler.View)
		cartGroup.GET("/add/:id", r.cartHandler.Add)
		cartGroup.POST("/add/:id", r.cartHandler.Add)
		cartGroup.GET("/remove/:id", r.cartHandler.Remove)
		cartGroup.POST("/remove/:id", r.cartHandler.Remove)
	}
}
