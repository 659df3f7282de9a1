// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"levefit/internal/delivery/http/middleware"
	"levefit/internal/delivery/http/router/handler"
	"levefit/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	DishHandler    *handler.DishHandler
	RatingHandler  *handler.RatingHandler
	AccountHandler *handler.AccountHandler
	BlogHandler    *handler.BlogHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	dishHandler    *handler.DishHandler
	ratingHandler  *handler.RatingHandler
	accountHandler *handler.AccountHandler
	blogHandler    *handler.BlogHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		dishHandler:    params.DishHandler,
		ratingHandler:  params.RatingHandler,
		accountHandler: params.AccountHandler,
		blogHandler:    params.BlogHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoints
	e.GET("/", handler.HealthCheck)
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login/:tipo", r.accountHandler.Login)
	}

	// Supplier routes. Registration, the public directory and the profile
	// view are open; subscription activation requires the supplier itself.
	supplierGroup := e.Group("/fornecedores")
	{
		supplierGroup.POST("", r.accountHandler.RegisterSupplier)
		supplierGroup.GET("", r.accountHandler.ListSuppliers)
		// The original frontend's partner carousel asks for /ativos.
		supplierGroup.GET("/ativos", r.accountHandler.ListSuppliers)
		supplierGroup.GET("/perfil",
			r.accountHandler.SupplierProfile,
			r.authMiddleware.Authenticate,
			r.authMiddleware.RequireRole(entity.RoleSupplier),
		)
		supplierGroup.PUT("/perfil",
			r.accountHandler.UpdateSupplierProfile,
			r.authMiddleware.Authenticate,
			r.authMiddleware.RequireRole(entity.RoleSupplier),
		)
		supplierGroup.GET("/:id", r.accountHandler.GetSupplier)
		supplierGroup.POST("/:id/ativar-assinatura",
			r.accountHandler.ActivateSubscription,
			r.authMiddleware.Authenticate,
			r.authMiddleware.RequireRole(entity.RoleSupplier),
		)
	}

	// Customer registration and own-profile routes.
	customerGroup := e.Group("/clientes")
	{
		customerGroup.POST("", r.accountHandler.RegisterCustomer)
		customerGroup.GET("/perfil",
			r.accountHandler.CustomerProfile,
			r.authMiddleware.Authenticate,
			r.authMiddleware.RequireRole(entity.RoleCustomer),
		)
		customerGroup.PUT("/perfil",
			r.accountHandler.UpdateCustomerProfile,
			r.authMiddleware.Authenticate,
			r.authMiddleware.RequireRole(entity.RoleCustomer),
		)
	}

	// Dish routes. Reads are public, mutations require the supplier role.
	dishGroup := e.Group("/pratos")
	{
		dishGroup.GET("", r.dishHandler.ListPublic)
		dishGroup.GET("/categorias", r.dishHandler.ListCategories)
		dishGroup.GET("/fornecedor",
			r.dishHandler.ListMine,
			r.authMiddleware.Authenticate,
			r.authMiddleware.RequireRole(entity.RoleSupplier),
		)
		dishGroup.GET("/:id", r.dishHandler.Get)
		dishGroup.GET("/:id/qrcode", r.dishHandler.OrderQR)

		dishGroup.POST("", r.dishHandler.Create,
			r.authMiddleware.Authenticate,
			r.authMiddleware.RequireRole(entity.RoleSupplier),
		)
		dishGroup.PUT("/:id", r.dishHandler.Update,
			r.authMiddleware.Authenticate,
			r.authMiddleware.RequireRole(entity.RoleSupplier),
		)
		dishGroup.DELETE("/:id", r.dishHandler.Delete,
			r.authMiddleware.Authenticate,
			r.authMiddleware.RequireRole(entity.RoleSupplier),
		)
	}

	// Ratings are written by authenticated customers only.
	e.POST("/avaliacoes", r.ratingHandler.Create,
		r.authMiddleware.Authenticate,
		r.authMiddleware.RequireRole(entity.RoleCustomer),
	)

	// Blog routes are fully public.
	blogGroup := e.Group("/blog")
	{
		blogGroup.GET("", r.blogHandler.List)
		blogGroup.GET("/categorias", r.blogHandler.ListCategories)
		blogGroup.GET("/:slug", r.blogHandler.GetBySlug)
	}
}
