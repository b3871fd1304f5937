// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"cheeserater/config"
	"cheeserater/internal/delivery/http/middleware"
	"cheeserater/internal/delivery/http/router/handler"
	"cheeserater/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CatalogHandler  *handler.CatalogHandler
	CheeseHandler   *handler.CheeseHandler
	ReviewHandler   *handler.ReviewHandler
	ProfileHandler  *handler.ProfileHandler
	ClientIdentity  *middleware.ClientIdentityMiddleware
	OwnerMiddleware *middleware.OwnerMiddleware
	MetricsRegistry *prometheus.Registry `optional:"true"`
	Config          *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	catalogHandler  *handler.CatalogHandler
	cheeseHandler   *handler.CheeseHandler
	reviewHandler   *handler.ReviewHandler
	profileHandler  *handler.ProfileHandler
	clientIdentity  *middleware.ClientIdentityMiddleware
	ownerMiddleware *middleware.OwnerMiddleware
	registry        *prometheus.Registry
	config          *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		catalogHandler:  params.CatalogHandler,
		cheeseHandler:   params.CheeseHandler,
		reviewHandler:   params.ReviewHandler,
		profileHandler:  params.ProfileHandler,
		clientIdentity:  params.ClientIdentity,
		ownerMiddleware: params.OwnerMiddleware,
		registry:        params.MetricsRegistry,
		config:          params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	if r.config.Metrics.Enabled && r.registry != nil {
		e.GET(r.config.Metrics.Path, echo.WrapHandler(metrics.Handler(r.registry)))
	}

	// Every API call carries a client identity and an owner flag
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.clientIdentity.Resolve)
	apiV1.Use(r.ownerMiddleware.Resolve)

	catalogGroup := apiV1.Group("/catalog")
	{
		catalogGroup.GET("", r.catalogHandler.Browse)
		catalogGroup.GET("/stream", r.catalogHandler.Stream)
	}

	cheesesGroup := apiV1.Group("/cheeses")
	{
		cheesesGroup.POST("", r.cheeseHandler.AddCheese, r.ownerMiddleware.RequireOwner)
		cheesesGroup.GET("/:id", r.cheeseHandler.GetCheese)
		cheesesGroup.GET("/:id/qr", r.cheeseHandler.ShareQR)
		cheesesGroup.GET("/:id/reviews", r.reviewHandler.ListReviews)
		cheesesGroup.PUT("/:id/review", r.reviewHandler.SubmitReview)
	}

	reviewsGroup := apiV1.Group("/reviews")
	{
		reviewsGroup.PATCH("/:id", r.reviewHandler.UpdateReview)
	}

	meGroup := apiV1.Group("/me")
	{
		meGroup.GET("", r.profileHandler.GetProfile)
		meGroup.PUT("/nickname", r.profileHandler.SetNickname)
		meGroup.POST("/wishlist/:cheeseId/toggle", r.profileHandler.ToggleWishlist)
	}
}
