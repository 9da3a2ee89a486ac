package main

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"yocc-backend/internal/apperrors"
	"yocc-backend/internal/config"
	"yocc-backend/internal/handlers"
	"yocc-backend/internal/middleware"
)

type routerDeps struct {
	cfg        *config.Config
	logger     *zap.Logger
	orders     *handlers.OrdersHandler
	generation *handlers.GenerationHandler
	profiles   *handlers.ProfilesHandler
}

func setupRouter(d routerDeps) *gin.Engine {
	router := gin.New()

	// Middleware
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(d.logger))
	router.Use(apperrors.Middleware(d.logger))

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check (no auth)
	router.GET("/health", handlers.HealthHandler)

	// Catalog textures used by the recolor mode of the edit wizard
	if d.cfg.TextureAssetDir != "" {
		router.Static("/textures", d.cfg.TextureAssetDir)
	}

	// API routes
	api := router.Group("/api/v1")
	api.Use(middleware.AuthMiddleware(d.cfg))

	// Orders
	api.POST("/orders", d.orders.CreateOrder)
	api.GET("/orders", d.orders.ListOrders)

	manages := api.Group("/orders/manages")
	manages.Use(middleware.RequireAdmin())
	manages.GET("", d.orders.ListAllOrders)
	manages.PUT("/:id", d.orders.UpdateOrderStatus)

	// Generation and palette, rate limited per user
	limiter := middleware.NewRateLimiter(d.cfg.GenerationRatePerMinute, d.cfg.GenerationBurst)
	gen := api.Group("")
	gen.Use(limiter.Middleware())
	gen.POST("/dalle", d.generation.Generate)
	gen.POST("/dalle/describe", d.generation.Describe)
	gen.POST("/dalle/edit-with-texture", d.generation.EditWithTexture)
	gen.POST("/palette", d.generation.Palette)

	// Profile
	api.GET("/profile", d.profiles.GetProfile)
	api.PUT("/profile", d.profiles.UpdateProfile)

	return router
}
