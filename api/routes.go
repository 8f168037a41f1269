package api

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/noovas/games-catalog-api/api/games"
	"github.com/noovas/games-catalog-api/api/genres"
	"github.com/noovas/games-catalog-api/api/health"
	"github.com/noovas/games-catalog-api/api/popular"
	"github.com/noovas/games-catalog-api/api/search"
	"github.com/noovas/games-catalog-api/api/suggestions"
	"github.com/noovas/games-catalog-api/api/types"
	"github.com/noovas/games-catalog-api/api/version"
	_ "github.com/noovas/games-catalog-api/docs/swagger"
)

// RegisterRoutes registers all API routes
func RegisterRoutes(engine *gin.Engine, deps *types.Dependencies, rateLimiter *RateLimiter) {
	// Public routes (no rate limiting)
	health.RegisterRoutes(engine, deps)
	version.RegisterRoutes(engine, deps)

	// Swagger documentation route
	engine.GET("/docs", func(c *gin.Context) {
		c.Redirect(301, "/docs/index.html")
	})
	docsGroup := engine.Group("/docs")
	docsGroup.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	engine.NoRoute(NotFoundHandler())

	// API v1 routes
	v1 := engine.Group("/api/v1")
	if rateLimiter != nil {
		v1.Use(rateLimiter.Middleware())
	}

	search.RegisterRoutes(v1.Group("/search"), deps)
	suggestions.RegisterRoutes(v1.Group("/suggestions"), deps)
	popular.RegisterRoutes(v1.Group("/popular"), deps)
	genres.RegisterRoutes(v1.Group("/genres"), deps)
	games.RegisterRoutes(v1.Group("/games"), deps)
}

// NotFoundHandler returns a JSON 404 for unknown routes
func NotFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(404, types.ErrorResponse{
			Status:  types.StatusError,
			Message: "Route not found",
		})
	}
}
