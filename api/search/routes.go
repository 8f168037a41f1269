package search

import (
	"github.com/gin-gonic/gin"
	"github.com/noovas/games-catalog-api/api/types"
)

// RegisterRoutes registers search routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	// GET/POST /api/v1/search (router already includes /search prefix)
	router.GET("", Get(deps))
	router.POST("", Post(deps))
}
