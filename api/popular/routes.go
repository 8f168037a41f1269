package popular

import (
	"github.com/gin-gonic/gin"
	"github.com/noovas/games-catalog-api/api/types"
)

// RegisterRoutes registers popular search term routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.GET("", Get(deps))
}
