package games

import (
	"github.com/gin-gonic/gin"
	"github.com/noovas/games-catalog-api/api/types"
)

// RegisterRoutes registers game routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.GET("/:id", Get(deps))
}
