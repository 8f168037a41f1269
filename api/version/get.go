package version

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Get handles version requests
// @Summary      Version information
// @Tags         health
// @Produce      json
// @Success      200 {object} map[string]interface{} "Version info"
// @Router       / [get]
func Get() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"name":        "Games Catalog API",
			"version":     "1.0.0",
			"description": "Search and discovery API for the games catalog",
			"status":      "running",
		})
	}
}
