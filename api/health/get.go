package health

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/noovas/games-catalog-api/api/types"
	"github.com/noovas/games-catalog-api/internal/services/cache"
)

// Get handles health check requests
// @Summary      Health check
// @Description  Reports database and cache store health plus cache statistics.
// @Tags         health
// @Produce      json
// @Success      200 {object} map[string]interface{} "Health status"
// @Router       /health [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		response := gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		}

		if deps != nil && deps.DB != nil {
			response["database"] = getDatabaseStatus(deps)
		} else {
			response["database"] = gin.H{"status": "not configured"}
		}

		if deps != nil && deps.Store != nil {
			response["cache"] = getCacheStatus(deps)
		} else {
			response["cache"] = gin.H{"status": "not configured"}
		}

		c.JSON(http.StatusOK, response)
	}
}

// getDatabaseStatus returns the database connection status
func getDatabaseStatus(deps *types.Dependencies) gin.H {
	if deps.DB == nil || deps.DB.DB == nil {
		return gin.H{"status": "not configured"}
	}

	if err := deps.DB.HealthCheck(); err != nil {
		return gin.H{"status": "unhealthy", "error": err.Error()}
	}

	return gin.H{"status": "healthy"}
}

// getCacheStatus returns the durable cache store status with statistics
func getCacheStatus(deps *types.Dependencies) gin.H {
	status := gin.H{"status": "healthy"}

	if provider, ok := deps.Store.(cache.StatsProvider); ok {
		stats := provider.Stats()
		status["hits"] = stats.Hits
		status["misses"] = stats.Misses
		status["sets"] = stats.Sets
		status["evictions"] = stats.Evictions
		status["size_bytes"] = stats.Size
	}

	return status
}
