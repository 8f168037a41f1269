package popular

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/noovas/games-catalog-api/api/types"
)

// Get returns the ranked popular search terms
// @Summary      Popular search terms
// @Description  Returns the most searched terms ranked by frequency. Terms searched fewer than twice never appear.
// @Tags         suggestions
// @Produce      json
// @Param        limit query int false "Maximum terms to return" default(20)
// @Success      200 {object} types.PopularTermsResponse "Ranked popular terms"
// @Router       /api/v1/popular [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		limitStr := c.DefaultQuery("limit", "20")
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit <= 0 {
			limit = 20
		}
		if limit > 100 {
			limit = 100
		}

		terms := deps.SuggestionService.Popular(limit)

		c.JSON(http.StatusOK, types.PopularTermsResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Terms:        terms,
			Count:        len(terms),
		})
	}
}
