package suggestions

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/noovas/games-catalog-api/api/types"
)

const maxSuggestionLimit = 25

// Get returns typeahead suggestions for a partial search term
// @Summary      Suggest search terms
// @Description  Returns suggestions matching a partial term, blended from popular searches, game names and genre names, in that priority order.
// @Tags         suggestions
// @Produce      json
// @Param        q     query string false "Partial search term"
// @Param        limit query int    false "Maximum suggestions to return" default(10)
// @Success      200 {object} types.SuggestionsResponse "Ranked suggestions"
// @Router       /api/v1/suggestions [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		partial := c.Query("q")

		limitStr := c.DefaultQuery("limit", "10")
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit <= 0 {
			limit = 10
		}
		if limit > maxSuggestionLimit {
			limit = maxSuggestionLimit
		}

		results := deps.SuggestionService.SuggestionsFor(c.Request.Context(), partial, limit)

		c.JSON(http.StatusOK, types.SuggestionsResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Suggestions:  results,
			Query:        partial,
			Count:        len(results),
		})
	}
}
