package search

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/noovas/games-catalog-api/api/types"
)

// Post handles catalog search requests with a JSON body
// @Summary      Search the game catalog
// @Description  Search for games by free text, genres, release status and quick filters. Malformed parameters are coerced to safe defaults, so this endpoint always returns a result page.
// @Tags         search
// @Accept       json
// @Produce      json
// @Param        request body types.SearchRequest true "Search parameters"
// @Success      200 {object} types.SearchResponse "One page of matching game IDs"
// @Failure      400 {object} types.ErrorResponse "Bad request - unparseable body"
// @Router       /api/v1/search [post]
func Post(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.SearchRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Invalid request format",
				Details: err.Error(),
			})
			return
		}

		result := deps.SearchService.Search(c.Request.Context(), req.Raw())

		c.JSON(http.StatusOK, types.SearchResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Result:       result,
			Query:        req.Query,
		})
	}
}
