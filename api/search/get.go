package search

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/noovas/games-catalog-api/api/types"
)

// Get handles catalog search requests via query parameters
// @Summary      Search the game catalog
// @Description  Query-parameter variant of the search endpoint, for direct links and caches. Genres accept repeated parameters or a comma-separated list.
// @Tags         search
// @Produce      json
// @Param        query        query string false "Free text query"
// @Param        genres       query []int  false "Genre IDs" collectionFormat(multi)
// @Param        status       query string false "Release status" Enums(released, upcoming)
// @Param        quick_filter query string false "Quick filter preset" Enums(featured, upcoming, new)
// @Param        sort         query string false "Sort order" Enums(relevance, name_asc, name_desc, date_asc, date_desc)
// @Param        page         query int    false "Page number (1-based)"
// @Param        per_page     query int    false "Page size, clamped to [1,50]"
// @Success      200 {object} types.SearchResponse "One page of matching game IDs"
// @Router       /api/v1/search [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := map[string]any{
			"query":        c.Query("query"),
			"status":       c.Query("status"),
			"quick_filter": c.Query("quick_filter"),
			"sort":         c.Query("sort"),
		}
		if genres := c.QueryArray("genres"); len(genres) > 0 {
			raw["genres"] = genres
		}
		if page := c.Query("page"); page != "" {
			raw["page"] = page
		}
		if perPage := c.Query("per_page"); perPage != "" {
			raw["per_page"] = perPage
		}

		result := deps.SearchService.Search(c.Request.Context(), raw)

		c.JSON(http.StatusOK, types.SearchResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Result:       result,
			Query:        c.Query("query"),
		})
	}
}
