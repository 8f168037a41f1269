package genres

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/noovas/games-catalog-api/api/types"
)

// Get returns all catalog genres
// @Summary      List genres
// @Description  Returns every genre in the catalog, ordered by name. Useful for building filter UIs.
// @Tags         catalog
// @Produce      json
// @Success      200 {object} types.GenresResponse "All genres"
// @Failure      500 {object} types.ErrorResponse "Internal server error"
// @Router       /api/v1/genres [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		genreList, err := deps.Catalog.ListGenres(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Failed to list genres",
				Details: err.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, types.GenresResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Genres:       genreList,
			Count:        len(genreList),
		})
	}
}
