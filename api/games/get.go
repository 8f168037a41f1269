package games

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/noovas/games-catalog-api/api/types"
	"github.com/noovas/games-catalog-api/internal/services/catalog"
)

// Get returns a single game by ID
// @Summary      Get a game
// @Description  Returns one catalog entry with its genres.
// @Tags         catalog
// @Produce      json
// @Param        id path int true "Game ID"
// @Success      200 {object} types.GameResponse "The game"
// @Failure      400 {object} types.ErrorResponse "Invalid ID"
// @Failure      404 {object} types.ErrorResponse "Game not found"
// @Failure      500 {object} types.ErrorResponse "Internal server error"
// @Router       /api/v1/games/{id} [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil || id <= 0 {
			c.JSON(http.StatusBadRequest, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Invalid game ID",
			})
			return
		}

		game, err := deps.Catalog.GetGameByID(c.Request.Context(), id)
		if err != nil {
			if catalog.IsNotFound(err) {
				c.JSON(http.StatusNotFound, types.ErrorResponse{
					Status:  types.StatusError,
					Message: "Game not found",
				})
				return
			}
			c.JSON(http.StatusInternalServerError, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Failed to load game",
				Details: err.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, types.GameResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Game:         game,
		})
	}
}
