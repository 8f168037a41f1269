package genres

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noovas/games-catalog-api/api/types"
	"github.com/noovas/games-catalog-api/internal/database"
	"github.com/noovas/games-catalog-api/internal/models"
	"github.com/noovas/games-catalog-api/internal/services/catalog"
)

func testDeps(t *testing.T, genres ...models.Genre) *types.Dependencies {
	t.Helper()

	db, err := database.Initialize(":memory:", false)
	require.NoError(t, err)
	require.NoError(t, db.Migrate())
	t.Cleanup(func() { _ = db.Close() })

	for i := range genres {
		require.NoError(t, db.Create(&genres[i]).Error)
	}

	return &types.Dependencies{Catalog: catalog.NewRepository(db.DB)}
}

func TestGetGenres(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("lists genres ordered by name", func(t *testing.T) {
		deps := testDeps(t,
			models.Genre{Name: "Puzzle", Slug: "puzzle"},
			models.Genre{Name: "Action", Slug: "action"},
		)

		w := httptest.NewRecorder()
		_, router := gin.CreateTestContext(w)
		router.GET("/api/v1/genres", Get(deps))
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/genres", nil))

		assert.Equal(t, http.StatusOK, w.Code)

		var resp map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "ok", resp["status"])
		assert.Equal(t, float64(2), resp["count"])

		list := resp["genres"].([]interface{})
		assert.Equal(t, "Action", list[0].(map[string]interface{})["name"])
		assert.Equal(t, "Puzzle", list[1].(map[string]interface{})["name"])
	})

	t.Run("empty catalog", func(t *testing.T) {
		deps := testDeps(t)

		w := httptest.NewRecorder()
		_, router := gin.CreateTestContext(w)
		router.GET("/api/v1/genres", Get(deps))
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/genres", nil))

		assert.Equal(t, http.StatusOK, w.Code)

		var resp map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, float64(0), resp["count"])
	})
}
