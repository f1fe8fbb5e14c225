package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"phonefinder-be/internal/pkg/serverutils"
	"phonefinder-be/internal/repository/memory"
	"phonefinder-be/internal/service"
)

func newFavoriteApp() *fiber.App {
	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware())
	svc := service.NewFavoriteService(memory.NewFavoriteRepository())
	NewFavoriteController(svc).RegisterRoutes(app.Group("/api"))
	return app
}

func toggleFavorite(t *testing.T, app *fiber.App, id string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/favorite/v1/toggle",
		strings.NewReader(`{"id": "`+id+`"}`))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req, -1)
	require.NoError(t, err)
	return res
}

func TestToggleAndListFavorites(t *testing.T) {
	app := newFavoriteApp()

	res := toggleFavorite(t, app, "pixel-9")
	assert.Equal(t, http.StatusOK, res.StatusCode)

	res = toggleFavorite(t, app, "s24")
	assert.Equal(t, http.StatusOK, res.StatusCode)

	req := httptest.NewRequest(http.MethodGet, "/api/favorite/v1", nil)
	res, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var envelope struct {
		Success bool `json:"success"`
		Data    struct {
			Ids []string `json:"ids"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(res.Body).Decode(&envelope))
	assert.True(t, envelope.Success)
	assert.Equal(t, []string{"pixel-9", "s24"}, envelope.Data.Ids)
}

func TestToggleFavoriteRequiresId(t *testing.T) {
	app := newFavoriteApp()

	req := httptest.NewRequest(http.MethodPost, "/api/favorite/v1/toggle", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")

	res, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}
