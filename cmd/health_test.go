package cmd

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"gamesync/core/database"
	"gamesync/core/storage"
	storagemocks "gamesync/core/storage/mocks"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func healthTestApp(t *testing.T, db *gorm.DB, client storage.Client) *fiber.App {
	t.Helper()
	app := fiber.New()
	app.Get("/health", healthHandler(db, client, "game-media"))
	return app
}

func healthTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	return db
}

func TestHealthHandler(t *testing.T) {
	t.Run("Healthy without storage", func(t *testing.T) {
		app := healthTestApp(t, healthTestDB(t), nil)

		resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var body map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "ok", body["status"])
		checks := body["checks"].(map[string]any)
		assert.Equal(t, "ok", checks["database"])
		assert.NotContains(t, checks, "storage")
	})

	t.Run("Healthy with reachable bucket", func(t *testing.T) {
		client := new(storagemocks.Client)
		client.On("BucketExists", mock.Anything, "game-media").Return(true, nil)
		app := healthTestApp(t, healthTestDB(t), client)

		resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var body map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		checks := body["checks"].(map[string]any)
		assert.Equal(t, "ok", checks["storage"])
		client.AssertExpectations(t)
	})

	t.Run("Degraded when database is unreachable", func(t *testing.T) {
		db := healthTestDB(t)
		sqlDB, err := db.DB()
		require.NoError(t, err)
		require.NoError(t, sqlDB.Close())
		app := healthTestApp(t, db, nil)

		resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)

		var body map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "degraded", body["status"])
	})

	t.Run("Degraded when bucket check fails", func(t *testing.T) {
		client := new(storagemocks.Client)
		client.On("BucketExists", mock.Anything, "game-media").
			Return(false, errors.New("connection refused"))
		app := healthTestApp(t, healthTestDB(t), client)

		resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)

		var body map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "degraded", body["status"])
		checks := body["checks"].(map[string]any)
		assert.Contains(t, checks["storage"], "connection refused")
	})

	t.Run("Degraded when bucket is missing", func(t *testing.T) {
		client := new(storagemocks.Client)
		client.On("BucketExists", mock.Anything, "game-media").Return(false, nil)
		app := healthTestApp(t, healthTestDB(t), client)

		resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)

		var body map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		checks := body["checks"].(map[string]any)
		assert.Equal(t, "bucket missing", checks["storage"])
	})
}
