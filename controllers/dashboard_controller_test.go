package controllers

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type dashboardPayload struct {
	Success bool `json:"success"`
	Data    struct {
		TotalProducts int64 `json:"total_products"`
		LowStockItems int64 `json:"low_stock_items"`
		Inventories   []struct {
			ProductName string `json:"product_name"`
			Quantity    int    `json:"quantity"`
		} `json:"inventories"`
	} `json:"data"`
}

func getDashboard(t *testing.T, app *fiber.App, path string) dashboardPayload {
	t.Helper()

	resp, err := app.Test(httptest.NewRequest("GET", path, nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var payload dashboardPayload
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	return payload
}

func TestDashboardCountersAndSearch(t *testing.T) {
	db := setupTestDB(t)
	seedStock(t, db, "Steel Bolt", 3)

	dashboardController := NewDashboardController(db)
	app := fiber.New()
	app.Get("/dashboard", dashboardController.GetDashboard)

	payload := getDashboard(t, app, "/dashboard")
	assert.True(t, payload.Success)
	assert.EqualValues(t, 1, payload.Data.TotalProducts)
	assert.EqualValues(t, 1, payload.Data.LowStockItems)
	require.Len(t, payload.Data.Inventories, 1)
	assert.Equal(t, "Steel Bolt", payload.Data.Inventories[0].ProductName)

	// search is a case-insensitive substring match on the product name
	payload = getDashboard(t, app, "/dashboard?search=bolt")
	assert.Len(t, payload.Data.Inventories, 1)

	payload = getDashboard(t, app, "/dashboard?search=copper")
	assert.Empty(t, payload.Data.Inventories)
}
