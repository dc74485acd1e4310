package controllers

import (
	"net/http/httptest"
	"strings"
	"testing"

	"fiber-ims/models"
	"fiber-ims/repositories"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postJSON(t *testing.T, app *fiber.App, path, body string) int {
	t.Helper()

	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestCreateSerialBatchValidatesDates(t *testing.T) {
	db := setupTestDB(t)
	product, _ := seedStock(t, db, "Vaccine", 10)

	batchController := NewSerialBatchController(db)
	app := fiber.New()
	app.Post("/serial-batches", batchController.CreateSerialBatch)

	status := postJSON(t, app, "/serial-batches",
		`{"product_id": `+itoa(product.ID)+`, "serial_or_batch_number": "B-1", "kind": "batch", "expiry_date": "31/12/2026"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)

	status = postJSON(t, app, "/serial-batches",
		`{"product_id": `+itoa(product.ID)+`, "serial_or_batch_number": "B-1", "kind": "batch", "expiry_date": "2026-12-31"}`)
	assert.Equal(t, fiber.StatusCreated, status)

	batchRepo := repositories.NewSerialBatchRepository(db)
	batches, err := batchRepo.GetSerialBatches()
	require.NoError(t, err)
	require.Len(t, batches, 1)
	assert.Equal(t, models.KindBatch, batches[0].Kind)
	require.NotNil(t, batches[0].ExpiryDate)
	assert.Equal(t, "2026-12-31", batches[0].ExpiryDate.Format("2006-01-02"))
}

func TestCreateSerialBatchRejectsUnknownKind(t *testing.T) {
	db := setupTestDB(t)
	product, _ := seedStock(t, db, "Vaccine", 10)

	batchController := NewSerialBatchController(db)
	app := fiber.New()
	app.Post("/serial-batches", batchController.CreateSerialBatch)

	status := postJSON(t, app, "/serial-batches",
		`{"product_id": `+itoa(product.ID)+`, "serial_or_batch_number": "B-1", "kind": "lot"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
}
