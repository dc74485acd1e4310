package repositories

import (
	"fiber-ims/models"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedBatchExpiringIn(t *testing.T, db *gorm.DB, productID uint, number string, days int) {
	t.Helper()
	expiry := time.Now().AddDate(0, 0, days)
	batchRepo := NewSerialBatchRepository(db)
	_, err := batchRepo.AddSerialBatch(productID, number, models.KindBatch, &expiry, nil)
	require.NoError(t, err)
}

func TestExpiryAlertsUseSmallestSatisfyingHorizon(t *testing.T) {
	db := setupTestDB(t)
	product := seedProduct(t, db, "Vaccine")

	seedBatchExpiringIn(t, db, product.ID, "BATCH-25", 25)
	seedBatchExpiringIn(t, db, product.ID, "BATCH-45", 45)
	seedBatchExpiringIn(t, db, product.ID, "BATCH-80", 80)

	alertRepo := NewAlertRepository(db)
	alerts, err := alertRepo.CheckExpiryAlerts()
	require.NoError(t, err)
	require.Len(t, alerts, 3)

	byNumber := map[string]ExpiryAlert{}
	for _, alert := range alerts {
		byNumber[alert.BatchNumber] = alert
	}

	assert.Equal(t, 30, byNumber["BATCH-25"].Horizon)
	assert.Equal(t, 60, byNumber["BATCH-45"].Horizon)
	assert.Equal(t, 90, byNumber["BATCH-80"].Horizon)
	assert.InDelta(t, 25, byNumber["BATCH-25"].DaysToExpiry, 1)
}

func TestExpiredAndUndatedBatchesProduceNoAlert(t *testing.T) {
	db := setupTestDB(t)
	product := seedProduct(t, db, "Vaccine")

	seedBatchExpiringIn(t, db, product.ID, "BATCH-PAST", -1)

	batchRepo := NewSerialBatchRepository(db)
	_, err := batchRepo.AddSerialBatch(product.ID, "BATCH-NODATE", models.KindBatch, nil, nil)
	require.NoError(t, err)

	alertRepo := NewAlertRepository(db)
	alerts, err := alertRepo.CheckExpiryAlerts()
	require.NoError(t, err)
	assert.Empty(t, alerts)
}

func TestBatchBeyondNinetyDaysProducesNoAlert(t *testing.T) {
	db := setupTestDB(t)
	product := seedProduct(t, db, "Vaccine")

	seedBatchExpiringIn(t, db, product.ID, "BATCH-FAR", 120)

	alertRepo := NewAlertRepository(db)
	alerts, err := alertRepo.CheckExpiryAlerts()
	require.NoError(t, err)
	assert.Empty(t, alerts)
}

func TestReorderAlertMembership(t *testing.T) {
	db := setupTestDB(t)
	product := seedProduct(t, db, "Widget")
	_, location := seedWarehouseAndLocation(t, db)

	inventoryRepo := NewInventoryRepository(db)
	_, err := inventoryRepo.UpsertInventory(product.ID, location.ID, 5, models.StatusAvailable)
	require.NoError(t, err)

	reorderRepo := NewReorderRepository(db)
	_, err = reorderRepo.SetReorderRule(product.ID, 10, 30, true)
	require.NoError(t, err)

	alertRepo := NewAlertRepository(db)

	alerts, err := alertRepo.CheckReorderAlerts()
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, product.ID, alerts[0].ProductID)
	assert.Equal(t, 5, alerts[0].Quantity)
	assert.Equal(t, 10, alerts[0].MinThreshold)
	assert.Equal(t, 30, alerts[0].ReorderPoint)

	// stock above threshold drops the product from the alerts
	_, err = inventoryRepo.UpsertInventory(product.ID, location.ID, 20, models.StatusAvailable)
	require.NoError(t, err)

	alerts, err = alertRepo.CheckReorderAlerts()
	require.NoError(t, err)
	assert.Empty(t, alerts)
}

func TestReorderAlertRequiresAutoOrderEnabled(t *testing.T) {
	db := setupTestDB(t)
	product := seedProduct(t, db, "Widget")
	_, location := seedWarehouseAndLocation(t, db)

	inventoryRepo := NewInventoryRepository(db)
	_, err := inventoryRepo.UpsertInventory(product.ID, location.ID, 5, models.StatusAvailable)
	require.NoError(t, err)

	reorderRepo := NewReorderRepository(db)
	_, err = reorderRepo.SetReorderRule(product.ID, 10, 30, false)
	require.NoError(t, err)

	alertRepo := NewAlertRepository(db)
	alerts, err := alertRepo.CheckReorderAlerts()
	require.NoError(t, err)
	assert.Empty(t, alerts)

	// enable, then remove the rule entirely
	_, err = reorderRepo.SetReorderRule(product.ID, 10, 30, true)
	require.NoError(t, err)

	alerts, err = alertRepo.CheckReorderAlerts()
	require.NoError(t, err)
	assert.Len(t, alerts, 1)

	require.NoError(t, reorderRepo.DeleteReorderRule(product.ID))

	alerts, err = alertRepo.CheckReorderAlerts()
	require.NoError(t, err)
	assert.Empty(t, alerts)
}

func TestSetReorderRuleOverwritesExisting(t *testing.T) {
	db := setupTestDB(t)
	product := seedProduct(t, db, "Widget")

	reorderRepo := NewReorderRepository(db)
	_, err := reorderRepo.SetReorderRule(product.ID, 10, 30, true)
	require.NoError(t, err)
	_, err = reorderRepo.SetReorderRule(product.ID, 3, 15, false)
	require.NoError(t, err)

	rules, err := reorderRepo.GetReorderRules()
	require.NoError(t, err)
	require.Len(t, rules, 1)
	assert.Equal(t, 3, rules[0].MinThreshold)
	assert.Equal(t, 15, rules[0].ReorderPoint)
	assert.False(t, rules[0].AutoOrderEnabled)
}
