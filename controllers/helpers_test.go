package controllers

import (
	"fiber-ims/controllers/idgen"
	"fiber-ims/database"
	"fiber-ims/models"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	idgen.Init()

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return db
}

func seedStock(t *testing.T, db *gorm.DB, productName string, quantity int) (models.Product, models.Location) {
	t.Helper()

	warehouse := models.Warehouse{Name: "Main Warehouse", Location: "Jakarta"}
	require.NoError(t, db.Create(&warehouse).Error)

	location := models.Location{WarehouseID: warehouse.ID, Zone: "A", Aisle: "1", Bin: "B1"}
	require.NoError(t, db.Create(&location).Error)

	product := models.Product{Name: productName, Category: "test"}
	require.NoError(t, db.Create(&product).Error)

	inventory := models.Inventory{
		ProductID:  product.ID,
		LocationID: location.ID,
		Quantity:   quantity,
		Status:     models.StatusAvailable,
	}
	require.NoError(t, db.Create(&inventory).Error)

	return product, location
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
