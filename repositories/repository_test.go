package repositories

import (
	"fiber-ims/controllers/idgen"
	"fiber-ims/database"
	"fiber-ims/models"
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
	// one connection so every statement sees the same in-memory database
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return db
}

func seedProduct(t *testing.T, db *gorm.DB, name string) models.Product {
	t.Helper()
	product := models.Product{Name: name, Description: "test product", Category: "test"}
	require.NoError(t, db.Create(&product).Error)
	return product
}

func seedWarehouseAndLocation(t *testing.T, db *gorm.DB) (models.Warehouse, models.Location) {
	t.Helper()
	warehouse := models.Warehouse{Name: "Main Warehouse", Location: "Jakarta"}
	require.NoError(t, db.Create(&warehouse).Error)

	location := models.Location{WarehouseID: warehouse.ID, Zone: "A", Aisle: "1", Bin: "B1"}
	require.NoError(t, db.Create(&location).Error)
	return warehouse, location
}
