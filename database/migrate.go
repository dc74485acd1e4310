package database

import (
	"fiber-ims/models"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Warehouse{},
		&models.Location{},
		&models.Inventory{},
		&models.SerialBatch{},
		&models.StockMovement{},
		&models.ReorderRule{},
		&models.AuditLog{},
	)
}
