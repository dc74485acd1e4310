package repositories

import (
	"fiber-ims/models"
	"strings"

	"gorm.io/gorm"
)

type WarehouseRepository struct {
	db *gorm.DB
}

func NewWarehouseRepository(db *gorm.DB) *WarehouseRepository {
	return &WarehouseRepository{db}
}

func (r *WarehouseRepository) CreateWarehouse(name, location string) (models.Warehouse, error) {
	if strings.TrimSpace(name) == "" {
		return models.Warehouse{}, ErrNameRequired
	}

	warehouse := models.Warehouse{Name: name, Location: location}
	if err := r.db.Create(&warehouse).Error; err != nil {
		return models.Warehouse{}, err
	}
	return warehouse, nil
}

func (r *WarehouseRepository) GetWarehouses() ([]models.Warehouse, error) {
	var warehouses []models.Warehouse
	if err := r.db.Order("id").Find(&warehouses).Error; err != nil {
		return nil, err
	}
	return warehouses, nil
}

// DeleteWarehouse removes a warehouse. Its locations and their
// inventory rows follow through the cascade rules.
func (r *WarehouseRepository) DeleteWarehouse(id uint) error {
	result := r.db.Delete(&models.Warehouse{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
