package repositories

import (
	"fiber-ims/models"
	"time"

	"gorm.io/gorm"
)

type SerialBatchRepository struct {
	db *gorm.DB
}

func NewSerialBatchRepository(db *gorm.DB) *SerialBatchRepository {
	return &SerialBatchRepository{db}
}

func (r *SerialBatchRepository) AddSerialBatch(productID uint, number, kind string, expiryDate, receivedDate *time.Time) (models.SerialBatch, error) {
	batch := models.SerialBatch{
		ProductID:    productID,
		Number:       number,
		Kind:         kind,
		ExpiryDate:   expiryDate,
		ReceivedDate: receivedDate,
	}

	if err := r.db.Create(&batch).Error; err != nil {
		return models.SerialBatch{}, err
	}
	return batch, nil
}

func (r *SerialBatchRepository) GetSerialBatches() ([]models.SerialBatch, error) {
	var batches []models.SerialBatch
	if err := r.db.Order("id").Find(&batches).Error; err != nil {
		return nil, err
	}
	return batches, nil
}
