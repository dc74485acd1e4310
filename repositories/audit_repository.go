package repositories

import (
	"fiber-ims/models"
	"time"

	"gorm.io/gorm"
)

type AuditRepository struct {
	db *gorm.DB
}

func NewAuditRepository(db *gorm.DB) *AuditRepository {
	return &AuditRepository{db}
}

// LogAudit appends an audit entry with the current timestamp.
func (r *AuditRepository) LogAudit(inventoryID uint, action, reason, changedBy string) (models.AuditLog, error) {
	entry := models.AuditLog{
		InventoryID: inventoryID,
		Action:      action,
		Reason:      reason,
		ChangedBy:   changedBy,
		Timestamp:   time.Now(),
	}

	if err := r.db.Create(&entry).Error; err != nil {
		return models.AuditLog{}, err
	}
	return entry, nil
}

func (r *AuditRepository) GetAuditLogs() ([]models.AuditLog, error) {
	var logs []models.AuditLog
	if err := r.db.Order("timestamp DESC").Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}
