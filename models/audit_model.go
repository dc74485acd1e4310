package models

import (
	"fiber-ims/controllers/idgen"
	"fiber-ims/types"
	"time"

	"gorm.io/gorm"
)

// AuditLog is an append-only trail of inventory adjustments.
type AuditLog struct {
	ID          types.SnowflakeID `json:"id" gorm:"primaryKey"`
	InventoryID uint              `json:"inventory_id"`
	Inventory   Inventory         `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Action      string            `json:"action"`
	Reason      string            `json:"reason"`
	ChangedBy   string            `json:"changed_by"`
	Timestamp   time.Time         `json:"timestamp"`
}

func (a *AuditLog) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == 0 {
		a.ID = types.SnowflakeID(idgen.GenerateID())
	}
	return
}
