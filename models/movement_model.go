package models

import (
	"fiber-ims/controllers/idgen"
	"fiber-ims/types"
	"time"

	"gorm.io/gorm"
)

// Movement kinds with quantity side effects. Other kinds (transfer,
// return, ...) are recorded as log entries only.
const (
	MovementSale    = "sale"
	MovementRestock = "restock"
)

// StockMovement is an append-only log. Rows are never updated or
// deleted by the application.
type StockMovement struct {
	ID             types.SnowflakeID `json:"id" gorm:"primaryKey"`
	ProductID      uint              `json:"product_id"`
	Product        Product           `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Quantity       int               `json:"quantity"`
	FromLocationID *uint             `json:"from_location_id"`
	FromLocation   *Location         `json:"-" gorm:"foreignKey:FromLocationID;constraint:OnDelete:SET NULL"`
	ToLocationID   *uint             `json:"to_location_id"`
	ToLocation     *Location         `json:"-" gorm:"foreignKey:ToLocationID;constraint:OnDelete:SET NULL"`
	MovementType   string            `json:"movement_type"`
	Timestamp      time.Time         `json:"timestamp"`
}

func (m *StockMovement) BeforeCreate(tx *gorm.DB) (err error) {
	if m.ID == 0 {
		m.ID = types.SnowflakeID(idgen.GenerateID())
	}
	return
}
