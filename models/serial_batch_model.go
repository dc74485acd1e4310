package models

import "time"

// Serial/batch kinds
const (
	KindSerial = "serial"
	KindBatch  = "batch"
)

type SerialBatch struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	ProductID    uint       `json:"product_id"`
	Product      Product    `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Number       string     `json:"serial_or_batch_number" gorm:"column:serial_or_batch_number"`
	Kind         string     `json:"kind"`
	ExpiryDate   *time.Time `json:"expiry_date" gorm:"type:date"`
	ReceivedDate *time.Time `json:"received_date" gorm:"type:date"`
}
