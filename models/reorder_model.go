package models

// ReorderRule is keyed by product: setting a rule for an already
// ruled product overwrites it.
type ReorderRule struct {
	ProductID        uint    `json:"product_id" gorm:"primaryKey"`
	Product          Product `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	MinThreshold     int     `json:"min_threshold"`
	ReorderPoint     int     `json:"reorder_point"`
	AutoOrderEnabled bool    `json:"auto_order_enabled"`
}
