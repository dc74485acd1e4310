package models

// Inventory status values
const (
	StatusAvailable = "available"
	StatusReserved  = "reserved"
	StatusInTransit = "in-transit"
	StatusDamaged   = "damaged"
)

// Inventory holds the stock of one product at one location. The
// (product_id, location_id) pair is kept unique by the upsert in the
// inventory repository, not by a database constraint.
type Inventory struct {
	ID         uint     `json:"id" gorm:"primaryKey"`
	ProductID  uint     `json:"product_id" gorm:"index:idx_inventory_product_location"`
	Product    Product  `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	LocationID uint     `json:"location_id" gorm:"index:idx_inventory_product_location"`
	Location   Location `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Quantity   int      `json:"quantity" gorm:"default:0"`
	Status     string   `json:"status" gorm:"default:'available'"`
}
