package models

type Warehouse struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Name     string `json:"name" gorm:"not null"`
	Location string `json:"location"`
}

type Location struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	WarehouseID uint      `json:"warehouse_id"`
	Warehouse   Warehouse `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Zone        string    `json:"zone"`
	Aisle       string    `json:"aisle"`
	Bin         string    `json:"bin"`
}
