package repositories

import (
	"errors"
	"fiber-ims/models"

	"gorm.io/gorm"
)

type InventoryRepository struct {
	db *gorm.DB
}

func NewInventoryRepository(db *gorm.DB) *InventoryRepository {
	return &InventoryRepository{db}
}

// UpsertInventory merges incoming stock into the row for
// (product, location). An existing row gets quantity += quantity and
// the incoming status; otherwise a new row is inserted. Repeated
// calls accumulate quantity rather than overwrite it.
func (r *InventoryRepository) UpsertInventory(productID, locationID uint, quantity int, status string) (models.Inventory, error) {
	var inventory models.Inventory

	err := r.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("product_id = ? AND location_id = ?", productID, locationID).
			First(&inventory).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			inventory = models.Inventory{
				ProductID:  productID,
				LocationID: locationID,
				Quantity:   quantity,
				Status:     status,
			}
			return tx.Create(&inventory).Error
		}
		if err != nil {
			return err
		}

		inventory.Quantity += quantity
		inventory.Status = status
		return tx.Save(&inventory).Error
	})

	return inventory, err
}

type listInventory struct {
	InventoryID uint   `json:"inventory_id"`
	ProductID   uint   `json:"product_id"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
	Status      string `json:"status"`
	Warehouse   string `json:"warehouse"`
	Zone        string `json:"zone"`
	Aisle       string `json:"aisle"`
	Bin         string `json:"bin"`
}

func (r *InventoryRepository) GetInventorySummary() ([]listInventory, error) {
	sqlInventory := `SELECT i.id AS inventory_id, p.id AS product_id, p.name AS product_name,
	i.quantity, i.status, w.name AS warehouse, l.zone, l.aisle, l.bin
	FROM inventories i
	INNER JOIN products p ON i.product_id = p.id
	INNER JOIN locations l ON i.location_id = l.id
	INNER JOIN warehouses w ON l.warehouse_id = w.id
	ORDER BY i.id`

	var inventories []listInventory
	if err := r.db.Raw(sqlInventory).Scan(&inventories).Error; err != nil {
		return nil, err
	}
	return inventories, nil
}

// TotalQuantity sums the product's stock across all locations.
func (r *InventoryRepository) TotalQuantity(productID uint) (int, error) {
	var result struct {
		Total int
	}
	err := r.db.Raw(`SELECT COALESCE(SUM(quantity), 0) AS total FROM inventories WHERE product_id = ?`, productID).
		Scan(&result).Error
	if err != nil {
		return 0, err
	}
	return result.Total, nil
}

// LowStockCount counts inventory rows at or below the dashboard
// low-stock level of 10 units.
func (r *InventoryRepository) LowStockCount() (int64, error) {
	var count int64
	err := r.db.Model(&models.Inventory{}).Where("quantity <= ?", 10).Count(&count).Error
	return count, err
}
