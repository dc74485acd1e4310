package repositories

import (
	"errors"
	"fiber-ims/models"
	"time"

	"gorm.io/gorm"
)

var (
	ErrInsufficientStock = errors.New("insufficient stock for sale movement")
	ErrNoInventory       = errors.New("product has no inventory row to adjust")
)

type MovementRepository struct {
	db *gorm.DB
}

func NewMovementRepository(db *gorm.DB) *MovementRepository {
	return &MovementRepository{db}
}

// LogMovement appends a stock movement with the current timestamp.
// A "sale" decrements the product's inventory by quantity and a
// "restock" increments it; any other kind records the log entry only.
func (r *MovementRepository) LogMovement(productID uint, quantity int, fromLocationID, toLocationID *uint, movementType string) (models.StockMovement, error) {
	movement := models.StockMovement{
		ProductID:      productID,
		Quantity:       quantity,
		FromLocationID: fromLocationID,
		ToLocationID:   toLocationID,
		MovementType:   movementType,
		Timestamp:      time.Now(),
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&movement).Error; err != nil {
			return err
		}

		switch movementType {
		case models.MovementSale:
			return applyQuantityDelta(tx, productID, fromLocationID, -quantity)
		case models.MovementRestock:
			return applyQuantityDelta(tx, productID, toLocationID, quantity)
		}
		return nil
	})

	if err != nil {
		return models.StockMovement{}, err
	}
	return movement, nil
}

// applyQuantityDelta adjusts a single inventory row so the product
// total changes by exactly delta. The row at locationID is preferred
// when one exists there; otherwise the product's first row is used.
// A restock with no existing row creates one at the destination.
func applyQuantityDelta(tx *gorm.DB, productID uint, locationID *uint, delta int) error {
	var inventory models.Inventory

	if locationID != nil {
		err := tx.Where("product_id = ? AND location_id = ?", productID, *locationID).
			First(&inventory).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
	}

	if inventory.ID == 0 {
		err := tx.Where("product_id = ?", productID).Order("id").First(&inventory).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if delta > 0 && locationID != nil {
				return tx.Create(&models.Inventory{
					ProductID:  productID,
					LocationID: *locationID,
					Quantity:   delta,
					Status:     models.StatusAvailable,
				}).Error
			}
			return ErrNoInventory
		}
		if err != nil {
			return err
		}
	}

	if inventory.Quantity+delta < 0 {
		return ErrInsufficientStock
	}

	return tx.Model(&inventory).
		UpdateColumn("quantity", gorm.Expr("quantity + ?", delta)).Error
}

func (r *MovementRepository) GetMovements() ([]models.StockMovement, error) {
	var movements []models.StockMovement
	if err := r.db.Order("timestamp DESC").Find(&movements).Error; err != nil {
		return nil, err
	}
	return movements, nil
}
