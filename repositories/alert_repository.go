package repositories

import (
	"fiber-ims/models"
	"time"

	"gorm.io/gorm"
)

// Alert horizons in days, checked smallest first.
var expiryHorizons = [...]int{30, 60, 90}

type AlertRepository struct {
	db *gorm.DB
}

func NewAlertRepository(db *gorm.DB) *AlertRepository {
	return &AlertRepository{db}
}

type ExpiryAlert struct {
	ProductID    uint   `json:"product_id"`
	BatchNumber  string `json:"serial_or_batch_number"`
	DaysToExpiry int    `json:"days_to_expiry"`
	Horizon      int    `json:"horizon"`
}

// CheckExpiryAlerts returns one alert per serial/batch whose expiry
// falls within 90 days from today, carrying the smallest horizon of
// {30, 60, 90} it satisfies. Batches without an expiry date or
// already expired produce no alert.
func (r *AlertRepository) CheckExpiryAlerts() ([]ExpiryAlert, error) {
	var batches []models.SerialBatch
	if err := r.db.Where("expiry_date IS NOT NULL").Find(&batches).Error; err != nil {
		return nil, err
	}

	today := truncateToDay(time.Now())
	alerts := []ExpiryAlert{}

	for _, batch := range batches {
		if batch.ExpiryDate == nil {
			continue
		}
		days := int(truncateToDay(*batch.ExpiryDate).Sub(today).Hours() / 24)
		if days < 0 {
			continue
		}
		for _, horizon := range expiryHorizons {
			if days <= horizon {
				alerts = append(alerts, ExpiryAlert{
					ProductID:    batch.ProductID,
					BatchNumber:  batch.Number,
					DaysToExpiry: days,
					Horizon:      horizon,
				})
				break
			}
		}
	}

	return alerts, nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

type ReorderAlert struct {
	ProductID    uint `json:"product_id"`
	Quantity     int  `json:"quantity"`
	MinThreshold int  `json:"min_threshold"`
	ReorderPoint int  `json:"reorder_point"`
}

// CheckReorderAlerts returns every product with an auto-order-enabled
// rule whose total stock is at or below the rule's minimum threshold.
func (r *AlertRepository) CheckReorderAlerts() ([]ReorderAlert, error) {
	sqlReorder := `SELECT i.product_id, SUM(i.quantity) AS quantity, r.min_threshold, r.reorder_point
	FROM inventories i
	INNER JOIN reorder_rules r ON i.product_id = r.product_id
	WHERE r.auto_order_enabled = ?
	GROUP BY i.product_id, r.min_threshold, r.reorder_point
	HAVING SUM(i.quantity) <= r.min_threshold
	ORDER BY i.product_id`

	var alerts []ReorderAlert
	if err := r.db.Raw(sqlReorder, true).Scan(&alerts).Error; err != nil {
		return nil, err
	}
	return alerts, nil
}
