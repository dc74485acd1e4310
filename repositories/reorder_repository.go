package repositories

import (
	"fiber-ims/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ReorderRepository struct {
	db *gorm.DB
}

func NewReorderRepository(db *gorm.DB) *ReorderRepository {
	return &ReorderRepository{db}
}

// SetReorderRule upserts the per-product rule: setting a rule for an
// already ruled product overwrites it.
func (r *ReorderRepository) SetReorderRule(productID uint, minThreshold, reorderPoint int, autoOrderEnabled bool) (models.ReorderRule, error) {
	rule := models.ReorderRule{
		ProductID:        productID,
		MinThreshold:     minThreshold,
		ReorderPoint:     reorderPoint,
		AutoOrderEnabled: autoOrderEnabled,
	}

	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "product_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"min_threshold", "reorder_point", "auto_order_enabled"}),
	}).Create(&rule).Error
	if err != nil {
		return models.ReorderRule{}, err
	}
	return rule, nil
}

func (r *ReorderRepository) GetReorderRules() ([]models.ReorderRule, error) {
	var rules []models.ReorderRule
	if err := r.db.Order("product_id").Find(&rules).Error; err != nil {
		return nil, err
	}
	return rules, nil
}

func (r *ReorderRepository) DeleteReorderRule(productID uint) error {
	result := r.db.Delete(&models.ReorderRule{}, productID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
