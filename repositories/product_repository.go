package repositories

import (
	"errors"
	"fiber-ims/models"
	"strings"

	"gorm.io/gorm"
)

var ErrNameRequired = errors.New("name is required")

type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db}
}

func (r *ProductRepository) CreateProduct(name, description, category string) (models.Product, error) {
	if strings.TrimSpace(name) == "" {
		return models.Product{}, ErrNameRequired
	}

	product := models.Product{
		Name:        name,
		Description: description,
		Category:    category,
	}

	if err := r.db.Create(&product).Error; err != nil {
		return models.Product{}, err
	}
	return product, nil
}

func (r *ProductRepository) GetProducts() ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Order("id").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// DeleteProduct removes a product. Inventory, serial/batch, reorder
// rule and movement rows follow through the schema's cascade rules.
func (r *ProductRepository) DeleteProduct(id uint) error {
	result := r.db.Delete(&models.Product{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
