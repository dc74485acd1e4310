package controllers

import (
	"fiber-ims/models"
	"fiber-ims/repositories"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

// GetDashboard returns the product/low-stock counters and the
// inventory summary, optionally filtered by a case-insensitive
// substring match on the product name (?search=).
func (c *DashboardController) GetDashboard(ctx *fiber.Ctx) error {
	var totalProducts int64
	if err := c.DB.Model(&models.Product{}).Count(&totalProducts).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	inventoryRepo := repositories.NewInventoryRepository(c.DB)
	lowStock, err := inventoryRepo.LowStockCount()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	inventories, err := inventoryRepo.GetInventorySummary()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if search := strings.ToLower(strings.TrimSpace(ctx.Query("search"))); search != "" {
		filtered := inventories[:0]
		for _, row := range inventories {
			if strings.Contains(strings.ToLower(row.ProductName), search) {
				filtered = append(filtered, row)
			}
		}
		inventories = filtered
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"total_products":  totalProducts,
			"low_stock_items": lowStock,
			"inventories":     inventories,
		},
	})
}
