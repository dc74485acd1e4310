package controllers

import (
	"fiber-ims/repositories"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type InventoryController struct {
	DB *gorm.DB
}

func NewInventoryController(DB *gorm.DB) *InventoryController {
	return &InventoryController{DB: DB}
}

// UpsertInventory merges stock into the (product, location) row.
// Quantities accumulate across calls; the latest status wins.
func (c *InventoryController) UpsertInventory(ctx *fiber.Ctx) error {
	var inventoryInput struct {
		ProductID  uint   `json:"product_id" validate:"required"`
		LocationID uint   `json:"location_id" validate:"required"`
		Quantity   *int   `json:"quantity" validate:"required"`
		Status     string `json:"status" validate:"required,oneof=available reserved in-transit damaged"`
	}

	if err := ctx.BodyParser(&inventoryInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(inventoryInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if *inventoryInput.Quantity < 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Quantity cannot be negative"})
	}

	inventoryRepo := repositories.NewInventoryRepository(c.DB)
	inventory, err := inventoryRepo.UpsertInventory(
		inventoryInput.ProductID,
		inventoryInput.LocationID,
		*inventoryInput.Quantity,
		inventoryInput.Status,
	)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Inventory updated successfully",
		"data":    inventory,
	})
}

func (c *InventoryController) GetInventorySummary(ctx *fiber.Ctx) error {
	inventoryRepo := repositories.NewInventoryRepository(c.DB)
	inventories, err := inventoryRepo.GetInventorySummary()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"inventories": inventories},
	})
}
