package controllers

import (
	"fiber-ims/repositories"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ReorderController struct {
	DB *gorm.DB
}

func NewReorderController(DB *gorm.DB) *ReorderController {
	return &ReorderController{DB: DB}
}

func (c *ReorderController) SetReorderRule(ctx *fiber.Ctx) error {
	var ruleInput struct {
		ProductID        uint `json:"product_id" validate:"required"`
		MinThreshold     *int `json:"min_threshold" validate:"required"`
		ReorderPoint     *int `json:"reorder_point" validate:"required"`
		AutoOrderEnabled bool `json:"auto_order_enabled"`
	}

	if err := ctx.BodyParser(&ruleInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(ruleInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if *ruleInput.MinThreshold < 0 || *ruleInput.ReorderPoint < 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Thresholds cannot be negative"})
	}

	reorderRepo := repositories.NewReorderRepository(c.DB)
	rule, err := reorderRepo.SetReorderRule(
		ruleInput.ProductID,
		*ruleInput.MinThreshold,
		*ruleInput.ReorderPoint,
		ruleInput.AutoOrderEnabled,
	)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Reorder rule set",
		"data":    rule,
	})
}

func (c *ReorderController) GetReorderRules(ctx *fiber.Ctx) error {
	reorderRepo := repositories.NewReorderRepository(c.DB)
	rules, err := reorderRepo.GetReorderRules()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"reorder_rules": rules},
	})
}
