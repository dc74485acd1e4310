package controllers

import (
	"errors"
	"fiber-ims/repositories"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type MovementController struct {
	DB *gorm.DB
}

func NewMovementController(DB *gorm.DB) *MovementController {
	return &MovementController{DB: DB}
}

func (c *MovementController) CreateMovement(ctx *fiber.Ctx) error {
	var movementInput struct {
		ProductID      uint   `json:"product_id" validate:"required"`
		Quantity       *int   `json:"quantity" validate:"required"`
		FromLocationID *uint  `json:"from_location_id"`
		ToLocationID   *uint  `json:"to_location_id"`
		MovementType   string `json:"movement_type" validate:"required"`
	}

	if err := ctx.BodyParser(&movementInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(movementInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if *movementInput.Quantity < 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Quantity cannot be negative"})
	}

	movementRepo := repositories.NewMovementRepository(c.DB)
	movement, err := movementRepo.LogMovement(
		movementInput.ProductID,
		*movementInput.Quantity,
		movementInput.FromLocationID,
		movementInput.ToLocationID,
		movementInput.MovementType,
	)
	if err != nil {
		if errors.Is(err, repositories.ErrInsufficientStock) || errors.Is(err, repositories.ErrNoInventory) {
			return ctx.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Movement recorded",
		"data":    movement,
	})
}

func (c *MovementController) GetMovements(ctx *fiber.Ctx) error {
	movementRepo := repositories.NewMovementRepository(c.DB)
	movements, err := movementRepo.GetMovements()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"movements": movements},
	})
}
