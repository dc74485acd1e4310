package controllers

import (
	"errors"
	"fiber-ims/repositories"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type WarehouseController struct {
	DB *gorm.DB
}

func NewWarehouseController(DB *gorm.DB) *WarehouseController {
	return &WarehouseController{DB: DB}
}

func (c *WarehouseController) CreateWarehouse(ctx *fiber.Ctx) error {
	var warehouseInput struct {
		Name     string `json:"name" validate:"required"`
		Location string `json:"location"`
	}

	if err := ctx.BodyParser(&warehouseInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(warehouseInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	warehouseRepo := repositories.NewWarehouseRepository(c.DB)
	warehouse, err := warehouseRepo.CreateWarehouse(warehouseInput.Name, warehouseInput.Location)
	if err != nil {
		if errors.Is(err, repositories.ErrNameRequired) {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Warehouse created successfully",
		"data":    warehouse,
	})
}

func (c *WarehouseController) GetWarehouses(ctx *fiber.Ctx) error {
	warehouseRepo := repositories.NewWarehouseRepository(c.DB)
	warehouses, err := warehouseRepo.GetWarehouses()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"warehouses": warehouses},
	})
}

func (c *WarehouseController) DeleteWarehouse(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	warehouseRepo := repositories.NewWarehouseRepository(c.DB)
	if err := warehouseRepo.DeleteWarehouse(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Warehouse not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"message": "Warehouse deleted successfully",
	})
}
