package controllers

import (
	"errors"
	"fiber-ims/repositories"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type LocationController struct {
	DB *gorm.DB
}

func NewLocationController(DB *gorm.DB) *LocationController {
	return &LocationController{DB: DB}
}

func (c *LocationController) CreateLocation(ctx *fiber.Ctx) error {
	var locationInput struct {
		WarehouseID uint   `json:"warehouse_id" validate:"required"`
		Zone        string `json:"zone" validate:"required"`
		Aisle       string `json:"aisle" validate:"required"`
		Bin         string `json:"bin" validate:"required"`
	}

	if err := ctx.BodyParser(&locationInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(locationInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	locationRepo := repositories.NewLocationRepository(c.DB)
	location, err := locationRepo.CreateLocation(locationInput.WarehouseID, locationInput.Zone, locationInput.Aisle, locationInput.Bin)
	if err != nil {
		if errors.Is(err, repositories.ErrWarehouseNotFound) {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Location created successfully",
		"data":    location,
	})
}

func (c *LocationController) GetLocations(ctx *fiber.Ctx) error {
	locationRepo := repositories.NewLocationRepository(c.DB)
	locations, err := locationRepo.GetLocations()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"locations": locations},
	})
}
