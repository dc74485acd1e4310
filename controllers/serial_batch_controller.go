package controllers

import (
	"fiber-ims/repositories"
	"time"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type SerialBatchController struct {
	DB *gorm.DB
}

func NewSerialBatchController(DB *gorm.DB) *SerialBatchController {
	return &SerialBatchController{DB: DB}
}

func (c *SerialBatchController) CreateSerialBatch(ctx *fiber.Ctx) error {
	var batchInput struct {
		ProductID    uint   `json:"product_id" validate:"required"`
		Number       string `json:"serial_or_batch_number" validate:"required"`
		Kind         string `json:"kind" validate:"required,oneof=serial batch"`
		ExpiryDate   string `json:"expiry_date"`
		ReceivedDate string `json:"received_date"`
	}

	if err := ctx.BodyParser(&batchInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(batchInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	expiryDate, err := parseOptionalDate(batchInput.ExpiryDate)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid expiry date, use YYYY-MM-DD"})
	}
	receivedDate, err := parseOptionalDate(batchInput.ReceivedDate)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid received date, use YYYY-MM-DD"})
	}

	batchRepo := repositories.NewSerialBatchRepository(c.DB)
	batch, err := batchRepo.AddSerialBatch(batchInput.ProductID, batchInput.Number, batchInput.Kind, expiryDate, receivedDate)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Serial/Batch created successfully",
		"data":    batch,
	})
}

func (c *SerialBatchController) GetSerialBatches(ctx *fiber.Ctx) error {
	batchRepo := repositories.NewSerialBatchRepository(c.DB)
	batches, err := batchRepo.GetSerialBatches()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"serial_batches": batches},
	})
}

func parseOptionalDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
