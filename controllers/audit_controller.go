package controllers

import (
	"fiber-ims/repositories"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type AuditController struct {
	DB *gorm.DB
}

func NewAuditController(DB *gorm.DB) *AuditController {
	return &AuditController{DB: DB}
}

// CreateAdjustment records an inventory adjustment in the audit
// trail. The acting user is taken from the session token, not the
// request body.
func (c *AuditController) CreateAdjustment(ctx *fiber.Ctx) error {
	var adjustmentInput struct {
		InventoryID uint   `json:"inventory_id" validate:"required"`
		Action      string `json:"action" validate:"required"`
		Reason      string `json:"reason" validate:"required"`
	}

	if err := ctx.BodyParser(&adjustmentInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(adjustmentInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	username, _ := ctx.Locals("username").(string)

	auditRepo := repositories.NewAuditRepository(c.DB)
	entry, err := auditRepo.LogAudit(adjustmentInput.InventoryID, adjustmentInput.Action, adjustmentInput.Reason, username)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Adjustment logged",
		"data":    entry,
	})
}

func (c *AuditController) GetAuditLogs(ctx *fiber.Ctx) error {
	auditRepo := repositories.NewAuditRepository(c.DB)
	logs, err := auditRepo.GetAuditLogs()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"audit_logs": logs},
	})
}
