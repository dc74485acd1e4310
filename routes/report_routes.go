package routes

import (
	"fiber-ims/config"
	"fiber-ims/controllers"
	"fiber-ims/middleware"
	"fiber-ims/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupReportRoutes(app *fiber.App, db *gorm.DB) {
	reportController := controllers.NewReportController(db)

	api := app.Group(config.MAIN_ROUTES+"/reports", middleware.AuthMiddleware)
	api.Get("/inventory-summary", reportController.InventorySummaryReport)
	api.Get("/expiry-alerts", reportController.ExpiryAlertsReport)
	api.Get("/reorder-alerts", reportController.ReorderAlertsReport)
	api.Get("/audit-logs", middleware.RequireRoles(models.RoleAdmin), reportController.AuditLogsReport)
}
