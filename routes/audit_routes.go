package routes

import (
	"fiber-ims/config"
	"fiber-ims/controllers"
	"fiber-ims/middleware"
	"fiber-ims/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupAuditRoutes(app *fiber.App, db *gorm.DB) {
	auditController := controllers.NewAuditController(db)

	api := app.Group(config.MAIN_ROUTES+"/adjustments", middleware.AuthMiddleware,
		middleware.RequireRoles(models.RoleAdmin))
	api.Get("/", auditController.GetAuditLogs)
	api.Post("/", auditController.CreateAdjustment)
}
