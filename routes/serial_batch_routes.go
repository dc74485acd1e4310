package routes

import (
	"fiber-ims/config"
	"fiber-ims/controllers"
	"fiber-ims/middleware"
	"fiber-ims/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupSerialBatchRoutes(app *fiber.App, db *gorm.DB) {
	serialBatchController := controllers.NewSerialBatchController(db)

	api := app.Group(config.MAIN_ROUTES+"/serial-batches", middleware.AuthMiddleware,
		middleware.RequireRoles(models.RoleAdmin, models.RoleManager))
	api.Get("/", serialBatchController.GetSerialBatches)
	api.Post("/", serialBatchController.CreateSerialBatch)
}
