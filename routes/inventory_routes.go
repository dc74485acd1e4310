package routes

import (
	"fiber-ims/config"
	"fiber-ims/controllers"
	"fiber-ims/middleware"
	"fiber-ims/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupInventoryRoutes(app *fiber.App, db *gorm.DB) {
	inventoryController := controllers.NewInventoryController(db)

	api := app.Group(config.MAIN_ROUTES+"/inventory", middleware.AuthMiddleware)
	api.Get("/", inventoryController.GetInventorySummary)
	api.Post("/", middleware.RequireRoles(models.RoleAdmin, models.RoleManager), inventoryController.UpsertInventory)
}
