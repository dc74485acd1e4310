package routes

import (
	"fiber-ims/config"
	"fiber-ims/controllers"
	"fiber-ims/middleware"
	"fiber-ims/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupWarehouseRoutes(app *fiber.App, db *gorm.DB) {
	warehouseController := controllers.NewWarehouseController(db)

	api := app.Group(config.MAIN_ROUTES+"/warehouses", middleware.AuthMiddleware)
	api.Get("/", warehouseController.GetWarehouses)
	api.Post("/", warehouseController.CreateWarehouse)
	api.Delete("/:id", middleware.RequireRoles(models.RoleAdmin), warehouseController.DeleteWarehouse)
}
