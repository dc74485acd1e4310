package routes

import (
	"fiber-ims/config"
	"fiber-ims/controllers"
	"fiber-ims/middleware"
	"fiber-ims/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupProductRoutes(app *fiber.App, db *gorm.DB) {
	productController := controllers.NewProductController(db)

	api := app.Group(config.MAIN_ROUTES+"/products", middleware.AuthMiddleware)
	api.Get("/", productController.GetProducts)
	api.Post("/", productController.CreateProduct)
	api.Delete("/:id", middleware.RequireRoles(models.RoleAdmin), productController.DeleteProduct)
}
