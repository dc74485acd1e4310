package routes

import (
	"fiber-ims/config"
	"fiber-ims/controllers"
	"fiber-ims/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupLocationRoutes(app *fiber.App, db *gorm.DB) {
	locationController := controllers.NewLocationController(db)

	api := app.Group(config.MAIN_ROUTES+"/locations", middleware.AuthMiddleware)
	api.Get("/", locationController.GetLocations)
	api.Post("/", locationController.CreateLocation)
}
