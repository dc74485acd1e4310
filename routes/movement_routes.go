package routes

import (
	"fiber-ims/config"
	"fiber-ims/controllers"
	"fiber-ims/middleware"
	"fiber-ims/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupMovementRoutes(app *fiber.App, db *gorm.DB) {
	movementController := controllers.NewMovementController(db)

	api := app.Group(config.MAIN_ROUTES+"/movements", middleware.AuthMiddleware,
		middleware.RequireRoles(models.RoleAdmin, models.RoleManager))
	api.Get("/", movementController.GetMovements)
	api.Post("/", movementController.CreateMovement)
}
