package routes

import (
	"fiber-ims/config"
	"fiber-ims/controllers"
	"fiber-ims/middleware"
	"fiber-ims/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupReorderRoutes(app *fiber.App, db *gorm.DB) {
	reorderController := controllers.NewReorderController(db)

	api := app.Group(config.MAIN_ROUTES+"/reorder-rules", middleware.AuthMiddleware,
		middleware.RequireRoles(models.RoleAdmin))
	api.Get("/", reorderController.GetReorderRules)
	api.Post("/", reorderController.SetReorderRule)
}
