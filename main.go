package main

import (
	"fiber-ims/config"
	"fiber-ims/controllers/idgen"
	"fiber-ims/database"
	"fiber-ims/routes"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
)

func main() {

	config.LoadConfig()

	app := fiber.New()

	// Connect to database
	db, err := database.OpenDatabaseConnection()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto migrate models
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to auto migrate: %v", err)
	}

	idgen.Init()
	database.RunSeeders(db)

	// Setup CORS middleware
	config.SetupCORS(app)

	// Setup routes
	routes.SetupAuthRoutes(app, db)
	routes.SetupDashboardRoutes(app, db)
	routes.SetupProductRoutes(app, db)
	routes.SetupWarehouseRoutes(app, db)
	routes.SetupLocationRoutes(app, db)
	routes.SetupInventoryRoutes(app, db)
	routes.SetupMovementRoutes(app, db)
	routes.SetupSerialBatchRoutes(app, db)
	routes.SetupReorderRoutes(app, db)
	routes.SetupAuditRoutes(app, db)
	routes.SetupReportRoutes(app, db)

	port := config.APP_PORT
	fmt.Println("🚀 Server running on port " + port)

	if err := app.Listen(":" + port); err != nil {
		log.Fatal(err)
	}
}
