package router

import (
	"github.com/Praachee19/Traffictracker/handler"

	"github.com/gofiber/fiber/v2"
)

// SetupRoutes setup router api
func SetupRoutes(app *fiber.App) {
	api := app.Group("/v1")
	api.Get("/", handler.Ping)

	// Dashboard
	dash := api.Group("/dashboard")
	dash.Get("/", handler.GetDashboard)
	dash.Post("/", handler.UploadDashboard)

	// Sample dataset
	api.Get("/sample.csv", handler.GetSampleCSV)
}
