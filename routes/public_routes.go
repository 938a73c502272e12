package routes

import (
	"github.com/admindocentes/backend/handlers"
	"github.com/gofiber/fiber/v2"
)

func PublicRoutes(app *fiber.App, h *handlers.LocationHandler) {
	api := app.Group("/api/v1")

	loc := api.Group("/locations")
	loc.Get("/provinces", h.ListProvinces)
	loc.Get("/cities", h.ListCities)
	loc.Get("/cities/search", h.SearchCities)
}
