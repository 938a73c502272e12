package routes

import (
	"github.com/admindocentes/backend/handlers"
	"github.com/admindocentes/backend/middleware"
	"github.com/gofiber/fiber/v2"
)

func ProfileRoutes(app *fiber.App, h *handlers.ProfileHandler, jwtSecret string) {
	api := app.Group("/api/v1")
	protected := middleware.Protected(jwtSecret)

	api.Get("/state", protected, h.GetState)
	api.Post("/role", protected, h.SetRole)
	api.Put("/user-profile", protected, h.SetUserProfile)

	profile := api.Group("/teacher/profile", protected)
	profile.Put("", h.SaveProfile)
	profile.Get("", h.GetProfile)
	profile.Put("/schedule", h.UpdateSchedule)
	profile.Get("/schedule", h.GetSchedule)
	profile.Get("/schedule/catalog", h.ScheduleCatalog)
	profile.Put("/current", h.SetCurrentTeacher)
	profile.Post("/activate", h.Activate)
	profile.Post("/clear", h.ClearData)
}
