package routes

import (
	"github.com/admindocentes/backend/handlers"
	"github.com/admindocentes/backend/middleware"
	"github.com/gofiber/fiber/v2"
)

func AdminRoutes(app *fiber.App, h *handlers.AdminHandler, jwtSecret string) {
	api := app.Group("/api/v1")

	admin := api.Group("/admin", middleware.Protected(jwtSecret), middleware.AdminRequired())
	admin.Get("/dashboard-analytics", h.GetDashboardAnalytics)

	reports := admin.Group("/reports")
	reports.Get("", h.GetReports)
	reports.Get("/proposals.csv", h.ExportProposalsCSV)
}
