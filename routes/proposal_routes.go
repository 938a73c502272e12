package routes

import (
	"github.com/admindocentes/backend/handlers"
	"github.com/admindocentes/backend/middleware"
	"github.com/gofiber/fiber/v2"
)

func ProposalRoutes(app *fiber.App, h *handlers.ProposalHandler, jwtSecret string) {
	api := app.Group("/api/v1")

	// Prospective students submit proposals without a session.
	api.Post("/proposals", h.CreateProposal)

	admin := api.Group("/proposals", middleware.Protected(jwtSecret), middleware.AdminRequired())
	admin.Get("", h.ListProposals)
	admin.Get("/:proposalId", h.GetProposal)
	admin.Put("/:proposalId", h.UpdateProposal)
	admin.Patch("/:proposalId/status", h.UpdateProposalStatus)
	admin.Delete("/:proposalId", h.DeleteProposal)
}
