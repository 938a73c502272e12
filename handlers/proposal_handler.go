package handlers

import (
	"github.com/admindocentes/backend/models"
	"github.com/admindocentes/backend/store"
	"github.com/gofiber/fiber/v2"
)

type ProposalHandler struct {
	Store *store.Store
}

func NewProposalHandler(st *store.Store) *ProposalHandler {
	return &ProposalHandler{Store: st}
}

type CreateProposalRequest struct {
	TeacherID string  `json:"teacher_id" validate:"required"`
	Name      string  `json:"name" validate:"required,min=2"`
	Email     string  `json:"email" validate:"required,email"`
	Phone     string  `json:"phone" validate:"required,min=7"`
	Message   string  `json:"message" validate:"required"`
	Date      string  `json:"date" validate:"required,datetime=2006-01-02"`
	Price     float64 `json:"price" validate:"required,gt=0"`
}

type UpdateProposalRequest struct {
	TeacherID string  `json:"teacher_id" validate:"required"`
	Name      string  `json:"name" validate:"required,min=2"`
	Email     string  `json:"email" validate:"required,email"`
	Phone     string  `json:"phone" validate:"required,min=7"`
	Message   string  `json:"message" validate:"required"`
	Status    string  `json:"status" validate:"required,oneof=pending accepted rejected"`
	Date      string  `json:"date" validate:"required,datetime=2006-01-02"`
	Price     float64 `json:"price" validate:"required,gt=0"`
}

func (h *ProposalHandler) ListProposals(c *fiber.Ctx) error {
	proposals := h.Store.Snapshot().Proposals
	if status := c.Query("status"); status != "" {
		filtered := make([]models.Proposal, 0, len(proposals))
		for _, p := range proposals {
			if string(p.Status) == status {
				filtered = append(filtered, p)
			}
		}
		proposals = filtered
	}
	return c.JSON(proposals)
}

func (h *ProposalHandler) GetProposal(c *fiber.Ctx) error {
	proposalID := c.Params("proposalId")
	for _, p := range h.Store.Snapshot().Proposals {
		if p.ID == proposalID {
			return c.JSON(p)
		}
	}
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Proposal not found"})
}

// CreateProposal is the single creation path: the status is always pending,
// whatever the caller sends.
func (h *ProposalHandler) CreateProposal(c *fiber.Ctx) error {
	var req CreateProposalRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	action := store.CreateProposal(models.Proposal{
		TeacherID: req.TeacherID,
		Requester: models.Requester{Name: req.Name, Email: req.Email, Phone: req.Phone},
		Message:   req.Message,
		Date:      req.Date,
		Price:     req.Price,
	})
	state := h.Store.Dispatch(action)
	for _, p := range state.Proposals {
		if p.ID == action.Proposal.ID {
			return c.Status(fiber.StatusCreated).JSON(p)
		}
	}
	return c.Status(fiber.StatusCreated).JSON(action.Proposal)
}

func (h *ProposalHandler) UpdateProposal(c *fiber.Ctx) error {
	proposalID := c.Params("proposalId")
	var req UpdateProposalRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if !h.proposalExists(proposalID) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Proposal not found"})
	}
	updated := models.Proposal{
		ID:        proposalID,
		TeacherID: req.TeacherID,
		Requester: models.Requester{Name: req.Name, Email: req.Email, Phone: req.Phone},
		Message:   req.Message,
		Status:    models.ProposalStatus(req.Status),
		Date:      req.Date,
		Price:     req.Price,
	}
	h.Store.Dispatch(store.UpdateProposal(updated))
	return c.JSON(updated)
}

func (h *ProposalHandler) UpdateProposalStatus(c *fiber.Ctx) error {
	proposalID := c.Params("proposalId")
	type StatusRequest struct {
		Status string `json:"status" validate:"required,oneof=pending accepted rejected"`
	}
	var req StatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if !h.proposalExists(proposalID) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Proposal not found"})
	}
	state := h.Store.Dispatch(store.UpdateProposalStatus(proposalID, models.ProposalStatus(req.Status)))
	for _, p := range state.Proposals {
		if p.ID == proposalID {
			return c.JSON(p)
		}
	}
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Proposal not found"})
}

func (h *ProposalHandler) DeleteProposal(c *fiber.Ctx) error {
	proposalID := c.Params("proposalId")
	if !h.proposalExists(proposalID) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Proposal not found"})
	}
	h.Store.Dispatch(store.DeleteProposal(proposalID))
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *ProposalHandler) proposalExists(proposalID string) bool {
	for _, p := range h.Store.Snapshot().Proposals {
		if p.ID == proposalID {
			return true
		}
	}
	return false
}
