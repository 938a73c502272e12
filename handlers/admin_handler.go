package handlers

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/admindocentes/backend/services"
	"github.com/admindocentes/backend/store"
	"github.com/gofiber/fiber/v2"
)

type AdminHandler struct {
	Store *store.Store
}

func NewAdminHandler(st *store.Store) *AdminHandler {
	return &AdminHandler{Store: st}
}

// GetDashboardAnalytics recomputes the dashboard numbers from a fresh
// snapshot on every call.
func (h *AdminHandler) GetDashboardAnalytics(c *fiber.Ctx) error {
	limit := c.QueryInt("top", 5)
	state := h.Store.Snapshot()
	return c.JSON(fiber.Map{
		"metrics":      services.ComputeMetrics(state),
		"top_teachers": services.TopTeachers(state, limit),
	})
}

func (h *AdminHandler) GetReports(c *fiber.Ctx) error {
	state := h.Store.Snapshot()
	return c.JSON(fiber.Map{
		"subjects": services.SubjectDistribution(state),
		"cities":   services.CityDistribution(state),
	})
}

func (h *AdminHandler) ExportProposalsCSV(c *fiber.Ctx) error {
	state := h.Store.Snapshot()

	b := new(bytes.Buffer)
	w := csv.NewWriter(b)

	headers := []string{"Proposal ID", "Teacher ID", "Requester", "Email", "Phone", "Status", "Date", "Price"}
	if err := w.Write(headers); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to write CSV header"})
	}

	for _, p := range state.Proposals {
		row := []string{
			p.ID,
			p.TeacherID,
			p.Requester.Name,
			p.Requester.Email,
			p.Requester.Phone,
			string(p.Status),
			p.Date,
			fmt.Sprintf("%.2f", p.Price),
		}
		if err := w.Write(row); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to write CSV row"})
		}
	}
	w.Flush()

	c.Set("Content-Type", "text/csv")
	c.Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"proposals_%s.csv\"", time.Now().Format("2006-01-02")))

	return c.Send(b.Bytes())
}
