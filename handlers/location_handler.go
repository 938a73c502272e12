package handlers

import (
	"github.com/admindocentes/backend/locations"
	"github.com/gofiber/fiber/v2"
)

type LocationHandler struct{}

func NewLocationHandler() *LocationHandler {
	return &LocationHandler{}
}

func (h *LocationHandler) ListProvinces(c *fiber.Ctx) error {
	return c.JSON(locations.Provinces())
}

// ListCities returns the cities of one province, or all cities when no
// province is given. Unknown provinces yield an empty list, not an error.
func (h *LocationHandler) ListCities(c *fiber.Ctx) error {
	if province := c.Query("province"); province != "" {
		return c.JSON(locations.CitiesIn(province))
	}
	return c.JSON(locations.AllCities())
}

func (h *LocationHandler) SearchCities(c *fiber.Ctx) error {
	query := c.Query("q")
	if query == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing query parameter q"})
	}
	matches := locations.SearchCities(query)
	if matches == nil {
		matches = []string{}
	}
	return c.JSON(matches)
}
