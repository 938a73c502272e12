package handlers

import (
	"github.com/admindocentes/backend/models"
	"github.com/admindocentes/backend/store"
	"github.com/gofiber/fiber/v2"
)

type TeacherHandler struct {
	Store *store.Store
}

func NewTeacherHandler(st *store.Store) *TeacherHandler {
	return &TeacherHandler{Store: st}
}

type TeacherRequest struct {
	Name       string  `json:"name" validate:"required,min=2"`
	Subject    string  `json:"subject" validate:"required"`
	Rating     float32 `json:"rating" validate:"gte=0,lte=5"`
	Price      float64 `json:"price" validate:"required,gt=0"`
	Location   string  `json:"location" validate:"required"`
	Experience string  `json:"experience"`
	Status     string  `json:"status" validate:"omitempty,oneof=active inactive pending"`
}

func (r TeacherRequest) toModel(id string) models.Teacher {
	status := models.TeacherStatus(r.Status)
	if r.Status == "" {
		status = models.TeacherStatusActive
	}
	return models.Teacher{
		ID:         id,
		Name:       r.Name,
		Subject:    r.Subject,
		Rating:     r.Rating,
		Price:      r.Price,
		Location:   r.Location,
		Experience: r.Experience,
		Status:     status,
	}
}

func (h *TeacherHandler) ListTeachers(c *fiber.Ctx) error {
	state := h.Store.Snapshot()
	teachers := state.Teachers

	if status := c.Query("status"); status != "" {
		filtered := make([]models.Teacher, 0, len(teachers))
		for _, t := range teachers {
			if string(t.Status) == status {
				filtered = append(filtered, t)
			}
		}
		teachers = filtered
	}
	if subject := c.Query("subject"); subject != "" {
		filtered := make([]models.Teacher, 0, len(teachers))
		for _, t := range teachers {
			if t.Subject == subject {
				filtered = append(filtered, t)
			}
		}
		teachers = filtered
	}
	return c.JSON(teachers)
}

func (h *TeacherHandler) GetTeacher(c *fiber.Ctx) error {
	teacherID := c.Params("teacherId")
	for _, t := range h.Store.Snapshot().Teachers {
		if t.ID == teacherID {
			return c.JSON(t)
		}
	}
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Teacher not found"})
}

func (h *TeacherHandler) CreateTeacher(c *fiber.Ctx) error {
	var req TeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	action := store.AddTeacher(req.toModel(""))
	h.Store.Dispatch(action)
	return c.Status(fiber.StatusCreated).JSON(action.Teacher)
}

func (h *TeacherHandler) UpdateTeacher(c *fiber.Ctx) error {
	teacherID := c.Params("teacherId")
	var req TeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if !h.teacherExists(teacherID) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Teacher not found"})
	}
	updated := req.toModel(teacherID)
	h.Store.Dispatch(store.UpdateTeacher(updated))
	return c.JSON(updated)
}

func (h *TeacherHandler) DeleteTeacher(c *fiber.Ctx) error {
	teacherID := c.Params("teacherId")
	if !h.teacherExists(teacherID) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Teacher not found"})
	}
	// Proposals pointing at this teacher stay behind; there is no cascade.
	h.Store.Dispatch(store.DeleteTeacher(teacherID))
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *TeacherHandler) teacherExists(teacherID string) bool {
	for _, t := range h.Store.Snapshot().Teachers {
		if t.ID == teacherID {
			return true
		}
	}
	return false
}
