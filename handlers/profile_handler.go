package handlers

import (
	"fmt"
	"slices"

	"github.com/admindocentes/backend/models"
	"github.com/admindocentes/backend/payments"
	"github.com/admindocentes/backend/store"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// ProfileHandler serves the teacher self-registration flow: draft, weekly
// schedule, role switching and the paid activation that promotes the draft
// into the roster.
type ProfileHandler struct {
	Store     *store.Store
	Processor payments.Processor
	Log       *logrus.Logger
}

func NewProfileHandler(st *store.Store, processor payments.Processor, log *logrus.Logger) *ProfileHandler {
	return &ProfileHandler{Store: st, Processor: processor, Log: log}
}

type TeacherProfileRequest struct {
	Name            string   `json:"name" validate:"required,min=2"`
	Email           string   `json:"email" validate:"required,email"`
	Phone           string   `json:"phone" validate:"required,min=10"`
	Specialties     []string `json:"specialties" validate:"required,min=1,dive,required"`
	Experience      string   `json:"experience" validate:"required"`
	Description     string   `json:"description"`
	Province        string   `json:"province" validate:"required"`
	City            string   `json:"city" validate:"required"`
	InstitutionType string   `json:"institution_type"`
	HourlyPrice     float64  `json:"hourly_price" validate:"required,gt=0"`
	Availability    string   `json:"availability"`
}

func (h *ProfileHandler) SaveProfile(c *fiber.Ctx) error {
	var req TeacherProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	profile := models.TeacherProfile{
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		Specialties:     req.Specialties,
		Experience:      req.Experience,
		Description:     req.Description,
		Province:        req.Province,
		City:            req.City,
		InstitutionType: req.InstitutionType,
		HourlyPrice:     req.HourlyPrice,
		Availability:    req.Availability,
	}
	h.Store.Dispatch(store.SaveTeacherProfile(profile))
	return c.JSON(profile)
}

func (h *ProfileHandler) GetProfile(c *fiber.Ctx) error {
	profile := h.Store.Snapshot().TeacherProfile
	if profile == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "No teacher profile saved"})
	}
	return c.JSON(profile)
}

func (h *ProfileHandler) UpdateSchedule(c *fiber.Ctx) error {
	var schedule models.Schedule
	if err := c.BodyParser(&schedule); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	for day, chosen := range schedule {
		if !slices.Contains(models.Weekdays, day) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": fmt.Sprintf("Unknown weekday %q", day)})
		}
		for _, slot := range chosen {
			if !slices.Contains(models.TimeSlots, slot) {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": fmt.Sprintf("Unknown time slot %q", slot)})
			}
		}
	}

	h.Store.Dispatch(store.UpdateTeacherSchedule(schedule))
	return c.JSON(schedule)
}

func (h *ProfileHandler) GetSchedule(c *fiber.Ctx) error {
	schedule := h.Store.Snapshot().TeacherSchedule
	if schedule == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "No schedule saved"})
	}
	return c.JSON(schedule)
}

// ScheduleCatalog exposes the fixed weekday and slot grids clients render.
func (h *ProfileHandler) ScheduleCatalog(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"weekdays":   models.Weekdays,
		"time_slots": models.TimeSlots,
	})
}

type CurrentTeacherRequest struct {
	Name       string  `json:"name" validate:"required,min=2"`
	Subject    string  `json:"subject" validate:"required"`
	Price      float64 `json:"price" validate:"required,gt=0"`
	Location   string  `json:"location" validate:"required"`
	Experience string  `json:"experience"`
}

func (h *ProfileHandler) SetCurrentTeacher(c *fiber.Ctx) error {
	var req CurrentTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	action := store.SetCurrentTeacher(models.TeacherDraft{
		Name:       req.Name,
		Subject:    req.Subject,
		Price:      req.Price,
		Location:   req.Location,
		Experience: req.Experience,
	})
	h.Store.Dispatch(action)
	return c.Status(fiber.StatusCreated).JSON(action.Draft)
}

// Activate runs the registration payment and, on confirmation, promotes the
// draft into the roster with a pending status.
func (h *ProfileHandler) Activate(c *fiber.Ctx) error {
	draft := h.Store.Snapshot().CurrentTeacher
	if draft == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "No registration in progress"})
	}
	if draft.Paid {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Registration already paid"})
	}

	receipt, err := h.Processor.Confirm(c.UserContext(), *draft)
	if err != nil {
		h.Log.WithError(err).Warn("payment confirmation failed")
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "Payment confirmation failed"})
	}

	paid := *draft
	paid.Paid = true
	h.Store.Dispatch(store.SetCurrentTeacher(paid))
	state := h.Store.Dispatch(store.PromoteCurrentTeacher())

	var promoted *models.Teacher
	for i := range state.Teachers {
		if state.Teachers[i].ID == paid.ID {
			promoted = &state.Teachers[i]
		}
	}
	h.Log.WithFields(logrus.Fields{"draft": paid.ID, "receipt": receipt.ID}).Info("registration activated")
	return c.JSON(fiber.Map{"receipt": receipt, "teacher": promoted})
}

// ClearData wipes the draft, schedule and current registration, and with
// them the shared roster and proposals. The broad scope is the contract.
func (h *ProfileHandler) ClearData(c *fiber.Ctx) error {
	h.Store.Dispatch(store.ClearTeacherData())
	return c.SendStatus(fiber.StatusNoContent)
}

type RoleRequest struct {
	Role string `json:"role" validate:"required,oneof=admin teacher"`
}

func (h *ProfileHandler) SetRole(c *fiber.Ctx) error {
	var req RoleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	state := h.Store.Dispatch(store.SetRole(models.Role(req.Role)))
	return c.JSON(fiber.Map{"current_role": state.CurrentRole})
}

type UserProfileRequest struct {
	ID    string `json:"id" validate:"required"`
	Name  string `json:"name" validate:"required,min=2"`
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role" validate:"required,oneof=admin teacher"`
}

func (h *ProfileHandler) SetUserProfile(c *fiber.Ctx) error {
	var req UserProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	profile := models.UserProfile{ID: req.ID, Name: req.Name, Email: req.Email, Role: models.Role(req.Role)}
	h.Store.Dispatch(store.SetUserProfile(profile))
	return c.JSON(profile)
}

// GetState hands out the whole snapshot, the read path the client's render
// loop uses.
func (h *ProfileHandler) GetState(c *fiber.Ctx) error {
	return c.JSON(h.Store.Snapshot())
}
