package handlers

import (
	"github.com/admindocentes/backend/auth"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type AuthHandler struct {
	Auth *auth.Service
}

func NewAuthHandler(svc *auth.Service) *AuthHandler {
	return &AuthHandler{Auth: svc}
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	result := h.Auth.Authenticate(c.UserContext(), req.Email, req.Password)
	if !result.Success {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": result.Err})
	}
	return c.JSON(result)
}

func (h *AuthHandler) LoginWithGoogle(c *fiber.Ctx) error {
	result := h.Auth.AuthenticateFederated(c.UserContext())
	if !result.Success {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": result.Err})
	}
	return c.JSON(result)
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.Auth.SignOut(c.UserContext()); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to sign out"})
	}
	return c.JSON(fiber.Map{"message": "Signed out successfully"})
}

func (h *AuthHandler) Clear(c *fiber.Ctx) error {
	h.Auth.Clear()
	return c.SendStatus(fiber.StatusNoContent)
}

// Session reports the restored or active session, nil when logged out.
func (h *AuthHandler) Session(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"user":       h.Auth.Current(),
		"is_loading": h.Auth.IsLoading(),
	})
}
