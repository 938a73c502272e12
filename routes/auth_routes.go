package routes

import (
	"github.com/admindocentes/backend/handlers"
	"github.com/admindocentes/backend/middleware"
	"github.com/gofiber/fiber/v2"
)

func AuthRoutes(app *fiber.App, h *handlers.AuthHandler, jwtSecret string) {
	api := app.Group("/api/v1")

	auth := api.Group("/auth")
	auth.Post("/login", h.Login)
	auth.Post("/google", h.LoginWithGoogle)
	auth.Get("/session", h.Session)
	auth.Post("/logout", middleware.Protected(jwtSecret), h.Logout)
	auth.Post("/clear", middleware.Protected(jwtSecret), h.Clear)
}
