package routes

import (
	"github.com/admindocentes/backend/handlers"
	"github.com/admindocentes/backend/middleware"
	"github.com/gofiber/fiber/v2"
)

func TeacherRoutes(app *fiber.App, h *handlers.TeacherHandler, jwtSecret string) {
	api := app.Group("/api/v1")

	api.Get("/teachers", h.ListTeachers)
	api.Get("/teachers/:teacherId", h.GetTeacher)

	admin := api.Group("/teachers", middleware.Protected(jwtSecret), middleware.AdminRequired())
	admin.Post("", h.CreateTeacher)
	admin.Put("/:teacherId", h.UpdateTeacher)
	admin.Delete("/:teacherId", h.DeleteTeacher)
}
