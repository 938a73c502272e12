package store

import (
	"github.com/admindocentes/backend/models"
)

// SeedState is the compiled-in initial dataset the app ships with.
func SeedState() State {
	return State{
		CurrentRole: models.RoleAdmin,
		UserProfile: models.UserProfile{
			ID:    "1",
			Name:  "Administrador",
			Email: "admin@admin.com",
			Role:  models.RoleAdmin,
		},
		Teachers: []models.Teacher{
			{
				ID:         "1",
				Name:       "María García",
				Subject:    "Matemáticas",
				Rating:     4.8,
				Price:      25,
				Location:   "Quito",
				Experience: "5 años",
				Status:     models.TeacherStatusActive,
			},
			{
				ID:         "2",
				Name:       "Carlos López",
				Subject:    "Física",
				Rating:     4.6,
				Price:      30,
				Location:   "Guayaquil",
				Experience: "3 años",
				Status:     models.TeacherStatusActive,
			},
			{
				ID:         "3",
				Name:       "Ana Rodríguez",
				Subject:    "Química",
				Rating:     4.9,
				Price:      28,
				Location:   "Cuenca",
				Experience: "7 años",
				Status:     models.TeacherStatusActive,
			},
		},
		Proposals: []models.Proposal{
			{
				ID:        "1",
				TeacherID: "1",
				Requester: models.Requester{Name: "Juan Pérez", Email: "juan@example.com", Phone: "+593 99 123 4567"},
				Message:   "Necesito ayuda con matemáticas para mi examen final",
				Status:    models.ProposalStatusAccepted,
				Date:      "2024-01-15",
				Price:     25,
			},
			{
				ID:        "2",
				TeacherID: "2",
				Requester: models.Requester{Name: "María Silva", Email: "maria@example.com", Phone: "+593 98 765 4321"},
				Message:   "Clases de física para preparar examen de admisión",
				Status:    models.ProposalStatusPending,
				Date:      "2024-01-16",
				Price:     30,
			},
			{
				ID:        "3",
				TeacherID: "3",
				Requester: models.Requester{Name: "Pedro González", Email: "pedro@example.com", Phone: "+593 97 654 3210"},
				Message:   "Ayuda con química orgánica para la universidad",
				Status:    models.ProposalStatusRejected,
				Date:      "2024-01-17",
				Price:     28,
			},
		},
	}
}
