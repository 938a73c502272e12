package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/admindocentes/backend/auth"
	"github.com/admindocentes/backend/handlers"
	"github.com/admindocentes/backend/models"
	"github.com/admindocentes/backend/payments"
	"github.com/admindocentes/backend/routes"
	"github.com/admindocentes/backend/store"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func newTestApp(t *testing.T) (*fiber.App, *store.Store) {
	t.Helper()

	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)

	st := store.New(store.SeedState())
	sessions := auth.NewService(
		auth.NewFileStorage(filepath.Join(t.TempDir(), "session.json")),
		&auth.SimulatedGoogleProvider{},
		testSecret,
		auth.Delays{},
		log,
	)
	require.NoError(t, sessions.AllowUser("admin123", models.SessionUser{
		ID:          "1",
		Name:        "Administrador",
		Email:       "admin@admindocentes.com",
		Role:        models.RoleAdmin,
		LoginMethod: models.LoginMethodEmail,
	}))

	app := fiber.New(fiber.Config{CaseSensitive: true, StrictRouting: true})
	routes.PublicRoutes(app, handlers.NewLocationHandler())
	routes.AuthRoutes(app, handlers.NewAuthHandler(sessions), testSecret)
	routes.TeacherRoutes(app, handlers.NewTeacherHandler(st), testSecret)
	routes.ProposalRoutes(app, handlers.NewProposalHandler(st), testSecret)
	routes.ProfileRoutes(app, handlers.NewProfileHandler(st, &payments.SimulatedProcessor{}, log), testSecret)
	routes.AdminRoutes(app, handlers.NewAdminHandler(st), testSecret)
	return app, st
}

func adminToken(t *testing.T) string {
	t.Helper()
	token, err := auth.GenerateToken(models.SessionUser{ID: "1", Role: models.RoleAdmin}, testSecret)
	require.NoError(t, err)
	return token
}

func doJSON(t *testing.T, app *fiber.App, method, target, token string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestLoginEndpoint(t *testing.T) {
	app, _ := newTestApp(t)

	t.Run("Success", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/api/v1/auth/login", "", fiber.Map{
			"email":    "admin@admindocentes.com",
			"password": "admin123",
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)
		result := decode[auth.Result](t, resp)
		assert.True(t, result.Success)
		assert.NotEmpty(t, result.Token)
		require.NotNil(t, result.User)
		assert.Equal(t, models.RoleAdmin, result.User.Role)
	})

	t.Run("BadCredentials", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/api/v1/auth/login", "", fiber.Map{
			"email":    "admin@admindocentes.com",
			"password": "wrong",
		})
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("MalformedEmailRejected", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/api/v1/auth/login", "", fiber.Map{
			"email":    "not-an-email",
			"password": "admin123",
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestTeacherEndpoints(t *testing.T) {
	app, _ := newTestApp(t)
	token := adminToken(t)

	t.Run("PublicListAndGet", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, "/api/v1/teachers", "", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		teachers := decode[[]models.Teacher](t, resp)
		assert.Len(t, teachers, 3)

		resp = doJSON(t, app, http.MethodGet, "/api/v1/teachers/1", "", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		teacher := decode[models.Teacher](t, resp)
		assert.Equal(t, "María García", teacher.Name)
	})

	t.Run("CreateRequiresAdmin", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/api/v1/teachers", "", fiber.Map{
			"name": "Nueva", "subject": "Inglés", "price": 15, "location": "Loja",
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "missing JWT")

		teacherTok, err := auth.GenerateToken(models.SessionUser{ID: "9", Role: models.RoleTeacher}, testSecret)
		require.NoError(t, err)
		resp = doJSON(t, app, http.MethodPost, "/api/v1/teachers", teacherTok, fiber.Map{
			"name": "Nueva", "subject": "Inglés", "price": 15, "location": "Loja",
		})
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("CreateUpdateDelete", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/api/v1/teachers", token, fiber.Map{
			"name": "Nueva Docente", "subject": "Inglés", "price": 15, "location": "Loja", "rating": 4.2,
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		created := decode[models.Teacher](t, resp)
		require.NotEmpty(t, created.ID)
		assert.Equal(t, models.TeacherStatusActive, created.Status)

		resp = doJSON(t, app, http.MethodPut, "/api/v1/teachers/"+created.ID, token, fiber.Map{
			"name": "Nueva Docente", "subject": "Inglés", "price": 18, "location": "Loja", "status": "inactive",
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)
		updated := decode[models.Teacher](t, resp)
		assert.Equal(t, models.TeacherStatusInactive, updated.Status)
		assert.Equal(t, float64(18), updated.Price)

		resp = doJSON(t, app, http.MethodDelete, "/api/v1/teachers/"+created.ID, token, nil)
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)

		resp = doJSON(t, app, http.MethodDelete, "/api/v1/teachers/"+created.ID, token, nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("InvalidStatusRejected", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/api/v1/teachers", token, fiber.Map{
			"name": "Nueva", "subject": "Inglés", "price": 15, "location": "Loja", "status": "retired",
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestProposalEndpoints(t *testing.T) {
	app, st := newTestApp(t)
	token := adminToken(t)

	t.Run("CreateForcesPending", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/api/v1/proposals", "", fiber.Map{
			"teacher_id": "1",
			"name":       "Lucía Torres",
			"email":      "lucia@example.com",
			"phone":      "+593 99 111 2222",
			"message":    "Clases de matemáticas",
			"date":       "2024-03-01",
			"price":      25,
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		created := decode[models.Proposal](t, resp)
		assert.Equal(t, models.ProposalStatusPending, created.Status)
		assert.NotEmpty(t, created.ID)

		// Prepended, so it leads the collection.
		assert.Equal(t, created.ID, st.Snapshot().Proposals[0].ID)
	})

	t.Run("StatusPatchLastWriteWins", func(t *testing.T) {
		for _, status := range []string{"accepted", "rejected"} {
			resp := doJSON(t, app, http.MethodPatch, "/api/v1/proposals/2/status", token, fiber.Map{"status": status})
			require.Equal(t, http.StatusOK, resp.StatusCode)
		}
		resp := doJSON(t, app, http.MethodGet, "/api/v1/proposals/2", token, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		proposal := decode[models.Proposal](t, resp)
		assert.Equal(t, models.ProposalStatusRejected, proposal.Status)
	})

	t.Run("InvalidStatusRejected", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPatch, "/api/v1/proposals/2/status", token, fiber.Map{"status": "archived"})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("UnknownIDIs404", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPatch, "/api/v1/proposals/ghost/status", token, fiber.Map{"status": "accepted"})
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("ListFilterByStatus", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, "/api/v1/proposals?status=rejected", token, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		proposals := decode[[]models.Proposal](t, resp)
		for _, p := range proposals {
			assert.Equal(t, models.ProposalStatusRejected, p.Status)
		}
	})
}

func TestProfileAndActivationFlow(t *testing.T) {
	app, st := newTestApp(t)
	token := adminToken(t)

	resp := doJSON(t, app, http.MethodPut, "/api/v1/teacher/profile", token, fiber.Map{
		"name":         "Rosa Medina",
		"email":        "rosa@example.com",
		"phone":        "0991234567",
		"specialties":  []string{"Matemáticas", "Física"},
		"experience":   "3-5 años",
		"province":     "Pichincha",
		"city":         "Quito",
		"hourly_price": 22,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotNil(t, st.Snapshot().TeacherProfile)

	t.Run("ScheduleRejectsUnknownDay", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPut, "/api/v1/teacher/profile/schedule", token, fiber.Map{
			"Funday": []string{"08:00"},
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("ScheduleRejectsUnknownSlot", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPut, "/api/v1/teacher/profile/schedule", token, fiber.Map{
			"Lunes": []string{"05:30"},
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("ScheduleAcceptsCatalogSlots", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPut, "/api/v1/teacher/profile/schedule", token, fiber.Map{
			"Lunes":  []string{"08:00", "09:00"},
			"Sábado": []string{"10:00"},
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)
		schedule := st.Snapshot().TeacherSchedule
		require.NotNil(t, schedule)
		assert.Equal(t, []string{"08:00", "09:00"}, schedule["Lunes"])
	})

	t.Run("ActivatePromotesDraft", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPut, "/api/v1/teacher/profile/current", token, fiber.Map{
			"name": "Rosa Medina", "subject": "Matemáticas", "price": 22, "location": "Quito, Pichincha",
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		draft := decode[models.TeacherDraft](t, resp)
		require.NotEmpty(t, draft.ID)

		before := len(st.Snapshot().Teachers)
		resp = doJSON(t, app, http.MethodPost, "/api/v1/teacher/profile/activate", token, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		state := st.Snapshot()
		require.Len(t, state.Teachers, before+1)
		promoted := state.Teachers[len(state.Teachers)-1]
		assert.Equal(t, draft.ID, promoted.ID)
		assert.Equal(t, models.TeacherStatusPending, promoted.Status)
		require.NotNil(t, state.CurrentTeacher)
		assert.True(t, state.CurrentTeacher.Paid)
	})

	t.Run("ActivateTwiceConflicts", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/api/v1/teacher/profile/activate", token, nil)
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})

	t.Run("ClearWipesEverything", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/api/v1/teacher/profile/clear", token, nil)
		require.Equal(t, http.StatusNoContent, resp.StatusCode)

		state := st.Snapshot()
		assert.Nil(t, state.TeacherProfile)
		assert.Nil(t, state.TeacherSchedule)
		assert.Nil(t, state.CurrentTeacher)
		assert.Empty(t, state.Teachers)
		assert.Empty(t, state.Proposals)
	})
}

func TestAnalyticsEndpoints(t *testing.T) {
	app, _ := newTestApp(t)
	token := adminToken(t)

	t.Run("Dashboard", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, "/api/v1/admin/dashboard-analytics", token, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		body := decode[map[string]json.RawMessage](t, resp)
		require.Contains(t, body, "metrics")
		require.Contains(t, body, "top_teachers")
	})

	t.Run("CSVExport", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, "/api/v1/admin/reports/proposals.csv", token, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, resp.Header.Get("Content-Type"), "text/csv")
		data, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Contains(t, string(data), "Proposal ID")
		assert.Contains(t, string(data), "juan@example.com")
	})
}

func TestLocationEndpoints(t *testing.T) {
	app, _ := newTestApp(t)

	t.Run("Provinces", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, "/api/v1/locations/provinces", "", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		provinces := decode[[]string](t, resp)
		assert.Len(t, provinces, 24)
	})

	t.Run("CitiesByProvince", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, "/api/v1/locations/cities?province=Pichincha", "", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		cities := decode[[]string](t, resp)
		assert.Contains(t, cities, "Quito")
	})

	t.Run("SearchRequiresQuery", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, "/api/v1/locations/cities/search", "", nil)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("Search", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, "/api/v1/locations/cities/search?q=guaya", "", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		cities := decode[[]string](t, resp)
		assert.Contains(t, cities, "Guayaquil")
	})
}
