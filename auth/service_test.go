package auth_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/admindocentes/backend/auth"
	"github.com/admindocentes/backend/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func newService(t *testing.T, delays auth.Delays) (*auth.Service, string) {
	t.Helper()
	sessionFile := filepath.Join(t.TempDir(), "session.json")
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetLevel(logrus.PanicLevel)

	svc := auth.NewService(
		auth.NewFileStorage(sessionFile),
		&auth.SimulatedGoogleProvider{Delay: 0},
		testSecret,
		delays,
		log,
	)
	require.NoError(t, svc.AllowUser("admin123", models.SessionUser{
		ID:          "1",
		Name:        "Administrador",
		Email:       "admin@admindocentes.com",
		Role:        models.RoleAdmin,
		LoginMethod: models.LoginMethodEmail,
	}))
	return svc, sessionFile
}

func TestAuthenticate(t *testing.T) {
	t.Run("KnownPairSucceedsWithAdminRole", func(t *testing.T) {
		svc, sessionFile := newService(t, auth.Delays{})

		result := svc.Authenticate(context.Background(), "admin@admindocentes.com", "admin123")
		require.True(t, result.Success)
		require.NotNil(t, result.User)
		assert.Equal(t, models.RoleAdmin, result.User.Role)
		assert.NotEmpty(t, result.Token)

		// The persisted record must never carry a password.
		data, err := os.ReadFile(sessionFile)
		require.NoError(t, err)
		assert.NotContains(t, string(data), "password")
		assert.NotContains(t, string(data), "admin123")
	})

	t.Run("UnknownPairFailsWithGenericMessage", func(t *testing.T) {
		svc, _ := newService(t, auth.Delays{})

		result := svc.Authenticate(context.Background(), "admin@admindocentes.com", "wrong")
		assert.False(t, result.Success)
		assert.NotEmpty(t, result.Err)
		assert.Nil(t, svc.Current())

		result = svc.Authenticate(context.Background(), "nobody@example.com", "admin123")
		assert.False(t, result.Success)
		assert.NotEmpty(t, result.Err)
		assert.Nil(t, svc.Current())
	})

	t.Run("CancelledContextAbortsLogin", func(t *testing.T) {
		svc, _ := newService(t, auth.Delays{Login: 500 * time.Millisecond})

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		result := svc.Authenticate(ctx, "admin@admindocentes.com", "admin123")
		assert.False(t, result.Success)
		assert.Nil(t, svc.Current())
	})
}

func TestAuthenticateFederated(t *testing.T) {
	svc, _ := newService(t, auth.Delays{})

	result := svc.AuthenticateFederated(context.Background())
	require.True(t, result.Success)
	require.NotNil(t, result.User)
	assert.Equal(t, models.LoginMethodGoogle, result.User.LoginMethod)
	assert.NotEmpty(t, result.Token)
	require.NotNil(t, svc.Current())
	assert.Equal(t, result.User.Email, svc.Current().Email)
}

func TestRestore(t *testing.T) {
	t.Run("RestoresPersistedSession", func(t *testing.T) {
		svc, sessionFile := newService(t, auth.Delays{})
		result := svc.Authenticate(context.Background(), "admin@admindocentes.com", "admin123")
		require.True(t, result.Success)

		reopened := auth.NewService(auth.NewFileStorage(sessionFile), &auth.SimulatedGoogleProvider{}, testSecret, auth.Delays{}, mutedLogger())
		reopened.Restore()
		require.NotNil(t, reopened.Current())
		assert.Equal(t, "admin@admindocentes.com", reopened.Current().Email)
	})

	t.Run("SignOutLeavesNothingToRestore", func(t *testing.T) {
		svc, sessionFile := newService(t, auth.Delays{})
		require.True(t, svc.Authenticate(context.Background(), "admin@admindocentes.com", "admin123").Success)
		require.NoError(t, svc.SignOut(context.Background()))
		assert.Nil(t, svc.Current())

		reopened := auth.NewService(auth.NewFileStorage(sessionFile), &auth.SimulatedGoogleProvider{}, testSecret, auth.Delays{}, mutedLogger())
		reopened.Restore()
		assert.Nil(t, reopened.Current())
	})

	t.Run("CorruptFileFailsOpenToLoggedOut", func(t *testing.T) {
		sessionFile := filepath.Join(t.TempDir(), "session.json")
		require.NoError(t, os.WriteFile(sessionFile, []byte("{not json"), 0o600))

		svc := auth.NewService(auth.NewFileStorage(sessionFile), &auth.SimulatedGoogleProvider{}, testSecret, auth.Delays{}, mutedLogger())
		svc.Restore()
		assert.Nil(t, svc.Current())
	})

	t.Run("SchemaVersionMismatchReadsAsNoSession", func(t *testing.T) {
		sessionFile := filepath.Join(t.TempDir(), "session.json")
		record := `{"schema_version":99,"user":{"id":"1","email":"admin@admindocentes.com"}}`
		require.NoError(t, os.WriteFile(sessionFile, []byte(record), 0o600))

		svc := auth.NewService(auth.NewFileStorage(sessionFile), &auth.SimulatedGoogleProvider{}, testSecret, auth.Delays{}, mutedLogger())
		svc.Restore()
		assert.Nil(t, svc.Current())
	})
}

func TestClear(t *testing.T) {
	svc, sessionFile := newService(t, auth.Delays{})
	require.True(t, svc.Authenticate(context.Background(), "admin@admindocentes.com", "admin123").Success)

	svc.Clear()
	assert.Nil(t, svc.Current())
	_, err := os.Stat(sessionFile)
	assert.True(t, os.IsNotExist(err))
}

func TestIsLoadingSettles(t *testing.T) {
	svc, _ := newService(t, auth.Delays{Login: 20 * time.Millisecond})
	assert.False(t, svc.IsLoading())

	done := make(chan struct{})
	go func() {
		svc.Authenticate(context.Background(), "admin@admindocentes.com", "admin123")
		close(done)
	}()

	<-done
	assert.False(t, svc.IsLoading())
}

func mutedLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}
