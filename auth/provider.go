package auth

import (
	"context"
	"time"

	"github.com/admindocentes/backend/models"
)

// IdentityProvider is the pluggable third-party login slot. The production
// deployment is expected to plug a real OIDC flow in here; the simulated
// provider below exists for demos and tests only.
type IdentityProvider interface {
	Authenticate(ctx context.Context) (*models.SessionUser, error)
}

// SimulatedGoogleProvider fabricates a fixed Google-shaped user after an
// artificial network delay.
type SimulatedGoogleProvider struct {
	Delay time.Duration
}

func (p *SimulatedGoogleProvider) Authenticate(ctx context.Context) (*models.SessionUser, error) {
	if err := sleep(ctx, p.Delay); err != nil {
		return nil, err
	}
	return &models.SessionUser{
		ID:          "google_123456",
		Name:        "Usuario Google",
		Email:       "usuario@gmail.com",
		Role:        models.RoleAdmin,
		LoginMethod: models.LoginMethodGoogle,
	}, nil
}

// sleep waits for d or until ctx is cancelled, whichever comes first.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
