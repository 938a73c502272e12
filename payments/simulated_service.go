package payments

import (
	"context"
	"time"

	"github.com/admindocentes/backend/models"
	"github.com/google/uuid"
)

// Receipt is the confirmation returned by a payment processor.
type Receipt struct {
	ID          string    `json:"id"`
	DraftID     string    `json:"draft_id"`
	Amount      float64   `json:"amount"`
	ConfirmedAt time.Time `json:"confirmed_at"`
}

// Processor confirms the registration fee for a teacher draft. Production
// deployments plug a real gateway here; the simulated processor never leaves
// demo wiring.
type Processor interface {
	Confirm(ctx context.Context, draft models.TeacherDraft) (*Receipt, error)
}

// SimulatedProcessor always succeeds after a fixed artificial delay.
type SimulatedProcessor struct {
	Delay time.Duration
}

func (p *SimulatedProcessor) Confirm(ctx context.Context, draft models.TeacherDraft) (*Receipt, error) {
	if p.Delay > 0 {
		timer := time.NewTimer(p.Delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}
	return &Receipt{
		ID:          uuid.NewString(),
		DraftID:     draft.ID,
		Amount:      draft.Price,
		ConfirmedAt: time.Now(),
	}, nil
}
