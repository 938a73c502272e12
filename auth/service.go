package auth

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/admindocentes/backend/models"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// Result is the typed outcome of a session operation. Failures are values,
// not errors: the holder never panics or propagates.
type Result struct {
	Success bool                `json:"success"`
	User    *models.SessionUser `json:"user,omitempty"`
	Token   string              `json:"token,omitempty"`
	Err     string              `json:"error,omitempty"`
}

func failure(msg string) Result {
	return Result{Success: false, Err: msg}
}

// Delays are the artificial latencies the simulated operations wait out.
type Delays struct {
	Login  time.Duration
	Logout time.Duration
}

type allowedUser struct {
	passwordHash []byte
	user         models.SessionUser
}

// Service is the session holder: it owns the active session slot and the
// persisted record exclusively.
type Service struct {
	mu       sync.RWMutex
	current  *models.SessionUser
	inFlight atomic.Int32

	storage  *FileStorage
	provider IdentityProvider
	allow    map[string]allowedUser
	secret   string
	delays   Delays
	log      *logrus.Logger
}

func NewService(storage *FileStorage, provider IdentityProvider, secret string, delays Delays, log *logrus.Logger) *Service {
	return &Service{
		storage:  storage,
		provider: provider,
		allow:    make(map[string]allowedUser),
		secret:   secret,
		delays:   delays,
		log:      log,
	}
}

// AllowUser registers a credential pair on the allow-list. The password is
// hashed immediately and never retained in clear.
func (s *Service) AllowUser(password string, user models.SessionUser) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.allow[user.Email] = allowedUser{passwordHash: hash, user: user}
	s.mu.Unlock()
	return nil
}

// Restore reads the persisted session on startup. Any read or parse failure
// is logged and treated as logged-out; startup never fails on it.
func (s *Service) Restore() {
	user, err := s.storage.Load()
	if err != nil {
		s.log.WithError(err).Debug("no persisted session restored")
		return
	}
	s.mu.Lock()
	s.current = user
	s.mu.Unlock()
	s.log.WithField("email", user.Email).Info("session restored")
}

// Authenticate checks the credential pair against the allow-list after the
// artificial delay. The failure message stays generic on purpose.
func (s *Service) Authenticate(ctx context.Context, email, password string) Result {
	s.inFlight.Add(1)
	defer s.inFlight.Add(-1)

	if err := sleep(ctx, s.delays.Login); err != nil {
		return failure("login cancelled")
	}

	s.mu.RLock()
	entry, ok := s.allow[email]
	s.mu.RUnlock()
	if !ok {
		return failure("Invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword(entry.passwordHash, []byte(password)); err != nil {
		return failure("Invalid email or password")
	}

	user := entry.user
	return s.establish(user)
}

// AuthenticateFederated delegates to the configured identity provider.
func (s *Service) AuthenticateFederated(ctx context.Context) Result {
	s.inFlight.Add(1)
	defer s.inFlight.Add(-1)

	user, err := s.provider.Authenticate(ctx)
	if err != nil {
		s.log.WithError(err).Warn("federated login failed")
		return failure("Federated login failed")
	}
	return s.establish(*user)
}

func (s *Service) establish(user models.SessionUser) Result {
	if err := s.storage.Save(user); err != nil {
		s.log.WithError(err).Error("failed to persist session")
		return failure("Failed to persist session")
	}
	s.mu.Lock()
	s.current = &user
	s.mu.Unlock()

	token, err := GenerateToken(user, s.secret)
	if err != nil {
		s.log.WithError(err).Error("failed to sign token")
		return failure("Failed to create token")
	}
	s.log.WithFields(logrus.Fields{"email": user.Email, "method": user.LoginMethod}).Info("session established")
	return Result{Success: true, User: &user, Token: token}
}

// SignOut erases the persisted record and clears the active session after a
// short artificial delay.
func (s *Service) SignOut(ctx context.Context) error {
	s.inFlight.Add(1)
	defer s.inFlight.Add(-1)

	if err := sleep(ctx, s.delays.Logout); err != nil {
		return err
	}
	if err := s.storage.Delete(); err != nil {
		s.log.WithError(err).Warn("failed to delete persisted session")
	}
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()
	s.log.Info("session closed")
	return nil
}

// Clear force-wipes the session without the sign-out delay.
func (s *Service) Clear() {
	if err := s.storage.Delete(); err != nil {
		s.log.WithError(err).Warn("failed to delete persisted session")
	}
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()
}

// Current returns a copy of the active session, or nil when logged out.
func (s *Service) Current() *models.SessionUser {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil
	}
	user := *s.current
	return &user
}

// IsLoading reports whether any session operation is in flight.
func (s *Service) IsLoading() bool {
	return s.inFlight.Load() > 0
}
