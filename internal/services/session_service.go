package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/ai-buddy/student-support-service/internal/events"
	"github.com/ai-buddy/student-support-service/internal/models"
	"github.com/ai-buddy/student-support-service/internal/repositories"
	"github.com/ai-buddy/student-support-service/internal/snapshot"
)

// ===== SERVICE INTERFACE =====

// SessionService owns the single current session. At most one account is
// logged in at a time; every mutation re-writes the persisted snapshot
// wholesale so readers never observe partial state.
type SessionService interface {
	// Initialize restores a previously persisted session, if any. Malformed
	// or unavailable storage degrades to "no session" and never fails
	// startup. Must be called before dependent handlers serve traffic.
	Initialize(ctx context.Context) error

	// Login authenticates against the user directory. The boolean result
	// covers both unknown email and wrong secret; errors are reserved for
	// storage I/O failures.
	Login(ctx context.Context, email, secret string) (bool, error)

	// Logout clears the session and removes the persisted snapshot.
	// Idempotent.
	Logout(ctx context.Context) error

	// UpgradeToPremium sets the premium flag on the current session and
	// re-persists it. No-op without a session; idempotent; no downgrade.
	UpgradeToPremium(ctx context.Context) error

	// Current returns a snapshot copy of the logged-in account, or nil.
	Current() *models.Account

	// Loading reports whether Initialize or a login is still in flight.
	Loading() bool
}

// ===== SERVICE IMPLEMENTATION =====

type sessionService struct {
	directory repositories.UserDirectory
	snapshots snapshot.Store
	publisher events.EventPublisher
	logger    *slog.Logger

	// loginDelay simulates upstream auth latency; sleep and now are
	// injectable so tests run synchronously.
	loginDelay time.Duration
	sleep      func(time.Duration)
	now        func() time.Time

	mu      sync.RWMutex
	current *models.Account
	loading bool
}

func NewSessionService(
	directory repositories.UserDirectory,
	snapshots snapshot.Store,
	publisher events.EventPublisher,
	logger *slog.Logger,
	loginDelay time.Duration,
) SessionService {
	return &sessionService{
		directory:  directory,
		snapshots:  snapshots,
		publisher:  publisher,
		logger:     logger,
		loginDelay: loginDelay,
		sleep:      time.Sleep,
		now:        time.Now,
		loading:    true,
	}
}

func (s *sessionService) Initialize(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer func() { s.loading = false }()

	account, err := s.snapshots.Load(ctx)
	if err != nil {
		switch {
		case errors.Is(err, snapshot.ErrNotFound), errors.Is(err, snapshot.ErrNotAvailable):
			// Fresh start.
		case errors.Is(err, snapshot.ErrCorrupt):
			s.logger.Warn("Discarding corrupt session snapshot", "error", err)
		default:
			// Storage trouble degrades to "no session" rather than
			// blocking startup.
			s.logger.Warn("Session snapshot unavailable", "error", err)
		}
		s.current = nil
		return nil
	}

	s.current = account
	s.logger.Info("Restored session from snapshot",
		"account_id", account.ID, "role", account.Role)
	return nil
}

func (s *sessionService) Login(ctx context.Context, email, secret string) (bool, error) {
	// The whole login is serialized: a second call blocks until the first
	// resolves, so session writes never interleave.
	s.mu.Lock()
	defer s.mu.Unlock()

	s.loading = true
	defer func() { s.loading = false }()

	s.sleep(s.loginDelay)

	entry, err := s.directory.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("directory lookup: %w", err)
	}

	// Verbatim comparison is acceptable only because the directory is a
	// compiled-in demo dataset. A real credential store must salt-hash and
	// compare in constant time.
	if entry.Secret != secret {
		return false, nil
	}

	account := entry.Account.Clone()
	account.LastLogin = s.now()

	prev := s.current
	s.current = account
	if err := s.snapshots.Save(ctx, account); err != nil {
		// Keep the prior session so the failed login is invisible.
		s.current = prev
		return false, fmt.Errorf("persist session: %w", err)
	}

	s.publish(ctx, events.SessionCreated, account)
	return true, nil
}

func (s *sessionService) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ended := s.current
	s.current = nil

	if err := s.snapshots.Clear(ctx); err != nil {
		// The in-memory session is already gone; a stale snapshot is
		// the lesser failure and will be overwritten by the next login.
		s.logger.Error("Failed to clear session snapshot", "error", err)
		return fmt.Errorf("clear session snapshot: %w", err)
	}

	if ended != nil {
		s.publish(ctx, events.SessionEnded, ended)
	}
	return nil
}

func (s *sessionService) UpgradeToPremium(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return nil
	}
	if s.current.IsPremium {
		return nil
	}

	s.current.IsPremium = true
	if err := s.snapshots.Save(ctx, s.current); err != nil {
		s.current.IsPremium = false
		return fmt.Errorf("persist premium upgrade: %w", err)
	}

	s.publish(ctx, events.PremiumUpgraded, s.current)
	return nil
}

func (s *sessionService) Current() *models.Account {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Clone()
}

func (s *sessionService) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *sessionService) publish(ctx context.Context, eventType events.EventType, account *models.Account) {
	event := events.SessionEvent{
		Type:       eventType,
		AccountID:  account.ID,
		Email:      account.Email,
		Role:       account.Role,
		OccurredAt: s.now(),
	}
	if err := s.publisher.PublishSessionEvent(ctx, event); err != nil {
		s.logger.Error("Failed to publish session event",
			"error", err, "type", eventType)
	}
}
