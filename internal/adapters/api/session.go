package api

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"weatherscreen.app/internal/core/screen"
	"weatherscreen.app/internal/ports"
	"weatherscreen.app/pkg/errors"
)

// ScreenFactory builds an unmounted screen for a new session.
type ScreenFactory func() (*screen.Screen, error)

type session struct {
	screen   *screen.Screen
	lastSeen time.Time
}

// SessionManager keeps one mounted screen per browser session.
// The mutex guards only the session map; each screen owns its own state.
type SessionManager struct {
	factory ScreenFactory
	idle    time.Duration
	logger  ports.Logger
	metrics ports.MetricsCollector
	now     func() time.Time

	mu       sync.Mutex
	sessions map[string]*session
}

// SessionManagerOptions holds the dependencies of a SessionManager
type SessionManagerOptions struct {
	Factory ScreenFactory
	Idle    time.Duration
	Logger  ports.Logger
	Metrics ports.MetricsCollector
}

func NewSessionManager(opts SessionManagerOptions) (*SessionManager, error) {
	if opts.Factory == nil {
		return nil, errors.NewValidationError("screen factory is required")
	}
	if opts.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}
	if opts.Metrics == nil {
		return nil, errors.NewValidationError("metrics is required")
	}
	if opts.Idle <= 0 {
		return nil, errors.NewValidationError("session idle timeout must be positive")
	}

	return &SessionManager{
		factory:  opts.Factory,
		idle:     opts.Idle,
		logger:   opts.Logger,
		metrics:  opts.Metrics,
		now:      time.Now,
		sessions: make(map[string]*session),
	}, nil
}

// Acquire returns the screen for id, mounting a fresh one under a new id when id is
// empty or unknown. The returned id is the one the client must keep.
func (m *SessionManager) Acquire(id string) (*screen.Screen, string, error) {
	m.mu.Lock()
	if s, ok := m.sessions[id]; ok && id != "" {
		s.lastSeen = m.now()
		m.mu.Unlock()
		return s.screen, id, nil
	}
	m.mu.Unlock()

	scr, err := m.factory()
	if err != nil {
		return nil, "", err
	}

	newID := uuid.NewString()
	scr.Mount(context.Background())

	m.mu.Lock()
	m.sessions[newID] = &session{screen: scr, lastSeen: m.now()}
	count := len(m.sessions)
	m.mu.Unlock()

	m.metrics.SetActiveScreens(count)
	m.logger.Info("Screen mounted", ports.F("session", newID), ports.F("active", count))
	return scr, newID, nil
}

// ActiveCount reports the number of mounted screens.
func (m *SessionManager) ActiveCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Release unmounts the screen of id. Unknown ids are a NotFound error.
func (m *SessionManager) Release(id string) error {
	m.mu.Lock()
	s, ok := m.sessions[id]
	if ok {
		delete(m.sessions, id)
	}
	count := len(m.sessions)
	m.mu.Unlock()

	if !ok {
		return errors.NewNotFoundError("session not found")
	}

	s.screen.Close()
	m.metrics.SetActiveScreens(count)
	m.logger.Info("Screen unmounted", ports.F("session", id), ports.F("active", count))
	return nil
}

// Sweep unmounts screens idle for longer than the configured timeout and returns how many it removed.
func (m *SessionManager) Sweep() int {
	cutoff := m.now().Add(-m.idle)

	m.mu.Lock()
	var expired []*screen.Screen
	for id, s := range m.sessions {
		if s.lastSeen.Before(cutoff) {
			expired = append(expired, s.screen)
			delete(m.sessions, id)
		}
	}
	count := len(m.sessions)
	m.mu.Unlock()

	for _, scr := range expired {
		scr.Close()
	}
	if len(expired) > 0 {
		m.metrics.SetActiveScreens(count)
		m.logger.Info("Idle screens unmounted", ports.F("removed", len(expired)), ports.F("active", count))
	}
	return len(expired)
}

// RunJanitor sweeps every interval until ctx is done.
func (m *SessionManager) RunJanitor(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			m.logger.Debug("Session janitor stopped")
			return
		case <-ticker.C:
			m.Sweep()
		}
	}
}

// CloseAll unmounts every screen.
func (m *SessionManager) CloseAll() {
	m.mu.Lock()
	screens := make([]*screen.Screen, 0, len(m.sessions))
	for id, s := range m.sessions {
		screens = append(screens, s.screen)
		delete(m.sessions, id)
	}
	m.mu.Unlock()

	for _, scr := range screens {
		scr.Close()
	}
	m.metrics.SetActiveScreens(0)
}
