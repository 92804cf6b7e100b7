package usecase

import (
	"context"
	"sync"
	"time"

	"go-portfolio-backend/internal/domain"

	"github.com/google/uuid"
)

// Session registry defaults
const (
	DefaultSessionTTL  = 30 * time.Minute
	DefaultMaxSessions = 10000
)

type contactSession struct {
	controller *ContactController
	lastSeen   time.Time
}

// ContactSessions holds one ContactController per visitor for clients that keep
// the form state on the server. Idle sessions expire after the TTL.
type ContactSessions struct {
	cfg         ContactControllerConfig
	ttl         time.Duration
	maxSessions int
	now         func() time.Time

	mu       sync.Mutex
	sessions map[string]*contactSession
}

// ContactSessionsOption tweaks the session registry
type ContactSessionsOption func(*ContactSessions)

func WithSessionTTL(ttl time.Duration) ContactSessionsOption {
	return func(s *ContactSessions) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

func WithMaxSessions(n int) ContactSessionsOption {
	return func(s *ContactSessions) {
		if n > 0 {
			s.maxSessions = n
		}
	}
}

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) ContactSessionsOption {
	return func(s *ContactSessions) { s.now = now }
}

// NewContactSessions creates an empty registry. Call Run to expire idle sessions.
func NewContactSessions(cfg ContactControllerConfig, opts ...ContactSessionsOption) (*ContactSessions, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	s := &ContactSessions{
		cfg:         cfg.withDefaults(),
		ttl:         DefaultSessionTTL,
		maxSessions: DefaultMaxSessions,
		now:         time.Now,
		sessions:    make(map[string]*contactSession),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

var _ domain.ContactSessionUsecase = (*ContactSessions)(nil)

// Create opens a new form in the Idle state.
func (s *ContactSessions) Create() (domain.FormSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.sessions) >= s.maxSessions {
		s.evictExpiredLocked(s.now())
		if len(s.sessions) >= s.maxSessions {
			return domain.FormSnapshot{}, domain.ErrTooManySessions
		}
	}

	id := uuid.NewString()
	c := newContactController(s.cfg)
	s.sessions[id] = &contactSession{controller: c, lastSeen: s.now()}

	snap := c.Snapshot()
	snap.ID = id
	return snap, nil
}

// lookup finds a live session and marks it as used.
func (s *ContactSessions) lookup(id string) (*ContactController, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	now := s.now()
	if s.expired(sess, now) {
		delete(s.sessions, id)
		sess.controller.Close()
		return nil, domain.ErrSessionNotFound
	}
	sess.lastSeen = now
	return sess.controller, nil
}

func (s *ContactSessions) snapshot(id string, c *ContactController) domain.FormSnapshot {
	snap := c.Snapshot()
	snap.ID = id
	return snap
}

func (s *ContactSessions) Snapshot(id string) (domain.FormSnapshot, error) {
	c, err := s.lookup(id)
	if err != nil {
		return domain.FormSnapshot{}, err
	}
	return s.snapshot(id, c), nil
}

func (s *ContactSessions) UpdateField(id string, field domain.FieldName, value string) (domain.FormSnapshot, error) {
	c, err := s.lookup(id)
	if err != nil {
		return domain.FormSnapshot{}, err
	}
	if err := c.UpdateField(field, value); err != nil {
		return domain.FormSnapshot{}, err
	}
	return s.snapshot(id, c), nil
}

// Submit runs the session's submission. The status in the returned snapshot is
// authoritative; the error only classifies a non-success outcome.
func (s *ContactSessions) Submit(ctx context.Context, id string) (domain.FormSnapshot, error) {
	c, err := s.lookup(id)
	if err != nil {
		return domain.FormSnapshot{}, err
	}
	_, err = c.submit(ctx)
	return s.snapshot(id, c), err
}

func (s *ContactSessions) Reset(id string) (domain.FormSnapshot, error) {
	c, err := s.lookup(id)
	if err != nil {
		return domain.FormSnapshot{}, err
	}
	c.Reset()
	return s.snapshot(id, c), nil
}

// Close removes the session and cancels its in-flight submission, if any.
func (s *ContactSessions) Close(id string) error {
	s.mu.Lock()
	sess, ok := s.sessions[id]
	delete(s.sessions, id)
	s.mu.Unlock()

	if !ok {
		return domain.ErrSessionNotFound
	}
	sess.controller.Close()
	return nil
}

// Len reports the number of open sessions.
func (s *ContactSessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Run expires idle sessions every interval until ctx is done, then closes all sessions.
func (s *ContactSessions) Run(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.CloseAll()
			return nil
		case <-ticker.C:
			if n := s.EvictExpired(); n > 0 {
				s.cfg.Logger.Debug("Expired contact sessions", "count", n)
			}
		}
	}
}

// EvictExpired closes sessions idle for longer than the TTL and returns how many.
// A session with a submission in flight is kept until the submission settles.
func (s *ContactSessions) EvictExpired() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.evictExpiredLocked(s.now())
}

func (s *ContactSessions) evictExpiredLocked(now time.Time) int {
	n := 0
	for id, sess := range s.sessions {
		if s.expired(sess, now) {
			delete(s.sessions, id)
			sess.controller.Close()
			n++
		}
	}
	return n
}

func (s *ContactSessions) expired(sess *contactSession, now time.Time) bool {
	if now.Sub(sess.lastSeen) <= s.ttl {
		return false
	}
	return sess.controller.Status().State != domain.StateSubmitting
}

// CloseAll closes every session, cancelling in-flight submissions.
func (s *ContactSessions) CloseAll() {
	s.mu.Lock()
	sessions := s.sessions
	s.sessions = make(map[string]*contactSession)
	s.mu.Unlock()

	for _, sess := range sessions {
		sess.controller.Close()
	}
}
