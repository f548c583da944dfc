// Package sessions keeps one configuration aggregator and consent gate per client
// session in memory.
package sessions

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/giygas/protocols-api/metrics"
	"github.com/giygas/protocols-api/nutrition"
	"github.com/giygas/protocols-api/planconfig"
)

// Session bundles the state of one user session
type Session struct {
	ID        string
	CreatedAt time.Time

	Config *planconfig.Aggregator
	Gate   *planconfig.Gate

	mu       sync.Mutex
	lastSeen time.Time
}

// LastSeen returns the last time the session was accessed
func (s *Session) LastSeen() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

// Registry is a concurrency safe set of sessions
type Registry struct {
	mu            sync.RWMutex
	sessions      map[string]*Session
	source        nutrition.AilmentSource
	maxSelections int
	listeners     []planconfig.TransitionListener
	now           func() time.Time
}

type Option func(*Registry)

// WithMaxSelections sets the ailment selection cap of new sessions
func WithMaxSelections(n int) Option {
	return func(r *Registry) {
		r.maxSelections = n
	}
}

// WithTransitionListener subscribes l to the consent gate of every new session
func WithTransitionListener(l planconfig.TransitionListener) Option {
	return func(r *Registry) {
		if l != nil {
			r.listeners = append(r.listeners, l)
		}
	}
}

func NewRegistry(source nutrition.AilmentSource, opts ...Option) *Registry {
	r := &Registry{
		sessions:      make(map[string]*Session),
		source:        source,
		maxSelections: planconfig.DefaultMaxSelections,
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RecordTransition counts consent gate transitions in Prometheus
func RecordTransition(t planconfig.Transition) {
	metrics.ConsentTransitions.WithLabelValues(string(t.Family), string(t.To)).Inc()
}

// Create starts a session with the default configuration
func (r *Registry) Create() *Session {
	now := r.now()
	agg := planconfig.NewAggregator(r.source, planconfig.WithMaxSelections(r.maxSelections))
	gate := planconfig.NewGate(agg)
	for _, l := range r.listeners {
		gate.Subscribe(l)
	}

	s := &Session{
		ID:        uuid.NewString(),
		CreatedAt: now,
		Config:    agg,
		Gate:      gate,
		lastSeen:  now,
	}

	r.mu.Lock()
	r.sessions[s.ID] = s
	n := len(r.sessions)
	r.mu.Unlock()

	metrics.ActiveSessions.Set(float64(n))
	return s
}

// Get returns the session and marks it as used
func (r *Registry) Get(id string) (*Session, bool) {
	r.mu.RLock()
	s, ok := r.sessions[id]
	r.mu.RUnlock()
	if !ok {
		return nil, false
	}
	s.touch(r.now())
	return s, true
}

func (r *Registry) Delete(id string) bool {
	r.mu.Lock()
	_, ok := r.sessions[id]
	delete(r.sessions, id)
	n := len(r.sessions)
	r.mu.Unlock()

	if ok {
		metrics.ActiveSessions.Set(float64(n))
	}
	return ok
}

func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// SweepIdle removes sessions not used for longer than maxIdle and returns how
// many were removed
func (r *Registry) SweepIdle(maxIdle time.Duration) int {
	cutoff := r.now().Add(-maxIdle)

	r.mu.Lock()
	removed := 0
	for id, s := range r.sessions {
		if s.LastSeen().Before(cutoff) {
			delete(r.sessions, id)
			removed++
		}
	}
	n := len(r.sessions)
	r.mu.Unlock()

	metrics.ActiveSessions.Set(float64(n))
	return removed
}
