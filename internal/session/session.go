// Package session keeps the per-visitor UI state the views need between
// requests: revealed timeline entries, selected technology chips, the hero
// start time and the open project carousel.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Zachkp/folio/internal/carousel"
	"github.com/Zachkp/folio/internal/filter"
	"github.com/Zachkp/folio/internal/visibility"
)

// DefaultTTL is how long an untouched session survives.
const DefaultTTL = 30 * time.Minute

// Session is one visitor's UI state.
type Session struct {
	ID         string
	Started    time.Time
	Visibility *visibility.Tracker
	Filter     *filter.Selection

	mu        sync.Mutex
	lastSeen  time.Time
	carousel  *carousel.Controller
	projectID string
}

// OpenCarousel installs c as the open modal for projectID, closing any
// previously open one. It reports whether a previous carousel was replaced.
func (s *Session) OpenCarousel(projectID string, c *carousel.Controller) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	replaced := s.carousel != nil
	if replaced {
		s.carousel.Close()
	}
	s.carousel, s.projectID = c, projectID
	return replaced
}

// Carousel returns the open carousel when it belongs to projectID.
func (s *Session) Carousel(projectID string) (*carousel.Controller, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.carousel == nil || s.projectID != projectID {
		return nil, false
	}
	return s.carousel, true
}

// HasCarousel reports whether a modal is open.
func (s *Session) HasCarousel() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.carousel != nil
}

// CloseCarousel closes and forgets the open modal. It reports whether one
// was open.
func (s *Session) CloseCarousel() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.carousel == nil {
		return false
	}
	s.carousel.Close()
	s.carousel, s.projectID = nil, ""
	return true
}

// CloseCarouselFor closes the open modal only when it belongs to projectID.
// It reports whether one was closed.
func (s *Session) CloseCarouselFor(projectID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.carousel == nil || s.projectID != projectID {
		return false
	}
	s.carousel.Close()
	s.carousel, s.projectID = nil, ""
	return true
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

// Option configures a Registry.
type Option func(*Registry)

// WithTTL sets the idle lifetime of a session.
func WithTTL(ttl time.Duration) Option {
	return func(r *Registry) {
		if ttl > 0 {
			r.ttl = ttl
		}
	}
}

// WithNow replaces time.Now.
func WithNow(now func() time.Time) Option { return func(r *Registry) { r.now = now } }

// WithTrackerOptions configures every session's visibility tracker.
func WithTrackerOptions(opts ...visibility.Option) Option {
	return func(r *Registry) { r.trackerOpts = opts }
}

// WithOnEvict runs fn for every session being torn down, before its
// carousel is closed.
func WithOnEvict(fn func(*Session)) Option { return func(r *Registry) { r.onEvict = fn } }

// WithOnResize runs fn with the new session count after every change.
func WithOnResize(fn func(int)) Option { return func(r *Registry) { r.onResize = fn } }

// Registry maps session ids to sessions.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*Session

	ttl         time.Duration
	now         func() time.Time
	trackerOpts []visibility.Option
	onEvict     func(*Session)
	onResize    func(int)
}

// NewRegistry returns an empty registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		sessions: make(map[string]*Session),
		ttl:      DefaultTTL,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Get returns a live session and marks it as seen.
func (r *Registry) Get(id string) (*Session, bool) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	if !ok {
		return nil, false
	}
	// Sweep holds r.mu too, so it sees either the old or the touched time.
	s.touch(r.now())
	return s, true
}

// Create starts a new session with a random id.
func (r *Registry) Create() *Session {
	now := r.now()
	s := &Session{
		ID:         uuid.NewString(),
		Started:    now,
		Visibility: visibility.NewTracker(r.trackerOpts...),
		Filter:     filter.NewSelection(),
		lastSeen:   now,
	}
	r.mu.Lock()
	r.sessions[s.ID] = s
	n := len(r.sessions)
	r.mu.Unlock()

	r.resized(n)
	return s
}

// GetOrCreate returns the session for id, creating one when id is unknown.
// The second result reports whether a new session was created.
func (r *Registry) GetOrCreate(id string) (*Session, bool) {
	if s, ok := r.Get(id); ok {
		return s, false
	}
	return r.Create(), true
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// Sweep tears down sessions idle for longer than the TTL and returns how
// many were removed.
func (r *Registry) Sweep() int {
	cutoff := r.now().Add(-r.ttl)

	r.mu.Lock()
	var dead []*Session
	for id, s := range r.sessions {
		if s.idleSince().Before(cutoff) {
			dead = append(dead, s)
			delete(r.sessions, id)
		}
	}
	n := len(r.sessions)
	r.mu.Unlock()

	for _, s := range dead {
		r.teardown(s)
	}
	if len(dead) > 0 {
		r.resized(n)
	}
	return len(dead)
}

// Run sweeps every interval until ctx ends, then tears down every session.
func (r *Registry) Run(ctx context.Context, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			r.Close()
			return
		case <-ticker.C:
			r.Sweep()
		}
	}
}

// Close tears down every session.
func (r *Registry) Close() {
	r.mu.Lock()
	all := make([]*Session, 0, len(r.sessions))
	for id, s := range r.sessions {
		all = append(all, s)
		delete(r.sessions, id)
	}
	r.mu.Unlock()

	for _, s := range all {
		r.teardown(s)
	}
	r.resized(0)
}

func (r *Registry) teardown(s *Session) {
	if r.onEvict != nil {
		r.onEvict(s)
	}
	s.CloseCarousel()
}

func (r *Registry) resized(n int) {
	if r.onResize != nil {
		r.onResize(n)
	}
}
