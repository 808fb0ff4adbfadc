// Package visibility records which timeline entries have scrolled into
// view. Each section keeps its own set of entry indices, and the sets only
// ever grow: an entry that has been seen stays revealed for the rest of
// the session.
package visibility

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
)

const (
	// DefaultThreshold is the visible fraction an entry needs to count.
	DefaultThreshold = 0.2
	// DefaultBottomMargin pulls the viewport's bottom edge up so entries
	// reveal a little after they peek over the fold.
	DefaultBottomMargin = 50.0
)

var (
	ErrUnknownSection = errors.New("unknown timeline section")
	ErrBadIndex       = errors.New("timeline index must not be negative")
)

// Section names a timeline on the About view.
type Section string

const (
	Experience Section = "experience"
	Education  Section = "education"
	Awards     Section = "awards"
)

// Sections lists the timelines in page order.
func Sections() []Section {
	return []Section{Experience, Education, Awards}
}

// ParseSection validates a section name coming from a request.
func ParseSection(s string) (Section, error) {
	for _, sec := range Sections() {
		if string(sec) == s {
			return sec, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSection, s)
}

// Entry reports that a timeline element intersects the viewport.
type Entry struct {
	Section Section
	Index   int
	Ratio   float64
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithThreshold overrides DefaultThreshold.
func WithThreshold(th float64) Option {
	return func(t *Tracker) { t.threshold = th }
}

// WithOnReveal registers a callback run, outside the lock, each time a set
// gains an index.
func WithOnReveal(fn func(Entry)) Option {
	return func(t *Tracker) { t.onReveal = fn }
}

// Tracker holds the per-section visibility sets. It is safe for concurrent
// use.
type Tracker struct {
	mu        sync.RWMutex
	threshold float64
	sets      map[Section]map[int]struct{}
	onReveal  func(Entry)
}

// NewTracker returns a tracker with an empty set for every section.
func NewTracker(opts ...Option) *Tracker {
	t := &Tracker{
		threshold: DefaultThreshold,
		sets:      make(map[Section]map[int]struct{}, len(Sections())),
	}
	for _, sec := range Sections() {
		t.sets[sec] = make(map[int]struct{})
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Threshold returns the visible fraction an entry must reach.
func (t *Tracker) Threshold() float64 { return t.threshold }

// Record adds the entry's index to its section when the entry is visible
// enough. It reports whether the set grew.
func (t *Tracker) Record(e Entry) (bool, error) {
	if e.Index < 0 {
		return false, ErrBadIndex
	}
	if e.Ratio < t.threshold {
		return false, nil
	}

	t.mu.Lock()
	set, ok := t.sets[e.Section]
	if !ok {
		t.mu.Unlock()
		return false, fmt.Errorf("%w: %q", ErrUnknownSection, e.Section)
	}
	if _, seen := set[e.Index]; seen {
		t.mu.Unlock()
		return false, nil
	}
	set[e.Index] = struct{}{}
	fn := t.onReveal
	t.mu.Unlock()

	if fn != nil {
		fn(e)
	}
	return true, nil
}

// Watch records entries from stream until it is closed or ctx ends.
// Malformed entries are skipped.
func (t *Tracker) Watch(ctx context.Context, stream <-chan Entry) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case e, ok := <-stream:
			if !ok {
				return nil
			}
			_, _ = t.Record(e)
		}
	}
}

// IsVisible reports whether index has been revealed in section.
func (t *Tracker) IsVisible(section Section, index int) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.sets[section][index]
	return ok
}

// Visible returns the revealed indices of section in ascending order.
func (t *Tracker) Visible(section Section) []int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	set := t.sets[section]
	out := make([]int, 0, len(set))
	for i := range set {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}
