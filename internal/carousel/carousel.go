// Package carousel drives the project modal's slide carousel.
//
// A Controller is a two-state machine. From Idle, a next, previous or
// jump-to-index request moves to a new slide, shatters it into tiles and
// enters Transitioning. Requests made while Transitioning are rejected with
// ErrBusy; the controller returns to Idle on its own once the transition
// duration has elapsed.
package carousel

import (
	"errors"
	"sync"
	"time"
)

// DefaultDuration is how long a transition holds the lock.
const DefaultDuration = 1100 * time.Millisecond

var (
	ErrNoSlides   = errors.New("carousel has no slides")
	ErrBusy       = errors.New("transition in progress")
	ErrSameSlide  = errors.New("already on that slide")
	ErrOutOfRange = errors.New("slide index out of range")
	ErrClosed     = errors.New("carousel closed")
)

// Direction is the side the incoming tiles assemble from.
type Direction int

const (
	Right Direction = iota
	Left
)

func (d Direction) String() string {
	if d == Left {
		return "left"
	}
	return "right"
}

// State of the controller.
type State int

const (
	Idle State = iota
	Transitioning
)

func (s State) String() string {
	if s == Transitioning {
		return "transitioning"
	}
	return "idle"
}

// Transition describes an accepted slide change.
type Transition struct {
	From       int
	To         int
	Direction  Direction
	Generation int
	Slide      string
	Tiles      []Tile
}

// View is a point-in-time copy of the controller, safe to render.
type View struct {
	Index      int
	Count      int
	Direction  Direction
	State      State
	Generation int
	Slide      string
	Tiles      []Tile
}

// Transitioning reports whether the view was taken mid-transition.
func (v View) Transitioning() bool { return v.State == Transitioning }

// Option configures a Controller.
type Option func(*Controller)

// WithClock replaces the wall clock used for the transition lock.
func WithClock(c Clock) Option { return func(ctl *Controller) { ctl.clock = c } }

// WithRand replaces the random source for tile delay and rotation.
func WithRand(r Rand) Option { return func(ctl *Controller) { ctl.rand = r } }

// WithDuration sets the transition lock duration.
func WithDuration(d time.Duration) Option {
	return func(ctl *Controller) {
		if d > 0 {
			ctl.duration = d
		}
	}
}

// WithSettle registers a callback run, outside the lock, whenever a
// transition ends.
func WithSettle(fn func(View)) Option { return func(ctl *Controller) { ctl.onSettle = fn } }

// Controller is safe for concurrent use.
type Controller struct {
	mu         sync.Mutex
	slides     []string
	current    int
	direction  Direction
	state      State
	generation int
	tiles      []Tile
	timer      Timer
	closed     bool

	clock    Clock
	rand     Rand
	duration time.Duration
	onSettle func(View)
}

// New builds a controller showing the first slide.
func New(slides []string, opts ...Option) (*Controller, error) {
	if len(slides) == 0 {
		return nil, ErrNoSlides
	}
	c := &Controller{
		slides:   append([]string(nil), slides...),
		clock:    systemClock{},
		rand:     globalRand{},
		duration: DefaultDuration,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.tiles = Shatter(c.slides[0], 0, Right, c.rand)
	return c, nil
}

// Next advances to (i+1) mod n.
func (c *Controller) Next() (Transition, error) {
	return c.request(func(cur, n int) (int, Direction, error) {
		return (cur + 1) % n, Right, nil
	})
}

// Prev moves back to (i-1+n) mod n.
func (c *Controller) Prev() (Transition, error) {
	return c.request(func(cur, n int) (int, Direction, error) {
		return (cur - 1 + n) % n, Left, nil
	})
}

// JumpTo moves straight to index. The tiles come from the right when the
// target is after the current slide.
func (c *Controller) JumpTo(index int) (Transition, error) {
	return c.request(func(cur, n int) (int, Direction, error) {
		switch {
		case index < 0 || index >= n:
			return 0, Right, ErrOutOfRange
		case index == cur:
			return 0, Right, ErrSameSlide
		case index > cur:
			return index, Right, nil
		default:
			return index, Left, nil
		}
	})
}

func (c *Controller) request(target func(cur, n int) (int, Direction, error)) (Transition, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return Transition{}, ErrClosed
	}
	if c.state == Transitioning {
		return Transition{}, ErrBusy
	}
	to, dir, err := target(c.current, len(c.slides))
	if err != nil {
		return Transition{}, err
	}

	from := c.current
	c.current = to
	c.direction = dir
	c.generation++
	c.state = Transitioning
	c.tiles = Shatter(c.slides[to], c.generation, dir, c.rand)

	gen := c.generation
	c.timer = c.clock.AfterFunc(c.duration, func() { c.settle(gen) })

	return Transition{
		From:       from,
		To:         to,
		Direction:  dir,
		Generation: gen,
		Slide:      c.slides[to],
		Tiles:      c.tiles,
	}, nil
}

// settle returns to Idle unless a newer transition owns the lock.
func (c *Controller) settle(gen int) {
	c.mu.Lock()
	if c.closed || c.generation != gen || c.state != Transitioning {
		c.mu.Unlock()
		return
	}
	c.state = Idle
	c.timer = nil
	view := c.viewLocked()
	fn := c.onSettle
	c.mu.Unlock()

	if fn != nil {
		fn(view)
	}
}

// View returns a snapshot of the current slide.
func (c *Controller) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewLocked()
}

func (c *Controller) viewLocked() View {
	return View{
		Index:      c.current,
		Count:      len(c.slides),
		Direction:  c.direction,
		State:      c.state,
		Generation: c.generation,
		Slide:      c.slides[c.current],
		Tiles:      append([]Tile(nil), c.tiles...),
	}
}

// State returns Idle or Transitioning.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Close cancels a pending lock release. Further requests fail with
// ErrClosed. Close is idempotent.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

// Closed reports whether Close was called.
func (c *Controller) Closed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}
