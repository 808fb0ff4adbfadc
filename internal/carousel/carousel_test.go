package carousel_test

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/Zachkp/folio/internal/carousel"
	. "github.com/smartystreets/goconvey/convey"
)

// fakeClock fires AfterFunc callbacks only when Advance passes their deadline.
type fakeClock struct {
	mu      sync.Mutex
	now     time.Duration
	pending []*fakeTimer
}

type fakeTimer struct {
	at      time.Duration
	fn      func()
	stopped bool
}

func (t *fakeTimer) Stop() bool {
	was := !t.stopped
	t.stopped = true
	return was
}

func (c *fakeClock) AfterFunc(d time.Duration, f func()) carousel.Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &fakeTimer{at: c.now + d, fn: f}
	c.pending = append(c.pending, t)
	return t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now += d
	var due []*fakeTimer
	keep := c.pending[:0]
	for _, t := range c.pending {
		if t.at <= c.now {
			due = append(due, t)
		} else {
			keep = append(keep, t)
		}
	}
	c.pending = keep
	c.mu.Unlock()

	for _, t := range due {
		if !t.stopped {
			t.fn()
		}
	}
}

// fixedRand returns the same value forever.
type fixedRand float64

func (r fixedRand) Float64() float64 { return float64(r) }

func newController(n int, clock *fakeClock, opts ...carousel.Option) *carousel.Controller {
	slides := make([]string, n)
	for i := range slides {
		slides[i] = "/slide/" + string(rune('a'+i)) + ".png"
	}
	opts = append([]carousel.Option{carousel.WithClock(clock), carousel.WithRand(fixedRand(0.5))}, opts...)
	c, err := carousel.New(slides, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

func TestNavigationWraps(t *testing.T) {
	Convey("For every slide count and start index", t, func() {
		for n := 1; n <= 6; n++ {
			for start := 0; start < n; start++ {
				clock := &fakeClock{}
				c := newController(n, clock)
				if start != 0 {
					_, err := c.JumpTo(start)
					So(err, ShouldBeNil)
					clock.Advance(carousel.DefaultDuration)
				}

				tr, err := c.Next()
				So(err, ShouldBeNil)
				So(tr.From, ShouldEqual, start)
				So(tr.To, ShouldEqual, (start+1)%n)
				So(tr.Direction, ShouldEqual, carousel.Right)
				clock.Advance(carousel.DefaultDuration)

				tr, err = c.Prev()
				So(err, ShouldBeNil)
				So(tr.To, ShouldEqual, start)
				So(tr.Direction, ShouldEqual, carousel.Left)

				clock.Advance(carousel.DefaultDuration)
				tr, err = c.Prev()
				So(err, ShouldBeNil)
				So(tr.To, ShouldEqual, (start-1+n)%n)
			}
		}
	})
}

func TestTransitionLock(t *testing.T) {
	Convey("Given a controller with three slides", t, func() {
		clock := &fakeClock{}
		var settled []carousel.View
		c := newController(3, clock, carousel.WithSettle(func(v carousel.View) { settled = append(settled, v) }))

		So(c.State(), ShouldEqual, carousel.Idle)
		So(c.View().Tiles, ShouldHaveLength, carousel.TileCount)

		Convey("When a transition starts", func() {
			tr, err := c.Next()
			So(err, ShouldBeNil)
			So(tr.Generation, ShouldEqual, 1)
			So(tr.Tiles, ShouldHaveLength, 16)
			So(c.State(), ShouldEqual, carousel.Transitioning)

			Convey("Every request is rejected until the duration elapses", func() {
				_, err = c.Next()
				So(errors.Is(err, carousel.ErrBusy), ShouldBeTrue)
				_, err = c.Prev()
				So(errors.Is(err, carousel.ErrBusy), ShouldBeTrue)
				_, err = c.JumpTo(2)
				So(errors.Is(err, carousel.ErrBusy), ShouldBeTrue)
				So(c.View().Index, ShouldEqual, 1)

				clock.Advance(carousel.DefaultDuration - time.Millisecond)
				_, err = c.Next()
				So(errors.Is(err, carousel.ErrBusy), ShouldBeTrue)

				clock.Advance(time.Millisecond)
				So(c.State(), ShouldEqual, carousel.Idle)
				So(settled, ShouldHaveLength, 1)
				So(settled[0].Index, ShouldEqual, 1)

				tr, err = c.Next()
				So(err, ShouldBeNil)
				So(tr.To, ShouldEqual, 2)
				So(tr.Generation, ShouldEqual, 2)
			})
		})

		Convey("Jumping to the current slide is a no-op", func() {
			_, err := c.JumpTo(0)
			So(errors.Is(err, carousel.ErrSameSlide), ShouldBeTrue)
			So(c.State(), ShouldEqual, carousel.Idle)
			So(c.View().Generation, ShouldEqual, 0)
		})

		Convey("Jumping backwards assembles from the left and arms the lock", func() {
			_, err := c.JumpTo(2)
			So(err, ShouldBeNil)
			clock.Advance(carousel.DefaultDuration)

			tr, err := c.JumpTo(0)
			So(err, ShouldBeNil)
			So(tr.Direction, ShouldEqual, carousel.Left)
			So(c.State(), ShouldEqual, carousel.Transitioning)
		})

		Convey("Out of range jumps are rejected", func() {
			_, err := c.JumpTo(3)
			So(errors.Is(err, carousel.ErrOutOfRange), ShouldBeTrue)
			_, err = c.JumpTo(-1)
			So(errors.Is(err, carousel.ErrOutOfRange), ShouldBeTrue)
		})

		Convey("Closing cancels the pending release", func() {
			_, err := c.Next()
			So(err, ShouldBeNil)
			c.Close()
			c.Close()
			clock.Advance(carousel.DefaultDuration)

			So(settled, ShouldBeEmpty)
			So(c.Closed(), ShouldBeTrue)
			_, err = c.Next()
			So(errors.Is(err, carousel.ErrClosed), ShouldBeTrue)
		})
	})

	Convey("A custom duration is honoured", t, func() {
		clock := &fakeClock{}
		c := newController(2, clock, carousel.WithDuration(200*time.Millisecond))
		_, err := c.Next()
		So(err, ShouldBeNil)
		clock.Advance(200 * time.Millisecond)
		So(c.State(), ShouldEqual, carousel.Idle)
	})

	Convey("An empty slide list is refused", t, func() {
		_, err := carousel.New(nil)
		So(errors.Is(err, carousel.ErrNoSlides), ShouldBeTrue)
	})
}

func TestHandleKey(t *testing.T) {
	Convey("Given a controller", t, func() {
		clock := &fakeClock{}
		c := newController(4, clock)

		Convey("Arrow keys map to previous and next", func() {
			action, tr, err := c.HandleKey("ArrowRight")
			So(err, ShouldBeNil)
			So(action, ShouldEqual, carousel.ActionNext)
			So(tr.To, ShouldEqual, 1)
			clock.Advance(carousel.DefaultDuration)

			action, tr, err = c.HandleKey("left")
			So(err, ShouldBeNil)
			So(action, ShouldEqual, carousel.ActionPrev)
			So(tr.To, ShouldEqual, 0)
		})

		Convey("Escape closes", func() {
			action, _, err := c.HandleKey("Escape")
			So(err, ShouldBeNil)
			So(action, ShouldEqual, carousel.ActionClose)
			So(c.Closed(), ShouldBeTrue)
		})

		Convey("Other keys are ignored", func() {
			action, _, err := c.HandleKey("Enter")
			So(err, ShouldBeNil)
			So(action, ShouldEqual, carousel.ActionNone)
			So(c.State(), ShouldEqual, carousel.Idle)
		})
	})
}
