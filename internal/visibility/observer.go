package visibility

import (
	"context"
	"errors"
)

// ErrNoViewports is returned by a ScrollObserver built without a viewport
// stream.
var ErrNoViewports = errors.New("scroll observer has no viewport stream")

// Rect is an axis-aligned box in layout units (pixels on the web, rows and
// columns in a terminal).
type Rect struct {
	Top    float64
	Left   float64
	Width  float64
	Height float64
}

func (r Rect) Bottom() float64 { return r.Top + r.Height }
func (r Rect) Right() float64  { return r.Left + r.Width }

// Target is an element being watched.
type Target struct {
	Section Section
	Index   int
	Box     Rect
}

// Observer turns a set of targets into a stream of visibility-entered
// events. The stream closes when ctx ends or the underlying source stops.
type Observer interface {
	Observe(ctx context.Context, targets []Target) (<-chan Entry, error)
}

// Ratio returns the fraction of target inside viewport once the
// viewport's bottom edge is raised by bottomMargin.
func Ratio(target, viewport Rect, bottomMargin float64) float64 {
	root := viewport
	root.Height -= bottomMargin
	if root.Height < 0 {
		root.Height = 0
	}

	top := max(target.Top, root.Top)
	bottom := min(target.Bottom(), root.Bottom())
	left := max(target.Left, root.Left)
	right := min(target.Right(), root.Right())
	if bottom < top || right < left {
		return 0
	}

	area := target.Width * target.Height
	if area <= 0 {
		// A zero-area target counts as fully visible while it sits inside.
		return 1
	}
	return (bottom - top) * (right - left) / area
}

// Scan evaluates every target against one viewport and returns the ones at
// or above threshold.
func Scan(viewport Rect, targets []Target, bottomMargin, threshold float64) []Entry {
	var out []Entry
	for _, t := range targets {
		r := Ratio(t.Box, viewport, bottomMargin)
		if r >= threshold {
			out = append(out, Entry{Section: t.Section, Index: t.Index, Ratio: r})
		}
	}
	return out
}

// ScrollObserver implements Observer over a stream of viewport positions,
// such as scroll offsets reported by a terminal pager. Like a browser
// intersection observer it only reports a target when it crosses from
// hidden to visible.
type ScrollObserver struct {
	Viewports    <-chan Rect
	BottomMargin float64
	Threshold    float64
}

// NewScrollObserver uses the default margin and threshold.
func NewScrollObserver(viewports <-chan Rect) *ScrollObserver {
	return &ScrollObserver{
		Viewports:    viewports,
		BottomMargin: DefaultBottomMargin,
		Threshold:    DefaultThreshold,
	}
}

// Observe starts a goroutine that ends with ctx or when Viewports closes.
func (o *ScrollObserver) Observe(ctx context.Context, targets []Target) (<-chan Entry, error) {
	if o.Viewports == nil {
		return nil, ErrNoViewports
	}
	targets = append([]Target(nil), targets...)
	out := make(chan Entry, len(targets))

	go func() {
		defer close(out)
		inside := make(map[Target]bool, len(targets))
		for {
			select {
			case <-ctx.Done():
				return
			case vp, ok := <-o.Viewports:
				if !ok {
					return
				}
				hits := make(map[Target]Entry)
				for _, e := range Scan(vp, targets, o.BottomMargin, o.Threshold) {
					hits[Target{Section: e.Section, Index: e.Index}] = e
				}
				for _, t := range targets {
					key := Target{Section: t.Section, Index: t.Index}
					e, hit := hits[key]
					if hit && !inside[key] {
						select {
						case out <- e:
						case <-ctx.Done():
							return
						}
					}
					inside[key] = hit
				}
			}
		}
	}()
	return out, nil
}
