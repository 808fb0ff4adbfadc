// Package typing implements the hero "typewriter": phrases are revealed one
// character per interval, held for a pause, then replaced by the next phrase.
// The blinking cursor runs on its own period, independent of the text.
package typing

import (
	"strings"
	"time"
)

const (
	DefaultInterval = 100 * time.Millisecond
	DefaultPause    = 2 * time.Second
	DefaultBlink    = 500 * time.Millisecond

	// CursorGlyph is drawn after the text while the cursor is on.
	CursorGlyph = "_"
)

// Timing holds the three periods of the effect. Zero fields take defaults.
type Timing struct {
	Interval time.Duration
	Pause    time.Duration
	Blink    time.Duration
}

func (t Timing) withDefaults() Timing {
	if t.Interval <= 0 {
		t.Interval = DefaultInterval
	}
	if t.Pause <= 0 {
		t.Pause = DefaultPause
	}
	if t.Blink <= 0 {
		t.Blink = DefaultBlink
	}
	return t
}

// pauseTicks is the pause rounded up to whole intervals. A finished phrase
// stays up for at least one tick.
func (t Timing) pauseTicks() int {
	n := int((t.Pause + t.Interval - 1) / t.Interval)
	if n < 1 {
		n = 1
	}
	return n
}

// Typewriter is the tick-driven form of the effect. It is not safe for
// concurrent use; drive it from a single loop.
type Typewriter struct {
	phrases    [][]rune
	timing     Timing
	pauseTicks int

	phrase   int
	revealed int
	paused   int
}

// New builds a typewriter positioned at the start of the first phrase.
func New(phrases []string, timing Timing) *Typewriter {
	timing = timing.withDefaults()
	runes := make([][]rune, len(phrases))
	for i, p := range phrases {
		runes[i] = []rune(p)
	}
	return &Typewriter{
		phrases:    runes,
		timing:     timing,
		pauseTicks: timing.pauseTicks(),
	}
}

// Timing returns the effective periods.
func (t *Typewriter) Timing() Timing { return t.timing }

// Tick advances the effect by one interval.
func (t *Typewriter) Tick() {
	if len(t.phrases) == 0 {
		return
	}
	if t.revealed < len(t.phrases[t.phrase]) {
		t.revealed++
		return
	}
	t.paused++
	if t.paused >= t.pauseTicks {
		t.phrase = (t.phrase + 1) % len(t.phrases)
		t.revealed = 0
		t.paused = 0
	}
}

// Text is the currently revealed prefix of the active phrase.
func (t *Typewriter) Text() string {
	if len(t.phrases) == 0 {
		return ""
	}
	return string(t.phrases[t.phrase][:t.revealed])
}

// PhraseIndex is the index of the active phrase.
func (t *Typewriter) PhraseIndex() int { return t.phrase }

// Complete reports whether the active phrase is fully revealed.
func (t *Typewriter) Complete() bool {
	return len(t.phrases) > 0 && t.revealed == len(t.phrases[t.phrase])
}

// Frame is the rendered state of the effect at some instant.
type Frame struct {
	Text   string
	Phrase int
	Cursor bool
}

// FrameAt computes the frame elapsed after the effect started, without
// replaying ticks. It agrees with a fresh Typewriter ticked
// elapsed/Interval times.
func (t *Typewriter) FrameAt(elapsed time.Duration) Frame {
	if elapsed < 0 {
		elapsed = 0
	}
	f := Frame{Cursor: (elapsed/t.timing.Blink)%2 == 0}

	total := 0
	for _, p := range t.phrases {
		total += len(p) + t.pauseTicks
	}
	if total == 0 {
		return f
	}

	tick := int((elapsed / t.timing.Interval) % time.Duration(total))
	for i, p := range t.phrases {
		span := len(p) + t.pauseTicks
		if tick < span {
			f.Phrase = i
			f.Text = string(p[:min(tick, len(p))])
			return f
		}
		tick -= span
	}
	return f
}

// Pending is a character revealed After some delay into a Window.
type Pending struct {
	Char  string
	After time.Duration
}

// Window is the stretch of the effect from an instant up to the next cursor
// toggle, or to the end of the phrase if that comes first. Within a window
// the text only grows, so a client can play it out from one snapshot.
type Window struct {
	Frame   Frame
	Pending []Pending
	Until   time.Duration
}

// WindowAt returns the window that starts elapsed after the effect started.
func (t *Typewriter) WindowAt(elapsed time.Duration) Window {
	if elapsed < 0 {
		elapsed = 0
	}
	w := Window{Frame: t.FrameAt(elapsed)}
	w.Until = t.timing.Blink - elapsed%t.timing.Blink

	text := w.Frame.Text
	step := t.timing.Interval
	for at := (elapsed/step + 1) * step; at < elapsed+w.Until; at += step {
		f := t.FrameAt(at)
		if f.Phrase != w.Frame.Phrase || !strings.HasPrefix(f.Text, text) {
			w.Until = at - elapsed
			break
		}
		if f.Text != text {
			w.Pending = append(w.Pending, Pending{Char: f.Text[len(text):], After: at - elapsed})
			text = f.Text
		}
	}
	return w
}

// Cursor is the blinking caret. The zero value is a visible cursor.
type Cursor struct {
	hidden bool
}

// Toggle flips the cursor; call it every Blink period.
func (c *Cursor) Toggle() { c.hidden = !c.hidden }

// Visible reports whether the caret is drawn.
func (c *Cursor) Visible() bool { return !c.hidden }

// Glyph returns CursorGlyph or a space of the same width.
func (c *Cursor) Glyph() string {
	if c.hidden {
		return " "
	}
	return CursorGlyph
}
