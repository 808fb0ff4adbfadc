package carousel

import (
	"fmt"
	"time"
)

// Grid dimensions of the shatter effect. The grid is fixed regardless of
// the image's pixel size; tiles are positioned in percentages.
const (
	Rows      = 4
	Cols      = 4
	TileCount = Rows * Cols

	// MaxDelay bounds the random entry delay of a tile.
	MaxDelay = 300 * time.Millisecond
	// MaxRotation bounds the absolute starting rotation of a tile, in degrees.
	MaxRotation = 360.0
)

// Tile is one piece of a shattered slide.
type Tile struct {
	Index      int
	Row        int
	Col        int
	Key        string
	Image      string
	Delay      time.Duration
	Rotation   float64
	Direction  Direction
	Generation int
}

// Shatter slices image into a Rows x Cols grid. Each tile gets a delay in
// [0, MaxDelay) and a rotation in [-MaxRotation, MaxRotation).
func Shatter(image string, generation int, dir Direction, rnd Rand) []Tile {
	tiles := make([]Tile, TileCount)
	for i := range tiles {
		delay := time.Duration(rnd.Float64() * float64(MaxDelay))
		rotation := (rnd.Float64() - 0.5) * 2 * MaxRotation
		tiles[i] = Tile{
			Index:      i,
			Row:        i / Cols,
			Col:        i % Cols,
			Key:        fmt.Sprintf("%d-%d", i, generation),
			Image:      image,
			Delay:      delay,
			Rotation:   rotation,
			Direction:  dir,
			Generation: generation,
		}
	}
	return tiles
}

// Class is the CSS class list that picks the assembly keyframes.
func (t Tile) Class() string {
	return "shattered-piece assemble-" + t.Direction.String()
}

func (t Tile) WidthPercent() float64  { return 100.0 / Cols }
func (t Tile) HeightPercent() float64 { return 100.0 / Rows }
func (t Tile) LeftPercent() float64   { return float64(t.Col) * 100.0 / Cols }
func (t Tile) TopPercent() float64    { return float64(t.Row) * 100.0 / Rows }

// BackgroundX and BackgroundY position the full-size background so that the
// tile shows its own cell of the image (background-size is Cols*100%).
func (t Tile) BackgroundX() float64 { return float64(t.Col) * 100.0 / (Cols - 1) }
func (t Tile) BackgroundY() float64 { return float64(t.Row) * 100.0 / (Rows - 1) }

// DelaySeconds formats the delay for animation-delay.
func (t Tile) DelaySeconds() string {
	return fmt.Sprintf("%.3f", t.Delay.Seconds())
}

// RotationDegrees formats the rotation for the --rotation custom property.
func (t Tile) RotationDegrees() string {
	return fmt.Sprintf("%.1f", t.Rotation)
}

// Settled reports whether the tile has finished its delay after elapsed
// time since the transition started.
func (t Tile) Settled(elapsed time.Duration) bool {
	return elapsed >= t.Delay
}
