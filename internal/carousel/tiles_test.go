package carousel_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/Zachkp/folio/internal/carousel"
	. "github.com/smartystreets/goconvey/convey"
)

// seqRand cycles through a fixed list of values.
type seqRand struct {
	vals []float64
	i    int
}

func (r *seqRand) Float64() float64 {
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v
}

func TestShatter(t *testing.T) {
	Convey("Shatter always yields a 4x4 grid", t, func() {
		for _, url := range []string{"", "/tiny.png", "https://example.com/huge-8k-panorama.jpg"} {
			tiles := carousel.Shatter(url, 7, carousel.Left, &seqRand{vals: []float64{0, 0.999}})
			So(tiles, ShouldHaveLength, 16)

			seen := map[[2]int]bool{}
			for i, tile := range tiles {
				So(tile.Index, ShouldEqual, i)
				So(tile.Key, ShouldEqual, keyOf(i, 7))
				seen[[2]int{tile.Row, tile.Col}] = true
			}
			So(seen, ShouldHaveLength, 16)
		}
	})

	Convey("Delay and rotation stay inside their bounds", t, func() {
		tiles := carousel.Shatter("/a.png", 1, carousel.Right, &seqRand{vals: []float64{0, 0, 0.9999, 0.9999}})

		So(tiles[0].Delay, ShouldEqual, time.Duration(0))
		So(tiles[0].Rotation, ShouldEqual, -carousel.MaxRotation)
		So(tiles[1].Delay, ShouldBeLessThan, carousel.MaxDelay)
		So(tiles[1].Rotation, ShouldBeLessThan, carousel.MaxRotation)
		So(tiles[1].Rotation, ShouldBeGreaterThan, 359)
	})

	Convey("Geometry places each tile in its own cell", t, func() {
		tiles := carousel.Shatter("/a.png", 0, carousel.Right, &seqRand{vals: []float64{0.5}})
		last := tiles[15]

		So(last.Row, ShouldEqual, 3)
		So(last.Col, ShouldEqual, 3)
		So(last.LeftPercent(), ShouldEqual, 75)
		So(last.TopPercent(), ShouldEqual, 75)
		So(last.WidthPercent(), ShouldEqual, 25)
		So(last.BackgroundX(), ShouldEqual, 100)
		So(tiles[0].BackgroundY(), ShouldEqual, 0)
		So(last.Class(), ShouldEqual, "shattered-piece assemble-right")
		So(last.DelaySeconds(), ShouldEqual, "0.150")
		So(last.RotationDegrees(), ShouldEqual, "0.0")
		So(last.Settled(100*time.Millisecond), ShouldBeFalse)
		So(last.Settled(150*time.Millisecond), ShouldBeTrue)
	})
}

func keyOf(i, gen int) string {
	return fmt.Sprintf("%d-%d", i, gen)
}
