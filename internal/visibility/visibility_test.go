package visibility_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Zachkp/folio/internal/visibility"
	. "github.com/smartystreets/goconvey/convey"
)

func TestTracker(t *testing.T) {
	Convey("Given a fresh tracker", t, func() {
		var revealed []visibility.Entry
		tr := visibility.NewTracker(visibility.WithOnReveal(func(e visibility.Entry) {
			revealed = append(revealed, e)
		}))

		for _, sec := range visibility.Sections() {
			So(tr.Visible(sec), ShouldBeEmpty)
		}

		Convey("Entries below the threshold are not recorded", func() {
			added, err := tr.Record(visibility.Entry{Section: visibility.Experience, Index: 0, Ratio: 0.19})
			So(err, ShouldBeNil)
			So(added, ShouldBeFalse)
			So(tr.IsVisible(visibility.Experience, 0), ShouldBeFalse)
		})

		Convey("Sections are independent and sets only grow", func() {
			steps := []visibility.Entry{
				{Section: visibility.Experience, Index: 2, Ratio: 0.2},
				{Section: visibility.Awards, Index: 0, Ratio: 1},
				{Section: visibility.Experience, Index: 0, Ratio: 0.5},
				{Section: visibility.Experience, Index: 2, Ratio: 0},
				{Section: visibility.Experience, Index: 2, Ratio: 0.9},
			}
			prev := map[visibility.Section]int{}
			for _, e := range steps {
				_, err := tr.Record(e)
				So(err, ShouldBeNil)
				for _, sec := range visibility.Sections() {
					n := len(tr.Visible(sec))
					So(n, ShouldBeGreaterThanOrEqualTo, prev[sec])
					prev[sec] = n
				}
			}

			So(tr.Visible(visibility.Experience), ShouldResemble, []int{0, 2})
			So(tr.Visible(visibility.Awards), ShouldResemble, []int{0})
			So(tr.Visible(visibility.Education), ShouldBeEmpty)
			So(revealed, ShouldHaveLength, 3)
		})

		Convey("Bad input is rejected", func() {
			_, err := tr.Record(visibility.Entry{Section: "hobbies", Index: 0, Ratio: 1})
			So(errors.Is(err, visibility.ErrUnknownSection), ShouldBeTrue)

			_, err = tr.Record(visibility.Entry{Section: visibility.Awards, Index: -1, Ratio: 1})
			So(errors.Is(err, visibility.ErrBadIndex), ShouldBeTrue)
		})

		Convey("Watch drains a stream until it closes", func() {
			stream := make(chan visibility.Entry, 3)
			stream <- visibility.Entry{Section: visibility.Education, Index: 1, Ratio: 0.3}
			stream <- visibility.Entry{Section: "bogus", Index: 1, Ratio: 0.3}
			stream <- visibility.Entry{Section: visibility.Education, Index: 0, Ratio: 0.3}
			close(stream)

			So(tr.Watch(context.Background(), stream), ShouldBeNil)
			So(tr.Visible(visibility.Education), ShouldResemble, []int{0, 1})
		})

		Convey("Watch stops when its context ends", func() {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()
			err := tr.Watch(ctx, make(chan visibility.Entry))
			So(errors.Is(err, context.Canceled), ShouldBeTrue)
		})
	})

	Convey("ParseSection accepts only known names", t, func() {
		sec, err := visibility.ParseSection("education")
		So(err, ShouldBeNil)
		So(sec, ShouldEqual, visibility.Education)

		_, err = visibility.ParseSection("Education")
		So(errors.Is(err, visibility.ErrUnknownSection), ShouldBeTrue)
	})
}

func TestRatio(t *testing.T) {
	Convey("Given a 100x500 viewport with a 50 unit bottom margin", t, func() {
		vp := visibility.Rect{Top: 0, Left: 0, Width: 100, Height: 500}

		Convey("A fully inside target is fully visible", func() {
			So(visibility.Ratio(visibility.Rect{Top: 10, Width: 100, Height: 100}, vp, 50), ShouldEqual, 1)
		})

		Convey("The margin hides the last 50 units", func() {
			// 400..500 is the target; the root ends at 450.
			So(visibility.Ratio(visibility.Rect{Top: 400, Width: 100, Height: 100}, vp, 50), ShouldEqual, 0.5)
			So(visibility.Ratio(visibility.Rect{Top: 460, Width: 100, Height: 40}, vp, 50), ShouldEqual, 0)
		})

		Convey("Targets below the fold are invisible", func() {
			So(visibility.Ratio(visibility.Rect{Top: 900, Width: 100, Height: 100}, vp, 50), ShouldEqual, 0)
		})

		Convey("Scan applies the threshold", func() {
			targets := []visibility.Target{
				{Section: visibility.Experience, Index: 0, Box: visibility.Rect{Top: 0, Width: 100, Height: 100}},
				{Section: visibility.Experience, Index: 1, Box: visibility.Rect{Top: 440, Width: 100, Height: 100}},
				{Section: visibility.Experience, Index: 2, Box: visibility.Rect{Top: 400, Width: 100, Height: 100}},
			}
			entries := visibility.Scan(vp, targets, 50, 0.2)
			So(entries, ShouldHaveLength, 2)
			So(entries[0].Index, ShouldEqual, 0)
			So(entries[1].Index, ShouldEqual, 2)
		})
	})
}

func TestScrollObserver(t *testing.T) {
	Convey("Given a scroll observer over two stacked entries", t, func() {
		viewports := make(chan visibility.Rect)
		obs := visibility.NewScrollObserver(viewports)
		targets := []visibility.Target{
			{Section: visibility.Awards, Index: 0, Box: visibility.Rect{Top: 0, Width: 10, Height: 100}},
			{Section: visibility.Awards, Index: 1, Box: visibility.Rect{Top: 1000, Width: 10, Height: 100}},
		}
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		stream, err := obs.Observe(ctx, targets)
		So(err, ShouldBeNil)

		tr := visibility.NewTracker()
		done := make(chan error, 1)
		go func() { done <- tr.Watch(ctx, stream) }()

		Convey("Scrolling down reveals entries and scrolling back never hides them", func() {
			viewports <- visibility.Rect{Top: 0, Width: 10, Height: 400}
			viewports <- visibility.Rect{Top: 800, Width: 10, Height: 400}
			viewports <- visibility.Rect{Top: 0, Width: 10, Height: 400}
			close(viewports)

			select {
			case err := <-done:
				So(err, ShouldBeNil)
			case <-time.After(2 * time.Second):
				So("watch did not finish", ShouldBeEmpty)
			}
			So(tr.Visible(visibility.Awards), ShouldResemble, []int{0, 1})
		})
	})

	Convey("An observer without viewports refuses to start", t, func() {
		_, err := (&visibility.ScrollObserver{}).Observe(context.Background(), nil)
		So(errors.Is(err, visibility.ErrNoViewports), ShouldBeTrue)
	})
}
