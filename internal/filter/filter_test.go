package filter_test

import (
	"testing"

	"github.com/Zachkp/folio/internal/content"
	"github.com/Zachkp/folio/internal/filter"
	. "github.com/smartystreets/goconvey/convey"
)

func projects() []content.Project {
	return []content.Project{
		{ID: "shop", Technologies: []string{"React", "Node.js", "Stripe"}},
		{ID: "tui", Technologies: []string{"Go", "Bubble Tea"}},
		{ID: "dash", Technologies: []string{"Python", "React"}},
	}
}

func ids(ps []content.Project) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.ID
	}
	return out
}

type constRand int

func (r constRand) IntN(n int) int { return int(r) % n }

func TestApply(t *testing.T) {
	Convey("Given the example from the contract", t, func() {
		ps := []content.Project{
			{ID: "first", Technologies: []string{"React"}},
			{ID: "second", Technologies: []string{"Go"}},
		}
		So(ids(filter.Apply([]string{"React"}, ps)), ShouldResemble, []string{"first"})
	})

	Convey("Given three tagged projects", t, func() {
		ps := projects()
		sel := filter.NewSelection()

		Convey("No selection returns everything", func() {
			So(ids(sel.Apply(ps)), ShouldResemble, []string{"shop", "tui", "dash"})
		})

		Convey("Selecting tag T returns exactly the projects carrying T", func() {
			for _, tag := range filter.Technologies(ps) {
				got := filter.Apply([]string{tag}, ps)
				var want []string
				for _, p := range ps {
					if p.HasTech(tag) {
						want = append(want, p.ID)
					}
				}
				So(ids(got), ShouldResemble, want)
			}
		})

		Convey("Several tags union their matches in input order", func() {
			sel.Toggle("Python")
			sel.Toggle("Go")
			So(ids(sel.Apply(ps)), ShouldResemble, []string{"tui", "dash"})
		})

		Convey("Toggling twice deselects", func() {
			So(sel.Toggle("React"), ShouldBeTrue)
			So(sel.Has("React"), ShouldBeTrue)
			So(sel.Toggle("React"), ShouldBeFalse)
			So(sel.Selected(), ShouldBeEmpty)
			So(sel.Apply(ps), ShouldHaveLength, 3)
		})

		Convey("Unknown tags select nothing", func() {
			sel.Toggle("COBOL")
			So(sel.Apply(ps), ShouldBeEmpty)
		})
	})

	Convey("NewSelection drops duplicates and Clear empties", t, func() {
		sel := filter.NewSelection("Go", "Go", "React")
		So(sel.Selected(), ShouldResemble, []string{"Go", "React"})
		sel.Clear()
		So(sel.Selected(), ShouldBeEmpty)
	})
}

func TestCatalogue(t *testing.T) {
	Convey("Technologies are distinct and sorted, counts tally usage", t, func() {
		ps := projects()
		So(filter.Technologies(ps), ShouldResemble,
			[]string{"Bubble Tea", "Go", "Node.js", "Python", "React", "Stripe"})
		So(filter.Counts(ps)["React"], ShouldEqual, 2)
		So(filter.Counts(ps)["Go"], ShouldEqual, 1)

		hues := filter.Hues([]string{"Go", "React"}, constRand(400))
		So(hues["Go"], ShouldEqual, 40)
	})
}
