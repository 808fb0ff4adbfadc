package web

import (
	"errors"
	"net/http"
	"slices"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/folio/internal/carousel"
	"github.com/Zachkp/folio/internal/content"
	"github.com/Zachkp/folio/internal/filter"
	"github.com/Zachkp/folio/internal/metrics"
)

type chip struct {
	Name     string
	Count    int
	Hue      int
	Selected bool
}

type grid struct {
	Chips    []chip
	Projects []content.Project
	Selected []string
	Total    int
}

type stage struct {
	ProjectID string
	Title     string
	View      carousel.View
}

func (s *Server) grid(sel *filter.Selection) grid {
	counts := filter.Counts(s.site.Projects)
	chips := make([]chip, 0, len(s.techs))
	for _, t := range s.techs {
		chips = append(chips, chip{Name: t, Count: counts[t], Hue: s.hues[t], Selected: sel.Has(t)})
	}
	return grid{
		Chips:    chips,
		Projects: sel.Apply(s.site.Projects),
		Selected: sel.Selected(),
		Total:    len(s.site.Projects),
	}
}

func (s *Server) knownTech(tech string) bool {
	_, ok := slices.BinarySearch(s.techs, tech)
	return ok
}

func (s *Server) projects(c *gin.Context) {
	sel := currentSession(c).Filter
	if tags := c.QueryArray("tech"); len(tags) > 0 {
		sel.Clear()
		for _, t := range tags {
			if s.knownTech(t) && !sel.Has(t) {
				sel.Toggle(t)
			}
		}
	}
	c.HTML(http.StatusOK, "projects.html", s.page("projects", gin.H{
		"grid": s.grid(sel),
	}))
}

func (s *Server) toggleTech(c *gin.Context) {
	tech := c.Param("tech")
	if !s.knownTech(tech) {
		s.fail(c, http.StatusNotFound, ErrUnknownTech)
		return
	}
	sel := currentSession(c).Filter
	sel.Toggle(tech)
	s.metrics.RecordFilterToggle(tech)
	c.HTML(http.StatusOK, "project-grid", s.grid(sel))
}

func (s *Server) clearFilter(c *gin.Context) {
	sel := currentSession(c).Filter
	sel.Clear()
	c.HTML(http.StatusOK, "project-grid", s.grid(sel))
}

func (s *Server) openModal(c *gin.Context) {
	p, err := s.site.ProjectByID(c.Param("id"))
	if err != nil {
		s.fail(c, http.StatusNotFound, err)
		return
	}
	ctl, err := carousel.New(p.Slides, s.carousel...)
	if err != nil {
		s.fail(c, http.StatusInternalServerError, err)
		return
	}
	if currentSession(c).OpenCarousel(p.ID, ctl) {
		s.metrics.CarouselClosed()
	}
	s.metrics.CarouselOpened()

	c.HTML(http.StatusOK, "modal", stage{ProjectID: p.ID, Title: p.Title, View: ctl.View()})
}

// closeModal answers with the empty placeholder so later cards still have
// a #modal target to swap into.
func (s *Server) closeModal(c *gin.Context) {
	if currentSession(c).CloseCarouselFor(c.Param("id")) {
		s.metrics.CarouselClosed()
	}
	c.HTML(http.StatusOK, "modal-empty", nil)
}

// slide handles next, prev and jump-to-index requests.
func (s *Server) slide(c *gin.Context) {
	id := c.Param("id")
	ctl, ok := currentSession(c).Carousel(id)
	if !ok {
		s.fail(c, http.StatusNotFound, ErrNoCarousel)
		return
	}

	var err error
	switch action := c.Param("action"); action {
	case "next":
		_, err = ctl.Next()
	case "prev":
		_, err = ctl.Prev()
	default:
		index, convErr := strconv.Atoi(action)
		if convErr != nil {
			s.fail(c, http.StatusBadRequest, ErrBadAction)
			return
		}
		_, err = ctl.JumpTo(index)
	}
	s.transitioned(c, id, ctl, err)
}

// key applies a keyboard shortcut forwarded from the modal.
func (s *Server) key(c *gin.Context) {
	id := c.Param("id")
	sess := currentSession(c)
	ctl, ok := sess.Carousel(id)
	if !ok {
		s.fail(c, http.StatusNotFound, ErrNoCarousel)
		return
	}

	action, _, err := ctl.HandleKey(c.Param("key"))
	switch action {
	case carousel.ActionNone:
		c.Status(http.StatusNoContent)
	case carousel.ActionClose:
		if sess.CloseCarouselFor(id) {
			s.metrics.CarouselClosed()
		}
		c.Header("HX-Retarget", "#modal")
		c.Header("HX-Reswap", "outerHTML")
		c.HTML(http.StatusOK, "modal-empty", nil)
	default:
		s.transitioned(c, id, ctl, err)
	}
}

// transitioned renders the new stage for an accepted transition. Rejected
// requests answer 204 so the page keeps the running animation.
func (s *Server) transitioned(c *gin.Context, id string, ctl *carousel.Controller, err error) {
	switch {
	case err == nil:
		s.metrics.RecordTransition(metrics.TransitionAccepted)
		p, _ := s.site.ProjectByID(id)
		c.HTML(http.StatusOK, "stage", stage{ProjectID: id, Title: p.Title, View: ctl.View()})
	case errors.Is(err, carousel.ErrBusy):
		s.metrics.RecordTransition(metrics.TransitionBusy)
		c.Status(http.StatusNoContent)
	case errors.Is(err, carousel.ErrSameSlide):
		s.metrics.RecordTransition(metrics.TransitionNoop)
		c.Status(http.StatusNoContent)
	case errors.Is(err, carousel.ErrOutOfRange):
		s.fail(c, http.StatusBadRequest, err)
	case errors.Is(err, carousel.ErrClosed):
		s.fail(c, http.StatusNotFound, err)
	default:
		s.fail(c, http.StatusInternalServerError, err)
	}
}
