// Package web serves the portfolio over HTTP: full pages for the About,
// Projects and Contact views plus the HTMX fragments that drive the hero,
// the timelines, the technology filter and the project carousel.
package web

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/folio/internal/carousel"
	"github.com/Zachkp/folio/internal/content"
	"github.com/Zachkp/folio/internal/filter"
	"github.com/Zachkp/folio/internal/inbox"
	"github.com/Zachkp/folio/internal/metrics"
	"github.com/Zachkp/folio/internal/session"
	"github.com/Zachkp/folio/internal/typing"
	"github.com/Zachkp/folio/internal/visibility"
	"github.com/Zachkp/folio/pkg/logger"
)

var (
	ErrMissingDependency = errors.New("missing web dependency")
	ErrNoCarousel        = errors.New("no open carousel for project")
	ErrBadAction         = errors.New("unknown slide action")
	ErrUnknownTech       = errors.New("unknown technology")
	ErrBadGeometry       = errors.New("bad timeline geometry")
)

// Recorder stores contact form submissions.
type Recorder interface {
	Record(ctx context.Context, sub inbox.Submission) (inbox.Message, error)
}

// Deps is everything the handlers need. Site, Sessions, Inbox and Metrics
// are required.
type Deps struct {
	Site     *content.Site
	Sessions *session.Registry
	Inbox    Recorder
	Metrics  *metrics.Manager
	Log      logger.Logger

	ResumeURL string
	Typing    typing.Timing

	// BottomMargin raises the viewport's bottom edge, in CSS pixels, when
	// deciding whether a timeline entry is visible. Zero or less means
	// visibility.DefaultBottomMargin.
	BottomMargin float64

	// Carousel options applied to every modal, e.g. the lock duration.
	Carousel []carousel.Option

	// Now and Hues default to time.Now and math/rand.
	Now  func() time.Time
	Hues filter.Rand
}

// Server owns the gin engine.
type Server struct {
	site         *content.Site
	sessions     *session.Registry
	inbox        Recorder
	metrics      *metrics.Manager
	log          logger.Logger
	resumeURL    string
	bottomMargin float64
	carousel     []carousel.Option
	now          func() time.Time

	hero  *typing.Typewriter
	techs []string
	hues  map[string]int

	engine *gin.Engine
}

type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.Intn(n) }

// New builds the router.
func New(d Deps) (*Server, error) {
	switch {
	case d.Site == nil:
		return nil, fmt.Errorf("%w: site", ErrMissingDependency)
	case d.Sessions == nil:
		return nil, fmt.Errorf("%w: sessions", ErrMissingDependency)
	case d.Inbox == nil:
		return nil, fmt.Errorf("%w: inbox", ErrMissingDependency)
	case d.Metrics == nil:
		return nil, fmt.Errorf("%w: metrics", ErrMissingDependency)
	}
	if d.Log == nil {
		d.Log = logger.Nop()
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	if d.Hues == nil {
		d.Hues = globalRand{}
	}
	if d.BottomMargin <= 0 {
		d.BottomMargin = visibility.DefaultBottomMargin
	}
	if d.ResumeURL == "" {
		d.ResumeURL = d.Site.Profile.ResumeURL
	}

	techs := filter.Technologies(d.Site.Projects)
	s := &Server{
		site:         d.Site,
		sessions:     d.Sessions,
		inbox:        d.Inbox,
		metrics:      d.Metrics,
		log:          d.Log.Named("web"),
		resumeURL:    d.ResumeURL,
		bottomMargin: d.BottomMargin,
		carousel:     d.Carousel,
		now:          d.Now,
		hero:         typing.New(d.Site.Profile.Phrases, d.Typing),
		techs:        techs,
		hues:         filter.Hues(techs, d.Hues),
	}

	tmpl, err := parseTemplates()
	if err != nil {
		return nil, err
	}
	s.engine = gin.New()
	s.engine.SetHTMLTemplate(tmpl)
	s.engine.Use(gin.Recovery(), s.observe)
	s.routes()
	return s, nil
}

// Handler returns the http.Handler to serve.
func (s *Server) Handler() http.Handler { return s.engine }

func (s *Server) routes() {
	r := s.engine

	r.StaticFS("/static", staticFS())
	r.GET("/healthz", s.healthz)
	r.GET("/metrics", gin.WrapH(s.metrics.Handler()))

	site := r.Group("/", s.withSession)
	site.GET("/", s.about)
	site.GET("/about", s.about)
	site.GET("/hero", s.heroFrame)
	site.POST("/visibility/:section/:index", s.reveal)

	site.GET("/projects", s.projects)
	site.POST("/projects/filter/:tech", s.toggleTech)
	site.DELETE("/projects/filter", s.clearFilter)
	site.GET("/projects/:id/modal", s.openModal)
	site.DELETE("/projects/:id/modal", s.closeModal)
	site.POST("/projects/:id/slides/:action", s.slide)
	site.POST("/projects/:id/keys/:key", s.key)

	site.GET("/contact", s.contact)
	site.POST("/contact", s.submitContact)
}

func (s *Server) healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// page fills the fields the layout needs.
func (s *Server) page(active string, data gin.H) gin.H {
	data["active"] = active
	data["resumeURL"] = s.resumeURL
	data["name"] = s.site.Profile.Name
	return data
}
