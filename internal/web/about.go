package web

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/folio/internal/content"
	"github.com/Zachkp/folio/internal/icons"
	"github.com/Zachkp/folio/internal/session"
	"github.com/Zachkp/folio/internal/typing"
	"github.com/Zachkp/folio/internal/visibility"
)

type timelineItem struct {
	Section visibility.Section
	Index   int
	Entry   content.TimelineEntry
	Visible bool
}

type timeline struct {
	Section visibility.Section
	Title   string
	Icon    string
	Items   []timelineItem
}

// heroView is one typing window: the text now, the characters CSS reveals
// before the next poll, and when that poll fires.
type heroView struct {
	Text    string
	Pending []pendingChar
	Cursor  string
	PollMS  int64
}

type pendingChar struct {
	Char    string
	DelayMS int64
}

var timelineMeta = map[visibility.Section]struct {
	title string
	icon  string
}{
	visibility.Experience: {"Experience", string(icons.Briefcase)},
	visibility.Education:  {"Education", string(icons.GraduationCap)},
	visibility.Awards:     {"Awards & Achievements", string(icons.Award)},
}

func (s *Server) entries(sec visibility.Section) []content.TimelineEntry {
	switch sec {
	case visibility.Experience:
		return s.site.Profile.Experiences
	case visibility.Education:
		return s.site.Profile.Education
	case visibility.Awards:
		return s.site.Profile.Awards
	}
	return nil
}

func (s *Server) timelines(sess *session.Session) []timeline {
	out := make([]timeline, 0, len(visibility.Sections()))
	for _, sec := range visibility.Sections() {
		entries := s.entries(sec)
		if len(entries) == 0 {
			continue
		}
		meta := timelineMeta[sec]
		tl := timeline{Section: sec, Title: meta.title, Icon: meta.icon}
		for i, e := range entries {
			tl.Items = append(tl.Items, timelineItem{
				Section: sec,
				Index:   i,
				Entry:   e,
				Visible: sess.Visibility.IsVisible(sec, i),
			})
		}
		out = append(out, tl)
	}
	return out
}

func (s *Server) heroView(sess *session.Session) heroView {
	w := s.hero.WindowAt(s.now().Sub(sess.Started))
	v := heroView{Text: w.Frame.Text, PollMS: ceilMS(w.Until)}
	for _, p := range w.Pending {
		v.Pending = append(v.Pending, pendingChar{Char: p.Char, DelayMS: p.After.Milliseconds()})
	}
	if w.Frame.Cursor {
		v.Cursor = typing.CursorGlyph
	}
	return v
}

func ceilMS(d time.Duration) int64 {
	return max(int64((d+time.Millisecond-1)/time.Millisecond), 1)
}

func (s *Server) about(c *gin.Context) {
	sess := currentSession(c)
	c.HTML(http.StatusOK, "about.html", s.page("about", gin.H{
		"profile":   s.site.Profile,
		"hero":      s.heroView(sess),
		"timelines": s.timelines(sess),
		"reveal": gin.H{
			"margin":    s.bottomMargin,
			"threshold": sess.Visibility.Threshold(),
		},
	}))
}

func (s *Server) heroFrame(c *gin.Context) {
	c.HTML(http.StatusOK, "hero", s.heroView(currentSession(c)))
}

// reveal records that a timeline entry scrolled into view and returns the
// entry in its revealed state.
func (s *Server) reveal(c *gin.Context) {
	sec, err := visibility.ParseSection(c.Param("section"))
	if err != nil {
		s.fail(c, http.StatusNotFound, err)
		return
	}
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil || index < 0 {
		s.fail(c, http.StatusBadRequest, visibility.ErrBadIndex)
		return
	}
	entries := s.entries(sec)
	if index >= len(entries) {
		s.fail(c, http.StatusNotFound, visibility.ErrBadIndex)
		return
	}
	ratio, err := s.revealRatio(c)
	if err != nil {
		s.fail(c, http.StatusBadRequest, err)
		return
	}

	sess := currentSession(c)
	added, err := sess.Visibility.Record(visibility.Entry{Section: sec, Index: index, Ratio: ratio})
	switch {
	case errors.Is(err, visibility.ErrUnknownSection):
		s.fail(c, http.StatusNotFound, err)
		return
	case err != nil:
		s.fail(c, http.StatusBadRequest, err)
		return
	}
	if added {
		s.metrics.RecordReveal(string(sec))
	}

	c.HTML(http.StatusOK, "timeline-item", timelineItem{
		Section: sec,
		Index:   index,
		Entry:   entries[index],
		Visible: sess.Visibility.IsVisible(sec, index),
	})
}

// revealRatio is the visible fraction of the entry. With the element's
// geometry (top, height and the viewport height, in CSS pixels) it is
// computed here against the bottom margin; otherwise an explicit ratio is
// taken as is, and a bare request counts as fully visible.
func (s *Server) revealRatio(c *gin.Context) (float64, error) {
	if c.PostForm("viewport") != "" {
		var g [3]float64
		for i, key := range []string{"top", "height", "viewport"} {
			v, err := strconv.ParseFloat(c.PostForm(key), 64)
			if err != nil {
				return 0, fmt.Errorf("%w: %s", ErrBadGeometry, key)
			}
			g[i] = v
		}
		if g[1] < 0 || g[2] < 0 {
			return 0, fmt.Errorf("%w: negative size", ErrBadGeometry)
		}
		target := visibility.Rect{Top: g[0], Width: 1, Height: g[1]}
		viewport := visibility.Rect{Width: 1, Height: g[2]}
		return visibility.Ratio(target, viewport, s.bottomMargin), nil
	}
	if raw := c.PostForm("ratio"); raw != "" {
		return strconv.ParseFloat(raw, 64)
	}
	return 1, nil
}

// fail answers with a plain status body and keeps err on the context for
// the request log.
func (s *Server) fail(c *gin.Context, status int, err error) {
	_ = c.Error(err)
	c.String(status, http.StatusText(status))
}
