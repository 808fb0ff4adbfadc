package tui

import (
	"context"
	"math/rand"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Zachkp/folio/internal/carousel"
	"github.com/Zachkp/folio/internal/content"
	"github.com/Zachkp/folio/internal/filter"
	"github.com/Zachkp/folio/internal/typing"
	"github.com/Zachkp/folio/internal/visibility"
	"github.com/Zachkp/folio/pkg/logger"
)

// Tab is the active view.
type Tab int

const (
	TabAbout Tab = iota
	TabProjects
	TabContact
)

func (t Tab) String() string {
	switch t {
	case TabProjects:
		return "Projects"
	case TabContact:
		return "Contact"
	default:
		return "About"
	}
}

// frameInterval paces tile settling in the carousel.
const frameInterval = 50 * time.Millisecond

// Options tune a Model. The zero value is usable.
type Options struct {
	Timing   typing.Timing
	Carousel []carousel.Option
	Log      logger.Logger

	// Now and Hues default to time.Now and math/rand.
	Now  func() time.Time
	Hues filter.Rand
}

type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.Intn(n) }

// Model is the root BubbleTea model.
type Model struct {
	site *content.Site
	log  logger.Logger
	now  func() time.Time

	tab    Tab
	width  int
	height int
	status string
	failed bool

	// About
	typer     *typing.Typewriter
	cursor    typing.Cursor
	tracker   *visibility.Tracker
	doc       aboutLayout
	scroll    int
	viewports chan visibility.Rect
	entries   <-chan visibility.Entry

	// Projects
	techs         []string
	hues          map[string]int
	counts        map[string]int
	selection     *filter.Selection
	chipCursor    int
	projectCursor int
	carouselOpts  []carousel.Option
	modal         *modal
}

// modal is the open project carousel.
type modal struct {
	project content.Project
	ctl     *carousel.Controller
	started time.Time
	elapsed time.Duration
}

// NewModel builds the model and starts the timeline observer, which runs
// until ctx ends.
func NewModel(ctx context.Context, site *content.Site, opts Options) (Model, error) {
	if opts.Log == nil {
		opts.Log = logger.Nop()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Hues == nil {
		opts.Hues = globalRand{}
	}

	doc := layoutAbout(site.Profile)
	viewports := make(chan visibility.Rect, 8)
	observer := visibility.NewScrollObserver(viewports)
	observer.BottomMargin = 1
	entries, err := observer.Observe(ctx, doc.targets)
	if err != nil {
		return Model{}, err
	}

	techs := filter.Technologies(site.Projects)
	return Model{
		site:         site,
		log:          opts.Log.Named("tui"),
		now:          opts.Now,
		typer:        typing.New(site.Profile.Phrases, opts.Timing),
		tracker:      visibility.NewTracker(),
		doc:          doc,
		viewports:    viewports,
		entries:      entries,
		techs:        techs,
		hues:         filter.Hues(techs, opts.Hues),
		counts:       filter.Counts(site.Projects),
		selection:    filter.NewSelection(),
		carouselOpts: opts.Carousel,
	}, nil
}

// Tracker exposes the timeline visibility state.
func (m Model) Tracker() *visibility.Tracker { return m.tracker }

// Tab returns the active tab.
func (m Model) Tab() Tab { return m.tab }

// Modal reports the open project and its carousel, if any.
func (m Model) Modal() (content.Project, *carousel.Controller, bool) {
	if m.modal == nil {
		return content.Project{}, nil, false
	}
	return m.modal.project, m.modal.ctl, true
}

// Messages

type typeTickMsg struct{}
type blinkMsg struct{}
type entryMsg visibility.Entry
type tileTickMsg struct {
	generation int
	at         time.Time
}

func (m Model) typeTick() tea.Cmd {
	return tea.Tick(m.typer.Timing().Interval, func(time.Time) tea.Msg { return typeTickMsg{} })
}

func (m Model) blinkTick() tea.Cmd {
	return tea.Tick(m.typer.Timing().Blink, func(time.Time) tea.Msg { return blinkMsg{} })
}

func tileTick(gen int) tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return tileTickMsg{generation: gen, at: t} })
}

// waitForEntry blocks until the observer reports a timeline entry.
func waitForEntry(ch <-chan visibility.Entry) tea.Cmd {
	return func() tea.Msg {
		e, ok := <-ch
		if !ok {
			return nil
		}
		return entryMsg(e)
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.typeTick(), m.blinkTick(), waitForEntry(m.entries))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.clampScroll()
		m.pushViewport()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case typeTickMsg:
		m.typer.Tick()
		return m, m.typeTick()

	case blinkMsg:
		m.cursor.Toggle()
		return m, m.blinkTick()

	case entryMsg:
		if _, err := m.tracker.Record(visibility.Entry(msg)); err != nil {
			m.log.Warn(context.Background(), "record timeline entry", logger.Error(err))
		}
		return m, waitForEntry(m.entries)

	case tileTickMsg:
		if m.modal == nil || m.modal.ctl.View().Generation != msg.generation {
			return m, nil
		}
		m.modal.elapsed = msg.at.Sub(m.modal.started)
		if m.modal.ctl.State() == carousel.Transitioning || m.modal.elapsed < carousel.MaxDelay {
			return m, tileTick(msg.generation)
		}
		return m, nil
	}

	return m, nil
}

// handleKey routes keyboard input: the modal first, then global keys, then
// the active tab.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" {
		m.closeModal()
		return m, tea.Quit
	}
	if m.modal != nil {
		return m.handleModalKey(key)
	}

	switch key {
	case "q":
		return m, tea.Quit
	case "1":
		m.tab = TabAbout
		return m, nil
	case "2":
		m.tab = TabProjects
		return m, nil
	case "3":
		m.tab = TabContact
		return m, nil
	}

	switch m.tab {
	case TabAbout:
		switch key {
		case "j", "down":
			m.scroll++
		case "k", "up":
			m.scroll--
		case "g", "home":
			m.scroll = 0
		case "G", "end":
			m.scroll = m.doc.height
		default:
			return m, nil
		}
		m.clampScroll()
		m.pushViewport()

	case TabProjects:
		return m.handleProjectsKey(key)
	}
	return m, nil
}

func (m *Model) bodyHeight() int {
	return max(m.height-2, 1) // header + footer
}

func (m *Model) clampScroll() {
	m.scroll = min(m.scroll, max(m.doc.height-m.bodyHeight(), 0))
	m.scroll = max(m.scroll, 0)
}

// pushViewport reports the visible window of the About document to the
// observer. A full buffer drops the position; the next scroll resends.
func (m *Model) pushViewport() {
	if m.width == 0 {
		return
	}
	vp := visibility.Rect{
		Top:    float64(m.scroll),
		Width:  float64(m.width),
		Height: float64(m.bodyHeight()),
	}
	select {
	case m.viewports <- vp:
	default:
	}
}

func (m *Model) closeModal() {
	if m.modal != nil {
		m.modal.ctl.Close()
		m.modal = nil
	}
}

func (m Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	var body string
	switch m.tab {
	case TabProjects:
		body = renderProjects(&m)
	case TabContact:
		body = renderContact(&m)
	default:
		body = renderAbout(&m)
	}
	body = lipgloss.NewStyle().Height(m.bodyHeight()).MaxHeight(m.bodyHeight()).Render(body)

	return lipgloss.JoinVertical(lipgloss.Left, renderHeader(&m), body, renderFooter(&m))
}
