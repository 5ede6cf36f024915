package ui

import (
	"fmt"
	"log"
	"reflect"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tabsync/internal/config"
	"tabsync/internal/domain"
	"tabsync/internal/eventbus"
	"tabsync/internal/list"
	"tabsync/internal/tabs"
	"tabsync/internal/tabsync"
	"tabsync/internal/ui/views"
)

const (
	tabRow     = 0
	chromeRows = 3 // tab strip, rule and status line; the help bar adds its own height

	wheelStep      = 3
	horizontalStep = 4
	statusTimeout  = 3 * time.Second
)

// Model represents the UI state
type Model struct {
	bus       eventbus.EventBus
	config    *config.Config
	configSvc config.ConfigService

	view        *list.View
	strip       *tabs.Strip
	coord       *tabsync.Coordinator
	items       *catalogue
	orientation list.Orientation

	keys     keyMap
	help     help.Model
	jump     *jumpPrompt
	styles   *views.Styles
	renderer *views.Renderer
	helpText *HelpRenderer
	helpOps  *HelpOps

	width       int
	height      int
	ticking     bool // a frameMsg is scheduled
	inPagerMode bool // tracks if we're currently in pager mode
	status      string
	statusErr   bool

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model. bus may be nil.
func NewModel(bus eventbus.EventBus, cfg *config.Config) (*Model, error) {
	keys := defaultKeyMap()
	m := &Model{
		bus:      bus,
		config:   cfg,
		view:     list.NewView(),
		strip:    tabs.New(),
		keys:     keys,
		help:     help.New(),
		jump:     newJumpPrompt(),
		styles:   views.NewStyles(),
		helpText: NewHelpRenderer(keys),
	}
	m.renderer = views.NewRenderer(m.styles)

	m.coord = tabsync.New(m.view)
	if bus != nil {
		m.coord.SetEventBus(bus)
	}
	m.view.SetSpring(cfg.Animation.FPS, cfg.Animation.Frequency, cfg.Animation.Damping)
	if err := m.installLayout(ParseOrientation(cfg.Orientation)); err != nil {
		return nil, err
	}
	if err := m.coord.AddOnScrollListener(m.coord.NewScrollListener()); err != nil {
		return nil, err
	}
	m.coord.AttachTabStrip(m.strip)
	m.applySections(cfg.Sections)

	return m, nil
}

// ParseOrientation maps a config orientation to the list's
func ParseOrientation(s string) list.Orientation {
	if s == config.OrientationHorizontal {
		return list.Horizontal
	}
	return list.Vertical
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.helpOps = NewHelpOps(p)
}

// SetConfigService enables saving the current settings
func (m *Model) SetConfigService(svc config.ConfigService) {
	m.configSvc = svc
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return nil
}

// installLayout puts a fresh layout along o on the list. Grid lines hold
// several items, so in a grid a selected tab's section is scrolled into
// view rather than snapped to the leading edge.
func (m *Model) installLayout(o list.Orientation) error {
	m.orientation = o
	if m.config.Layout == config.LayoutGrid {
		m.view.SetLayoutManager(list.NewGridLayout(o, m.config.Span))
		return nil
	}
	return m.coord.SetLayoutManager(tabsync.NewSnapLayout(o))
}

// applySections replaces the list contents and tabs and returns to the top
func (m *Model) applySections(sections []domain.Section) {
	titles := domain.SectionTitles(sections)
	m.items = newCatalogue(sections, m.config.ItemExtent)
	m.strip.SetTabs(titles)
	m.coord.SetSectionSizes(domain.SectionSizes(sections))
	m.jump.SetTitles(titles)
	m.view.StopScroll()
	m.view.SetAdapter(m.items)
	if lm := m.view.LayoutManager(); lm != nil {
		lm.ScrollBy(-lm.Offset())
	}
}

func (m *Model) applyConfig(cfg *config.Config) tea.Cmd {
	// Rewrites that change nothing, such as our own saves, keep the list where it is
	if reflect.DeepEqual(m.config, cfg) {
		return nil
	}
	m.config = cfg
	m.view.SetSpring(cfg.Animation.FPS, cfg.Animation.Frequency, cfg.Animation.Damping)
	if err := m.installLayout(ParseOrientation(cfg.Orientation)); err != nil {
		return m.fail(err)
	}
	m.applySections(cfg.Sections)
	return m.setStatus("configuration reloaded", false)
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.resize()
		return m, nil

	case tea.KeyMsg:
		cmd := m.handleKey(msg)
		return m, tea.Batch(cmd, m.frames())

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, m.frames()

	case frameMsg:
		m.ticking = false
		// Don't advance the animation while the pager owns the terminal
		if m.inPagerMode {
			return m, nil
		}
		m.view.Frame()
		return m, m.frames()

	case ConfigReloadedMsg:
		cmd := m.applyConfig(msg.Config)
		return m, cmd

	case EventMsg:
		return m, m.handleEvent(msg.Event)

	case helpPagerMsg:
		if msg.err != nil {
			// Pager failed: log and fall back to the inline help
			log.Printf("Help pager failed: %v", msg.err)
			m.help.ShowAll = true
			m.resize()
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, m.frames()

	case clearStatusMsg:
		m.status = ""
		m.statusErr = false
		return m, nil
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.jump.Active() {
		switch {
		case key.Matches(msg, m.keys.Cancel):
			m.jump.Close()
		case key.Matches(msg, m.keys.Accept):
			section, ok := m.jump.Best()
			m.jump.Close()
			if ok {
				m.strip.SelectTab(section)
			}
		default:
			return m.jump.Update(msg)
		}
		return nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.PrevTab):
		m.strip.SelectTab(m.strip.Selected() - 1)
	case key.Matches(msg, m.keys.NextTab):
		m.strip.SelectTab(m.strip.Selected() + 1)
	case key.Matches(msg, m.keys.CycleNext):
		if n := m.strip.Len(); n > 0 {
			m.strip.SelectTab((m.strip.Selected() + 1) % n)
		}
	case key.Matches(msg, m.keys.CyclePrev):
		if n := m.strip.Len(); n > 0 {
			m.strip.SelectTab((m.strip.Selected() + n - 1) % n)
		}
	case key.Matches(msg, m.keys.JumpTo):
		m.strip.SelectTab(int(msg.String()[0] - '1'))
	case key.Matches(msg, m.keys.Up):
		m.view.ScrollBy(-m.lineStep())
	case key.Matches(msg, m.keys.Down):
		m.view.ScrollBy(m.lineStep())
	case key.Matches(msg, m.keys.PageUp):
		m.view.ScrollBy(-m.pageStep())
	case key.Matches(msg, m.keys.PageDown):
		m.view.ScrollBy(m.pageStep())
	case key.Matches(msg, m.keys.Home):
		if lm := m.view.LayoutManager(); lm != nil {
			m.view.ScrollBy(-lm.Offset())
		}
	case key.Matches(msg, m.keys.End):
		if lm := m.view.LayoutManager(); lm != nil {
			m.view.ScrollBy(lm.MaxOffset() - lm.Offset())
		}
	case key.Matches(msg, m.keys.Find):
		return m.jump.Open()
	case key.Matches(msg, m.keys.Orientation):
		return m.toggleOrientation()
	case key.Matches(msg, m.keys.Save):
		return m.saveSettings()
	case key.Matches(msg, m.keys.Help):
		if m.program == nil {
			m.help.ShowAll = !m.help.ShowAll
			m.resize()
			return nil
		}
		return m.fetchHelpPager(m.helpText.RenderHelpContent())
	}
	return nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	if msg.Action != tea.MouseActionPress {
		return
	}
	switch msg.Button {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelLeft:
		m.view.ScrollBy(-wheelStep)
	case tea.MouseButtonWheelDown, tea.MouseButtonWheelRight:
		m.view.ScrollBy(wheelStep)
	case tea.MouseButtonLeft:
		if msg.Y == tabRow {
			if tab := m.strip.TabAtX(m.styles.Tabs, msg.X); tab >= 0 {
				m.strip.SelectTab(tab)
			}
		}
	}
}

func (m *Model) handleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.ErrorEvent:
		log.Printf("Error event: %s: %v", e.Message, e.Err)
		return m.setStatus(e.Message, true)
	case eventbus.ConfigSavedEvent:
		return m.setStatus("saved "+e.Path, false)
	}
	return nil
}

// toggleOrientation swaps the list axis and shows the selected section at
// the leading edge again
func (m *Model) toggleOrientation() tea.Cmd {
	next := list.Horizontal
	if m.orientation == list.Horizontal {
		next = list.Vertical
	}
	if err := m.installLayout(next); err != nil {
		return m.fail(err)
	}
	m.revealSection(m.strip.Selected())
	return m.setStatus(next.String(), false)
}

// saveSettings writes the configuration with the current orientation. The
// service reports success on the bus; failures come back as an ErrorEvent.
func (m *Model) saveSettings() tea.Cmd {
	if m.configSvc == nil {
		return m.setStatus("no configuration file to save to", true)
	}
	cfg := *m.config
	cfg.Orientation = m.orientation.String()
	m.config = &cfg

	svc := m.configSvc
	return func() tea.Msg {
		if err := svc.Save(&cfg); err != nil {
			return EventMsg{Event: eventbus.ErrorEvent{Message: "Save failed", Err: err}}
		}
		return nil
	}
}

// revealSection moves the list to a section without animating and without
// reporting a scroll, so the selected tab stays put
func (m *Model) revealSection(section int) {
	lm := m.view.LayoutManager()
	if lm == nil || section < 0 {
		return
	}
	start, _ := lm.ItemBounds(m.coord.SectionStart(section))
	lm.ScrollBy(start - lm.Offset())
}

// frames schedules the next animation frame while a smooth scroll runs
func (m *Model) frames() tea.Cmd {
	if m.ticking || !m.view.Animating() {
		return nil
	}
	m.ticking = true
	fps := max(m.config.Animation.FPS, 1)
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// fetchHelpPager returns a command that shows help using ov pager
func (m *Model) fetchHelpPager(helpContent string) tea.Cmd {
	return func() tea.Msg {
		// Send pause message to stop rendering
		m.program.Send(pauseRenderingMsg{})

		err := m.helpOps.ShowHelpInPager(helpContent)

		// Send resume message to restart rendering
		m.program.Send(resumeRenderingMsg{})

		return helpPagerMsg{err: err}
	}
}

func (m *Model) setStatus(text string, isError bool) tea.Cmd {
	m.status = text
	m.statusErr = isError
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

func (m *Model) fail(err error) tea.Cmd {
	log.Printf("Fatal: %v", err)
	return tea.Quit
}

func (m *Model) resize() {
	h := m.height - chromeRows - lipgloss.Height(m.help.View(m.keys))
	m.view.Resize(m.width, max(h, 0))
}

func (m *Model) lineStep() int {
	if m.orientation == list.Horizontal {
		return horizontalStep
	}
	return 1
}

func (m *Model) pageStep() int {
	if lm := m.view.LayoutManager(); lm != nil {
		return max(lm.Viewport()-1, 1)
	}
	return 1
}

func (m *Model) span() int {
	if g, ok := m.view.LayoutManager().(*list.GridLayout); ok {
		return g.Span()
	}
	return 1
}

func (m *Model) leading() int {
	if q, ok := m.view.LayoutManager().(list.LeadingPositionQuerier); ok {
		return q.FirstCompletelyVisiblePosition()
	}
	return list.NoPosition
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	listW, listH := m.view.Size()
	status := m.status
	if status == "" {
		status = m.summary()
	}
	return m.renderer.Render(views.ViewState{
		Width: m.width,
		Strip: m.strip,
		List: views.ListState{
			Items:   m.items,
			Layout:  m.view.LayoutManager(),
			Span:    m.span(),
			Width:   listW,
			Height:  listH,
			Leading: m.leading(),
		},
		Status:    status,
		StatusErr: m.statusErr,
		Jumping:   m.jump.Active(),
		JumpInput: m.jump.InputView(),
		Matches:   m.jump.MatchTitles(),
		Help:      m.help.View(m.keys),
	})
}

// summary describes where the list is
func (m *Model) summary() string {
	title := ""
	if tab, ok := m.strip.TabAt(m.strip.Selected()); ok {
		title = tab.Title
	}
	pos := "-"
	if lead := m.leading(); lead != list.NoPosition {
		pos = fmt.Sprintf("%d", lead+1)
	}
	return fmt.Sprintf("%s  %s/%d  %s %s  %s",
		title, pos, m.items.ItemCount(), m.orientation, m.config.Layout, m.view.ScrollState())
}
