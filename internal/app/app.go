package app

import (
	"fmt"
	"log/slog"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/owenfaulkner29/jargon/internal/deck"
	"github.com/owenfaulkner29/jargon/internal/mastery"
	"github.com/owenfaulkner29/jargon/internal/router"
	"github.com/owenfaulkner29/jargon/internal/screen"
	"github.com/owenfaulkner29/jargon/internal/screens/home"
	"github.com/owenfaulkner29/jargon/internal/screens/welcome"
	"github.com/owenfaulkner29/jargon/internal/store"
	"github.com/owenfaulkner29/jargon/internal/ui/layout"
)

// Options holds the dependencies for the TUI.
type Options struct {
	Decks     *deck.Set
	Tracker   *mastery.Tracker
	EventRepo store.EventRepo
	StartDeck deck.Name
	Logger    *slog.Logger
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router  *router.Router
	tracker *mastery.Tracker
	width   int
	height  int
}

// newAppModel creates a new AppModel starting on the welcome splash.
func newAppModel(opts Options) AppModel {
	homeFactory := func() screen.Screen {
		return home.New(home.Deps{
			Decks:     opts.Decks,
			Tracker:   opts.Tracker,
			EventRepo: opts.EventRepo,
			StartDeck: opts.StartDeck,
			Logger:    opts.Logger,
		})
	}
	return AppModel{
		router:  router.New(welcome.New(homeFactory)),
		tracker: opts.Tracker,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.router.CloseAll()
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.headerStats(), m.width)
	footer := layout.RenderFooter(m.footerHints(active), m.width)

	contentHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

func (m AppModel) headerStats() layout.HeaderStats {
	var stats layout.HeaderStats
	if m.tracker == nil {
		return stats
	}
	for _, name := range deck.Names() {
		stats.Mastered += m.tracker.MasteredCount(name)
		stats.Rated += m.tracker.RatedCount(name)
	}
	return stats
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if p, ok := active.(screen.KeyHintProvider); ok {
		if hints := p.KeyHints(); len(hints) > 0 {
			return hints
		}
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
