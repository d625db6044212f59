package home

import (
	"fmt"
	"log/slog"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/owenfaulkner29/jargon/internal/deck"
	"github.com/owenfaulkner29/jargon/internal/mastery"
	"github.com/owenfaulkner29/jargon/internal/router"
	"github.com/owenfaulkner29/jargon/internal/screen"
	"github.com/owenfaulkner29/jargon/internal/screens/flashcards"
	"github.com/owenfaulkner29/jargon/internal/screens/progress"
	"github.com/owenfaulkner29/jargon/internal/store"
	"github.com/owenfaulkner29/jargon/internal/ui/components"
)

// Deps holds the dependencies shared by the screens reachable from home.
type Deps struct {
	Decks     *deck.Set
	Tracker   *mastery.Tracker
	EventRepo store.EventRepo
	StartDeck deck.Name
	Logger    *slog.Logger
}

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	deps       Deps
	menu       components.Menu
	menuLabels []string
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen. The study item for the configured start
// deck is selected initially.
func New(deps Deps) *HomeScreen {
	var counts map[deck.Name]int
	if deps.Decks != nil {
		counts = deps.Decks.Counts()
	}

	var labels []string
	var items []components.MenuItem
	selected := 0
	for _, name := range deck.Names() {
		if name == deps.StartDeck {
			selected = len(items)
		}
		label := fmt.Sprintf("STUDY %s (%d)", strings.ToUpper(name.DisplayName()), counts[name])
		labels = append(labels, label)
		items = append(items, components.MenuItem{
			Label:    label,
			Disabled: deps.Decks == nil,
			Action:   studyAction(deps, name),
		})
	}

	labels = append(labels, "PROGRESS", "EXIT")
	items = append(items,
		components.MenuItem{Label: "PROGRESS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: progress.New(progress.Deps{
					Decks:     deps.Decks,
					EventRepo: deps.EventRepo,
				})}
			}
		}},
		components.MenuItem{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	)

	menu := components.NewMenu(items)
	if !items[selected].Disabled {
		menu.Selected = selected
	}

	return &HomeScreen{
		deps:       deps,
		menu:       menu,
		menuLabels: labels,
	}
}

func studyAction(deps Deps, name deck.Name) func() tea.Cmd {
	return func() tea.Cmd {
		return func() tea.Msg {
			return router.PushScreenMsg{Screen: flashcards.New(flashcards.Deps{
				Decks:     deps.Decks,
				Tracker:   deps.Tracker,
				EventRepo: deps.EventRepo,
				StartDeck: name,
				Logger:    deps.Logger,
			})}
		}
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "q" {
		return h, tea.Quit
	}
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; add back header + footer.
	compact := height+6 < 30

	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, renderTitle(cw, compact))
	if !compact {
		sections = append(sections, renderSubtitle(cw))
	}
	sections = append(sections, renderStatsBar(h.deckStats(), cw, compact))
	if compact {
		sections = append(sections, lipgloss.NewStyle().
			Width(cw).
			Align(lipgloss.Center).
			Render(strings.TrimRight(h.menu.View(), "\n")))
	} else {
		sections = append(sections, renderMenu(h.menuLabels, h.menu.Selected, cw, h.disabled()))
	}

	return renderFrame(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) disabled() map[int]bool {
	d := make(map[int]bool)
	for i, item := range h.menu.Items {
		if item.Disabled {
			d[i] = true
		}
	}
	return d
}

// deckStat is the per-deck tally shown in the stats bar.
type deckStat struct {
	Name     deck.Name
	Cards    int
	Mastered int
}

func (h *HomeScreen) deckStats() []deckStat {
	var counts map[deck.Name]int
	if h.deps.Decks != nil {
		counts = h.deps.Decks.Counts()
	}
	stats := make([]deckStat, 0, len(deck.Names()))
	for _, name := range deck.Names() {
		st := deckStat{Name: name, Cards: counts[name]}
		if h.deps.Tracker != nil {
			st.Mastered = h.deps.Tracker.MasteredCount(name)
		}
		stats = append(stats, st)
	}
	return stats
}
