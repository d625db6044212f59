package progress

import (
	"context"
	"errors"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/owenfaulkner29/jargon/internal/deck"
	"github.com/owenfaulkner29/jargon/internal/mastery"
	"github.com/owenfaulkner29/jargon/internal/screen"
	"github.com/owenfaulkner29/jargon/internal/store"
	"github.com/owenfaulkner29/jargon/internal/ui/layout"
)

const (
	recentRatingsLimit = 8
	sessionsLimit      = 50
)

type tab int

const (
	tabDecks tab = iota
	tabSessions
)

// Deps holds the dependencies of the progress screen.
type Deps struct {
	Decks     *deck.Set
	EventRepo store.EventRepo
}

type progressLoadedMsg struct {
	Summaries []mastery.DeckSummary
	Recent    []store.MasteryEventRecord
	Sessions  []store.SessionSummaryRecord
	Err       error
}

// ProgressScreen shows per-deck mastery and past study sessions.
type ProgressScreen struct {
	decks     *deck.Set
	eventRepo store.EventRepo
	keys      keyMap

	tab       tab
	summaries []mastery.DeckSummary
	recent    []store.MasteryEventRecord
	sessions  []store.SessionSummaryRecord
	offset    int
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*ProgressScreen)(nil)
var _ screen.KeyHintProvider = (*ProgressScreen)(nil)

// New creates a new ProgressScreen.
func New(deps Deps) *ProgressScreen {
	return &ProgressScreen{
		decks:     deps.Decks,
		eventRepo: deps.EventRepo,
		keys:      defaultKeyMap(),
	}
}

func (s *ProgressScreen) Init() tea.Cmd {
	repo := s.eventRepo
	var cards map[deck.Name]int
	if s.decks != nil {
		cards = s.decks.Counts()
	}
	return func() tea.Msg {
		if repo == nil {
			return progressLoadedMsg{Err: errors.New("no event store configured")}
		}
		ctx := context.Background()

		summaries, err := mastery.Summarize(ctx, repo, cards)
		if err != nil {
			return progressLoadedMsg{Err: err}
		}
		recent, err := repo.QueryMasteryEvents(ctx, store.QueryOpts{Limit: recentRatingsLimit})
		if err != nil {
			return progressLoadedMsg{Err: err}
		}
		sessions, err := repo.QuerySessionSummaries(ctx, store.QueryOpts{Limit: sessionsLimit})
		if err != nil {
			return progressLoadedMsg{Err: err}
		}
		return progressLoadedMsg{Summaries: summaries, Recent: recent, Sessions: sessions}
	}
}

func (s *ProgressScreen) Title() string {
	return "Progress"
}

func (s *ProgressScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: s.keys.Switch.Help().Key, Description: s.keys.Switch.Help().Desc},
	}
	if s.tab == tabSessions {
		hints = append(hints, layout.KeyHint{Key: s.keys.Up.Help().Key, Description: s.keys.Up.Help().Desc})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
}

func (s *ProgressScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case progressLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.summaries = msg.Summaries
			s.recent = msg.Recent
			s.sessions = msg.Sessions
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, s.keys.Switch):
			if s.tab == tabDecks {
				s.tab = tabSessions
			} else {
				s.tab = tabDecks
			}
			s.offset = 0
		case key.Matches(msg, s.keys.Up):
			if s.offset > 0 {
				s.offset--
			}
		case key.Matches(msg, s.keys.Down):
			if s.offset < len(s.sessions)-1 {
				s.offset++
			}
		}
	}
	return s, nil
}

// cardFront returns the front text of a rated card, or "" when the card
// no longer exists in the loaded decks.
func (s *ProgressScreen) cardFront(name deck.Name, index int) string {
	if s.decks == nil {
		return ""
	}
	d, err := s.decks.Deck(name)
	if err != nil || index < 0 || index >= d.Len() {
		return ""
	}
	return d.Card(index).Front
}
