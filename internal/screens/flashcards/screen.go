package flashcards

import (
	"context"
	"log/slog"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"github.com/owenfaulkner29/jargon/internal/deck"
	"github.com/owenfaulkner29/jargon/internal/mastery"
	"github.com/owenfaulkner29/jargon/internal/screen"
	"github.com/owenfaulkner29/jargon/internal/store"
	"github.com/owenfaulkner29/jargon/internal/ui/layout"
	"github.com/owenfaulkner29/jargon/internal/viewer"
)

// Deps holds the dependencies of the flashcards screen.
type Deps struct {
	Decks     *deck.Set
	Tracker   *mastery.Tracker
	EventRepo store.EventRepo
	StartDeck deck.Name
	Logger    *slog.Logger

	// Optional overrides for tests.
	ViewerOptions []viewer.Option
	Now           func() time.Time
}

type viewedKey struct {
	deck  deck.Name
	index int
}

// FlashcardsScreen shows one card at a time from the active deck and
// collects self-ratings. Each visit is a study session.
type FlashcardsScreen struct {
	viewer    *viewer.Viewer
	counts    map[deck.Name]int
	tracker   *mastery.Tracker
	eventRepo store.EventRepo
	logger    *slog.Logger
	keys      keyMap
	now       func() time.Time

	sessionID string
	startedAt time.Time
	viewed    map[viewedKey]bool
	ratings   int
	closed    bool
	errMsg    string
}

var (
	_ screen.Screen          = (*FlashcardsScreen)(nil)
	_ screen.KeyHintProvider = (*FlashcardsScreen)(nil)
	_ screen.Closer          = (*FlashcardsScreen)(nil)
	_ viewer.IndexReporter   = (*FlashcardsScreen)(nil)
)

// New creates a FlashcardsScreen positioned on the first card of the start deck.
func New(deps Deps) *FlashcardsScreen {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	now := deps.Now
	if now == nil {
		now = time.Now
	}

	s := &FlashcardsScreen{
		tracker:   deps.Tracker,
		eventRepo: deps.EventRepo,
		logger:    logger,
		keys:      defaultKeyMap(),
		now:       now,
		sessionID: uuid.NewString(),
		startedAt: now(),
		viewed:    make(map[viewedKey]bool),
	}

	if deps.Decks == nil {
		s.errMsg = "no decks loaded"
		return s
	}
	s.counts = deps.Decks.Counts()

	start := deps.StartDeck
	if start == "" {
		start = deck.Terms
	}

	// The tracker is optional; a nil *Tracker must not reach the viewer as
	// a non-nil interface.
	var recorder viewer.Recorder
	if s.tracker != nil {
		recorder = s.tracker
		s.tracker.SetSession(s.sessionID)
	}

	opts := append([]viewer.Option{
		viewer.WithStartDeck(start),
		viewer.WithIndexReporter(s),
	}, deps.ViewerOptions...)

	v, err := viewer.New(deps.Decks, recorder, opts...)
	if err != nil {
		s.errMsg = err.Error()
		return s
	}
	s.viewer = v
	s.viewed[viewedKey{deck: start, index: 0}] = true
	return s
}

func (s *FlashcardsScreen) Init() tea.Cmd {
	if s.viewer == nil || s.eventRepo == nil {
		return nil
	}
	repo := s.eventRepo
	data := store.SessionEventData{
		SessionID: s.sessionID,
		Action:    "start",
		Deck:      string(s.viewer.State().Deck),
	}
	return func() tea.Msg {
		return sessionStartedMsg{Err: repo.AppendSessionEvent(context.Background(), data)}
	}
}

func (s *FlashcardsScreen) Title() string {
	return "Flashcards"
}

func (s *FlashcardsScreen) KeyHints() []layout.KeyHint {
	if s.viewer == nil {
		return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
	}
	if s.viewer.State().Flipped {
		return hints(s.keys.Easy, s.keys.Medium, s.keys.Hard, s.keys.Flip, s.keys.Prev, s.keys.Next)
	}
	return hints(s.keys.Flip, s.keys.Prev, s.keys.Next, s.keys.Shuffle, s.keys.Switch)
}

func (s *FlashcardsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionStartedMsg:
		if msg.Err != nil {
			s.logger.Warn("record session start", "session_id", s.sessionID, "error", msg.Err)
		}
		return s, nil

	case tea.KeyMsg:
		if s.viewer == nil {
			return s, nil
		}
		s.handleKey(msg)
	}
	return s, nil
}

func (s *FlashcardsScreen) handleKey(msg tea.KeyMsg) {
	v := s.viewer
	switch {
	case key.Matches(msg, s.keys.Terms):
		s.selectDeck(deck.Terms)
	case key.Matches(msg, s.keys.Acronyms):
		s.selectDeck(deck.Acronyms)
	case key.Matches(msg, s.keys.Switch):
		if v.State().Deck == deck.Terms {
			s.selectDeck(deck.Acronyms)
		} else {
			s.selectDeck(deck.Terms)
		}
	case key.Matches(msg, s.keys.Flip):
		v.Flip()
	case key.Matches(msg, s.keys.Prev):
		v.Prev()
	case key.Matches(msg, s.keys.Next):
		v.Next()
	case key.Matches(msg, s.keys.Shuffle):
		v.Shuffle()
	case key.Matches(msg, s.keys.Easy):
		s.rate(viewer.Easy)
	case key.Matches(msg, s.keys.Medium):
		s.rate(viewer.Medium)
	case key.Matches(msg, s.keys.Hard):
		s.rate(viewer.Hard)
	}
}

func (s *FlashcardsScreen) selectDeck(name deck.Name) {
	if err := s.viewer.SelectDeck(name); err != nil {
		s.errMsg = err.Error()
	}
}

// rate ignores rating keys until the card is flipped.
func (s *FlashcardsScreen) rate(d viewer.Difficulty) {
	if !s.viewer.State().Flipped {
		return
	}
	if err := s.viewer.Rate(d); err != nil {
		s.errMsg = err.Error()
		return
	}
	s.ratings++
}

// ReportIndex implements viewer.IndexReporter.
func (s *FlashcardsScreen) ReportIndex(name deck.Name, index int) {
	s.viewed[viewedKey{deck: name, index: index}] = true
	if s.tracker != nil {
		s.tracker.ReportIndex(name, index)
	}
}

// Close ends the study session. Only the first call has an effect.
func (s *FlashcardsScreen) Close() {
	if s.closed || s.viewer == nil {
		return
	}
	s.closed = true

	if s.tracker != nil {
		s.tracker.SetSession("")
	}

	dur := int(s.now().Sub(s.startedAt).Seconds())
	s.logger.Info("study session ended",
		"session_id", s.sessionID,
		"cards_viewed", len(s.viewed),
		"ratings", s.ratings,
		"duration_secs", dur,
	)

	if s.eventRepo == nil {
		return
	}
	err := s.eventRepo.AppendSessionEvent(context.Background(), store.SessionEventData{
		SessionID:    s.sessionID,
		Action:       "end",
		Deck:         string(s.viewer.State().Deck),
		CardsViewed:  len(s.viewed),
		Ratings:      s.ratings,
		DurationSecs: dur,
	})
	if err != nil {
		s.logger.Error("record session end", "session_id", s.sessionID, "error", err)
	}
}

// SessionID returns the id of the study session.
func (s *FlashcardsScreen) SessionID() string {
	return s.sessionID
}
