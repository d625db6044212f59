package flashcards

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/owenfaulkner29/jargon/internal/deck"
	"github.com/owenfaulkner29/jargon/internal/mastery"
	"github.com/owenfaulkner29/jargon/internal/store"
	"github.com/owenfaulkner29/jargon/internal/viewer"
)

// mockEventRepo implements store.EventRepo for testing.
type mockEventRepo struct {
	sessionEvents []store.SessionEventData
	masteryEvents []store.MasteryEventData
	sessionErr    error
}

func (m *mockEventRepo) AppendMasteryEvent(_ context.Context, data store.MasteryEventData) error {
	m.masteryEvents = append(m.masteryEvents, data)
	return nil
}
func (m *mockEventRepo) QueryMasteryEvents(_ context.Context, _ store.QueryOpts) ([]store.MasteryEventRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) MasteryCounts(_ context.Context) ([]store.MasteryCount, error) {
	return nil, nil
}
func (m *mockEventRepo) DeleteMasteryEvents(_ context.Context) (int64, error) {
	return 0, nil
}
func (m *mockEventRepo) AppendSessionEvent(_ context.Context, data store.SessionEventData) error {
	if m.sessionErr != nil {
		return m.sessionErr
	}
	m.sessionEvents = append(m.sessionEvents, data)
	return nil
}
func (m *mockEventRepo) QuerySessionSummaries(_ context.Context, _ store.QueryOpts) ([]store.SessionSummaryRecord, error) {
	return nil, nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func space() tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: tea.KeySpace, Text: " "}
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testScreen(t *testing.T, opts ...viewer.Option) (*FlashcardsScreen, *mockEventRepo, *mastery.Tracker) {
	t.Helper()
	decks, err := deck.Default()
	if err != nil {
		t.Fatalf("load default decks: %v", err)
	}
	repo := &mockEventRepo{}
	tracker := mastery.NewTracker(repo, quietLogger())
	s := New(Deps{
		Decks:         decks,
		Tracker:       tracker,
		EventRepo:     repo,
		Logger:        quietLogger(),
		ViewerOptions: opts,
	})
	if s.errMsg != "" {
		t.Fatalf("unexpected error: %s", s.errMsg)
	}
	return s, repo, tracker
}

func TestFlashcardsScreen_Title(t *testing.T) {
	s, _, _ := testScreen(t)
	if s.Title() != "Flashcards" {
		t.Errorf("Title = %q, want %q", s.Title(), "Flashcards")
	}
}

func TestFlashcardsScreen_InitialState(t *testing.T) {
	s, _, _ := testScreen(t)
	st := s.viewer.State()
	if st.Deck != deck.Terms || st.Index != 0 || st.Flipped {
		t.Errorf("initial state = %+v, want terms/0/unflipped", st)
	}
	if s.SessionID() == "" {
		t.Error("expected a session id")
	}
}

func TestFlashcardsScreen_StartDeck(t *testing.T) {
	decks, err := deck.Default()
	if err != nil {
		t.Fatal(err)
	}
	s := New(Deps{Decks: decks, StartDeck: deck.Acronyms, Logger: quietLogger()})
	if got := s.viewer.State().Deck; got != deck.Acronyms {
		t.Errorf("deck = %q, want %q", got, deck.Acronyms)
	}
}

func TestFlashcardsScreen_InitRecordsSessionStart(t *testing.T) {
	s, repo, _ := testScreen(t)
	cmd := s.Init()
	if cmd == nil {
		t.Fatal("expected Init command")
	}
	s.Update(cmd())

	if len(repo.sessionEvents) != 1 {
		t.Fatalf("expected 1 session event, got %d", len(repo.sessionEvents))
	}
	ev := repo.sessionEvents[0]
	if ev.Action != "start" || ev.SessionID != s.SessionID() || ev.Deck != "terms" {
		t.Errorf("unexpected start event: %+v", ev)
	}
}

func TestFlashcardsScreen_InitFailureIsNotFatal(t *testing.T) {
	s, repo, _ := testScreen(t)
	repo.sessionErr = errors.New("disk full")
	s.Update(s.Init()())
	if s.errMsg != "" {
		t.Errorf("expected no error shown, got %q", s.errMsg)
	}
}

func TestFlashcardsScreen_Flip(t *testing.T) {
	s, _, _ := testScreen(t)
	s.Update(space())
	if !s.viewer.State().Flipped {
		t.Fatal("expected card flipped after space")
	}
	s.Update(specialKey(tea.KeyEnter))
	if s.viewer.State().Flipped {
		t.Error("expected card unflipped after enter")
	}
}

func TestFlashcardsScreen_Navigation(t *testing.T) {
	s, _, tracker := testScreen(t)
	n := s.viewer.Deck().Len()

	s.Update(specialKey(tea.KeyLeft))
	if got := s.viewer.State().Index; got != n-1 {
		t.Errorf("index after left = %d, want %d", got, n-1)
	}
	s.Update(specialKey(tea.KeyRight))
	s.Update(keyPress('n'))
	if got := s.viewer.State().Index; got != 1 {
		t.Errorf("index = %d, want 1", got)
	}
	if i, ok := tracker.LastIndex(deck.Terms); !ok || i != 1 {
		t.Errorf("tracker last index = %d/%v, want 1/true", i, ok)
	}

	s.Update(space())
	s.Update(keyPress('p'))
	st := s.viewer.State()
	if st.Index != 0 || st.Flipped {
		t.Errorf("state after prev = %+v, want index 0 unflipped", st)
	}
}

func TestFlashcardsScreen_DeckSwitch(t *testing.T) {
	s, _, _ := testScreen(t)
	s.Update(specialKey(tea.KeyRight))
	s.Update(specialKey(tea.KeyTab))

	st := s.viewer.State()
	if st.Deck != deck.Acronyms || st.Index != 0 {
		t.Errorf("state after tab = %+v, want acronyms/0", st)
	}

	s.Update(keyPress('t'))
	if got := s.viewer.State().Deck; got != deck.Terms {
		t.Errorf("deck after t = %q, want terms", got)
	}
	s.Update(keyPress('a'))
	if got := s.viewer.State().Deck; got != deck.Acronyms {
		t.Errorf("deck after a = %q, want acronyms", got)
	}
}

func TestFlashcardsScreen_Shuffle(t *testing.T) {
	s, _, _ := testScreen(t, viewer.WithRand(rand.New(rand.NewPCG(1, 2))))
	n := s.viewer.Deck().Len()
	for range 20 {
		s.Update(space())
		s.Update(keyPress('r'))
		st := s.viewer.State()
		if st.Index < 0 || st.Index >= n {
			t.Fatalf("shuffled index %d out of range", st.Index)
		}
		if st.Flipped {
			t.Fatal("expected shuffle to unflip")
		}
	}
}

func TestFlashcardsScreen_RatingRequiresFlip(t *testing.T) {
	s, repo, _ := testScreen(t)
	s.Update(keyPress('1'))

	if s.ratings != 0 || len(repo.masteryEvents) != 0 {
		t.Error("expected rating ignored while unflipped")
	}
	if got := s.viewer.State().Index; got != 0 {
		t.Errorf("index = %d, want 0", got)
	}
}

func TestFlashcardsScreen_Rate(t *testing.T) {
	s, repo, tracker := testScreen(t)
	s.Update(space())
	s.Update(keyPress('1'))

	if s.ratings != 1 {
		t.Errorf("ratings = %d, want 1", s.ratings)
	}
	st := s.viewer.State()
	if st.Index != 1 || st.Flipped {
		t.Errorf("state after rating = %+v, want index 1 unflipped", st)
	}
	if d, ok := tracker.Rating(deck.Terms, 0); !ok || d != viewer.Easy {
		t.Errorf("tracker rating = %q/%v, want easy", d, ok)
	}
	if len(repo.masteryEvents) != 1 {
		t.Fatalf("expected 1 stored mastery event, got %d", len(repo.masteryEvents))
	}
	if got := repo.masteryEvents[0].SessionID; got != s.SessionID() {
		t.Errorf("mastery event session = %q, want %q", got, s.SessionID())
	}

	s.Update(space())
	s.Update(keyPress('3'))
	if d, _ := tracker.Rating(deck.Terms, 1); d != viewer.Hard {
		t.Errorf("second rating = %q, want hard", d)
	}
}

func TestFlashcardsScreen_Close(t *testing.T) {
	decks, err := deck.Default()
	if err != nil {
		t.Fatal(err)
	}
	repo := &mockEventRepo{}
	tracker := mastery.NewTracker(nil, quietLogger())
	start := time.Date(2026, 1, 2, 10, 0, 0, 0, time.UTC)
	clock := start
	s := New(Deps{
		Decks:     decks,
		Tracker:   tracker,
		EventRepo: repo,
		Logger:    quietLogger(),
		Now:       func() time.Time { return clock },
	})

	s.Update(specialKey(tea.KeyRight))
	s.Update(space())
	s.Update(keyPress('2'))
	clock = start.Add(95 * time.Second)

	s.Close()
	s.Close()

	if len(repo.sessionEvents) != 1 {
		t.Fatalf("expected 1 session event, got %d", len(repo.sessionEvents))
	}
	ev := repo.sessionEvents[0]
	if ev.Action != "end" {
		t.Errorf("action = %q, want end", ev.Action)
	}
	// Cards 0, 1 and 2 were shown.
	if ev.CardsViewed != 3 {
		t.Errorf("cards viewed = %d, want 3", ev.CardsViewed)
	}
	if ev.Ratings != 1 {
		t.Errorf("ratings = %d, want 1", ev.Ratings)
	}
	if ev.DurationSecs != 95 {
		t.Errorf("duration = %d, want 95", ev.DurationSecs)
	}
}

func TestFlashcardsScreen_View(t *testing.T) {
	s, _, _ := testScreen(t)

	view := s.View(80, 30)
	for _, want := range []string{"Boil", "reveal", "Complete", "Scoping"} {
		if !strings.Contains(view, want) {
			t.Errorf("front view missing %q", want)
		}
	}
	if strings.Contains(view, "Definition") {
		t.Error("front view should not show the back label")
	}

	s.Update(space())
	view = s.View(80, 30)
	for _, want := range []string{"Definition:", "back", "Easy", "Medium", "Hard"} {
		if !strings.Contains(view, want) {
			t.Errorf("back view missing %q", want)
		}
	}
}

func TestFlashcardsScreen_View_Acronym(t *testing.T) {
	s, _, _ := testScreen(t)
	s.Update(keyPress('a'))
	s.Update(space())

	view := s.View(80, 30)
	for _, want := range []string{"Performance", "acronym?"} {
		if !strings.Contains(view, want) {
			t.Errorf("acronym back view missing %q", want)
		}
	}
}

func TestFlashcardsScreen_KeyHints(t *testing.T) {
	s, _, _ := testScreen(t)
	hasHint := func(desc string) bool {
		for _, h := range s.KeyHints() {
			if h.Description == desc {
				return true
			}
		}
		return false
	}

	if hasHint("Easy") {
		t.Error("rating hints shown before flip")
	}
	s.Update(space())
	if !hasHint("Easy") || !hasHint("Hard") {
		t.Error("expected rating hints after flip")
	}
}

func TestFlashcardsScreen_NoDecks(t *testing.T) {
	s := New(Deps{Logger: quietLogger()})
	if s.errMsg == "" {
		t.Fatal("expected error without decks")
	}
	if s.Init() != nil {
		t.Error("expected no Init command without a viewer")
	}
	if !strings.Contains(s.View(80, 24), "Error") {
		t.Error("expected error view")
	}
	s.Close()
}
