package mastery

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/owenfaulkner29/jargon/internal/deck"
	"github.com/owenfaulkner29/jargon/internal/store"
	"github.com/owenfaulkner29/jargon/internal/viewer"
)

// Tracker holds application-wide mastery state. It receives self-ratings
// from the viewer, keeps the latest rating of every card in memory and
// appends each rating to the event store.
//
// A Tracker is used from the Bubble Tea update loop only.
type Tracker struct {
	repo      store.EventRepo
	logger    *slog.Logger
	sessionID string

	latest    map[cardKey]viewer.Difficulty
	lastIndex map[deck.Name]int
	recorded  int
}

type cardKey struct {
	deck  deck.Name
	index int
}

var (
	_ viewer.Recorder      = (*Tracker)(nil)
	_ viewer.IndexReporter = (*Tracker)(nil)
)

// NewTracker creates a Tracker. repo may be nil, in which case ratings are
// kept in memory only.
func NewTracker(repo store.EventRepo, logger *slog.Logger) *Tracker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Tracker{
		repo:      repo,
		logger:    logger,
		latest:    make(map[cardKey]viewer.Difficulty),
		lastIndex: make(map[deck.Name]int),
	}
}

// Load rebuilds the latest rating of every card from stored events.
func (t *Tracker) Load(ctx context.Context) error {
	if t.repo == nil {
		return nil
	}
	events, err := t.repo.QueryMasteryEvents(ctx, store.QueryOpts{})
	if err != nil {
		return fmt.Errorf("load mastery events: %w", err)
	}
	// Events arrive newest first; the first one seen per card wins.
	for _, e := range events {
		k := cardKey{deck: deck.Name(e.Deck), index: e.CardIndex}
		if _, seen := t.latest[k]; seen {
			continue
		}
		t.latest[k] = viewer.Difficulty(e.Difficulty)
	}
	return nil
}

// SetSession tags subsequent ratings with a study session id.
func (t *Tracker) SetSession(id string) {
	t.sessionID = id
}

// Record implements viewer.Recorder. Malformed keys and store failures are
// logged and otherwise ignored.
func (t *Tracker) Record(eventKey string) {
	ev, err := viewer.ParseKey(eventKey)
	if err != nil {
		t.logger.Warn("ignoring mastery event", "key", eventKey, "error", err)
		return
	}

	t.latest[cardKey{deck: ev.Deck, index: ev.Index}] = ev.Difficulty
	t.recorded++

	if t.repo == nil {
		return
	}
	err = t.repo.AppendMasteryEvent(context.Background(), store.MasteryEventData{
		Deck:       string(ev.Deck),
		CardIndex:  ev.Index,
		Difficulty: string(ev.Difficulty),
		SessionID:  t.sessionID,
	})
	if err != nil {
		t.logger.Error("persist mastery event", "key", eventKey, "error", err)
		return
	}
	t.logger.Debug("mastery event recorded", "key", eventKey, "session_id", t.sessionID)
}

// ReportIndex implements viewer.IndexReporter.
func (t *Tracker) ReportIndex(name deck.Name, index int) {
	t.lastIndex[name] = index
}

// LastIndex returns the last card index reported for a deck.
func (t *Tracker) LastIndex(name deck.Name) (int, bool) {
	i, ok := t.lastIndex[name]
	return i, ok
}

// Rating returns the latest rating of a card.
func (t *Tracker) Rating(name deck.Name, index int) (viewer.Difficulty, bool) {
	d, ok := t.latest[cardKey{deck: name, index: index}]
	return d, ok
}

// Recorded returns the number of ratings received since the tracker was created.
func (t *Tracker) Recorded() int {
	return t.recorded
}

// RatedCount returns how many distinct cards of a deck have been rated.
func (t *Tracker) RatedCount(name deck.Name) int {
	n := 0
	for k := range t.latest {
		if k.deck == name {
			n++
		}
	}
	return n
}

// MasteredCount returns how many cards of a deck were last rated easy.
func (t *Tracker) MasteredCount(name deck.Name) int {
	n := 0
	for k, d := range t.latest {
		if k.deck == name && d == viewer.Easy {
			n++
		}
	}
	return n
}
