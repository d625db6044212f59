package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
	Deck   string    // only events for this deck ("" = all)
}

// MasteryEventData is a single self-rating of a card.
type MasteryEventData struct {
	Deck       string
	CardIndex  int
	Difficulty string
	SessionID  string
}

// MasteryEventRecord is a stored mastery event.
type MasteryEventRecord struct {
	ID         int64
	Sequence   int64
	Timestamp  time.Time
	Deck       string
	CardIndex  int
	Difficulty string
	SessionID  string
}

// MasteryCount is the number of ratings of one difficulty within a deck.
type MasteryCount struct {
	Deck       string
	Difficulty string
	Count      int
}

// SessionEventData marks the start or end of a study session.
type SessionEventData struct {
	SessionID    string
	Action       string // "start" or "end"
	Deck         string
	CardsViewed  int
	Ratings      int
	DurationSecs int
}

// SessionSummaryRecord describes a finished study session.
type SessionSummaryRecord struct {
	SessionID    string
	Timestamp    time.Time
	Deck         string
	CardsViewed  int
	Ratings      int
	DurationSecs int
}

// EventRepo provides append and query access to study events.
type EventRepo interface {
	// AppendMasteryEvent records a self-rating.
	AppendMasteryEvent(ctx context.Context, data MasteryEventData) error

	// QueryMasteryEvents returns mastery events, newest first.
	QueryMasteryEvents(ctx context.Context, opts QueryOpts) ([]MasteryEventRecord, error)

	// MasteryCounts returns rating counts grouped by deck and difficulty.
	MasteryCounts(ctx context.Context) ([]MasteryCount, error)

	// DeleteMasteryEvents removes every mastery event and returns how many
	// were deleted.
	DeleteMasteryEvents(ctx context.Context) (int64, error)

	// AppendSessionEvent records a study session start or end.
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// QuerySessionSummaries returns finished sessions, newest first.
	QuerySessionSummaries(ctx context.Context, opts QueryOpts) ([]SessionSummaryRecord, error)
}
