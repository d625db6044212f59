package store

import (
	"context"
	"fmt"
	"time"
)

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO session_events
		 (sequence, timestamp, session_id, action, deck, cards_viewed, ratings, duration_secs)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		seqNum, now(), data.SessionID, data.Action, data.Deck,
		data.CardsViewed, data.Ratings, data.DurationSecs,
	)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) QuerySessionSummaries(ctx context.Context, opts QueryOpts) ([]SessionSummaryRecord, error) {
	where, args := opts.whereClause()
	if where == "" {
		where = " WHERE action = 'end'"
	} else {
		where += " AND action = 'end'"
	}
	query := `SELECT session_id, timestamp, deck, cards_viewed, ratings, duration_secs
		FROM session_events` + where + ` ORDER BY sequence DESC` + opts.limitClause()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query session summaries: %w", err)
	}
	defer rows.Close()

	var records []SessionSummaryRecord
	for rows.Next() {
		var rec SessionSummaryRecord
		var ts int64
		if err := rows.Scan(&rec.SessionID, &ts, &rec.Deck, &rec.CardsViewed, &rec.Ratings, &rec.DurationSecs); err != nil {
			return nil, fmt.Errorf("scan session event: %w", err)
		}
		rec.Timestamp = time.UnixMilli(ts).UTC()
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate session events: %w", err)
	}
	return records, nil
}
