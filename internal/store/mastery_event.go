package store

import (
	"context"
	"fmt"
	"time"
)

func (r *eventRepo) AppendMasteryEvent(ctx context.Context, data MasteryEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO mastery_events (sequence, timestamp, deck, card_index, difficulty, session_id)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		seqNum, now(), data.Deck, data.CardIndex, data.Difficulty, data.SessionID,
	)
	if err != nil {
		return fmt.Errorf("save mastery event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryMasteryEvents(ctx context.Context, opts QueryOpts) ([]MasteryEventRecord, error) {
	where, args := opts.whereClause()
	query := `SELECT id, sequence, timestamp, deck, card_index, difficulty, session_id
		FROM mastery_events` + where + ` ORDER BY sequence DESC` + opts.limitClause()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query mastery events: %w", err)
	}
	defer rows.Close()

	var records []MasteryEventRecord
	for rows.Next() {
		var rec MasteryEventRecord
		var ts int64
		if err := rows.Scan(&rec.ID, &rec.Sequence, &ts, &rec.Deck, &rec.CardIndex, &rec.Difficulty, &rec.SessionID); err != nil {
			return nil, fmt.Errorf("scan mastery event: %w", err)
		}
		rec.Timestamp = time.UnixMilli(ts).UTC()
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate mastery events: %w", err)
	}
	return records, nil
}

func (r *eventRepo) MasteryCounts(ctx context.Context) ([]MasteryCount, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT deck, difficulty, COUNT(*) FROM mastery_events
		 GROUP BY deck, difficulty ORDER BY deck, difficulty`)
	if err != nil {
		return nil, fmt.Errorf("query mastery counts: %w", err)
	}
	defer rows.Close()

	var counts []MasteryCount
	for rows.Next() {
		var c MasteryCount
		if err := rows.Scan(&c.Deck, &c.Difficulty, &c.Count); err != nil {
			return nil, fmt.Errorf("scan mastery count: %w", err)
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

func (r *eventRepo) DeleteMasteryEvents(ctx context.Context) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM mastery_events`)
	if err != nil {
		return 0, fmt.Errorf("delete mastery events: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete mastery events: %w", err)
	}
	return n, nil
}
