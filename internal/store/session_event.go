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
			(sequence, timestamp, session_id, module_id, items_attempted,
			 correct_count, xp_awarded, mastery_delta, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		seqNum,
		time.Now().UTC().Format(time.RFC3339Nano),
		data.SessionID,
		data.ModuleID,
		data.ItemsAttempted,
		data.CorrectCount,
		data.XPAwarded,
		data.MasteryDelta,
		data.DurationMs,
	)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

type sessionRow struct {
	SessionID      string `db:"session_id"`
	ModuleID       string `db:"module_id"`
	ItemsAttempted int    `db:"items_attempted"`
	CorrectCount   int    `db:"correct_count"`
	XPAwarded      int    `db:"xp_awarded"`
	MasteryDelta   int    `db:"mastery_delta"`
	DurationMs     int64  `db:"duration_ms"`
}

func (r *eventRepo) RecentSummaries(ctx context.Context, limit int) ([]SessionEventData, error) {
	var rows []sessionRow
	err := r.db.SelectContext(ctx, &rows,
		`SELECT session_id, module_id, items_attempted, correct_count,
			xp_awarded, mastery_delta, duration_ms
		 FROM session_events
		 ORDER BY sequence DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query session events: %w", err)
	}

	result := make([]SessionEventData, 0, len(rows))
	for _, row := range rows {
		result = append(result, SessionEventData{
			SessionID:      row.SessionID,
			ModuleID:       row.ModuleID,
			ItemsAttempted: row.ItemsAttempted,
			CorrectCount:   row.CorrectCount,
			XPAwarded:      row.XPAwarded,
			MasteryDelta:   row.MasteryDelta,
			DurationMs:     row.DurationMs,
		})
	}
	return result, nil
}
