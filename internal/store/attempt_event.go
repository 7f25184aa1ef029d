package store

import (
	"context"
	"fmt"
	"time"
)

func (r *eventRepo) AppendAttemptEvent(ctx context.Context, data AttemptEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO attempt_events
			(sequence, timestamp, session_id, item_id, result, ms_to_answer,
			 exercise_type, strength_delta)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		seqNum,
		time.Now().UTC().Format(time.RFC3339Nano),
		data.SessionID,
		data.ItemID,
		data.Result,
		data.MsToAnswer,
		data.ExerciseType,
		data.StrengthDelta,
	)
	if err != nil {
		return fmt.Errorf("save attempt event: %w", err)
	}
	return nil
}

type attemptRow struct {
	SessionID     string `db:"session_id"`
	ItemID        string `db:"item_id"`
	Result        string `db:"result"`
	MsToAnswer    int64  `db:"ms_to_answer"`
	ExerciseType  string `db:"exercise_type"`
	StrengthDelta int    `db:"strength_delta"`
}

func (r *eventRepo) AttemptsForSession(ctx context.Context, sessionID string) ([]AttemptEventData, error) {
	var rows []attemptRow
	err := r.db.SelectContext(ctx, &rows,
		`SELECT session_id, item_id, result, ms_to_answer, exercise_type, strength_delta
		 FROM attempt_events WHERE session_id = ?
		 ORDER BY sequence ASC`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("query attempt events: %w", err)
	}

	result := make([]AttemptEventData, 0, len(rows))
	for _, row := range rows {
		result = append(result, AttemptEventData{
			SessionID:     row.SessionID,
			ItemID:        row.ItemID,
			Result:        row.Result,
			MsToAnswer:    row.MsToAnswer,
			ExerciseType:  row.ExerciseType,
			StrengthDelta: row.StrengthDelta,
		})
	}
	return result, nil
}

func (r *eventRepo) ItemAccuracy(ctx context.Context, itemID string) (float64, int, error) {
	var counts struct {
		Total   int `db:"total"`
		Correct int `db:"correct"`
	}
	err := r.db.GetContext(ctx, &counts,
		`SELECT COUNT(*) AS total,
			COALESCE(SUM(CASE WHEN result = 'correct' THEN 1 ELSE 0 END), 0) AS correct
		 FROM attempt_events WHERE item_id = ?`, itemID)
	if err != nil {
		return 0, 0, fmt.Errorf("query item accuracy: %w", err)
	}
	if counts.Total == 0 {
		return 0, 0, nil
	}
	return float64(counts.Correct) / float64(counts.Total), counts.Total, nil
}
