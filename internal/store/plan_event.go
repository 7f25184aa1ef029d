package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

func (r *eventRepo) AppendPlanEvent(ctx context.Context, data PlanEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	itemIDs, err := json.Marshal(data.ItemIDs)
	if err != nil {
		return fmt.Errorf("marshal item ids: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO plan_events
			(sequence, timestamp, session_id, module_id, item_ids,
			 current_count, review_count, older_count, expected_minutes)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		seqNum,
		time.Now().UTC().Format(time.RFC3339Nano),
		data.SessionID,
		data.ModuleID,
		string(itemIDs),
		data.CurrentCount,
		data.ReviewCount,
		data.OlderCount,
		data.ExpectedMinutes,
	)
	if err != nil {
		return fmt.Errorf("save plan event: %w", err)
	}
	return nil
}

type planRow struct {
	SessionID       string  `db:"session_id"`
	ModuleID        string  `db:"module_id"`
	ItemIDs         string  `db:"item_ids"`
	CurrentCount    int     `db:"current_count"`
	ReviewCount     int     `db:"review_count"`
	OlderCount      int     `db:"older_count"`
	ExpectedMinutes float64 `db:"expected_minutes"`
}

func (r *eventRepo) PlanForSession(ctx context.Context, sessionID string) (*PlanEventData, error) {
	var row planRow
	err := r.db.GetContext(ctx, &row,
		`SELECT session_id, module_id, item_ids, current_count, review_count,
			older_count, expected_minutes
		 FROM plan_events WHERE session_id = ?
		 ORDER BY sequence DESC LIMIT 1`, sessionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("query plan event: %w", err)
	}

	var itemIDs []string
	if err := json.Unmarshal([]byte(row.ItemIDs), &itemIDs); err != nil {
		return nil, fmt.Errorf("unmarshal item ids: %w", err)
	}

	return &PlanEventData{
		SessionID:       row.SessionID,
		ModuleID:        row.ModuleID,
		ItemIDs:         itemIDs,
		CurrentCount:    row.CurrentCount,
		ReviewCount:     row.ReviewCount,
		OlderCount:      row.OlderCount,
		ExpectedMinutes: row.ExpectedMinutes,
	}, nil
}
