package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

func (r *eventRepo) AppendPlacementEvent(ctx context.Context, data PlacementEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	spirits, err := json.Marshal(data.Spirits)
	if err != nil {
		return fmt.Errorf("marshal spirits: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO placement_events
			(sequence, timestamp, level, track, spirits, session_minutes, start_module_id)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		seqNum,
		time.Now().UTC().Format(time.RFC3339Nano),
		data.Level,
		data.Track,
		string(spirits),
		data.SessionMinutes,
		data.StartModuleID,
	)
	if err != nil {
		return fmt.Errorf("save placement event: %w", err)
	}
	return nil
}

type placementRow struct {
	Level          string `db:"level"`
	Track          string `db:"track"`
	Spirits        string `db:"spirits"`
	SessionMinutes int    `db:"session_minutes"`
	StartModuleID  string `db:"start_module_id"`
}

func (r *eventRepo) LatestPlacement(ctx context.Context) (*PlacementEventData, error) {
	var row placementRow
	err := r.db.GetContext(ctx, &row,
		`SELECT level, track, spirits, session_minutes, start_module_id
		 FROM placement_events
		 ORDER BY sequence DESC LIMIT 1`)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("query placement event: %w", err)
	}

	var spirits []string
	if err := json.Unmarshal([]byte(row.Spirits), &spirits); err != nil {
		return nil, fmt.Errorf("unmarshal spirits: %w", err)
	}

	return &PlacementEventData{
		Level:          row.Level,
		Track:          row.Track,
		Spirits:        spirits,
		SessionMinutes: row.SessionMinutes,
		StartModuleID:  row.StartModuleID,
	}, nil
}
