package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// RecordData is the persisted form of a mastery record. A record exists only
// after first exposure to an item; "never seen" is represented by absence.
type RecordData struct {
	ItemID     string
	Strength   int
	LastSeenAt time.Time
	LastResult string // "correct" or "incorrect"
	DueAt      time.Time
	Lapses     int
}

// MasteryStore owns mastery record lifetime. The tracker is the only caller;
// all other components read records through the tracker.
type MasteryStore interface {
	// LoadAll returns every stored record keyed by item ID.
	LoadAll(ctx context.Context) (map[string]RecordData, error)

	// Upsert writes a record, replacing any existing row for the item.
	Upsert(ctx context.Context, rec RecordData) error

	// Reset deletes all records (account/content reset).
	Reset(ctx context.Context) error
}

// sqlMasteryStore implements MasteryStore on SQLite.
type sqlMasteryStore struct {
	db *sqlx.DB
}

type masteryRow struct {
	ItemID     string `db:"item_id"`
	Strength   int    `db:"strength"`
	LastSeenAt string `db:"last_seen_at"`
	LastResult string `db:"last_result"`
	DueAt      string `db:"due_at"`
	Lapses     int    `db:"lapses"`
}

func (s *sqlMasteryStore) LoadAll(ctx context.Context) (map[string]RecordData, error) {
	var rows []masteryRow
	err := s.db.SelectContext(ctx, &rows,
		`SELECT item_id, strength, last_seen_at, last_result, due_at, lapses
		 FROM mastery_records`)
	if err != nil {
		return nil, fmt.Errorf("load mastery records: %w", err)
	}

	result := make(map[string]RecordData, len(rows))
	for _, r := range rows {
		lastSeen, err := time.Parse(time.RFC3339Nano, r.LastSeenAt)
		if err != nil {
			continue
		}
		dueAt, err := time.Parse(time.RFC3339Nano, r.DueAt)
		if err != nil {
			continue
		}
		result[r.ItemID] = RecordData{
			ItemID:     r.ItemID,
			Strength:   r.Strength,
			LastSeenAt: lastSeen,
			LastResult: r.LastResult,
			DueAt:      dueAt,
			Lapses:     r.Lapses,
		}
	}
	return result, nil
}

func (s *sqlMasteryStore) Upsert(ctx context.Context, rec RecordData) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO mastery_records (item_id, strength, last_seen_at, last_result, due_at, lapses)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(item_id) DO UPDATE SET
			strength = excluded.strength,
			last_seen_at = excluded.last_seen_at,
			last_result = excluded.last_result,
			due_at = excluded.due_at,
			lapses = excluded.lapses`,
		rec.ItemID,
		rec.Strength,
		rec.LastSeenAt.Format(time.RFC3339Nano),
		rec.LastResult,
		rec.DueAt.Format(time.RFC3339Nano),
		rec.Lapses,
	)
	if err != nil {
		return fmt.Errorf("upsert mastery record %s: %w", rec.ItemID, err)
	}
	return nil
}

func (s *sqlMasteryStore) Reset(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM mastery_records`); err != nil {
		return fmt.Errorf("reset mastery records: %w", err)
	}
	return nil
}
