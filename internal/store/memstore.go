package store

import (
	"context"
	"sync"
)

// MemStore is an in-memory MasteryStore. Used in tests and anywhere the
// scheduler runs without durable storage.
type MemStore struct {
	mu      sync.Mutex
	records map[string]RecordData
}

// NewMemStore creates an empty in-memory mastery store.
func NewMemStore() *MemStore {
	return &MemStore{records: make(map[string]RecordData)}
}

func (m *MemStore) LoadAll(_ context.Context) (map[string]RecordData, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	result := make(map[string]RecordData, len(m.records))
	for id, rec := range m.records {
		result[id] = rec
	}
	return result, nil
}

func (m *MemStore) Upsert(_ context.Context, rec RecordData) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[rec.ItemID] = rec
	return nil
}

func (m *MemStore) Reset(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = make(map[string]RecordData)
	return nil
}

// MemEventRepo is an in-memory EventRepo for tests.
type MemEventRepo struct {
	mu         sync.Mutex
	Plans      []PlanEventData
	Attempts   []AttemptEventData
	Sessions   []SessionEventData
	Placements []PlacementEventData
}

// NewMemEventRepo creates an empty in-memory event repo.
func NewMemEventRepo() *MemEventRepo {
	return &MemEventRepo{}
}

func (m *MemEventRepo) AppendPlanEvent(_ context.Context, data PlanEventData) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Plans = append(m.Plans, data)
	return nil
}

func (m *MemEventRepo) AppendAttemptEvent(_ context.Context, data AttemptEventData) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Attempts = append(m.Attempts, data)
	return nil
}

func (m *MemEventRepo) AppendSessionEvent(_ context.Context, data SessionEventData) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Sessions = append(m.Sessions, data)
	return nil
}

func (m *MemEventRepo) AppendPlacementEvent(_ context.Context, data PlacementEventData) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Placements = append(m.Placements, data)
	return nil
}

func (m *MemEventRepo) PlanForSession(_ context.Context, sessionID string) (*PlanEventData, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := len(m.Plans) - 1; i >= 0; i-- {
		if m.Plans[i].SessionID == sessionID {
			p := m.Plans[i]
			return &p, nil
		}
	}
	return nil, nil
}

func (m *MemEventRepo) AttemptsForSession(_ context.Context, sessionID string) ([]AttemptEventData, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var result []AttemptEventData
	for _, a := range m.Attempts {
		if a.SessionID == sessionID {
			result = append(result, a)
		}
	}
	return result, nil
}

func (m *MemEventRepo) RecentSummaries(_ context.Context, limit int) ([]SessionEventData, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var result []SessionEventData
	for i := len(m.Sessions) - 1; i >= 0 && len(result) < limit; i-- {
		result = append(result, m.Sessions[i])
	}
	return result, nil
}

func (m *MemEventRepo) ItemAccuracy(_ context.Context, itemID string) (float64, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	total, correct := 0, 0
	for _, a := range m.Attempts {
		if a.ItemID != itemID {
			continue
		}
		total++
		if a.Result == "correct" {
			correct++
		}
	}
	if total == 0 {
		return 0, 0, nil
	}
	return float64(correct) / float64(total), total, nil
}

func (m *MemEventRepo) LatestPlacement(_ context.Context) (*PlacementEventData, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.Placements) == 0 {
		return nil, nil
	}
	p := m.Placements[len(m.Placements)-1]
	return &p, nil
}
