// Package registry provides the in-memory activity store.
package registry

import (
	"context"
	"sync"

	"example.com/activities/internal/domain"
)

// Memory holds every activity for the process lifetime, guarded by a single
// coarse lock. Contention is low enough that per-activity locking is not worth
// the bookkeeping. Restarting the process resets all signups.
type Memory struct {
	mu         sync.RWMutex
	activities map[string]*domain.Activity
}

// NewMemory builds a store holding copies of the seed activities.
func NewMemory(seed []domain.Activity) *Memory {
	m := &Memory{activities: make(map[string]*domain.Activity, len(seed))}
	for _, activity := range seed {
		record := activity
		record.Participants = append([]string(nil), activity.Participants...)
		m.activities[record.Name] = &record
	}
	return m
}

// List returns a deep-copied snapshot of every activity keyed by name.
func (m *Memory) List(ctx context.Context) (map[string]domain.Activity, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	snapshot := make(map[string]domain.Activity, len(m.activities))
	for name, record := range m.activities {
		snapshot[name] = copyActivity(record)
	}
	return snapshot, nil
}

// Get returns a copy of one activity by name.
func (m *Memory) Get(ctx context.Context, name string) (*domain.Activity, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	record, ok := m.activities[name]
	if !ok {
		return nil, domain.ErrActivityNotFound
	}
	out := copyActivity(record)
	return &out, nil
}

// Signup appends email to the activity's roster. The duplicate check and the
// append happen under one critical section so the uniqueness invariant holds
// under concurrent requests. MaxParticipants is deliberately not enforced.
func (m *Memory) Signup(ctx context.Context, name, email string) (*domain.Activity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	record, ok := m.activities[name]
	if !ok {
		return nil, domain.ErrActivityNotFound
	}
	if record.HasParticipant(email) {
		return nil, domain.ErrAlreadySignedUp
	}

	record.Participants = append(record.Participants, email)
	out := copyActivity(record)
	return &out, nil
}

// Unregister removes email from the activity's roster.
func (m *Memory) Unregister(ctx context.Context, name, email string) (*domain.Activity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	record, ok := m.activities[name]
	if !ok {
		return nil, domain.ErrActivityNotFound
	}

	idx := -1
	for i, p := range record.Participants {
		if p == email {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, domain.ErrNotSignedUp
	}

	record.Participants = append(record.Participants[:idx], record.Participants[idx+1:]...)
	out := copyActivity(record)
	return &out, nil
}

func copyActivity(record *domain.Activity) domain.Activity {
	out := *record
	out.Participants = append([]string(nil), record.Participants...)
	return out
}
