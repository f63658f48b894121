package repository

import (
	"context"
	"sync"
	"time"

	"github.com/vfg2006/creator-assistant/internal/domain"
)

type memoryHistoryRepository struct {
	mu      sync.RWMutex
	records map[string]domain.HistoryRecord
	now     func() time.Time
}

// NewMemoryHistoryRepository guarda os transcripts apenas na memória do processo
func NewMemoryHistoryRepository() HistoryRepository {
	return &memoryHistoryRepository{
		records: make(map[string]domain.HistoryRecord),
		now:     time.Now,
	}
}

func (m *memoryHistoryRepository) Load(_ context.Context, key string) ([]domain.TranscriptEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	record, ok := m.records[key]
	if !ok {
		return nil, nil
	}

	return append([]domain.TranscriptEntry(nil), record.Entries...), nil
}

func (m *memoryHistoryRepository) Save(_ context.Context, key string, entries []domain.TranscriptEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.records[key] = domain.HistoryRecord{
		Key:       key,
		Entries:   append([]domain.TranscriptEntry{}, entries...),
		UpdatedAt: m.now().UTC(),
	}

	return nil
}

func (m *memoryHistoryRepository) Clear(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.records, key)
	return nil
}

func (m *memoryHistoryRepository) DeleteOlderThan(_ context.Context, cutoff time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var deleted int64
	for key, record := range m.records {
		if record.UpdatedAt.Before(cutoff) {
			delete(m.records, key)
			deleted++
		}
	}

	return deleted, nil
}
