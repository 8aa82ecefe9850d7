package memory

import (
	"context"
	"sync"

	"github.com/jimmyqrg/parkoreen-sub001/internal/models"
	"github.com/jimmyqrg/parkoreen-sub001/internal/repository"
)

type memoryRoomStore struct {
	mu      sync.Mutex
	records map[string]models.RoomRecord
}

// NewMemoryRoomStore keeps room records in process memory. Used for
// standalone runs without a database, and by tests.
func NewMemoryRoomStore() repository.RoomStore {
	return &memoryRoomStore{records: make(map[string]models.RoomRecord)}
}

func (s *memoryRoomStore) CreateIfAbsent(ctx context.Context, record *models.RoomRecord) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.records[record.Code]; exists {
		return false, nil
	}
	s.records[record.Code] = *record
	return true, nil
}

func (s *memoryRoomStore) Get(ctx context.Context, code string) (*models.RoomRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, exists := s.records[code]
	if !exists {
		return nil, nil
	}
	return &record, nil
}

func (s *memoryRoomStore) Delete(ctx context.Context, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.records, code)
	return nil
}
