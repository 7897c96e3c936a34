package store

import (
	"context"
	"sync"

	"receipt-points/internal/infra"
	"receipt-points/internal/usecase/shared"

	"github.com/google/uuid"
)

// MemoryReceiptStore is the default backend: a guarded map that lives until
// process end. Writes are immediately visible to readers on any goroutine.
type MemoryReceiptStore struct {
	mu      sync.RWMutex
	records map[uuid.UUID]shared.ReceiptRecord
}

func NewMemoryReceiptStore() *MemoryReceiptStore {
	return &MemoryReceiptStore{
		records: make(map[uuid.UUID]shared.ReceiptRecord),
	}
}

func (s *MemoryReceiptStore) Put(_ context.Context, record shared.ReceiptRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.records[record.ID]; exists {
		// each record is written exactly once by its owning submission
		return infra.WrapRepoErr("receipt already stored", nil, infra.KindDuplicateKey)
	}
	s.records[record.ID] = record
	return nil
}

func (s *MemoryReceiptStore) Get(_ context.Context, id uuid.UUID) (*shared.ReceiptRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.records[id]
	if !ok {
		return nil, infra.WrapRepoErr("receipt not found", nil, infra.KindNotFound)
	}
	return &record, nil
}

// Len reports the number of stored receipts, for diagnostics.
func (s *MemoryReceiptStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
