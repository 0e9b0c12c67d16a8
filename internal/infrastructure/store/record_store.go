// Package store implements the shipment Record Store: the whole collection is
// kept as one JSON document under a single key of a durable key-value medium.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"sync"

	"github.com/99minutos/shipment-sync/internal/core/domain"
	"github.com/99minutos/shipment-sync/internal/core/ports"
)

// DefaultKey is the key the shipment collection is stored under.
const DefaultKey = "@shipments"

// KV is a durable medium holding opaque values by key. Set must replace the
// value atomically: after a failed Set readers still see the previous value.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
}

var _ ports.ShipmentStore = (*RecordStore)(nil)

// RecordStore is the single writer of the shipment collection. Every mutation
// reads the current document, builds a new collection and writes it back in one
// Set call while holding mu, so concurrent callers cannot lose updates.
type RecordStore struct {
	kv  KV
	key string
	mu  sync.Mutex
}

// NewRecordStore returns a store persisting under key, or DefaultKey when empty.
func NewRecordStore(kv KV, key string) *RecordStore {
	if key == "" {
		key = DefaultKey
	}
	return &RecordStore{kv: kv, key: key}
}

// Load returns all shipments in insertion order.
func (s *RecordStore) Load(ctx context.Context) ([]domain.Shipment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.load(ctx)
}

// Append adds a new shipment. An unreadable document is never overwritten.
func (s *RecordStore) Append(ctx context.Context, shipment domain.Shipment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.load(ctx)
	if err != nil {
		return fmt.Errorf("append shipment: %w: %w", domain.ErrStorageWrite, err)
	}
	if slices.ContainsFunc(current, func(x domain.Shipment) bool { return x.ID == shipment.ID }) {
		return fmt.Errorf("append shipment %s: %w", shipment.ID, domain.ErrDuplicateShipment)
	}

	next := make([]domain.Shipment, 0, len(current)+1)
	next = append(next, current...)
	next = append(next, shipment)
	return s.write(ctx, next)
}

// UpdateStatus sets the status of the shipment with the given id. Unknown ids
// and unchanged statuses are no-ops; reverting synced to pending is rejected.
func (s *RecordStore) UpdateStatus(ctx context.Context, id string, status domain.SyncStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.load(ctx)
	if err != nil {
		return fmt.Errorf("update status: %w: %w", domain.ErrStorageWrite, err)
	}

	idx := slices.IndexFunc(current, func(x domain.Shipment) bool { return x.ID == id })
	if idx < 0 || current[idx].Status == status {
		return nil
	}
	if !current[idx].Status.CanTransitionTo(status) {
		return fmt.Errorf("update status %s: %w (from %s to %s)", id, domain.ErrInvalidTransition, current[idx].Status, status)
	}

	next := slices.Clone(current)
	next[idx].Status = status
	return s.write(ctx, next)
}

func (s *RecordStore) load(ctx context.Context) ([]domain.Shipment, error) {
	raw, found, err := s.kv.Get(ctx, s.key)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrStorageRead, err)
	}
	if !found || len(raw) == 0 {
		return []domain.Shipment{}, nil
	}
	return Decode(raw)
}

func (s *RecordStore) write(ctx context.Context, shipments []domain.Shipment) error {
	raw, err := Encode(shipments)
	if err != nil {
		return err
	}
	if err := s.kv.Set(ctx, s.key, raw); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrStorageWrite, err)
	}
	return nil
}

// Encode serialises the collection into its persisted JSON array form.
func Encode(shipments []domain.Shipment) ([]byte, error) {
	if shipments == nil {
		shipments = []domain.Shipment{}
	}
	raw, err := json.Marshal(shipments)
	if err != nil {
		return nil, fmt.Errorf("%w: encode: %w", domain.ErrStorageWrite, err)
	}
	return raw, nil
}

// Decode parses a persisted JSON array. A null document decodes to an empty collection.
func Decode(raw []byte) ([]domain.Shipment, error) {
	var shipments []domain.Shipment
	if err := json.Unmarshal(raw, &shipments); err != nil {
		return nil, fmt.Errorf("%w: decode: %w", domain.ErrStorageRead, err)
	}
	if shipments == nil {
		shipments = []domain.Shipment{}
	}
	return shipments, nil
}
