package ports

import (
	"context"

	"github.com/99minutos/shipment-sync/internal/core/domain"
)

// ShipmentStore persists the full shipment collection as a single logical
// document. Implementations serialise their own mutations.
type ShipmentStore interface {
	// Load returns every stored shipment in insertion order, or an empty slice
	// on first run. Failures wrap domain.ErrStorageRead.
	Load(ctx context.Context) ([]domain.Shipment, error)
	// Append adds a new shipment. Failures wrap domain.ErrStorageWrite.
	Append(ctx context.Context, s domain.Shipment) error
	// UpdateStatus replaces the status of the shipment with the given id.
	// An unknown id is a no-op.
	UpdateStatus(ctx context.Context, id string, status domain.SyncStatus) error
}
