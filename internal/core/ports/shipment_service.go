package ports

import (
	"context"

	"github.com/99minutos/shipment-sync/internal/core/domain"
)

// CreateShipmentInput carries the user-submitted fields of a new shipment.
type CreateShipmentInput struct {
	Origin      string
	Destination string
	Weight      float64
	Description string
}

// ShipmentService is the facade consumed by the presentation layer.
type ShipmentService interface {
	CreateShipment(ctx context.Context, input CreateShipmentInput) (*domain.Shipment, error)
	// ListShipments returns every shipment, newest first.
	ListShipments(ctx context.Context) ([]domain.Shipment, error)
	GetShipment(ctx context.Context, id string) (*domain.Shipment, error)
	// TriggerSync runs a sync pass when online. The bool reports whether a pass ran.
	TriggerSync(ctx context.Context) (domain.SyncReport, bool)
	PendingCount(ctx context.Context) (int, error)
}

// SyncEngine delivers pending shipments to the remote sink.
type SyncEngine interface {
	SyncPending(ctx context.Context) domain.SyncReport
}
