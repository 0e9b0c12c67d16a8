package ports

import (
	"context"

	"github.com/99minutos/shipment-sync/internal/core/domain"
)

// DeliverySink is the remote endpoint pending shipments are pushed to.
type DeliverySink interface {
	// Deliver makes exactly one delivery attempt. A nil error means the sink
	// acknowledged the shipment.
	Deliver(ctx context.Context, s domain.Shipment) error
}

// DeliveryLedger remembers which shipments the sink has acknowledged, so a
// pass that crashed between delivery and the status write does not deliver twice.
type DeliveryLedger interface {
	IsDelivered(ctx context.Context, shipmentID string) (bool, error)
	MarkDelivered(ctx context.Context, shipmentID string) error
}
