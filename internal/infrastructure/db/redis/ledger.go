package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultLedgerTTL = 7 * 24 * time.Hour

// DeliveryLedger remembers shipments the remote sink has acknowledged.
// Key format: delivered:<shipment_id>
type DeliveryLedger struct {
	client *redis.Client
	ttl    time.Duration
}

// NewDeliveryLedger creates a DeliveryLedger wrapping the given Redis client.
// Entries expire after ttl, or after a week when ttl is not positive.
func NewDeliveryLedger(client *redis.Client, ttl time.Duration) *DeliveryLedger {
	if ttl <= 0 {
		ttl = defaultLedgerTTL
	}
	return &DeliveryLedger{client: client, ttl: ttl}
}

// IsDelivered reports whether the shipment was already acknowledged.
func (l *DeliveryLedger) IsDelivered(ctx context.Context, shipmentID string) (bool, error) {
	n, err := l.client.Exists(ctx, l.key(shipmentID)).Result()
	if err != nil {
		return false, fmt.Errorf("ledger check: %w", err)
	}
	return n > 0, nil
}

// MarkDelivered records the acknowledgement (expires after the ledger TTL).
func (l *DeliveryLedger) MarkDelivered(ctx context.Context, shipmentID string) error {
	return l.client.Set(ctx, l.key(shipmentID), time.Now().UTC().Format(time.RFC3339), l.ttl).Err()
}

func (l *DeliveryLedger) key(shipmentID string) string {
	return fmt.Sprintf("delivered:%s", shipmentID)
}
