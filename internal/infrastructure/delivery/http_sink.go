// Package delivery pushes pending shipments to the remote sink over HTTP.
package delivery

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/99minutos/shipment-sync/internal/core/domain"
	"github.com/99minutos/shipment-sync/internal/core/ports"
)

const (
	defaultTimeout   = 10 * time.Second
	defaultUserAgent = "shipsync/1.0"
)

var _ ports.DeliverySink = (*HTTPSink)(nil)

// HTTPSinkConfig configures the remote endpoint.
type HTTPSinkConfig struct {
	Endpoint string
	UserID   int
	Timeout  time.Duration
}

// HTTPSink POSTs one JSON summary per shipment. Any 2xx response is an
// acknowledgement; the response body is ignored.
type HTTPSink struct {
	endpoint  string
	userID    int
	http      *http.Client
	userAgent string
}

// deliveryRequest is the body sent to the sink.
type deliveryRequest struct {
	Title      string `json:"title"`
	Body       string `json:"body"`
	UserID     int    `json:"userId"`
	ShipmentID string `json:"shipment_id"`
}

func NewHTTPSink(cfg HTTPSinkConfig) (*HTTPSink, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("delivery: endpoint is empty")
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &HTTPSink{
		endpoint:  cfg.Endpoint,
		userID:    cfg.UserID,
		http:      &http.Client{Timeout: timeout},
		userAgent: defaultUserAgent,
	}, nil
}

// Deliver makes a single POST for s. The shipment id is sent as the
// Idempotency-Key header so a sink that honours it can drop repeats.
func (c *HTTPSink) Deliver(ctx context.Context, s domain.Shipment) error {
	summary := s.Summary()
	payload, err := json.Marshal(deliveryRequest{
		Title:      summary.Title,
		Body:       summary.Body,
		UserID:     c.userID,
		ShipmentID: s.ID,
	})
	if err != nil {
		return fmt.Errorf("%w: encode: %w", domain.ErrDelivery, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: build request: %w", domain.ErrDelivery, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Idempotency-Key", s.ID)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrDelivery, err)
	}
	defer func() { _ = resp.Body.Close() }()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: unexpected status %d", domain.ErrDelivery, resp.StatusCode)
	}
	return nil
}
