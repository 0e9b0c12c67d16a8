package service

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/99minutos/shipment-sync/internal/core/domain"
	"github.com/99minutos/shipment-sync/internal/core/ports"
	"github.com/99minutos/shipment-sync/internal/pkg/metrics"
)

type ShipmentService struct {
	store  ports.ShipmentStore
	oracle ports.ConnectivityOracle
	engine ports.SyncEngine
	logger zerolog.Logger

	now   func() time.Time
	newID func() string
}

func NewShipmentService(
	store ports.ShipmentStore,
	oracle ports.ConnectivityOracle,
	engine ports.SyncEngine,
	logger zerolog.Logger,
) *ShipmentService {
	return &ShipmentService{
		store:  store,
		oracle: oracle,
		engine: engine,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
		newID:  func() string { return uuid.NewString() },
	}
}

// CreateShipment validates the input and records a new shipment locally. The
// initial status reflects the connectivity snapshot taken here; the remote sink
// is never called.
func (s *ShipmentService) CreateShipment(ctx context.Context, input ports.CreateShipmentInput) (*domain.Shipment, error) {
	shipment := domain.Shipment{
		Origin:      input.Origin,
		Destination: input.Destination,
		Weight:      input.Weight,
		Description: input.Description,
	}
	if err := shipment.Validate(); err != nil {
		return nil, err
	}

	shipment.Status = domain.StatusPending
	if s.oracle.CurrentlyOnline(ctx) {
		shipment.Status = domain.StatusSynced
	}
	shipment.ID = s.newID()
	shipment.CreatedAt = s.now()

	if err := s.store.Append(ctx, shipment); err != nil {
		s.logger.Error().Err(err).Msg("failed to create shipment")
		return nil, fmt.Errorf("create shipment: %w", err)
	}

	metrics.ShipmentsCreatedTotal.WithLabelValues(string(shipment.Status)).Inc()
	s.logger.Info().
		Str("shipment_id", shipment.ID).
		Str("status", string(shipment.Status)).
		Msg("shipment created")

	return &shipment, nil
}

// ListShipments returns every shipment ordered by creation time, newest first.
// A storage read failure degrades to an empty list so callers stay usable.
func (s *ShipmentService) ListShipments(ctx context.Context) ([]domain.Shipment, error) {
	shipments, err := s.store.Load(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to load shipments, returning empty list")
		return []domain.Shipment{}, nil
	}

	slices.SortStableFunc(shipments, func(a, b domain.Shipment) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return shipments, nil
}

// GetShipment returns the shipment with the given id or domain.ErrShipmentNotFound.
func (s *ShipmentService) GetShipment(ctx context.Context, id string) (*domain.Shipment, error) {
	shipments, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("get shipment: %w", err)
	}
	for i := range shipments {
		if shipments[i].ID == id {
			return &shipments[i], nil
		}
	}
	return nil, domain.ErrShipmentNotFound
}

// TriggerSync runs a sync pass when the network is reachable. It reports
// false without touching the store when offline.
func (s *ShipmentService) TriggerSync(ctx context.Context) (domain.SyncReport, bool) {
	if !s.oracle.CurrentlyOnline(ctx) {
		s.logger.Debug().Msg("sync skipped: offline")
		return domain.SyncReport{}, false
	}
	return s.engine.SyncPending(ctx), true
}

// PendingCount returns how many shipments still wait for delivery.
func (s *ShipmentService) PendingCount(ctx context.Context) (int, error) {
	shipments, err := s.store.Load(ctx)
	if err != nil {
		return 0, fmt.Errorf("pending count: %w", err)
	}

	n := 0
	for _, sh := range shipments {
		if sh.Status == domain.StatusPending {
			n++
		}
	}
	return n, nil
}
