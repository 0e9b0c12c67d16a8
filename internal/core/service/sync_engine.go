package service

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/99minutos/shipment-sync/internal/core/domain"
	"github.com/99minutos/shipment-sync/internal/core/ports"
	"github.com/99minutos/shipment-sync/internal/pkg/metrics"
)

const defaultDeliveryTimeout = 10 * time.Second

// SyncEngine delivers pending shipments to the remote sink one at a time and
// marks each acknowledged shipment as synced.
type SyncEngine struct {
	store   ports.ShipmentStore
	sink    ports.DeliverySink
	ledger  ports.DeliveryLedger
	timeout time.Duration
	log     zerolog.Logger

	// mu allows at most one pass at a time. An overlapping caller waits and
	// then re-reads the store, so it never re-delivers what the prior pass synced.
	mu sync.Mutex
}

// SyncOption configures optional SyncEngine collaborators.
type SyncOption func(*SyncEngine)

// WithLedger records acknowledged deliveries so a record whose status write
// failed is not delivered again on the next pass.
func WithLedger(l ports.DeliveryLedger) SyncOption {
	return func(e *SyncEngine) { e.ledger = l }
}

// WithDeliveryTimeout bounds each delivery attempt. Non-positive values keep the default.
func WithDeliveryTimeout(d time.Duration) SyncOption {
	return func(e *SyncEngine) {
		if d > 0 {
			e.timeout = d
		}
	}
}

// NewSyncEngine returns a SyncEngine with a 10s per-attempt timeout unless overridden.
func NewSyncEngine(store ports.ShipmentStore, sink ports.DeliverySink, log zerolog.Logger, opts ...SyncOption) *SyncEngine {
	e := &SyncEngine{
		store:   store,
		sink:    sink,
		timeout: defaultDeliveryTimeout,
		log:     log,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// SyncPending runs one sync pass. Delivery failures are logged and reported in
// the returned SyncReport but never abort the pass or surface as errors.
// Cancelling ctx stops the pass; unprocessed shipments stay pending.
func (e *SyncEngine) SyncPending(ctx context.Context) domain.SyncReport {
	e.mu.Lock()
	defer e.mu.Unlock()

	start := time.Now()
	report := domain.SyncReport{StartedAt: start.UTC(), Results: []domain.DeliveryResult{}}

	shipments, err := e.store.Load(ctx)
	if err != nil {
		e.log.Error().Err(err).Msg("sync pass aborted: cannot read shipments")
		report.FinishedAt = time.Now().UTC()
		return report
	}

	pending := 0
	for _, s := range shipments {
		if s.Status != domain.StatusPending {
			continue
		}
		pending++
		if ctx.Err() != nil {
			continue
		}
		res, attempted := e.syncOne(ctx, s)
		if attempted {
			report.Attempted++
		}
		report.Add(res)
		metrics.SyncDeliveriesTotal.WithLabelValues(string(res.Outcome)).Inc()
	}

	if ctx.Err() != nil {
		e.log.Warn().Err(ctx.Err()).Int("processed", len(report.Results)).Msg("sync pass interrupted")
	}

	report.FinishedAt = time.Now().UTC()
	metrics.SyncPassesTotal.Inc()
	metrics.SyncPassDuration.Observe(time.Since(start).Seconds())
	metrics.ShipmentsPending.Set(float64(pending - report.Synced))

	e.log.Info().
		Int("pending", pending).
		Int("attempted", report.Attempted).
		Int("synced", report.Synced).
		Int("failed", report.Failed).
		Dur("took", time.Since(start)).
		Msg("sync pass finished")

	return report
}

// syncOne handles one pending record. attempted reports whether the sink was called.
func (e *SyncEngine) syncOne(ctx context.Context, s domain.Shipment) (res domain.DeliveryResult, attempted bool) {
	log := e.log.With().Str("shipment_id", s.ID).Logger()

	// 1. Already acknowledged by the sink in an earlier pass: only the local write is missing.
	if e.ledger != nil {
		delivered, err := e.ledger.IsDelivered(ctx, s.ID)
		if err != nil {
			log.Warn().Err(err).Msg("ledger check failed, delivering anyway")
		} else if delivered {
			if err := e.store.UpdateStatus(ctx, s.ID, domain.StatusSynced); err != nil {
				log.Error().Err(err).Msg("failed to mark recovered shipment as synced")
				return domain.DeliveryResult{ShipmentID: s.ID, Outcome: domain.OutcomeUnmarked, Error: err.Error()}, false
			}
			log.Info().Msg("shipment recovered from ledger")
			return domain.DeliveryResult{ShipmentID: s.ID, Outcome: domain.OutcomeRecovered}, false
		}
	}

	// 2. One bounded delivery attempt.
	attemptCtx, cancel := context.WithTimeout(ctx, e.timeout)
	err := e.sink.Deliver(attemptCtx, s)
	cancel()
	if err != nil {
		log.Warn().Err(err).Msg("delivery failed, shipment stays pending")
		return domain.DeliveryResult{ShipmentID: s.ID, Outcome: domain.OutcomeFailed, Error: err.Error()}, true
	}

	// 3. Remember the acknowledgement before touching the store.
	if e.ledger != nil {
		if err := e.ledger.MarkDelivered(ctx, s.ID); err != nil {
			log.Warn().Err(err).Msg("failed to record delivery in ledger")
		}
	}

	if err := e.store.UpdateStatus(ctx, s.ID, domain.StatusSynced); err != nil {
		log.Error().Err(err).Msg("shipment delivered but status update failed")
		return domain.DeliveryResult{ShipmentID: s.ID, Outcome: domain.OutcomeUnmarked, Error: err.Error()}, true
	}

	log.Info().Msg("shipment synced")
	return domain.DeliveryResult{ShipmentID: s.ID, Outcome: domain.OutcomeSynced}, true
}
