package queue

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/99minutos/shipment-sync/internal/core/domain"
	"github.com/99minutos/shipment-sync/internal/core/ports"
	"github.com/99minutos/shipment-sync/internal/pkg/metrics"
)

// Trigger names what asked for a sync pass.
type Trigger string

const (
	TriggerStartup      Trigger = "startup"
	TriggerConnectivity Trigger = "connectivity"
	TriggerManual       Trigger = "manual"
	TriggerInterval     Trigger = "interval"
)

// SyncRunner is the part of the facade the dispatcher drives.
type SyncRunner interface {
	TriggerSync(ctx context.Context) (domain.SyncReport, bool)
}

// Dispatcher funnels sync triggers into a single worker. At most one trigger
// waits behind the running pass; further triggers are coalesced into it, since
// the waiting pass re-reads the store and covers them anyway.
type Dispatcher struct {
	pending chan Trigger
	runner  SyncRunner
	log     zerolog.Logger
	done    chan struct{}
}

// NewDispatcher creates a Dispatcher driving runner.
func NewDispatcher(runner SyncRunner, log zerolog.Logger) *Dispatcher {
	return &Dispatcher{
		pending: make(chan Trigger, 1),
		runner:  runner,
		log:     log,
		done:    make(chan struct{}),
	}
}

// Start launches the worker goroutine. It stops when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	go d.runWorker(ctx)
}

// Done is closed once the worker has exited.
func (d *Dispatcher) Done() <-chan struct{} {
	return d.done
}

// Enqueue requests a sync pass without blocking. It returns false when a pass
// was already queued and this trigger was coalesced into it.
func (d *Dispatcher) Enqueue(t Trigger) bool {
	select {
	case d.pending <- t:
		metrics.SyncTriggersTotal.WithLabelValues(string(t), "queued").Inc()
		return true
	default:
		metrics.SyncTriggersTotal.WithLabelValues(string(t), "coalesced").Inc()
		d.log.Debug().Str("trigger", string(t)).Msg("sync trigger coalesced")
		return false
	}
}

// WatchConnectivity enqueues a pass on every offline→online transition.
func (d *Dispatcher) WatchConnectivity(oracle ports.ConnectivityOracle) (unsubscribe func()) {
	return oracle.OnTransition(func(online bool) {
		if online {
			d.Enqueue(TriggerConnectivity)
		}
	})
}

// RunInterval enqueues a pass every interval until ctx is cancelled.
// A non-positive interval returns immediately.
func (d *Dispatcher) RunInterval(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			d.Enqueue(TriggerInterval)
		}
	}
}

func (d *Dispatcher) runWorker(ctx context.Context) {
	defer close(d.done)
	for {
		select {
		case <-ctx.Done():
			return
		case t := <-d.pending:
			report, ran := d.runner.TriggerSync(ctx)
			if !ran {
				d.log.Debug().Str("trigger", string(t)).Msg("sync skipped while offline")
				continue
			}
			d.log.Info().
				Str("trigger", string(t)).
				Int("synced", report.Synced).
				Int("failed", report.Failed).
				Msg("sync pass completed")
		}
	}
}
