// Package metrics defines and registers all custom Prometheus metrics for the
// shipment sync service. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics are registered with the default Prometheus registry on package
// initialisation (promauto) and exposed by the API at /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "shipsync"

// ── Shipment metrics ──────────────────────────────────────────────────────────

// ShipmentsCreatedTotal counts locally recorded shipments.
// Label:
//   - status: initial status derived from the connectivity snapshot ("pending" or "synced")
var ShipmentsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "shipments_created_total",
		Help:      "Total number of shipments recorded, by initial status.",
	},
	[]string{"status"},
)

// ShipmentsPending tracks the number of shipments still waiting for delivery
// as observed at the end of the latest sync pass.
var ShipmentsPending = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "shipments_pending",
		Help:      "Number of pending shipments left after the latest sync pass.",
	},
)

// ── Sync metrics ──────────────────────────────────────────────────────────────

// SyncPassesTotal counts completed sync passes.
var SyncPassesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sync_passes_total",
		Help:      "Total number of sync passes executed.",
	},
)

// SyncDeliveriesTotal counts per-record results of sync passes.
// Label:
//   - outcome: "synced", "recovered", "failed" or "unmarked"
var SyncDeliveriesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sync_deliveries_total",
		Help:      "Total number of per-shipment delivery results, by outcome.",
	},
	[]string{"outcome"},
)

// SyncPassDuration measures how long a full sync pass takes.
var SyncPassDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "sync_pass_duration_seconds",
		Help:      "Duration of a sync pass from store read to the last status update.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
)

// SyncTriggersTotal counts sync trigger requests.
// Labels:
//   - trigger: "startup", "connectivity", "manual" or "interval"
//   - result: "queued" or "coalesced" (a pass was already waiting)
var SyncTriggersTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sync_triggers_total",
		Help:      "Total number of sync triggers, by trigger source and queueing result.",
	},
	[]string{"trigger", "result"},
)

// ── Connectivity metrics ──────────────────────────────────────────────────────

// ConnectivityOnline is 1 while the connectivity oracle reports the network
// reachable and 0 otherwise.
var ConnectivityOnline = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "connectivity_online",
		Help:      "Current reachability as reported by the connectivity oracle (1 online, 0 offline).",
	},
)

// ConnectivityTransitionsTotal counts reachability changes.
// Label:
//   - to: "online" or "offline"
var ConnectivityTransitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "connectivity_transitions_total",
		Help:      "Total number of connectivity transitions, by new state.",
	},
	[]string{"to"},
)

// SetOnline updates the connectivity gauge.
func SetOnline(online bool) {
	if online {
		ConnectivityOnline.Set(1)
		return
	}
	ConnectivityOnline.Set(0)
}
