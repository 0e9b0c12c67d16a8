package domain

import "time"

// DeliveryOutcome is the result of a single delivery attempt within a sync pass.
type DeliveryOutcome string

const (
	OutcomeSynced DeliveryOutcome = "synced"
	// OutcomeRecovered means the sink had already acknowledged the record in an
	// earlier pass; only the local status was updated.
	OutcomeRecovered DeliveryOutcome = "recovered"
	OutcomeFailed    DeliveryOutcome = "failed"
	// OutcomeUnmarked means delivery succeeded but the status write failed; the
	// record stays pending locally.
	OutcomeUnmarked DeliveryOutcome = "unmarked"
)

// DeliveryResult describes what happened to one pending record.
type DeliveryResult struct {
	ShipmentID string          `json:"shipment_id"`
	Outcome    DeliveryOutcome `json:"outcome"`
	Error      string          `json:"error,omitempty"`
}

// SyncReport summarises one sync pass. It is informational only: delivery
// failures never surface as errors to callers.
type SyncReport struct {
	StartedAt  time.Time        `json:"started_at"`
	FinishedAt time.Time        `json:"finished_at"`
	Attempted  int              `json:"attempted"`
	Synced     int              `json:"synced"`
	Failed     int              `json:"failed"`
	Results    []DeliveryResult `json:"results"`
}

// Add records a per-record result and updates the Synced and Failed counters.
// Attempted is counted by the caller, which knows whether the sink was called.
func (r *SyncReport) Add(res DeliveryResult) {
	r.Results = append(r.Results, res)
	switch res.Outcome {
	case OutcomeSynced, OutcomeRecovered:
		r.Synced++
	default:
		r.Failed++
	}
}
