package domain

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
)

// SyncStatus represents the delivery state of a locally recorded shipment.
type SyncStatus string

const (
	StatusPending SyncStatus = "pending"
	StatusSynced  SyncStatus = "synced"
)

// validTransitions defines the allowed state machine transitions.
var validTransitions = map[SyncStatus][]SyncStatus{
	StatusPending: {StatusSynced},
}

var ErrInvalidTransition = errors.New("invalid status transition")
var ErrShipmentNotFound = errors.New("shipment not found")
var ErrDuplicateShipment = errors.New("shipment already exists")
var ErrValidation = errors.New("validation failed")
var ErrStorageRead = errors.New("storage read failed")
var ErrStorageWrite = errors.New("storage write failed")
var ErrDelivery = errors.New("delivery failed")

// Valid reports whether s is one of the known statuses.
func (s SyncStatus) Valid() bool {
	return s == StatusPending || s == StatusSynced
}

// CanTransitionTo reports whether a transition from current status to next is valid.
func (s SyncStatus) CanTransitionTo(next SyncStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Shipment is the sole persisted entity. Only Status ever changes after creation.
type Shipment struct {
	ID          string     `json:"id"`
	Origin      string     `json:"origin"`
	Destination string     `json:"destination"`
	Weight      float64    `json:"weight"`
	Description string     `json:"description"`
	Status      SyncStatus `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
}

// Validate checks the fields required at creation time.
func (s Shipment) Validate() error {
	var missing []string
	if strings.TrimSpace(s.Origin) == "" {
		missing = append(missing, "origin is required")
	}
	if strings.TrimSpace(s.Destination) == "" {
		missing = append(missing, "destination is required")
	}
	if math.IsNaN(s.Weight) || math.IsInf(s.Weight, 0) || s.Weight <= 0 {
		missing = append(missing, "weight must be greater than 0")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrValidation, strings.Join(missing, "; "))
	}
	return nil
}

// Summary is the textual representation sent to the remote sink.
type Summary struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// Summary derives the delivery payload from origin, destination and description.
func (s Shipment) Summary() Summary {
	return Summary{
		Title: fmt.Sprintf("Shipment from %s to %s", s.Origin, s.Destination),
		Body:  s.Description,
	}
}
