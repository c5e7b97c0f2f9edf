package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// TripStatus is the closed set of trip lifecycle states.
type TripStatus string

const (
	// StatusPlanned means a vehicle has been reserved for the trip.
	StatusPlanned TripStatus = "planned"
	// StatusRejected means no eligible vehicle was available at planning
	// time. Terminal.
	StatusRejected TripStatus = "rejected"
	// StatusCompleted means the trip was driven and its vehicle released.
	// Terminal.
	StatusCompleted TripStatus = "completed"
)

// CanTransitionTo reports whether the state machine allows moving from s to
// next. Only planned trips may move, and only to a terminal state; rejected
// and completed are terminal.
func (s TripStatus) CanTransitionTo(next TripStatus) bool {
	if s != StatusPlanned {
		return false
	}
	return next == StatusCompleted || next == StatusRejected
}

// Trip is the booking record produced by the planning operation.
// A planned or completed trip references exactly one vehicle; a rejected trip
// references none (VehicleID is nil). PassengerCount is set only for
// passenger trips, WeightKg only for cargo trips — the absent figure is
// stored as NULL, never as zero.
type Trip struct {
	ID             uuid.UUID   `json:"id"`
	CustomerID     string      `json:"customer_id"`
	VehicleID      *uuid.UUID  `json:"vehicle_id,omitempty"`
	Date           time.Time   `json:"date"`
	Kind           VehicleKind `json:"kind"`
	DistanceKm     int         `json:"distance_km"`
	PassengerCount *int        `json:"passenger_count,omitempty"`
	WeightKg       *int        `json:"weight_kg,omitempty"`
	Status         TripStatus  `json:"status"`
	Price          float64     `json:"price"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
}

// Complete returns a copy of the trip transitioned to StatusCompleted.
// Returns ErrIllegalTransition if the trip is not currently planned; the
// price is carried over unchanged.
func (t Trip) Complete() (Trip, error) {
	if !t.Status.CanTransitionTo(StatusCompleted) {
		return Trip{}, fmt.Errorf("%w: cannot complete a %s trip", ErrIllegalTransition, t.Status)
	}
	t.Status = StatusCompleted
	return t, nil
}

// LoadKg returns the cargo weight carried on the trip, or 0 for passenger
// trips, which have no load factor.
func (t Trip) LoadKg() int {
	if t.Kind == KindCargo && t.WeightKg != nil {
		return *t.WeightKg
	}
	return 0
}
