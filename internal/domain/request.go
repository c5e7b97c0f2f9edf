package domain

import (
	"fmt"
	"time"
)

// TripRequest is the ephemeral input to the planning operation. It is never
// persisted as such — planning snapshots it into a Trip row.
// Exactly one capacity figure is set: PassengerCount for passenger requests,
// WeightKg for cargo requests.
type TripRequest struct {
	CustomerID     string
	Date           time.Time
	Kind           VehicleKind
	DistanceKm     int
	PassengerCount *int
	WeightKg       *int
}

// RequiredCapacity derives the capacity figure a vehicle must meet:
// the passenger count for passenger requests, the weight for cargo requests.
func (r TripRequest) RequiredCapacity() int {
	if r.Kind == KindPassenger {
		if r.PassengerCount == nil {
			return 0
		}
		return *r.PassengerCount
	}
	if r.WeightKg == nil {
		return 0
	}
	return *r.WeightKg
}

// Validate enforces the intake contract: a known kind, a positive distance,
// and exactly the capacity figure matching the kind, positive.
func (r TripRequest) Validate() error {
	if _, err := ParseVehicleKind(string(r.Kind)); err != nil {
		return err
	}
	if r.CustomerID == "" {
		return fmt.Errorf("%w: customer id is required", ErrValidation)
	}
	if r.DistanceKm <= 0 {
		return fmt.Errorf("%w: distance must be positive", ErrValidation)
	}
	switch r.Kind {
	case KindPassenger:
		if r.WeightKg != nil {
			return fmt.Errorf("%w: weight does not apply to passenger trips", ErrValidation)
		}
		if r.PassengerCount == nil || *r.PassengerCount <= 0 {
			return fmt.Errorf("%w: passenger count must be positive", ErrValidation)
		}
	case KindCargo:
		if r.PassengerCount != nil {
			return fmt.Errorf("%w: passenger count does not apply to cargo trips", ErrValidation)
		}
		if r.WeightKg == nil || *r.WeightKg <= 0 {
			return fmt.Errorf("%w: weight must be positive", ErrValidation)
		}
	}
	return nil
}
