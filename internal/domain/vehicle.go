// Package domain contains the core data types for the transport booking
// engine. This package has no dependencies on other internal packages and is
// imported by every other internal package (repo, service, handler).
package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// VehicleKind is the closed set of vehicle categories. A passenger vehicle's
// capacity is a seat count; a cargo vehicle's capacity is a weight in
// kilograms.
type VehicleKind string

const (
	KindPassenger VehicleKind = "passenger"
	KindCargo     VehicleKind = "cargo"
)

// ParseVehicleKind validates an externally supplied kind label.
// Unrecognized labels are rejected with ErrValidation before they can enter
// a transaction.
func ParseVehicleKind(s string) (VehicleKind, error) {
	switch VehicleKind(s) {
	case KindPassenger, KindCargo:
		return VehicleKind(s), nil
	}
	return "", fmt.Errorf("%w: unknown vehicle kind %q", ErrValidation, s)
}

// Wear accrual constants. A passenger vehicle wears one percent per 2000 km;
// a cargo vehicle one percent per 3000 km, plus a flat surcharge when loaded
// beyond 90% of its capacity.
const (
	passengerWearDivisorKm = 2000.0
	cargoWearDivisorKm     = 3000.0
	heavyLoadThreshold     = 0.9
	heavyLoadWearSurcharge = 0.5
)

// Vehicle is the scarce, mutable resource the engine assigns to trips.
// Kind and Capacity are fixed at creation; OdometerKm and WearPercent only
// ever increase; Available is flipped by Reserve and Release.
type Vehicle struct {
	ID          uuid.UUID   `json:"id"`
	Kind        VehicleKind `json:"kind"`
	Capacity    int         `json:"capacity"` // seats or kilograms, depending on Kind
	OdometerKm  int         `json:"odometer_km"`
	WearPercent float64     `json:"wear_percent"`
	Available   bool        `json:"available"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// Reserve returns a copy of the vehicle marked unavailable.
// The caller must hold the vehicle's row lock inside an open transaction.
func (v Vehicle) Reserve() Vehicle {
	v.Available = false
	return v
}

// Release returns a copy of the vehicle marked available again.
func (v Vehicle) Release() Vehicle {
	v.Available = true
	return v
}

// Drive returns a copy of the vehicle with distanceKm added to the odometer
// and the corresponding wear accrued. loadKg is the cargo weight carried
// during the drive; it is ignored for passenger vehicles. Loads above 90% of
// a cargo vehicle's capacity accrue an extra flat 0.5 wear percent.
func (v Vehicle) Drive(distanceKm, loadKg int) Vehicle {
	v.OdometerKm += distanceKm
	switch v.Kind {
	case KindPassenger:
		v.WearPercent += float64(distanceKm) / passengerWearDivisorKm
	case KindCargo:
		v.WearPercent += float64(distanceKm) / cargoWearDivisorKm
		if float64(loadKg) > heavyLoadThreshold*float64(v.Capacity) {
			v.WearPercent += heavyLoadWearSurcharge
		}
	}
	return v
}

// Validate enforces the vehicle invariants on out-of-band creation.
func (v Vehicle) Validate() error {
	if _, err := ParseVehicleKind(string(v.Kind)); err != nil {
		return err
	}
	if v.Capacity <= 0 {
		return fmt.Errorf("%w: capacity must be positive", ErrValidation)
	}
	if v.OdometerKm < 0 {
		return fmt.Errorf("%w: odometer must not be negative", ErrValidation)
	}
	if v.WearPercent < 0 {
		return fmt.Errorf("%w: wear percent must not be negative", ErrValidation)
	}
	return nil
}
