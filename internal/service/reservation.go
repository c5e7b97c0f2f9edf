// Package service contains the business logic for the transport booking API.
// Services validate inputs, enforce invariants, and orchestrate repo calls.
// No SQL lives here — services depend on repo interfaces, not implementations.
package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/dstrangerfontys/Transportbedrijf-Simplefied/internal/domain"
	"github.com/dstrangerfontys/Transportbedrijf-Simplefied/internal/repo"
)

// ReservationService is the reservation and trip-lifecycle engine: it
// matches trip requests to vehicles, reserves them, prices the trip, and
// later finalizes the trip by applying usage effects and releasing the
// vehicle. Every operation runs as one atomic transaction spanning the
// vehicle and trip stores.
type ReservationService struct {
	tx repo.TxManager
}

// NewReservationService constructs a ReservationService on top of the given
// transaction manager.
func NewReservationService(tx repo.TxManager) *ReservationService {
	return &ReservationService{tx: tx}
}

// Plan matches a trip request to the first eligible vehicle, reserves it,
// and persists a planned trip priced for the request. When no vehicle is
// eligible, a rejected trip with no vehicle reference and price 0 is
// persisted instead — rejection is a defined outcome, not an error.
//
// The candidate query locks every eligible vehicle row for the duration of
// the transaction, so two concurrent Plan calls can never reserve the same
// vehicle: the second caller blocks until the first commits, then sees the
// vehicle as unavailable.
func (s *ReservationService) Plan(ctx context.Context, req domain.TripRequest) (domain.Trip, error) {
	if err := req.Validate(); err != nil {
		return domain.Trip{}, err
	}

	var planned domain.Trip
	err := s.tx.WithinTx(ctx, func(st repo.Stores) error {
		candidates, err := st.Vehicles.FindEligible(ctx, req.Kind, req.RequiredCapacity())
		if err != nil {
			return err
		}

		trip := domain.Trip{
			CustomerID:     req.CustomerID,
			Date:           req.Date,
			Kind:           req.Kind,
			DistanceKm:     req.DistanceKm,
			PassengerCount: req.PassengerCount,
			WeightKg:       req.WeightKg,
		}

		if len(candidates) == 0 {
			trip.Status = domain.StatusRejected
			trip.Price = 0
			planned, err = st.Trips.Create(ctx, trip)
			return err
		}

		// First-fit: candidates are ordered by id, take the first.
		vehicle := candidates[0]
		if _, err := st.Vehicles.Save(ctx, vehicle.Reserve()); err != nil {
			return err
		}

		trip.VehicleID = &vehicle.ID
		trip.Status = domain.StatusPlanned
		trip.Price = domain.PriceFor(req.Kind, req.DistanceKm)
		planned, err = st.Trips.Create(ctx, trip)
		return err
	})
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.ReservationService.Plan: %w", err)
	}

	return planned, nil
}

// Complete finalizes a planned trip: it advances the assigned vehicle's
// odometer and wear by the distance actually driven, releases the vehicle,
// and transitions the trip to completed with its price unchanged.
//
// Returns domain.ErrValidation for a non-positive distance,
// domain.ErrNotFound for an unknown trip or a missing vehicle record, and
// domain.ErrIllegalTransition when the trip is not currently planned.
// Any failure rolls the whole transaction back, leaving vehicle and trip
// untouched.
func (s *ReservationService) Complete(ctx context.Context, tripID uuid.UUID, distanceKm int) (domain.Trip, error) {
	if distanceKm <= 0 {
		return domain.Trip{}, fmt.Errorf("%w: distance driven must be positive", domain.ErrValidation)
	}

	var completed domain.Trip
	err := s.tx.WithinTx(ctx, func(st repo.Stores) error {
		trip, err := st.Trips.GetByID(ctx, tripID)
		if err != nil {
			return err
		}

		// Guard the transition before touching any state.
		next, err := trip.Complete()
		if err != nil {
			return err
		}
		if trip.VehicleID == nil {
			// A planned trip always references a vehicle; a nil reference
			// here is a data-integrity fault.
			return fmt.Errorf("trip %s has no vehicle: %w", trip.ID, domain.ErrNotFound)
		}

		vehicle, err := st.Vehicles.GetByIDForUpdate(ctx, *trip.VehicleID)
		if err != nil {
			return err
		}

		vehicle = vehicle.Drive(distanceKm, trip.LoadKg()).Release()
		if _, err := st.Vehicles.Save(ctx, vehicle); err != nil {
			return err
		}

		completed, err = st.Trips.UpdatePriceAndStatus(ctx, next)
		return err
	})
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.ReservationService.Complete: %w", err)
	}

	return completed, nil
}
