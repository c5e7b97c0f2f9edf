package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/dstrangerfontys/Transportbedrijf-Simplefied/internal/domain"
	"github.com/dstrangerfontys/Transportbedrijf-Simplefied/internal/repo"
)

// FleetService implements the out-of-band vehicle administration: vehicles
// are registered and inspected here, never created by the reservation engine.
type FleetService struct {
	vehicles repo.VehicleRepo
}

// NewFleetService constructs a FleetService backed by the provided VehicleRepo.
func NewFleetService(r repo.VehicleRepo) *FleetService {
	return &FleetService{vehicles: r}
}

// Register validates and persists a new vehicle. New vehicles start with a
// zero odometer, zero wear, and are immediately available for assignment.
// Returns domain.ErrValidation for an unknown kind or non-positive capacity.
func (s *FleetService) Register(ctx context.Context, kind domain.VehicleKind, capacity int) (domain.Vehicle, error) {
	vehicle := domain.Vehicle{
		Kind:      kind,
		Capacity:  capacity,
		Available: true,
	}
	if err := vehicle.Validate(); err != nil {
		return domain.Vehicle{}, err
	}

	created, err := s.vehicles.Create(ctx, vehicle)
	if err != nil {
		return domain.Vehicle{}, fmt.Errorf("service.FleetService.Register: %w", err)
	}
	return created, nil
}

// GetByID returns a single vehicle by ID.
// Returns domain.ErrNotFound if no vehicle with that ID exists.
func (s *FleetService) GetByID(ctx context.Context, id uuid.UUID) (domain.Vehicle, error) {
	vehicle, err := s.vehicles.GetByID(ctx, id)
	if err != nil {
		return domain.Vehicle{}, fmt.Errorf("service.FleetService.GetByID: %w", err)
	}
	return vehicle, nil
}

// List returns the whole fleet. Always returns a non-nil slice so callers
// can safely range over it.
func (s *FleetService) List(ctx context.Context) ([]domain.Vehicle, error) {
	vehicles, err := s.vehicles.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.FleetService.List: %w", err)
	}
	if vehicles == nil {
		return []domain.Vehicle{}, nil
	}
	return vehicles, nil
}
