// Package handler implements the HTTP handlers for the transport booking API.
// All handlers are methods on Server. Methods are split into domain-specific
// files (health.go, trip.go, vehicle.go) but all share the same Server struct
// so they can access its dependencies.
package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/dstrangerfontys/Transportbedrijf-Simplefied/internal/domain"
)

// Reservationer defines the engine operations the trip handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.
type Reservationer interface {
	Plan(ctx context.Context, req domain.TripRequest) (domain.Trip, error)
	Complete(ctx context.Context, tripID uuid.UUID, distanceKm int) (domain.Trip, error)
}

// TripQuerier defines the trip read operations the handlers depend on.
type TripQuerier interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	ListPaged(ctx context.Context, params domain.PaginationParams) ([]domain.Trip, int64, error)
}

// FleetServicer defines the vehicle administration operations the handlers
// depend on.
type FleetServicer interface {
	Register(ctx context.Context, kind domain.VehicleKind, capacity int) (domain.Vehicle, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Vehicle, error)
	List(ctx context.Context) ([]domain.Vehicle, error)
}

// Server holds the dependencies of all API endpoints.
// Wire it in main.go via Routes().
type Server struct {
	reservations Reservationer
	trips        TripQuerier
	fleet        FleetServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(reservations Reservationer, trips TripQuerier, fleet FleetServicer) *Server {
	return &Server{reservations: reservations, trips: trips, fleet: fleet}
}

// Routes returns the router with every API endpoint registered.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)

	r.Route("/trips", func(r chi.Router) {
		r.Post("/", s.PlanTrip)
		r.Get("/", s.ListTrips)
		r.Get("/{id}", s.GetTrip)
		r.Post("/{id}/complete", s.CompleteTrip)
	})

	r.Route("/vehicles", func(r chi.Router) {
		r.Post("/", s.CreateVehicle)
		r.Get("/", s.ListVehicles)
		r.Get("/{id}", s.GetVehicle)
	})

	return r
}

// parseIDParam reads the {id} URL parameter as a UUID.
func parseIDParam(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, "id"))
}
