package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/dstrangerfontys/Transportbedrijf-Simplefied/internal/domain"
	"github.com/dstrangerfontys/Transportbedrijf-Simplefied/internal/metrics"
)

// dateLayout is the wire format for trip dates.
const dateLayout = "2006-01-02"

// planTripRequest is the body of POST /trips. Exactly one of PassengerCount
// and WeightKg must be set, matching Kind.
type planTripRequest struct {
	CustomerID     string `json:"customer_id"`
	Date           string `json:"date"`
	Kind           string `json:"kind"`
	DistanceKm     int    `json:"distance_km"`
	PassengerCount *int   `json:"passenger_count,omitempty"`
	WeightKg       *int   `json:"weight_kg,omitempty"`
}

// completeTripRequest is the body of POST /trips/{id}/complete.
type completeTripRequest struct {
	DistanceKm int `json:"distance_km"`
}

// tripListResponse is the body of GET /trips.
type tripListResponse struct {
	Data       []domain.Trip `json:"data"`
	Pagination pagination    `json:"pagination"`
}

type pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
}

// PlanTrip handles POST /trips. It performs the intake validation the engine
// trusts (well-formed body, parseable kind, date no earlier than tomorrow)
// and then plans the trip. A trip that could be assigned a vehicle returns
// 201; a rejected trip is still a defined outcome and returns 200 with the
// persisted rejected record.
func (s *Server) PlanTrip(w http.ResponseWriter, r *http.Request) {
	var body planTripRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		requestError(w, "request body is required")
		return
	}

	req, err := requestToTripRequest(body)
	if err != nil {
		requestError(w, unwrapMessage(err))
		return
	}

	trip, err := s.reservations.Plan(r.Context(), req)
	if err != nil {
		writeError(w, err, "trip not found")
		return
	}

	metrics.TripsPlanned.WithLabelValues(string(trip.Status)).Inc()
	if trip.Status == domain.StatusRejected {
		writeJSON(w, http.StatusOK, trip)
		return
	}
	writeJSON(w, http.StatusCreated, trip)
}

// CompleteTrip handles POST /trips/{id}/complete.
func (s *Server) CompleteTrip(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		writeJSON(w, http.StatusNotFound, ErrorResponse{
			Error: ErrorDetail{Code: "not_found", Message: "trip not found"},
		})
		return
	}

	var body completeTripRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		requestError(w, "request body is required")
		return
	}

	trip, err := s.reservations.Complete(r.Context(), id, body.DistanceKm)
	if err != nil {
		writeError(w, err, "trip not found")
		return
	}

	metrics.TripsCompleted.Inc()
	writeJSON(w, http.StatusOK, trip)
}

// GetTrip handles GET /trips/{id}.
func (s *Server) GetTrip(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		writeJSON(w, http.StatusNotFound, ErrorResponse{
			Error: ErrorDetail{Code: "not_found", Message: "trip not found"},
		})
		return
	}

	trip, err := s.trips.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err, "trip not found")
		return
	}

	writeJSON(w, http.StatusOK, trip)
}

// ListTrips handles GET /trips.
// Supports ?page= and ?limit= query parameters (defaults: page=1, limit=20,
// max=100).
func (s *Server) ListTrips(w http.ResponseWriter, r *http.Request) {
	params := domain.NewPaginationParams(queryInt(r, "page"), queryInt(r, "limit"))

	trips, total, err := s.trips.ListPaged(r.Context(), params)
	if err != nil {
		writeError(w, err, "trips not found")
		return
	}

	writeJSON(w, http.StatusOK, tripListResponse{
		Data: trips,
		Pagination: pagination{
			Page:  params.Page,
			Limit: params.Limit,
			Total: total,
		},
	})
}

// --- mapping helpers --------------------------------------------------------

// requestToTripRequest converts and validates a plan body into a
// domain.TripRequest. The date must parse and lie no earlier than tomorrow
// relative to submission time; the domain request's own Validate covers the
// rest of the intake contract.
func requestToTripRequest(body planTripRequest) (domain.TripRequest, error) {
	kind, err := domain.ParseVehicleKind(body.Kind)
	if err != nil {
		return domain.TripRequest{}, err
	}

	date, err := time.Parse(dateLayout, body.Date)
	if err != nil {
		return domain.TripRequest{}, fmt.Errorf("%w: date must be formatted as YYYY-MM-DD", domain.ErrValidation)
	}
	tomorrow := time.Now().UTC().Truncate(24 * time.Hour).AddDate(0, 0, 1)
	if date.Before(tomorrow) {
		return domain.TripRequest{}, fmt.Errorf("%w: date must be no earlier than tomorrow", domain.ErrValidation)
	}

	req := domain.TripRequest{
		CustomerID:     body.CustomerID,
		Date:           date,
		Kind:           kind,
		DistanceKm:     body.DistanceKm,
		PassengerCount: body.PassengerCount,
		WeightKg:       body.WeightKg,
	}
	if err := req.Validate(); err != nil {
		return domain.TripRequest{}, err
	}
	return req, nil
}

// queryInt reads an optional integer query parameter, returning nil when the
// parameter is absent or malformed.
func queryInt(r *http.Request, name string) *int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &n
}
