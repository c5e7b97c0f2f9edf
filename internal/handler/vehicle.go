package handler

import (
	"encoding/json"
	"net/http"

	"github.com/dstrangerfontys/Transportbedrijf-Simplefied/internal/domain"
)

// createVehicleRequest is the body of POST /vehicles.
// Capacity is seats for passenger vehicles, kilograms for cargo vehicles.
type createVehicleRequest struct {
	Kind     string `json:"kind"`
	Capacity int    `json:"capacity"`
}

// CreateVehicle handles POST /vehicles — the out-of-band fleet intake.
func (s *Server) CreateVehicle(w http.ResponseWriter, r *http.Request) {
	var body createVehicleRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		requestError(w, "request body is required")
		return
	}

	kind, err := domain.ParseVehicleKind(body.Kind)
	if err != nil {
		requestError(w, unwrapMessage(err))
		return
	}

	vehicle, err := s.fleet.Register(r.Context(), kind, body.Capacity)
	if err != nil {
		writeError(w, err, "vehicle not found")
		return
	}

	writeJSON(w, http.StatusCreated, vehicle)
}

// GetVehicle handles GET /vehicles/{id}.
func (s *Server) GetVehicle(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		writeJSON(w, http.StatusNotFound, ErrorResponse{
			Error: ErrorDetail{Code: "not_found", Message: "vehicle not found"},
		})
		return
	}

	vehicle, err := s.fleet.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err, "vehicle not found")
		return
	}

	writeJSON(w, http.StatusOK, vehicle)
}

// ListVehicles handles GET /vehicles.
func (s *Server) ListVehicles(w http.ResponseWriter, r *http.Request) {
	vehicles, err := s.fleet.List(r.Context())
	if err != nil {
		writeError(w, err, "vehicles not found")
		return
	}

	writeJSON(w, http.StatusOK, vehicles)
}
