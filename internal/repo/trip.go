package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/dstrangerfontys/Transportbedrijf-Simplefied/internal/domain"
)

// TripRepo defines the persistence operations for Trips.
type TripRepo interface {
	// Create inserts a new trip and returns the persisted record (with
	// DB-generated id and timestamps populated). The absent capacity figure
	// (PassengerCount or WeightKg) is written as NULL, never as zero.
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)

	// GetByID retrieves a single trip by its UUID primary key.
	// Returns domain.ErrNotFound if no trip with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error)

	// UpdatePriceAndStatus overwrites exactly the price and status fields of
	// an existing trip. Returns domain.ErrNotFound if the trip does not exist.
	UpdatePriceAndStatus(ctx context.Context, trip domain.Trip) (domain.Trip, error)

	// ListPaged returns one page of trips ordered by created_at descending,
	// together with the total trip count.
	ListPaged(ctx context.Context, params domain.PaginationParams) ([]domain.Trip, int64, error)
}

// pgTripRepo is the Postgres implementation of TripRepo.
type pgTripRepo struct {
	db db
}

// NewTripRepo constructs a TripRepo backed by the provided db connection.
func NewTripRepo(db db) TripRepo {
	return &pgTripRepo{db: db}
}

const tripColumns = `id, customer_id, vehicle_id, trip_date, kind, distance_km,
		passenger_count, weight_kg, status, price, created_at, updated_at`

// Create inserts a new trip row and returns the full persisted record.
func (r *pgTripRepo) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	const q = `
		INSERT INTO trips (customer_id, vehicle_id, trip_date, kind, distance_km,
		                   passenger_count, weight_kg, status, price)
		VALUES (@customer_id, @vehicle_id, @trip_date, @kind, @distance_km,
		        @passenger_count, @weight_kg, @status, @price)
		RETURNING ` + tripColumns

	args := pgx.NamedArgs{
		"customer_id":     trip.CustomerID,
		"vehicle_id":      trip.VehicleID, // nil becomes NULL
		"trip_date":       trip.Date,
		"kind":            string(trip.Kind),
		"distance_km":     trip.DistanceKm,
		"passenger_count": trip.PassengerCount, // nil becomes NULL
		"weight_kg":       trip.WeightKg,       // nil becomes NULL
		"status":          string(trip.Status),
		"price":           trip.Price,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanTrip(row)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Create: %w", err)
	}
	return result, nil
}

// GetByID retrieves a trip by primary key.
func (r *pgTripRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	const q = `SELECT ` + tripColumns + ` FROM trips WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanTrip(row)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.GetByID: %w", err)
	}
	return result, nil
}

// UpdatePriceAndStatus overwrites price and status and returns the updated
// record. All other trip fields are immutable after insert.
func (r *pgTripRepo) UpdatePriceAndStatus(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	const q = `
		UPDATE trips
		SET price      = @price,
		    status     = @status,
		    updated_at = now()
		WHERE id = @id
		RETURNING ` + tripColumns

	args := pgx.NamedArgs{
		"id":     trip.ID,
		"price":  trip.Price,
		"status": string(trip.Status),
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanTrip(row)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.UpdatePriceAndStatus: %w", err)
	}
	return result, nil
}

// ListPaged returns one page of trips, newest first, plus the total count.
func (r *pgTripRepo) ListPaged(ctx context.Context, params domain.PaginationParams) ([]domain.Trip, int64, error) {
	const q = `
		SELECT ` + tripColumns + `
		FROM trips
		ORDER BY created_at DESC, id
		LIMIT @limit OFFSET @offset`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"limit": params.Limit, "offset": params.Offset()})
	if err != nil {
		return nil, 0, fmt.Errorf("repo.TripRepo.ListPaged: %w", err)
	}
	defer rows.Close()

	var trips []domain.Trip
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("repo.TripRepo.ListPaged: scan: %w", err)
		}
		trips = append(trips, t)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("repo.TripRepo.ListPaged: rows: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM trips`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("repo.TripRepo.ListPaged: count: %w", err)
	}

	return trips, total, nil
}

// scanTrip maps a single database row into a domain.Trip.
// It handles the UUID conversions and the three nullable columns
// (vehicle_id, passenger_count, weight_kg).
func scanTrip(s scanner) (domain.Trip, error) {
	var (
		t          domain.Trip
		id         pgtype.UUID
		vehicleID  pgtype.UUID
		tripDate   pgtype.Date
		kind       string
		passengers pgtype.Int4
		weight     pgtype.Int4
		status     string
	)

	err := s.Scan(&id, &t.CustomerID, &vehicleID, &tripDate, &kind, &t.DistanceKm,
		&passengers, &weight, &status, &t.Price, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Trip{}, domain.ErrNotFound
		}
		return domain.Trip{}, err
	}

	t.ID = uuid.UUID(id.Bytes)
	t.Date = tripDate.Time
	t.Kind = domain.VehicleKind(kind)
	t.Status = domain.TripStatus(status)
	if vehicleID.Valid {
		vid := uuid.UUID(vehicleID.Bytes)
		t.VehicleID = &vid
	}
	if passengers.Valid {
		p := int(passengers.Int32)
		t.PassengerCount = &p
	}
	if weight.Valid {
		w := int(weight.Int32)
		t.WeightKg = &w
	}

	return t, nil
}
