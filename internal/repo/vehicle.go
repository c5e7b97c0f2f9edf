// Package repo contains all database access logic for the transport booking
// API. Each resource has its own file with an interface and a Postgres
// implementation. No business logic lives here — only SQL and type mapping.
package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/dstrangerfontys/Transportbedrijf-Simplefied/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly lets the
// transaction manager bind a repo to an open transaction, and lets
// integration tests pass a transaction that is rolled back after each test.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// VehicleRepo defines the persistence operations for Vehicles.
// The service layer depends on this interface, not the concrete Postgres
// implementation, which allows the engine to be unit-tested with a mock.
type VehicleRepo interface {
	// Create inserts a new vehicle and returns the persisted record with
	// DB-generated id and timestamps populated.
	Create(ctx context.Context, vehicle domain.Vehicle) (domain.Vehicle, error)

	// GetByID retrieves a single vehicle by its UUID primary key.
	// Returns domain.ErrNotFound if no vehicle with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Vehicle, error)

	// GetByIDForUpdate retrieves a vehicle and takes an exclusive lock on its
	// row, scoped to the caller's open transaction. Blocks until a concurrent
	// transaction holding the lock ends.
	// Returns domain.ErrNotFound if no vehicle with that ID exists.
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (domain.Vehicle, error)

	// FindEligible returns available vehicles of the given kind with at least
	// requiredCapacity, ordered by id ascending so first-fit is reproducible.
	// Every returned row is exclusively locked for the duration of the
	// caller's transaction — no concurrent transaction can read-and-reserve
	// the same rows until it ends. Must be called inside a transaction.
	FindEligible(ctx context.Context, kind domain.VehicleKind, requiredCapacity int) ([]domain.Vehicle, error)

	// Save overwrites the mutable state of an existing vehicle: odometer,
	// wear percent, and availability. Returns domain.ErrNotFound if the
	// vehicle does not exist.
	Save(ctx context.Context, vehicle domain.Vehicle) (domain.Vehicle, error)

	// List returns all vehicles ordered by id ascending.
	List(ctx context.Context) ([]domain.Vehicle, error)
}

// pgVehicleRepo is the Postgres implementation of VehicleRepo.
type pgVehicleRepo struct {
	db db
}

// NewVehicleRepo constructs a VehicleRepo backed by the provided db
// connection. In production pass *pgxpool.Pool or a pgx.Tx; in tests pass a
// pgx.Tx for rollback isolation.
func NewVehicleRepo(db db) VehicleRepo {
	return &pgVehicleRepo{db: db}
}

const vehicleColumns = `id, kind, capacity, odometer_km, wear_percent, available, created_at, updated_at`

// Create inserts a new vehicle row and returns the full persisted record.
func (r *pgVehicleRepo) Create(ctx context.Context, vehicle domain.Vehicle) (domain.Vehicle, error) {
	const q = `
		INSERT INTO vehicles (kind, capacity, odometer_km, wear_percent, available)
		VALUES (@kind, @capacity, @odometer_km, @wear_percent, @available)
		RETURNING ` + vehicleColumns

	args := pgx.NamedArgs{
		"kind":         string(vehicle.Kind),
		"capacity":     vehicle.Capacity,
		"odometer_km":  vehicle.OdometerKm,
		"wear_percent": vehicle.WearPercent,
		"available":    vehicle.Available,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanVehicle(row)
	if err != nil {
		return domain.Vehicle{}, fmt.Errorf("repo.VehicleRepo.Create: %w", err)
	}
	return result, nil
}

// GetByID retrieves a vehicle by primary key without locking.
func (r *pgVehicleRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Vehicle, error) {
	const q = `SELECT ` + vehicleColumns + ` FROM vehicles WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanVehicle(row)
	if err != nil {
		return domain.Vehicle{}, fmt.Errorf("repo.VehicleRepo.GetByID: %w", err)
	}
	return result, nil
}

// GetByIDForUpdate retrieves a vehicle by primary key with an exclusive row
// lock held until the surrounding transaction ends.
func (r *pgVehicleRepo) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (domain.Vehicle, error) {
	const q = `SELECT ` + vehicleColumns + ` FROM vehicles WHERE id = @id FOR UPDATE`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanVehicle(row)
	if err != nil {
		return domain.Vehicle{}, fmt.Errorf("repo.VehicleRepo.GetByIDForUpdate: %w", err)
	}
	return result, nil
}

// FindEligible runs the capacity/kind/availability query with FOR UPDATE so
// the returned rows stay exclusively locked until the transaction ends.
// The fixed ORDER BY id keeps lock acquisition order deterministic across
// concurrent planners, which also avoids lock-order deadlocks.
func (r *pgVehicleRepo) FindEligible(ctx context.Context, kind domain.VehicleKind, requiredCapacity int) ([]domain.Vehicle, error) {
	const q = `
		SELECT ` + vehicleColumns + `
		FROM vehicles
		WHERE kind = @kind
		  AND capacity >= @capacity
		  AND available
		ORDER BY id
		FOR UPDATE`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"kind": string(kind), "capacity": requiredCapacity})
	if err != nil {
		return nil, fmt.Errorf("repo.VehicleRepo.FindEligible: %w", err)
	}
	defer rows.Close()

	var vehicles []domain.Vehicle
	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.VehicleRepo.FindEligible: scan: %w", err)
		}
		vehicles = append(vehicles, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.VehicleRepo.FindEligible: rows: %w", err)
	}

	return vehicles, nil
}

// Save overwrites the three mutable fields of a vehicle and returns the
// updated record.
func (r *pgVehicleRepo) Save(ctx context.Context, vehicle domain.Vehicle) (domain.Vehicle, error) {
	const q = `
		UPDATE vehicles
		SET odometer_km  = @odometer_km,
		    wear_percent = @wear_percent,
		    available    = @available,
		    updated_at   = now()
		WHERE id = @id
		RETURNING ` + vehicleColumns

	args := pgx.NamedArgs{
		"id":           vehicle.ID,
		"odometer_km":  vehicle.OdometerKm,
		"wear_percent": vehicle.WearPercent,
		"available":    vehicle.Available,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanVehicle(row)
	if err != nil {
		return domain.Vehicle{}, fmt.Errorf("repo.VehicleRepo.Save: %w", err)
	}
	return result, nil
}

// List returns the whole fleet ordered by id ascending.
func (r *pgVehicleRepo) List(ctx context.Context) ([]domain.Vehicle, error) {
	const q = `SELECT ` + vehicleColumns + ` FROM vehicles ORDER BY id`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.VehicleRepo.List: %w", err)
	}
	defer rows.Close()

	var vehicles []domain.Vehicle
	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.VehicleRepo.List: scan: %w", err)
		}
		vehicles = append(vehicles, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.VehicleRepo.List: rows: %w", err)
	}

	return vehicles, nil
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing the scan
// helpers to be reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// scanVehicle maps a single database row into a domain.Vehicle.
func scanVehicle(s scanner) (domain.Vehicle, error) {
	var (
		v    domain.Vehicle
		id   pgtype.UUID
		kind string
	)

	err := s.Scan(&id, &kind, &v.Capacity, &v.OdometerKm, &v.WearPercent, &v.Available, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Vehicle{}, domain.ErrNotFound
		}
		return domain.Vehicle{}, err
	}

	v.ID = uuid.UUID(id.Bytes)
	v.Kind = domain.VehicleKind(kind)

	return v, nil
}
