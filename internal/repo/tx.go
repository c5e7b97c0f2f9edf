package repo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Stores bundles the two repositories bound to a single open transaction.
// Everything done through them commits or rolls back as one unit.
type Stores struct {
	Vehicles VehicleRepo
	Trips    TripRepo
}

// TxManager runs a function inside one database transaction.
// The engine depends on this interface, not on pgx, so it can be unit-tested
// with an in-memory fake.
type TxManager interface {
	// WithinTx begins a transaction, hands fn repositories bound to it, and
	// commits when fn returns nil. Any error (or panic) from fn rolls the
	// whole transaction back — row locks taken inside are released either way.
	WithinTx(ctx context.Context, fn func(s Stores) error) error
}

// pgTxManager is the pgxpool-backed TxManager used in production.
type pgTxManager struct {
	pool *pgxpool.Pool
}

// NewTxManager constructs a TxManager on top of the given connection pool.
func NewTxManager(pool *pgxpool.Pool) TxManager {
	return &pgTxManager{pool: pool}
}

// WithinTx delegates begin/commit/rollback handling to pgx.BeginFunc, which
// also rolls back if fn panics. Postgres runs the transaction at read
// committed isolation; the FOR UPDATE locks taken by the repos provide the
// exclusion the engine needs on top of that.
func (m *pgTxManager) WithinTx(ctx context.Context, fn func(s Stores) error) error {
	err := pgx.BeginFunc(ctx, m.pool, func(tx pgx.Tx) error {
		return fn(Stores{
			Vehicles: NewVehicleRepo(tx),
			Trips:    NewTripRepo(tx),
		})
	})
	if err != nil {
		return fmt.Errorf("repo.TxManager.WithinTx: %w", err)
	}
	return nil
}
