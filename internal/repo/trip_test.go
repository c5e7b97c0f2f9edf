package repo_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dstrangerfontys/Transportbedrijf-Simplefied/internal/domain"
	"github.com/dstrangerfontys/Transportbedrijf-Simplefied/internal/repo"
	"github.com/dstrangerfontys/Transportbedrijf-Simplefied/testutil"
)

// newTripRepos opens a transaction against the test database and returns
// both repos bound to it, since most trip tests need a vehicle row for the
// foreign key. The transaction is rolled back when the test finishes.
func newTripRepos(t *testing.T) (repo.TripRepo, repo.VehicleRepo) {
	t.Helper()
	pool := testutil.NewPool(t)

	tx, err := pool.Begin(context.Background())
	require.NoError(t, err, "begin transaction")

	t.Cleanup(func() {
		_ = tx.Rollback(context.Background())
	})

	return repo.NewTripRepo(tx), repo.NewVehicleRepo(tx)
}

func intPtr(n int) *int { return &n }

// plannedTripFixture creates a vehicle and returns a planned trip assigned to
// it, ready for insertion.
func plannedTripFixture(t *testing.T, vehicles repo.VehicleRepo) domain.Trip {
	t.Helper()

	v, err := vehicles.Create(context.Background(), domain.Vehicle{
		Kind:      domain.KindPassenger,
		Capacity:  4,
		Available: true,
	})
	require.NoError(t, err)

	return domain.Trip{
		CustomerID:     "customer-1",
		VehicleID:      &v.ID,
		Date:           time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		Kind:           domain.KindPassenger,
		DistanceKm:     100,
		PassengerCount: intPtr(2),
		Status:         domain.StatusPlanned,
		Price:          100,
	}
}

func TestTripRepo_Create(t *testing.T) {
	trips, vehicles := newTripRepos(t)
	ctx := context.Background()

	input := plannedTripFixture(t, vehicles)
	got, err := trips.Create(ctx, input)

	require.NoError(t, err)
	assert.NotEqual(t, [16]byte{}, got.ID, "ID should be DB-generated UUID")
	assert.Equal(t, input.CustomerID, got.CustomerID)
	require.NotNil(t, got.VehicleID)
	assert.Equal(t, *input.VehicleID, *got.VehicleID)
	assert.True(t, got.Date.Equal(input.Date), "Date mismatch")
	assert.Equal(t, domain.StatusPlanned, got.Status)
	assert.Equal(t, 100.0, got.Price)
	require.NotNil(t, got.PassengerCount)
	assert.Equal(t, 2, *got.PassengerCount)
	assert.Nil(t, got.WeightKg, "absent weight must round-trip as NULL, not zero")
}

func TestTripRepo_Create_RejectedWithoutVehicle(t *testing.T) {
	trips, _ := newTripRepos(t)
	ctx := context.Background()

	input := domain.Trip{
		CustomerID:     "customer-1",
		Date:           time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		Kind:           domain.KindPassenger,
		DistanceKm:     100,
		PassengerCount: intPtr(2),
		Status:         domain.StatusRejected,
		Price:          0,
	}

	got, err := trips.Create(ctx, input)

	require.NoError(t, err)
	assert.Nil(t, got.VehicleID, "a rejected trip references no vehicle")
	assert.Equal(t, domain.StatusRejected, got.Status)
	assert.Equal(t, 0.0, got.Price)
}

func TestTripRepo_GetByID(t *testing.T) {
	trips, vehicles := newTripRepos(t)
	ctx := context.Background()

	created, err := trips.Create(ctx, plannedTripFixture(t, vehicles))
	require.NoError(t, err)

	got, err := trips.GetByID(ctx, created.ID)

	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, created.CustomerID, got.CustomerID)
	assert.Equal(t, created.Status, got.Status)
}

func TestTripRepo_GetByID_NotFound(t *testing.T) {
	trips, _ := newTripRepos(t)
	ctx := context.Background()

	id := [16]byte{0xca, 0xfe, 0xba, 0xbe, 0xca, 0xfe, 0xba, 0xbe,
		0xca, 0xfe, 0xba, 0xbe, 0xca, 0xfe, 0xba, 0xbe}

	_, err := trips.GetByID(ctx, id)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTripRepo_UpdatePriceAndStatus(t *testing.T) {
	trips, vehicles := newTripRepos(t)
	ctx := context.Background()

	created, err := trips.Create(ctx, plannedTripFixture(t, vehicles))
	require.NoError(t, err)

	created.Status = domain.StatusCompleted

	updated, err := trips.UpdatePriceAndStatus(ctx, created)

	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, updated.Status)
	assert.Equal(t, created.Price, updated.Price)
	// Only price and status are written; the snapshot fields stay intact.
	assert.Equal(t, created.CustomerID, updated.CustomerID)
	assert.Equal(t, created.DistanceKm, updated.DistanceKm)
}

func TestTripRepo_ListPaged(t *testing.T) {
	trips, vehicles := newTripRepos(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := trips.Create(ctx, plannedTripFixture(t, vehicles))
		require.NoError(t, err)
	}

	page, total, err := trips.ListPaged(ctx, domain.PaginationParams{Page: 1, Limit: 2})

	require.NoError(t, err)
	assert.Len(t, page, 2)
	assert.GreaterOrEqual(t, total, int64(3))
}

// The schema itself guards the §3 relationship: a planned trip must reference
// a vehicle, a rejected trip must not.
func TestTripRepo_Create_PlannedWithoutVehicleIsRejected(t *testing.T) {
	trips, _ := newTripRepos(t)
	ctx := context.Background()

	input := domain.Trip{
		CustomerID:     "customer-1",
		Date:           time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		Kind:           domain.KindPassenger,
		DistanceKm:     100,
		PassengerCount: intPtr(2),
		Status:         domain.StatusPlanned, // no vehicle: violates the check constraint
		Price:          100,
	}

	_, err := trips.Create(ctx, input)

	require.Error(t, err)
	assert.NotErrorIs(t, err, pgx.ErrNoRows)
}
