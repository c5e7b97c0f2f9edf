package service_test

import (
	"context"
	"log"
	"os"
	"testing"

	"github.com/pressly/goose/v3"

	"github.com/dstrangerfontys/Transportbedrijf-Simplefied/migrations"
	"github.com/dstrangerfontys/Transportbedrijf-Simplefied/testutil"
)

// TestMain applies all pending migrations to the test database before the
// integration tests in this package run. Unit tests do not need a database;
// when TEST_DATABASE_URL is unset the integration tests skip themselves and
// the migrations are skipped too.
func TestMain(m *testing.M) {
	if os.Getenv("TEST_DATABASE_URL") == "" {
		os.Exit(m.Run())
	}

	db := testutil.MustOpenSQLDB(os.Getenv("TEST_DATABASE_URL"))
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		log.Fatalf("TestMain: create goose provider: %v", err)
	}

	if _, err := provider.Up(context.Background()); err != nil {
		log.Fatalf("TestMain: run migrations: %v", err)
	}

	os.Exit(m.Run())
}
