// Package sqlite_test contains integration tests for SQLite repositories.
//
// All test setup uses db.GetSchemaSQL() so tests run against the
// authoritative schema. Do not hardcode CREATE TABLE statements in test
// files; use setupTestDB() and the seed helpers instead.
package sqlite_test

import (
	"database/sql"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/garage/internal/db"
)

// setupTestDB creates an in-memory database with the authoritative schema
// plus a fresh notifier. This is the single shared setup for all
// repository tests.
func setupTestDB(t *testing.T) (*sql.DB, *db.Notifier) {
	t.Helper()

	testDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	if _, err := testDB.Exec("PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("failed to enable foreign keys: %v", err)
	}

	if _, err := testDB.Exec(db.GetSchemaSQL()); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB, db.NewNotifier()
}

// seedVehicle inserts a test vehicle and returns its id.
func seedVehicle(t *testing.T, database *sql.DB, model, brand string) int64 {
	t.Helper()
	if model == "" {
		model = "Corolla"
	}
	if brand == "" {
		brand = "Toyota"
	}
	result, err := database.Exec("INSERT INTO vehicles (model, brand) VALUES (?, ?)", model, brand)
	if err != nil {
		t.Fatalf("failed to seed vehicle: %v", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		t.Fatalf("failed to read seeded vehicle id: %v", err)
	}
	return id
}

// seedServiceRecord inserts a test service record and returns its id.
func seedServiceRecord(t *testing.T, database *sql.DB, carID int64, date, description string, cost float64) int64 {
	t.Helper()
	if date == "" {
		date = "2024-01-01"
	}
	if description == "" {
		description = "Oil change"
	}
	result, err := database.Exec(
		"INSERT INTO service_records (car_id, date, description, cost, type) VALUES (?, ?, ?, ?, 'maintenance')",
		carID, date, description, cost)
	if err != nil {
		t.Fatalf("failed to seed service record: %v", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		t.Fatalf("failed to read seeded service record id: %v", err)
	}
	return id
}

// waitFor receives one value from ch or fails the test after a timeout.
func waitFor[T any](t *testing.T, ch <-chan T) T {
	t.Helper()
	select {
	case v := <-ch:
		return v
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for delivery")
		panic("unreachable")
	}
}

func strPtr(s string) *string       { return &s }
func intPtrOf(n int) *int           { return &n }
func floatPtrOf(f float64) *float64 { return &f }
