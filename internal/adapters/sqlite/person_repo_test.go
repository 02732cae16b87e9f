package sqlite_test

import (
	"context"
	"reflect"
	"testing"

	"github.com/example/garage/internal/adapters/sqlite"
	"github.com/example/garage/internal/ports/secondary"
)

func TestPersonRepository_CreateAndGet(t *testing.T) {
	database, notifier := setupTestDB(t)
	repo := sqlite.NewPersonRepository(database, notifier)
	ctx := context.Background()

	person := &secondary.PersonRecord{
		FirstName:   "Jan",
		LastName:    "Kowalski",
		Phone:       strPtr("+48 600 100 200"),
		Email:       strPtr("jan@example.com"),
		Address:     strPtr("ul. Polna 1, Krakow"),
		Note:        strPtr("Mechanic"),
		DateOfBirth: strPtr("1985-04-12"),
	}

	id, err := repo.Create(ctx, person)
	if err != nil {
		t.Fatalf("failed to create person: %v", err)
	}

	got, err := repo.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("failed to get person: %v", err)
	}
	if got == nil {
		t.Fatal("expected person, got nil")
	}

	person.ID = id
	if !reflect.DeepEqual(got, person) {
		t.Errorf("round-trip mismatch:\ngot  %+v\nwant %+v", got, person)
	}
}

func TestPersonRepository_RoundTripAbsentFields(t *testing.T) {
	database, notifier := setupTestDB(t)
	repo := sqlite.NewPersonRepository(database, notifier)
	ctx := context.Background()

	id, err := repo.Create(ctx, &secondary.PersonRecord{FirstName: "Anna", LastName: "Nowak"})
	if err != nil {
		t.Fatalf("failed to create person: %v", err)
	}

	got, err := repo.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("failed to get person: %v", err)
	}
	if got.PhotoURI != nil || got.Phone != nil || got.Email != nil ||
		got.Address != nil || got.Note != nil || got.DateOfBirth != nil {
		t.Errorf("expected all optionals absent, got %+v", got)
	}
}

func TestPersonRepository_GetByIDMissing(t *testing.T) {
	database, notifier := setupTestDB(t)
	repo := sqlite.NewPersonRepository(database, notifier)

	got, err := repo.GetByID(context.Background(), 999)
	if err != nil {
		t.Fatalf("expected nil error for missing person, got %v", err)
	}
	if got != nil {
		t.Errorf("expected nil record, got %+v", got)
	}
}

func TestPersonRepository_UpdateReplacesRow(t *testing.T) {
	database, notifier := setupTestDB(t)
	repo := sqlite.NewPersonRepository(database, notifier)
	ctx := context.Background()

	id, err := repo.Create(ctx, &secondary.PersonRecord{
		FirstName: "Jan",
		LastName:  "Kowalski",
		Phone:     strPtr("+48 600 100 200"),
	})
	if err != nil {
		t.Fatalf("failed to create person: %v", err)
	}

	err = repo.Update(ctx, &secondary.PersonRecord{
		ID:        id,
		FirstName: "Jan",
		LastName:  "Kowalski-Nowak",
	})
	if err != nil {
		t.Fatalf("failed to update person: %v", err)
	}

	got, err := repo.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("failed to get person: %v", err)
	}
	if got.LastName != "Kowalski-Nowak" {
		t.Errorf("expected updated last name, got %s", got.LastName)
	}
	if got.Phone != nil {
		t.Errorf("expected phone cleared by full-row replace, got %v", got.Phone)
	}
}

func TestPersonRepository_Delete(t *testing.T) {
	database, notifier := setupTestDB(t)
	repo := sqlite.NewPersonRepository(database, notifier)
	ctx := context.Background()

	id, err := repo.Create(ctx, &secondary.PersonRecord{FirstName: "Jan", LastName: "Kowalski"})
	if err != nil {
		t.Fatalf("failed to create person: %v", err)
	}

	if err := repo.Delete(ctx, id); err != nil {
		t.Fatalf("failed to delete person: %v", err)
	}

	got, err := repo.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("failed to get person: %v", err)
	}
	if got != nil {
		t.Errorf("expected person gone, got %+v", got)
	}

	if err := repo.Delete(ctx, 999); err == nil {
		t.Error("expected error deleting missing person")
	}
}

func TestPersonRepository_WatchAll(t *testing.T) {
	database, notifier := setupTestDB(t)
	repo := sqlite.NewPersonRepository(database, notifier)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events := repo.WatchAll(ctx)

	event := waitFor(t, events)
	if len(event.Persons) != 0 {
		t.Fatalf("expected empty initial list, got %d", len(event.Persons))
	}

	if _, err := repo.Create(ctx, &secondary.PersonRecord{FirstName: "Jan", LastName: "Kowalski"}); err != nil {
		t.Fatalf("failed to create person: %v", err)
	}

	event = waitFor(t, events)
	if len(event.Persons) != 1 || event.Persons[0].FirstName != "Jan" {
		t.Errorf("expected the new person, got %+v", event.Persons)
	}
}
