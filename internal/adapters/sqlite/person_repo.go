package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/garage/internal/db"
	"github.com/example/garage/internal/ports/secondary"
)

const personColumns = "id, first_name, last_name, photo_uri, phone, email, address, note, date_of_birth"

// PersonRepository implements secondary.PersonRepository with SQLite. The
// store enforces nothing beyond column shape: required-name rules live in
// the interaction layer.
type PersonRepository struct {
	db       *sql.DB
	notifier *db.Notifier
}

// NewPersonRepository creates a new SQLite person repository.
func NewPersonRepository(database *sql.DB, notifier *db.Notifier) *PersonRepository {
	return &PersonRepository{db: database, notifier: notifier}
}

// Create persists a new person and returns the store-assigned id.
func (r *PersonRepository) Create(ctx context.Context, person *secondary.PersonRecord) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		"INSERT INTO persons (first_name, last_name, photo_uri, phone, email, address, note, date_of_birth) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
		person.FirstName, person.LastName, nullString(person.PhotoURI), nullString(person.Phone),
		nullString(person.Email), nullString(person.Address), nullString(person.Note),
		nullString(person.DateOfBirth),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to create person: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read person id: %w", err)
	}

	r.notifier.Broadcast(db.TablePersons)
	return id, nil
}

// GetByID retrieves a person by its id. A missing row returns (nil, nil).
func (r *PersonRepository) GetByID(ctx context.Context, id int64) (*secondary.PersonRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+personColumns+" FROM persons WHERE id = ?", id)

	record, err := scanPerson(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get person: %w", err)
	}
	return record, nil
}

// List retrieves all persons.
func (r *PersonRepository) List(ctx context.Context) ([]*secondary.PersonRecord, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+personColumns+" FROM persons ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to list persons: %w", err)
	}
	defer rows.Close()

	var persons []*secondary.PersonRecord
	for rows.Next() {
		record, err := scanPerson(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan person: %w", err)
		}
		persons = append(persons, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list persons: %w", err)
	}

	return persons, nil
}

// Update replaces the entire stored row for person.ID (insert-or-replace
// by identifier).
func (r *PersonRepository) Update(ctx context.Context, person *secondary.PersonRecord) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT OR REPLACE INTO persons ("+personColumns+") VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)",
		person.ID, person.FirstName, person.LastName, nullString(person.PhotoURI),
		nullString(person.Phone), nullString(person.Email), nullString(person.Address),
		nullString(person.Note), nullString(person.DateOfBirth),
	)
	if err != nil {
		return fmt.Errorf("failed to update person: %w", err)
	}

	r.notifier.Broadcast(db.TablePersons)
	return nil
}

// Delete removes a person.
func (r *PersonRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM persons WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete person: %w", err)
	}

	if rowsAffected, _ := result.RowsAffected(); rowsAffected == 0 {
		return fmt.Errorf("person %d not found", id)
	}

	r.notifier.Broadcast(db.TablePersons)
	return nil
}

// WatchAll emits the complete current person list immediately, then again
// after every write to the persons table.
func (r *PersonRepository) WatchAll(ctx context.Context) <-chan secondary.PersonListEvent {
	out := make(chan secondary.PersonListEvent, 1)
	changes, cancel := r.notifier.Subscribe(db.TablePersons)

	go func() {
		defer close(out)
		defer cancel()

		for {
			persons, err := r.List(ctx)
			if ctx.Err() != nil {
				return
			}

			select {
			case out <- secondary.PersonListEvent{Persons: persons, Err: err}:
			case <-ctx.Done():
				return
			}

			select {
			case <-changes:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}

func scanPerson(row rowScanner) (*secondary.PersonRecord, error) {
	var (
		photoURI    sql.NullString
		phone       sql.NullString
		email       sql.NullString
		address     sql.NullString
		note        sql.NullString
		dateOfBirth sql.NullString
	)

	record := &secondary.PersonRecord{}
	err := row.Scan(&record.ID, &record.FirstName, &record.LastName, &photoURI, &phone,
		&email, &address, &note, &dateOfBirth)
	if err != nil {
		return nil, err
	}

	record.PhotoURI = stringPtr(photoURI)
	record.Phone = stringPtr(phone)
	record.Email = stringPtr(email)
	record.Address = stringPtr(address)
	record.Note = stringPtr(note)
	record.DateOfBirth = stringPtr(dateOfBirth)

	return record, nil
}

// Ensure PersonRepository implements the interface
var _ secondary.PersonRepository = (*PersonRepository)(nil)
