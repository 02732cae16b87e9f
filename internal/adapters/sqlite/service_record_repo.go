package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/garage/internal/db"
	"github.com/example/garage/internal/ports/secondary"
)

const serviceRecordColumns = "id, car_id, date, description, cost, type"

// ServiceRecordRepository implements secondary.ServiceRecordRepository with
// SQLite.
type ServiceRecordRepository struct {
	db       *sql.DB
	notifier *db.Notifier
}

// NewServiceRecordRepository creates a new SQLite service record
// repository.
func NewServiceRecordRepository(database *sql.DB, notifier *db.Notifier) *ServiceRecordRepository {
	return &ServiceRecordRepository{db: database, notifier: notifier}
}

// Create persists a new service record and returns the store-assigned id.
func (r *ServiceRecordRepository) Create(ctx context.Context, record *secondary.ServiceRecordRecord) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		"INSERT INTO service_records (car_id, date, description, cost, type) VALUES (?, ?, ?, ?, ?)",
		record.CarID, record.Date, record.Description, record.Cost, record.Type,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to create service record: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read service record id: %w", err)
	}

	r.notifier.Broadcast(db.TableServiceRecords)
	return id, nil
}

// GetByID retrieves a service record by its id, (nil, nil) if missing.
func (r *ServiceRecordRepository) GetByID(ctx context.Context, id int64) (*secondary.ServiceRecordRecord, error) {
	record := &secondary.ServiceRecordRecord{}
	err := r.db.QueryRowContext(ctx,
		"SELECT "+serviceRecordColumns+" FROM service_records WHERE id = ?", id,
	).Scan(&record.ID, &record.CarID, &record.Date, &record.Description, &record.Cost, &record.Type)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get service record: %w", err)
	}
	return record, nil
}

// ListForCar retrieves service records for one vehicle, newest date first.
// Ordering is applied at query time, there is no stored index.
func (r *ServiceRecordRepository) ListForCar(ctx context.Context, carID int64) ([]*secondary.ServiceRecordRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+serviceRecordColumns+" FROM service_records WHERE car_id = ? ORDER BY date DESC", carID)
	if err != nil {
		return nil, fmt.Errorf("failed to list service records: %w", err)
	}
	defer rows.Close()

	var records []*secondary.ServiceRecordRecord
	for rows.Next() {
		record := &secondary.ServiceRecordRecord{}
		err := rows.Scan(&record.ID, &record.CarID, &record.Date, &record.Description, &record.Cost, &record.Type)
		if err != nil {
			return nil, fmt.Errorf("failed to scan service record: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list service records: %w", err)
	}

	return records, nil
}

// Update replaces the entire stored row for record.ID (insert-or-replace
// by identifier).
func (r *ServiceRecordRepository) Update(ctx context.Context, record *secondary.ServiceRecordRecord) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT OR REPLACE INTO service_records ("+serviceRecordColumns+") VALUES (?, ?, ?, ?, ?, ?)",
		record.ID, record.CarID, record.Date, record.Description, record.Cost, record.Type,
	)
	if err != nil {
		return fmt.Errorf("failed to update service record: %w", err)
	}

	r.notifier.Broadcast(db.TableServiceRecords)
	return nil
}

// Delete removes a service record.
func (r *ServiceRecordRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM service_records WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete service record: %w", err)
	}

	if rowsAffected, _ := result.RowsAffected(); rowsAffected == 0 {
		return fmt.Errorf("service record %d not found", id)
	}

	r.notifier.Broadcast(db.TableServiceRecords)
	return nil
}

// WatchForCar emits the current record list for carID immediately, then
// again after every write to the service_records table.
func (r *ServiceRecordRepository) WatchForCar(ctx context.Context, carID int64) <-chan secondary.ServiceRecordListEvent {
	out := make(chan secondary.ServiceRecordListEvent, 1)
	changes, cancel := r.notifier.Subscribe(db.TableServiceRecords)

	go func() {
		defer close(out)
		defer cancel()

		for {
			records, err := r.ListForCar(ctx, carID)
			if ctx.Err() != nil {
				return
			}

			select {
			case out <- secondary.ServiceRecordListEvent{Records: records, Err: err}:
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

// Ensure ServiceRecordRepository implements the interface
var _ secondary.ServiceRecordRepository = (*ServiceRecordRepository)(nil)
