package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/garage/internal/db"
	"github.com/example/garage/internal/ports/secondary"
)

const vehicleColumns = "id, model, brand, year, photo_uri, vin, registration_number, mileage, fuel_type, engine_capacity, power, color, notes, inspection_date, insurance_expiry"

// VehicleRepository implements secondary.VehicleRepository with SQLite.
type VehicleRepository struct {
	db       *sql.DB
	notifier *db.Notifier
}

// NewVehicleRepository creates a new SQLite vehicle repository.
func NewVehicleRepository(database *sql.DB, notifier *db.Notifier) *VehicleRepository {
	return &VehicleRepository{db: database, notifier: notifier}
}

// Create persists a new vehicle and returns the store-assigned id.
func (r *VehicleRepository) Create(ctx context.Context, vehicle *secondary.VehicleRecord) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		"INSERT INTO vehicles (model, brand, year, photo_uri, vin, registration_number, mileage, fuel_type, engine_capacity, power, color, notes, inspection_date, insurance_expiry) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
		vehicle.Model, vehicle.Brand, nullInt(vehicle.Year), nullString(vehicle.PhotoURI),
		nullString(vehicle.VIN), nullString(vehicle.RegistrationNumber), nullInt(vehicle.Mileage),
		nullString(vehicle.FuelType), nullFloat(vehicle.EngineCapacity), nullInt(vehicle.Power),
		nullString(vehicle.Color), nullString(vehicle.Notes), nullString(vehicle.InspectionDate),
		nullString(vehicle.InsuranceExpiry),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to create vehicle: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read vehicle id: %w", err)
	}

	r.notifier.Broadcast(db.TableVehicles)
	return id, nil
}

// GetByID retrieves a vehicle by its id. A missing row returns (nil, nil).
func (r *VehicleRepository) GetByID(ctx context.Context, id int64) (*secondary.VehicleRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+vehicleColumns+" FROM vehicles WHERE id = ?", id)

	record, err := scanVehicle(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get vehicle: %w", err)
	}
	return record, nil
}

// List retrieves all vehicles.
func (r *VehicleRepository) List(ctx context.Context) ([]*secondary.VehicleRecord, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+vehicleColumns+" FROM vehicles ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}
	defer rows.Close()

	var vehicles []*secondary.VehicleRecord
	for rows.Next() {
		record, err := scanVehicle(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan vehicle: %w", err)
		}
		vehicles = append(vehicles, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}

	return vehicles, nil
}

// Update replaces the entire stored row for vehicle.ID. Writes are
// insert-or-replace by identifier; there is no partial, field-level update.
func (r *VehicleRepository) Update(ctx context.Context, vehicle *secondary.VehicleRecord) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT OR REPLACE INTO vehicles ("+vehicleColumns+") VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
		vehicle.ID, vehicle.Model, vehicle.Brand, nullInt(vehicle.Year), nullString(vehicle.PhotoURI),
		nullString(vehicle.VIN), nullString(vehicle.RegistrationNumber), nullInt(vehicle.Mileage),
		nullString(vehicle.FuelType), nullFloat(vehicle.EngineCapacity), nullInt(vehicle.Power),
		nullString(vehicle.Color), nullString(vehicle.Notes), nullString(vehicle.InspectionDate),
		nullString(vehicle.InsuranceExpiry),
	)
	if err != nil {
		return fmt.Errorf("failed to update vehicle: %w", err)
	}

	r.notifier.Broadcast(db.TableVehicles)
	return nil
}

// Delete removes a vehicle. Service records cascade inside the store, so
// both topics are broadcast.
func (r *VehicleRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM vehicles WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete vehicle: %w", err)
	}

	if rowsAffected, _ := result.RowsAffected(); rowsAffected == 0 {
		return fmt.Errorf("vehicle %d not found", id)
	}

	r.notifier.Broadcast(db.TableVehicles)
	r.notifier.Broadcast(db.TableServiceRecords)
	return nil
}

// WatchAll emits the complete current vehicle list immediately, then again
// after every write to the vehicles table. The channel closes when ctx is
// cancelled.
func (r *VehicleRepository) WatchAll(ctx context.Context) <-chan secondary.VehicleListEvent {
	out := make(chan secondary.VehicleListEvent, 1)
	changes, cancel := r.notifier.Subscribe(db.TableVehicles)

	go func() {
		defer close(out)
		defer cancel()

		for {
			vehicles, err := r.List(ctx)
			if ctx.Err() != nil {
				return
			}

			select {
			case out <- secondary.VehicleListEvent{Vehicles: vehicles, Err: err}:
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

type rowScanner interface {
	Scan(dest ...any) error
}

func scanVehicle(row rowScanner) (*secondary.VehicleRecord, error) {
	var (
		year               sql.NullInt64
		photoURI           sql.NullString
		vin                sql.NullString
		registrationNumber sql.NullString
		mileage            sql.NullInt64
		fuelType           sql.NullString
		engineCapacity     sql.NullFloat64
		power              sql.NullInt64
		color              sql.NullString
		notes              sql.NullString
		inspectionDate     sql.NullString
		insuranceExpiry    sql.NullString
	)

	record := &secondary.VehicleRecord{}
	err := row.Scan(&record.ID, &record.Model, &record.Brand, &year, &photoURI, &vin,
		&registrationNumber, &mileage, &fuelType, &engineCapacity, &power, &color,
		&notes, &inspectionDate, &insuranceExpiry)
	if err != nil {
		return nil, err
	}

	record.Year = intPtr(year)
	record.PhotoURI = stringPtr(photoURI)
	record.VIN = stringPtr(vin)
	record.RegistrationNumber = stringPtr(registrationNumber)
	record.Mileage = intPtr(mileage)
	record.FuelType = stringPtr(fuelType)
	record.EngineCapacity = floatPtr(engineCapacity)
	record.Power = intPtr(power)
	record.Color = stringPtr(color)
	record.Notes = stringPtr(notes)
	record.InspectionDate = stringPtr(inspectionDate)
	record.InsuranceExpiry = stringPtr(insuranceExpiry)

	return record, nil
}

// Ensure VehicleRepository implements the interface
var _ secondary.VehicleRepository = (*VehicleRepository)(nil)
