// Package secondary defines the secondary ports (driven adapters) for the
// application. These are the interfaces through which the application drives
// external systems.
package secondary

import "context"

// VehicleRepository defines the secondary port for vehicle persistence.
type VehicleRepository interface {
	// Create persists a new vehicle and returns the assigned id.
	Create(ctx context.Context, vehicle *VehicleRecord) (int64, error)

	// GetByID retrieves a vehicle by its id. A missing row is not an
	// error: (nil, nil) is returned.
	GetByID(ctx context.Context, id int64) (*VehicleRecord, error)

	// List retrieves all vehicles.
	List(ctx context.Context) ([]*VehicleRecord, error)

	// Update replaces the full stored row for vehicle.ID.
	Update(ctx context.Context, vehicle *VehicleRecord) error

	// Delete removes a vehicle. Its service records are removed with it.
	Delete(ctx context.Context, id int64) error

	// WatchAll emits the complete current vehicle list immediately and
	// again after every write to the vehicles table. The channel closes
	// when ctx is cancelled. Query failures travel inside the event.
	WatchAll(ctx context.Context) <-chan VehicleListEvent
}

// VehicleListEvent is one delivery of a live vehicle query.
type VehicleListEvent struct {
	Vehicles []*VehicleRecord
	Err      error
}

// VehicleRecord represents a vehicle as stored in persistence. Optional
// columns are pointers so that absence survives a store round-trip; empty
// strings are stored as empty strings, not coerced to NULL.
type VehicleRecord struct {
	ID                 int64
	Model              string
	Brand              string
	Year               *int
	PhotoURI           *string
	VIN                *string
	RegistrationNumber *string
	Mileage            *int
	FuelType           *string
	EngineCapacity     *float64
	Power              *int
	Color              *string
	Notes              *string
	InspectionDate     *string
	InsuranceExpiry    *string
}

// ServiceRecordRepository defines the secondary port for service record
// persistence.
type ServiceRecordRepository interface {
	// Create persists a new service record and returns the assigned id.
	Create(ctx context.Context, record *ServiceRecordRecord) (int64, error)

	// GetByID retrieves a service record by its id, (nil, nil) if missing.
	GetByID(ctx context.Context, id int64) (*ServiceRecordRecord, error)

	// ListForCar retrieves service records for one vehicle, newest date
	// first.
	ListForCar(ctx context.Context, carID int64) ([]*ServiceRecordRecord, error)

	// Update replaces the full stored row for record.ID.
	Update(ctx context.Context, record *ServiceRecordRecord) error

	// Delete removes a service record.
	Delete(ctx context.Context, id int64) error

	// WatchForCar emits the current record list for carID immediately and
	// again after every write to the service_records table. The channel
	// closes when ctx is cancelled.
	WatchForCar(ctx context.Context, carID int64) <-chan ServiceRecordListEvent
}

// ServiceRecordListEvent is one delivery of a live service record query.
type ServiceRecordListEvent struct {
	Records []*ServiceRecordRecord
	Err     error
}

// ServiceRecordRecord represents a service record as stored in persistence.
// All columns are required.
type ServiceRecordRecord struct {
	ID          int64
	CarID       int64
	Date        string
	Description string
	Cost        float64
	Type        string
}

// PersonRepository defines the secondary port for person persistence.
type PersonRepository interface {
	// Create persists a new person and returns the assigned id.
	Create(ctx context.Context, person *PersonRecord) (int64, error)

	// GetByID retrieves a person by its id, (nil, nil) if missing.
	GetByID(ctx context.Context, id int64) (*PersonRecord, error)

	// List retrieves all persons.
	List(ctx context.Context) ([]*PersonRecord, error)

	// Update replaces the full stored row for person.ID.
	Update(ctx context.Context, person *PersonRecord) error

	// Delete removes a person.
	Delete(ctx context.Context, id int64) error

	// WatchAll emits the complete current person list immediately and
	// again after every write to the persons table. The channel closes
	// when ctx is cancelled.
	WatchAll(ctx context.Context) <-chan PersonListEvent
}

// PersonListEvent is one delivery of a live person query.
type PersonListEvent struct {
	Persons []*PersonRecord
	Err     error
}

// PersonRecord represents a person as stored in persistence.
type PersonRecord struct {
	ID          int64
	FirstName   string
	LastName    string
	PhotoURI    *string
	Phone       *string
	Email       *string
	Address     *string
	Note        *string
	DateOfBirth *string
}
