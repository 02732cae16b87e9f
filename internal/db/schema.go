package db

// SchemaSQL is the complete schema for fresh garage installs.
//
// This is the SINGLE SOURCE OF TRUTH for the database schema. All tests use
// this schema via GetSchemaSQL(): if repository code references a column
// that does not exist here, tests fail immediately with "no such column".
//
// Required columns (model/brand, the full service record row, person names)
// are NOT NULL; every optional attribute is nullable. Deleting a vehicle
// cascades to its service records.
const SchemaSQL = `
-- Vehicles (owned cars)
CREATE TABLE IF NOT EXISTS vehicles (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	model TEXT NOT NULL,
	brand TEXT NOT NULL,
	year INTEGER,
	photo_uri TEXT,
	vin TEXT,
	registration_number TEXT,
	mileage INTEGER,
	fuel_type TEXT,
	engine_capacity REAL,
	power INTEGER,
	color TEXT,
	notes TEXT,
	inspection_date TEXT,
	insurance_expiry TEXT
);

-- Service records (maintenance events, one vehicle each)
CREATE TABLE IF NOT EXISTS service_records (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	car_id INTEGER NOT NULL,
	date TEXT NOT NULL,
	description TEXT NOT NULL,
	cost REAL NOT NULL,
	type TEXT NOT NULL,
	FOREIGN KEY (car_id) REFERENCES vehicles(id) ON DELETE CASCADE
);

-- Persons (contacts, unrelated to vehicles in this version)
CREATE TABLE IF NOT EXISTS persons (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	first_name TEXT NOT NULL,
	last_name TEXT NOT NULL,
	photo_uri TEXT,
	phone TEXT,
	email TEXT,
	address TEXT,
	note TEXT,
	date_of_birth TEXT
);
`

// GetSchemaSQL returns the authoritative schema SQL.
func GetSchemaSQL() string {
	return SchemaSQL
}

// Table names used as notification topics.
const (
	TableVehicles       = "vehicles"
	TableServiceRecords = "service_records"
	TablePersons        = "persons"
)
