// Package primary defines the primary ports (driving adapters) for the
// application: the domain records and the controller interfaces the
// presentation layer calls into.
package primary

import "context"

// FuelType is the fixed enumeration of vehicle fuel types.
type FuelType string

// Fuel type values.
const (
	FuelPetrol   FuelType = "Petrol"
	FuelDiesel   FuelType = "Diesel"
	FuelLPG      FuelType = "LPG"
	FuelElectric FuelType = "Electric"
	FuelHybrid   FuelType = "Hybrid"
)

// FuelTypes returns all fuel type values in display order.
func FuelTypes() []FuelType {
	return []FuelType{FuelPetrol, FuelDiesel, FuelLPG, FuelElectric, FuelHybrid}
}

// ParseFuelType resolves a display name to a FuelType. The second return
// value is false when the name is not part of the enumeration.
func ParseFuelType(name string) (FuelType, bool) {
	for _, ft := range FuelTypes() {
		if string(ft) == name {
			return ft, true
		}
	}
	return "", false
}

// Vehicle is the in-memory domain record for one owned car. A zero ID means
// the vehicle has not been persisted yet. Optional attributes are pointers;
// absence is distinct from the empty string.
type Vehicle struct {
	ID                 int64
	Model              string
	Brand              string
	Year               *int
	PhotoURI           *string
	VIN                *string
	RegistrationNumber *string
	Mileage            *int
	FuelType           *FuelType
	EngineCapacity     *float64
	Power              *int
	Color              *string
	Notes              *string
	InspectionDate     *string
	InsuranceExpiry    *string
}

// VehicleField identifies one draft form field. Typed identifiers keep
// field dispatch exhaustive at compile time instead of matching raw
// strings.
type VehicleField string

// Vehicle form fields.
const (
	VehicleFieldModel              VehicleField = "model"
	VehicleFieldBrand              VehicleField = "brand"
	VehicleFieldYear               VehicleField = "year"
	VehicleFieldVIN                VehicleField = "vin"
	VehicleFieldRegistrationNumber VehicleField = "registrationNumber"
	VehicleFieldMileage            VehicleField = "mileage"
	VehicleFieldFuelType           VehicleField = "fuelType"
	VehicleFieldEngineCapacity     VehicleField = "engineCapacity"
	VehicleFieldPower              VehicleField = "power"
	VehicleFieldColor              VehicleField = "color"
	VehicleFieldNotes              VehicleField = "notes"
	VehicleFieldInspectionDate     VehicleField = "inspectionDate"
	VehicleFieldInsuranceExpiry    VehicleField = "insuranceExpiry"
	VehicleFieldPhotoURI           VehicleField = "photoUri"
)

// Phase is the coarse view state of a live list screen.
type Phase int

// View phases.
const (
	PhaseLoading Phase = iota
	PhaseLoaded
	PhaseFailed
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseLoaded:
		return "loaded"
	case PhaseFailed:
		return "failed"
	}
	return "unknown"
}

// VehicleViewState is the tri-state view model for the vehicle list.
// Vehicles is populated in PhaseLoaded, Message in PhaseFailed.
type VehicleViewState struct {
	Phase    Phase
	Vehicles []Vehicle
	Message  string
}

// VehicleController is the primary port for the vehicle screen. It owns the
// view state and the draft form, and issues store commands.
type VehicleController interface {
	// Load subscribes to the live vehicle list, cancelling any previous
	// subscription first. The view state moves to Loading immediately and
	// is replaced on every delivery.
	Load(ctx context.Context)

	// State returns the current view state.
	State() VehicleViewState

	// Changed returns a coalescing signal channel that fires after every
	// view state change.
	Changed() <-chan struct{}

	// SetField updates one draft field and clears that field's validation
	// error, if any.
	SetField(field VehicleField, raw string)

	// SetForm resets the draft to the given vehicle, or to empty when nil.
	SetForm(vehicle *Vehicle)

	// Validate rebuilds the full error map from the draft and reports
	// whether it is empty.
	Validate() bool

	// FormErrors returns the current per-field validation errors.
	FormErrors() map[VehicleField]string

	// SubmitAdd persists the draft as a new vehicle. The caller must have
	// observed Validate() == true. Store failures surface as PhaseFailed.
	SubmitAdd(ctx context.Context)

	// SubmitUpdate persists the draft over the vehicle with the draft's id.
	SubmitUpdate(ctx context.Context)

	// SubmitDelete removes a vehicle unconditionally.
	SubmitDelete(ctx context.Context, vehicle Vehicle)
}
