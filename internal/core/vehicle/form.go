// Package vehicle contains the pure draft-form logic for the vehicle
// screen: raw text per field, per-field validation, and the coercion of
// raw input into a typed domain record.
package vehicle

import (
	"strconv"
	"strings"

	"github.com/example/garage/internal/ports/primary"
)

// Validation messages surfaced per field.
const (
	MsgRequired    = "required field"
	MsgYearDigits  = "year must be 4 digits"
	MsgNumbersOnly = "numbers only"
	MsgFuelType    = "unknown fuel type"
)

// Form is the transient, unpersisted draft for one vehicle. Fields hold the
// raw user text; errors map field to its current validation message. The
// zero Form is not usable, construct with NewForm.
type Form struct {
	id int64

	model              string
	brand              string
	year               string
	vin                string
	registrationNumber string
	mileage            string
	fuelType           string
	engineCapacity     string
	power              string
	color              string
	notes              string
	inspectionDate     string
	insuranceExpiry    string
	photoURI           string

	errors map[primary.VehicleField]string
}

// NewForm creates an empty draft.
func NewForm() *Form {
	return &Form{errors: make(map[primary.VehicleField]string)}
}

// Set updates one field's raw text and clears that field's validation
// error. Errors for other fields are left untouched.
func (f *Form) Set(field primary.VehicleField, raw string) {
	switch field {
	case primary.VehicleFieldModel:
		f.model = raw
	case primary.VehicleFieldBrand:
		f.brand = raw
	case primary.VehicleFieldYear:
		f.year = raw
	case primary.VehicleFieldVIN:
		f.vin = raw
	case primary.VehicleFieldRegistrationNumber:
		f.registrationNumber = raw
	case primary.VehicleFieldMileage:
		f.mileage = raw
	case primary.VehicleFieldFuelType:
		f.fuelType = raw
	case primary.VehicleFieldEngineCapacity:
		f.engineCapacity = raw
	case primary.VehicleFieldPower:
		f.power = raw
	case primary.VehicleFieldColor:
		f.color = raw
	case primary.VehicleFieldNotes:
		f.notes = raw
	case primary.VehicleFieldInspectionDate:
		f.inspectionDate = raw
	case primary.VehicleFieldInsuranceExpiry:
		f.insuranceExpiry = raw
	case primary.VehicleFieldPhotoURI:
		f.photoURI = raw
	default:
		return
	}
	delete(f.errors, field)
}

// SetFrom resets the draft to the given vehicle, or to empty when nil. All
// validation errors are dropped.
func (f *Form) SetFrom(v *primary.Vehicle) {
	*f = *NewForm()
	if v == nil {
		return
	}

	f.id = v.ID
	f.model = v.Model
	f.brand = v.Brand
	if v.Year != nil {
		f.year = strconv.Itoa(*v.Year)
	}
	f.vin = stringOf(v.VIN)
	f.registrationNumber = stringOf(v.RegistrationNumber)
	if v.Mileage != nil {
		f.mileage = strconv.Itoa(*v.Mileage)
	}
	if v.FuelType != nil {
		f.fuelType = string(*v.FuelType)
	}
	if v.EngineCapacity != nil {
		f.engineCapacity = strconv.FormatFloat(*v.EngineCapacity, 'f', -1, 64)
	}
	if v.Power != nil {
		f.power = strconv.Itoa(*v.Power)
	}
	f.color = stringOf(v.Color)
	f.notes = stringOf(v.Notes)
	f.inspectionDate = stringOf(v.InspectionDate)
	f.insuranceExpiry = stringOf(v.InsuranceExpiry)
	f.photoURI = stringOf(v.PhotoURI)
}

// Validate rebuilds the complete error map from the current draft and
// reports whether it is empty. The previous map is always replaced, never
// merged.
func (f *Form) Validate() bool {
	errs := make(map[primary.VehicleField]string)

	if isBlank(f.brand) {
		errs[primary.VehicleFieldBrand] = MsgRequired
	}
	if isBlank(f.model) {
		errs[primary.VehicleFieldModel] = MsgRequired
	}
	if !isBlank(f.year) {
		if _, err := strconv.Atoi(f.year); err != nil || len(f.year) != 4 {
			errs[primary.VehicleFieldYear] = MsgYearDigits
		}
	}
	if !isBlank(f.mileage) {
		if n, err := strconv.Atoi(f.mileage); err != nil || n < 0 {
			errs[primary.VehicleFieldMileage] = MsgNumbersOnly
		}
	}
	if !isBlank(f.engineCapacity) {
		if _, err := strconv.ParseFloat(f.engineCapacity, 64); err != nil {
			errs[primary.VehicleFieldEngineCapacity] = MsgNumbersOnly
		}
	}
	if !isBlank(f.power) {
		if n, err := strconv.Atoi(f.power); err != nil || n < 0 {
			errs[primary.VehicleFieldPower] = MsgNumbersOnly
		}
	}
	if !isBlank(f.fuelType) {
		if _, ok := primary.ParseFuelType(strings.TrimSpace(f.fuelType)); !ok {
			errs[primary.VehicleFieldFuelType] = MsgFuelType
		}
	}

	f.errors = errs
	return len(errs) == 0
}

// Errors returns a copy of the current per-field validation errors.
func (f *Form) Errors() map[primary.VehicleField]string {
	out := make(map[primary.VehicleField]string, len(f.errors))
	for k, v := range f.errors {
		out[k] = v
	}
	return out
}

// Vehicle coerces the draft into a domain record. Blank optional fields
// become absent, and optional numeric fields parse best-effort: once
// Validate has passed, an unparseable optional becomes absent rather than
// an error. Validate is the only gate.
func (f *Form) Vehicle() primary.Vehicle {
	v := primary.Vehicle{
		ID:    f.id,
		Model: f.model,
		Brand: f.brand,
	}

	v.Year = intOf(f.year)
	v.VIN = stringPtrOf(f.vin)
	v.RegistrationNumber = stringPtrOf(f.registrationNumber)
	v.Mileage = intOf(f.mileage)
	if ft, ok := primary.ParseFuelType(strings.TrimSpace(f.fuelType)); ok {
		v.FuelType = &ft
	}
	v.EngineCapacity = floatOf(f.engineCapacity)
	v.Power = intOf(f.power)
	v.Color = stringPtrOf(f.color)
	v.Notes = stringPtrOf(f.notes)
	v.InspectionDate = stringPtrOf(f.inspectionDate)
	v.InsuranceExpiry = stringPtrOf(f.insuranceExpiry)
	v.PhotoURI = stringPtrOf(f.photoURI)

	return v
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func stringOf(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func stringPtrOf(s string) *string {
	if isBlank(s) {
		return nil
	}
	return &s
}

func intOf(s string) *int {
	if isBlank(s) {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &n
}

func floatOf(s string) *float64 {
	if isBlank(s) {
		return nil
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &n
}
