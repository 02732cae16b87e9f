package app

import (
	"github.com/example/garage/internal/ports/primary"
	"github.com/example/garage/internal/ports/secondary"
)

// The mapping between domain records and stored row shapes is total and
// invertible: every field, including absent optionals, survives a
// store-and-reload round trip. No coercion happens here; blank-to-absent
// normalization belongs to the draft forms.

func vehicleFromRecord(r *secondary.VehicleRecord) primary.Vehicle {
	v := primary.Vehicle{
		ID:                 r.ID,
		Model:              r.Model,
		Brand:              r.Brand,
		Year:               r.Year,
		PhotoURI:           r.PhotoURI,
		VIN:                r.VIN,
		RegistrationNumber: r.RegistrationNumber,
		Mileage:            r.Mileage,
		EngineCapacity:     r.EngineCapacity,
		Power:              r.Power,
		Color:              r.Color,
		Notes:              r.Notes,
		InspectionDate:     r.InspectionDate,
		InsuranceExpiry:    r.InsuranceExpiry,
	}
	if r.FuelType != nil {
		ft := primary.FuelType(*r.FuelType)
		v.FuelType = &ft
	}
	return v
}

func vehicleToRecord(v primary.Vehicle) *secondary.VehicleRecord {
	r := &secondary.VehicleRecord{
		ID:                 v.ID,
		Model:              v.Model,
		Brand:              v.Brand,
		Year:               v.Year,
		PhotoURI:           v.PhotoURI,
		VIN:                v.VIN,
		RegistrationNumber: v.RegistrationNumber,
		Mileage:            v.Mileage,
		EngineCapacity:     v.EngineCapacity,
		Power:              v.Power,
		Color:              v.Color,
		Notes:              v.Notes,
		InspectionDate:     v.InspectionDate,
		InsuranceExpiry:    v.InsuranceExpiry,
	}
	if v.FuelType != nil {
		ft := string(*v.FuelType)
		r.FuelType = &ft
	}
	return r
}

func serviceRecordFromRecord(r *secondary.ServiceRecordRecord) primary.ServiceRecord {
	return primary.ServiceRecord{
		ID:          r.ID,
		CarID:       r.CarID,
		Date:        r.Date,
		Description: r.Description,
		Cost:        r.Cost,
		Type:        r.Type,
	}
}

func serviceRecordToRecord(s primary.ServiceRecord) *secondary.ServiceRecordRecord {
	return &secondary.ServiceRecordRecord{
		ID:          s.ID,
		CarID:       s.CarID,
		Date:        s.Date,
		Description: s.Description,
		Cost:        s.Cost,
		Type:        s.Type,
	}
}

func personFromRecord(r *secondary.PersonRecord) primary.Person {
	return primary.Person{
		ID:          r.ID,
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		PhotoURI:    r.PhotoURI,
		Phone:       r.Phone,
		Email:       r.Email,
		Address:     r.Address,
		Note:        r.Note,
		DateOfBirth: r.DateOfBirth,
	}
}

func personToRecord(p primary.Person) *secondary.PersonRecord {
	return &secondary.PersonRecord{
		ID:          p.ID,
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		PhotoURI:    p.PhotoURI,
		Phone:       p.Phone,
		Email:       p.Email,
		Address:     p.Address,
		Note:        p.Note,
		DateOfBirth: p.DateOfBirth,
	}
}
