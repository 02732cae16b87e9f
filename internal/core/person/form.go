// Package person contains the draft-form logic for the contact screen, a
// reduced version of the vehicle form: two required names, everything else
// optional free text.
package person

import (
	"strings"

	"github.com/example/garage/internal/ports/primary"
)

// MsgRequired is the validation message for a missing required field.
const MsgRequired = "required field"

// Form is the transient, unpersisted draft for one person.
type Form struct {
	id int64

	firstName   string
	lastName    string
	photoURI    string
	phone       string
	email       string
	address     string
	note        string
	dateOfBirth string

	errors map[primary.PersonField]string
}

// NewForm creates an empty draft.
func NewForm() *Form {
	return &Form{errors: make(map[primary.PersonField]string)}
}

// Set updates one field's raw text and clears that field's validation
// error.
func (f *Form) Set(field primary.PersonField, raw string) {
	switch field {
	case primary.PersonFieldFirstName:
		f.firstName = raw
	case primary.PersonFieldLastName:
		f.lastName = raw
	case primary.PersonFieldPhotoURI:
		f.photoURI = raw
	case primary.PersonFieldPhone:
		f.phone = raw
	case primary.PersonFieldEmail:
		f.email = raw
	case primary.PersonFieldAddress:
		f.address = raw
	case primary.PersonFieldNote:
		f.note = raw
	case primary.PersonFieldDateOfBirth:
		f.dateOfBirth = raw
	default:
		return
	}
	delete(f.errors, field)
}

// SetFrom resets the draft to the given person, or to empty when nil.
func (f *Form) SetFrom(p *primary.Person) {
	*f = *NewForm()
	if p == nil {
		return
	}

	f.id = p.ID
	f.firstName = p.FirstName
	f.lastName = p.LastName
	f.photoURI = stringOf(p.PhotoURI)
	f.phone = stringOf(p.Phone)
	f.email = stringOf(p.Email)
	f.address = stringOf(p.Address)
	f.note = stringOf(p.Note)
	f.dateOfBirth = stringOf(p.DateOfBirth)
}

// Validate rebuilds the complete error map and reports whether it is empty.
// Required-field enforcement lives here, never in the store.
func (f *Form) Validate() bool {
	errs := make(map[primary.PersonField]string)

	if strings.TrimSpace(f.firstName) == "" {
		errs[primary.PersonFieldFirstName] = MsgRequired
	}
	if strings.TrimSpace(f.lastName) == "" {
		errs[primary.PersonFieldLastName] = MsgRequired
	}

	f.errors = errs
	return len(errs) == 0
}

// Errors returns a copy of the current per-field validation errors.
func (f *Form) Errors() map[primary.PersonField]string {
	out := make(map[primary.PersonField]string, len(f.errors))
	for k, v := range f.errors {
		out[k] = v
	}
	return out
}

// Person coerces the draft into a domain record, blank optionals becoming
// absent.
func (f *Form) Person() primary.Person {
	return primary.Person{
		ID:          f.id,
		FirstName:   f.firstName,
		LastName:    f.lastName,
		PhotoURI:    stringPtrOf(f.photoURI),
		Phone:       stringPtrOf(f.phone),
		Email:       stringPtrOf(f.email),
		Address:     stringPtrOf(f.address),
		Note:        stringPtrOf(f.note),
		DateOfBirth: stringPtrOf(f.dateOfBirth),
	}
}

func stringOf(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func stringPtrOf(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}
