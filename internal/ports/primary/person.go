package primary

import "context"

// Person is a contact record, independent of vehicles.
type Person struct {
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

// PersonField identifies one draft form field on the contact form.
type PersonField string

// Person form fields.
const (
	PersonFieldFirstName   PersonField = "firstName"
	PersonFieldLastName    PersonField = "lastName"
	PersonFieldPhotoURI    PersonField = "photoUri"
	PersonFieldPhone       PersonField = "phone"
	PersonFieldEmail       PersonField = "email"
	PersonFieldAddress     PersonField = "address"
	PersonFieldNote        PersonField = "note"
	PersonFieldDateOfBirth PersonField = "dateOfBirth"
)

// PersonViewState is the tri-state view model for the contact list.
type PersonViewState struct {
	Phase   Phase
	Persons []Person
	Message string
}

// PersonController is the primary port for the contact screen. Same shape
// as the vehicle controller with a reduced field set, plus a one-shot
// selected-person read.
type PersonController interface {
	// Load subscribes to the live person list, cancelling any previous
	// subscription first.
	Load(ctx context.Context)

	// State returns the current view state.
	State() PersonViewState

	// Changed returns a coalescing signal channel that fires after every
	// view state change.
	Changed() <-chan struct{}

	// LoadPerson fetches one person into the selected slot. A missing id
	// leaves the selection nil; that is not an error. Store failures
	// surface as PhaseFailed.
	LoadPerson(ctx context.Context, id int64)

	// Selected returns the currently selected person, nil when none.
	Selected() *Person

	// SetField updates one draft field and clears that field's validation
	// error, if any.
	SetField(field PersonField, raw string)

	// SetForm resets the draft to the given person, or to empty when nil.
	SetForm(person *Person)

	// Validate rebuilds the full error map from the draft and reports
	// whether it is empty.
	Validate() bool

	// FormErrors returns the current per-field validation errors.
	FormErrors() map[PersonField]string

	// SubmitAdd persists the draft as a new person. The caller must have
	// observed Validate() == true.
	SubmitAdd(ctx context.Context)

	// SubmitUpdate persists the draft over the person with the draft's id.
	SubmitUpdate(ctx context.Context)

	// SubmitDelete removes a person unconditionally.
	SubmitDelete(ctx context.Context, person Person)
}
