package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/example/garage/internal/ports/primary"
	"github.com/example/garage/internal/ports/secondary"
)

// PersonAdapter translates CLI operations to person controller calls.
type PersonAdapter struct {
	ctrl   primary.PersonController
	photos secondary.PhotoStore
	out    io.Writer
}

// NewPersonAdapter creates a new PersonAdapter writing to out.
func NewPersonAdapter(ctrl primary.PersonController, photos secondary.PhotoStore, out io.Writer) *PersonAdapter {
	return &PersonAdapter{ctrl: ctrl, photos: photos, out: out}
}

// Add collects draft fields, validates, and submits a new contact.
func (a *PersonAdapter) Add(ctx context.Context, fields map[primary.PersonField]string, photoPath string) error {
	a.ctrl.SetForm(nil)
	if err := a.applyFields(fields, photoPath); err != nil {
		return err
	}

	if !a.ctrl.Validate() {
		a.printFieldErrors()
		return fmt.Errorf("invalid contact input")
	}

	a.ctrl.SubmitAdd(ctx)
	if state := a.ctrl.State(); state.Phase == primary.PhaseFailed {
		fmt.Fprintln(a.out, color.RedString("✗ %s", state.Message))
		return fmt.Errorf("%s", state.Message)
	}

	fmt.Fprintf(a.out, "✓ Added contact %s %s\n", fields[primary.PersonFieldFirstName], fields[primary.PersonFieldLastName])
	return nil
}

// List renders the live contact list once it settles out of Loading.
func (a *PersonAdapter) List(ctx context.Context) error {
	state, err := a.loadState(ctx)
	if err != nil {
		return err
	}

	if len(state.Persons) == 0 {
		fmt.Fprintln(a.out, "No contacts found")
		return nil
	}

	fmt.Fprintf(a.out, "\n%-5s %-15s %-15s %-15s %s\n", "ID", "FIRST NAME", "LAST NAME", "PHONE", "EMAIL")
	fmt.Fprintln(a.out, "────────────────────────────────────────────────────────────────")
	for _, p := range state.Persons {
		fmt.Fprintf(a.out, "%-5d %-15s %-15s %-15s %s\n",
			p.ID, p.FirstName, p.LastName, optField(p.Phone), optField(p.Email))
	}
	fmt.Fprintln(a.out)

	return nil
}

// Show fetches one contact by id and renders its detail. A missing id is
// reported as a normal outcome, not a failure.
func (a *PersonAdapter) Show(ctx context.Context, id int64) error {
	a.ctrl.LoadPerson(ctx, id)
	if state := a.ctrl.State(); state.Phase == primary.PhaseFailed {
		fmt.Fprintln(a.out, color.RedString("✗ %s", state.Message))
		return fmt.Errorf("%s", state.Message)
	}

	p := a.ctrl.Selected()
	if p == nil {
		fmt.Fprintf(a.out, "Contact %d not found\n", id)
		return nil
	}

	fmt.Fprintf(a.out, "\nContact: %d\n", p.ID)
	fmt.Fprintf(a.out, "Name:    %s %s\n", p.FirstName, p.LastName)
	printOptString(a.out, "Phone", p.Phone)
	printOptString(a.out, "Email", p.Email)
	printOptString(a.out, "Address", p.Address)
	printOptString(a.out, "Born", p.DateOfBirth)
	printOptString(a.out, "Note", p.Note)
	printOptString(a.out, "Photo", p.PhotoURI)
	fmt.Fprintln(a.out)

	return nil
}

// Update prefills the draft from the stored contact, applies the given
// fields on top, validates, and submits.
func (a *PersonAdapter) Update(ctx context.Context, id int64, fields map[primary.PersonField]string, photoPath string) error {
	a.ctrl.LoadPerson(ctx, id)
	p := a.ctrl.Selected()
	if p == nil {
		return fmt.Errorf("contact %d not found", id)
	}

	a.ctrl.SetForm(p)
	if err := a.applyFields(fields, photoPath); err != nil {
		return err
	}

	if !a.ctrl.Validate() {
		a.printFieldErrors()
		return fmt.Errorf("invalid contact input")
	}

	a.ctrl.SubmitUpdate(ctx)
	if state := a.ctrl.State(); state.Phase == primary.PhaseFailed {
		fmt.Fprintln(a.out, color.RedString("✗ %s", state.Message))
		return fmt.Errorf("%s", state.Message)
	}

	fmt.Fprintf(a.out, "✓ Updated contact %d\n", id)
	return nil
}

// Delete removes a contact.
func (a *PersonAdapter) Delete(ctx context.Context, id int64) error {
	a.ctrl.SubmitDelete(ctx, primary.Person{ID: id})
	if state := a.ctrl.State(); state.Phase == primary.PhaseFailed {
		fmt.Fprintln(a.out, color.RedString("✗ %s", state.Message))
		return fmt.Errorf("%s", state.Message)
	}

	fmt.Fprintf(a.out, "✓ Deleted contact %d\n", id)
	return nil
}

func (a *PersonAdapter) applyFields(fields map[primary.PersonField]string, photoPath string) error {
	for field, raw := range fields {
		a.ctrl.SetField(field, raw)
	}

	if photoPath != "" {
		stored, err := a.photos.Import(photoPath)
		if err != nil {
			return fmt.Errorf("failed to import photo: %w", err)
		}
		a.ctrl.SetField(primary.PersonFieldPhotoURI, stored)
	}

	return nil
}

func (a *PersonAdapter) printFieldErrors() {
	for field, msg := range a.ctrl.FormErrors() {
		fmt.Fprintln(a.out, color.RedString("✗ %s: %s", field, msg))
	}
}

func (a *PersonAdapter) loadState(ctx context.Context) (primary.PersonViewState, error) {
	a.ctrl.Load(ctx)
	for {
		select {
		case <-a.ctrl.Changed():
		case <-ctx.Done():
			return primary.PersonViewState{}, ctx.Err()
		}

		state := a.ctrl.State()
		switch state.Phase {
		case primary.PhaseLoaded:
			return state, nil
		case primary.PhaseFailed:
			fmt.Fprintln(a.out, color.RedString("✗ %s", state.Message))
			return state, fmt.Errorf("%s", state.Message)
		}
	}
}

func optField(p *string) string {
	if p == nil {
		return "-"
	}
	return *p
}
