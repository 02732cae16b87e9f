// Package cli provides thin CLI adapters that translate between CLI
// concerns and the controllers. Adapters handle output formatting and
// waiting on live state, but delegate all decisions to the interaction
// layer.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/example/garage/internal/ports/primary"
	"github.com/example/garage/internal/ports/secondary"
)

// VehicleAdapter translates CLI operations to vehicle controller calls.
type VehicleAdapter struct {
	ctrl   primary.VehicleController
	photos secondary.PhotoStore
	out    io.Writer
}

// NewVehicleAdapter creates a new VehicleAdapter writing to out.
func NewVehicleAdapter(ctrl primary.VehicleController, photos secondary.PhotoStore, out io.Writer) *VehicleAdapter {
	return &VehicleAdapter{ctrl: ctrl, photos: photos, out: out}
}

// Add collects draft fields, validates, and submits a new vehicle.
// photoPath, when non-empty, is imported into the photo store first.
func (a *VehicleAdapter) Add(ctx context.Context, fields map[primary.VehicleField]string, photoPath string) error {
	a.ctrl.SetForm(nil)
	if err := a.applyFields(fields, photoPath); err != nil {
		return err
	}

	if !a.ctrl.Validate() {
		a.printFieldErrors()
		return fmt.Errorf("invalid vehicle input")
	}

	a.ctrl.SubmitAdd(ctx)
	if state := a.ctrl.State(); state.Phase == primary.PhaseFailed {
		fmt.Fprintln(a.out, color.RedString("✗ %s", state.Message))
		return fmt.Errorf("%s", state.Message)
	}

	fmt.Fprintf(a.out, "✓ Added vehicle %s %s\n", fields[primary.VehicleFieldBrand], fields[primary.VehicleFieldModel])
	return nil
}

// List renders the live vehicle list once it settles out of Loading.
func (a *VehicleAdapter) List(ctx context.Context) error {
	state, err := a.loadState(ctx)
	if err != nil {
		return err
	}

	if len(state.Vehicles) == 0 {
		fmt.Fprintln(a.out, "No vehicles found")
		return nil
	}

	fmt.Fprintf(a.out, "\n%-5s %-15s %-20s %-6s %-10s %-10s\n", "ID", "BRAND", "MODEL", "YEAR", "FUEL", "MILEAGE")
	fmt.Fprintln(a.out, "────────────────────────────────────────────────────────────────────")
	for _, v := range state.Vehicles {
		fmt.Fprintf(a.out, "%-5d %-15s %-20s %-6s %-10s %-10s\n",
			v.ID, v.Brand, v.Model, intField(v.Year), fuelField(v.FuelType), intField(v.Mileage))
	}
	fmt.Fprintln(a.out)

	return nil
}

// Show renders the full detail of one vehicle.
func (a *VehicleAdapter) Show(ctx context.Context, id int64) error {
	v, err := a.find(ctx, id)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "\nVehicle: %d\n", v.ID)
	fmt.Fprintf(a.out, "Brand:   %s\n", v.Brand)
	fmt.Fprintf(a.out, "Model:   %s\n", v.Model)
	printOptInt(a.out, "Year", v.Year)
	printOptString(a.out, "VIN", v.VIN)
	printOptString(a.out, "Registration", v.RegistrationNumber)
	printOptInt(a.out, "Mileage", v.Mileage)
	if v.FuelType != nil {
		fmt.Fprintf(a.out, "Fuel:    %s\n", *v.FuelType)
	}
	if v.EngineCapacity != nil {
		fmt.Fprintf(a.out, "Engine:  %g\n", *v.EngineCapacity)
	}
	printOptInt(a.out, "Power", v.Power)
	printOptString(a.out, "Color", v.Color)
	printOptString(a.out, "Notes", v.Notes)
	printOptString(a.out, "Inspection", v.InspectionDate)
	printOptString(a.out, "Insurance", v.InsuranceExpiry)
	printOptString(a.out, "Photo", v.PhotoURI)
	fmt.Fprintln(a.out)

	return nil
}

// Update prefills the draft from the stored vehicle, applies the given
// fields on top, validates, and submits.
func (a *VehicleAdapter) Update(ctx context.Context, id int64, fields map[primary.VehicleField]string, photoPath string) error {
	v, err := a.find(ctx, id)
	if err != nil {
		return err
	}

	a.ctrl.SetForm(&v)
	if err := a.applyFields(fields, photoPath); err != nil {
		return err
	}

	if !a.ctrl.Validate() {
		a.printFieldErrors()
		return fmt.Errorf("invalid vehicle input")
	}

	a.ctrl.SubmitUpdate(ctx)
	if state := a.ctrl.State(); state.Phase == primary.PhaseFailed {
		fmt.Fprintln(a.out, color.RedString("✗ %s", state.Message))
		return fmt.Errorf("%s", state.Message)
	}

	fmt.Fprintf(a.out, "✓ Updated vehicle %d\n", id)
	return nil
}

// Delete removes a vehicle and, with it, its service history.
func (a *VehicleAdapter) Delete(ctx context.Context, id int64) error {
	a.ctrl.SubmitDelete(ctx, primary.Vehicle{ID: id})
	if state := a.ctrl.State(); state.Phase == primary.PhaseFailed {
		fmt.Fprintln(a.out, color.RedString("✗ %s", state.Message))
		return fmt.Errorf("%s", state.Message)
	}

	fmt.Fprintf(a.out, "✓ Deleted vehicle %d\n", id)
	return nil
}

// applyFields pushes raw flag values into the draft, importing the photo
// file when one was given.
func (a *VehicleAdapter) applyFields(fields map[primary.VehicleField]string, photoPath string) error {
	for field, raw := range fields {
		a.ctrl.SetField(field, raw)
	}

	if photoPath != "" {
		stored, err := a.photos.Import(photoPath)
		if err != nil {
			return fmt.Errorf("failed to import photo: %w", err)
		}
		a.ctrl.SetField(primary.VehicleFieldPhotoURI, stored)
	}

	return nil
}

func (a *VehicleAdapter) printFieldErrors() {
	for field, msg := range a.ctrl.FormErrors() {
		fmt.Fprintln(a.out, color.RedString("✗ %s: %s", field, msg))
	}
}

// loadState starts the live subscription and blocks until the state leaves
// Loading.
func (a *VehicleAdapter) loadState(ctx context.Context) (primary.VehicleViewState, error) {
	a.ctrl.Load(ctx)
	for {
		select {
		case <-a.ctrl.Changed():
		case <-ctx.Done():
			return primary.VehicleViewState{}, ctx.Err()
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

func (a *VehicleAdapter) find(ctx context.Context, id int64) (primary.Vehicle, error) {
	state, err := a.loadState(ctx)
	if err != nil {
		return primary.Vehicle{}, err
	}

	for _, v := range state.Vehicles {
		if v.ID == id {
			return v, nil
		}
	}
	return primary.Vehicle{}, fmt.Errorf("vehicle %d not found", id)
}

func intField(p *int) string {
	if p == nil {
		return "-"
	}
	return fmt.Sprintf("%d", *p)
}

func fuelField(p *primary.FuelType) string {
	if p == nil {
		return "-"
	}
	return string(*p)
}

func printOptString(out io.Writer, label string, p *string) {
	if p == nil {
		return
	}
	fmt.Fprintf(out, "%-8s %s\n", label+":", *p)
}

func printOptInt(out io.Writer, label string, p *int) {
	if p == nil {
		return
	}
	fmt.Fprintf(out, "%-8s %d\n", label+":", *p)
}
