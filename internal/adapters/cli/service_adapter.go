package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/example/garage/internal/core/servicerecord"
	"github.com/example/garage/internal/ports/primary"
)

// ServiceAdapter translates CLI operations to service record controller
// calls. Input validation is the single combined guard, no per-field
// messages.
type ServiceAdapter struct {
	ctrl primary.ServiceRecordController
	out  io.Writer
}

// NewServiceAdapter creates a new ServiceAdapter writing to out.
func NewServiceAdapter(ctrl primary.ServiceRecordController, out io.Writer) *ServiceAdapter {
	return &ServiceAdapter{ctrl: ctrl, out: out}
}

// Add validates raw input and persists a new service record for carID.
func (a *ServiceAdapter) Add(ctx context.Context, carID int64, date, recordType, description, cost string) error {
	record, guard := servicerecord.ParseForm(carID, date, recordType, description, cost)
	if err := guard.Error(); err != nil {
		fmt.Fprintln(a.out, color.RedString("✗ %s", guard.Reason))
		return err
	}

	if err := a.ctrl.Add(ctx, record); err != nil {
		fmt.Fprintln(a.out, color.RedString("✗ failed to add service record"))
		return err
	}

	fmt.Fprintf(a.out, "✓ Added service record for vehicle %d: %s (%s)\n", carID, record.Type, record.Date)
	return nil
}

// List renders the live service history for one vehicle, newest first.
func (a *ServiceAdapter) List(ctx context.Context, carID int64) error {
	a.ctrl.LoadRecords(ctx, carID)
	select {
	case <-a.ctrl.Changed():
	case <-ctx.Done():
		return ctx.Err()
	}

	records := a.ctrl.Records()
	if len(records) == 0 {
		fmt.Fprintln(a.out, "No service records found")
		return nil
	}

	fmt.Fprintf(a.out, "\n%-5s %-12s %-15s %-10s %s\n", "ID", "DATE", "TYPE", "COST", "DESCRIPTION")
	fmt.Fprintln(a.out, "────────────────────────────────────────────────────────────────")
	for _, r := range records {
		fmt.Fprintf(a.out, "%-5d %-12s %-15s %-10.2f %s\n", r.ID, r.Date, r.Type, r.Cost, r.Description)
	}
	fmt.Fprintln(a.out)

	return nil
}

// Update validates raw input and replaces an existing record.
func (a *ServiceAdapter) Update(ctx context.Context, id, carID int64, date, recordType, description, cost string) error {
	record, guard := servicerecord.ParseForm(carID, date, recordType, description, cost)
	if err := guard.Error(); err != nil {
		fmt.Fprintln(a.out, color.RedString("✗ %s", guard.Reason))
		return err
	}
	record.ID = id

	if err := a.ctrl.Update(ctx, record); err != nil {
		fmt.Fprintln(a.out, color.RedString("✗ failed to update service record"))
		return err
	}

	fmt.Fprintf(a.out, "✓ Updated service record %d\n", id)
	return nil
}

// Delete removes a service record.
func (a *ServiceAdapter) Delete(ctx context.Context, id int64) error {
	if err := a.ctrl.Delete(ctx, primary.ServiceRecord{ID: id}); err != nil {
		fmt.Fprintln(a.out, color.RedString("✗ failed to delete service record"))
		return err
	}

	fmt.Fprintf(a.out, "✓ Deleted service record %d\n", id)
	return nil
}
