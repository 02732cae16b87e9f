package cli_test

import (
	"context"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/example/garage/internal/adapters/cli"
	"github.com/example/garage/internal/adapters/sqlite"
	"github.com/example/garage/internal/app"
)

func (f *fixture) serviceAdapter() *cli.ServiceAdapter {
	repo := sqlite.NewServiceRecordRepository(f.database, f.notifier)
	ctrl := app.NewServiceRecordController(repo, zap.NewNop())
	return cli.NewServiceAdapter(ctrl, f.out)
}

func (f *fixture) seedVehicle(t *testing.T) int64 {
	t.Helper()
	result, err := f.database.Exec("INSERT INTO vehicles (model, brand) VALUES ('Corolla', 'Toyota')")
	if err != nil {
		t.Fatalf("failed to seed vehicle: %v", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		t.Fatalf("failed to read seeded vehicle id: %v", err)
	}
	return id
}

func TestServiceAdapter_AddAndList(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()
	carID := f.seedVehicle(t)

	err := f.serviceAdapter().Add(ctx, carID, "2024-03-15", "repair", "Timing belt", "850.50")
	if err != nil {
		t.Fatalf("failed to add service record: %v", err)
	}
	if !strings.Contains(f.out.String(), "Added service record") {
		t.Errorf("unexpected add output: %q", f.out.String())
	}

	f.out.Reset()
	if err := f.serviceAdapter().List(ctx, carID); err != nil {
		t.Fatalf("failed to list service records: %v", err)
	}
	output := f.out.String()
	if !strings.Contains(output, "Timing belt") || !strings.Contains(output, "850.50") {
		t.Errorf("unexpected list output: %q", output)
	}
}

func TestServiceAdapter_AddGuardBlocks(t *testing.T) {
	f := setupFixture(t)
	carID := f.seedVehicle(t)

	err := f.serviceAdapter().Add(context.Background(), carID, "2024-03-15", "repair", "Timing belt", "0")
	if err == nil {
		t.Fatal("expected guard error for zero cost")
	}
	if !strings.Contains(f.out.String(), "cost must be greater than zero") {
		t.Errorf("unexpected output: %q", f.out.String())
	}

	var count int
	if err := f.database.QueryRow("SELECT COUNT(*) FROM service_records").Scan(&count); err != nil {
		t.Fatalf("failed to count service records: %v", err)
	}
	if count != 0 {
		t.Errorf("expected no records stored, got %d", count)
	}
}

func TestServiceAdapter_ListEmpty(t *testing.T) {
	f := setupFixture(t)
	carID := f.seedVehicle(t)

	if err := f.serviceAdapter().List(context.Background(), carID); err != nil {
		t.Fatalf("failed to list service records: %v", err)
	}
	if !strings.Contains(f.out.String(), "No service records found") {
		t.Errorf("unexpected output: %q", f.out.String())
	}
}

func TestServiceAdapter_UpdateAndDelete(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()
	carID := f.seedVehicle(t)

	if err := f.serviceAdapter().Add(ctx, carID, "2024-01-01", "maintenance", "Oil change", "120"); err != nil {
		t.Fatalf("failed to add service record: %v", err)
	}

	if err := f.serviceAdapter().Update(ctx, 1, carID, "2024-01-02", "maintenance", "Oil and filter", "150"); err != nil {
		t.Fatalf("failed to update service record: %v", err)
	}

	var description string
	if err := f.database.QueryRow("SELECT description FROM service_records WHERE id = 1").Scan(&description); err != nil {
		t.Fatalf("failed to read service record: %v", err)
	}
	if description != "Oil and filter" {
		t.Errorf("expected updated description, got %q", description)
	}

	if err := f.serviceAdapter().Delete(ctx, 1); err != nil {
		t.Fatalf("failed to delete service record: %v", err)
	}
	if err := f.serviceAdapter().Delete(ctx, 1); err == nil {
		t.Error("expected error deleting missing service record")
	}
}
