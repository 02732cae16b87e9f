// Package cli defines the cobra command tree. Commands parse flags into
// raw draft fields and delegate everything else to the adapters.
package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/example/garage/internal/ports/primary"
	"github.com/example/garage/internal/wire"
)

// vehicleFlags maps flag names to draft form fields.
var vehicleFlags = []struct {
	name  string
	field primary.VehicleField
	usage string
}{
	{"model", primary.VehicleFieldModel, "vehicle model (required)"},
	{"brand", primary.VehicleFieldBrand, "vehicle brand (required)"},
	{"year", primary.VehicleFieldYear, "production year (4 digits)"},
	{"vin", primary.VehicleFieldVIN, "VIN"},
	{"registration", primary.VehicleFieldRegistrationNumber, "registration number"},
	{"mileage", primary.VehicleFieldMileage, "mileage in km"},
	{"fuel", primary.VehicleFieldFuelType, "fuel type (Petrol, Diesel, LPG, Electric, Hybrid)"},
	{"engine", primary.VehicleFieldEngineCapacity, "engine capacity in liters"},
	{"power", primary.VehicleFieldPower, "power in hp"},
	{"color", primary.VehicleFieldColor, "color"},
	{"notes", primary.VehicleFieldNotes, "free-form notes"},
	{"inspection", primary.VehicleFieldInspectionDate, "inspection date"},
	{"insurance", primary.VehicleFieldInsuranceExpiry, "insurance expiry date"},
}

// VehicleCmd returns the vehicle command
func VehicleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vehicle",
		Short: "Manage vehicles",
		Long:  "Add, list, show, update, and delete vehicles in the catalogue",
	}

	cmd.AddCommand(vehicleAddCmd(), vehicleListCmd(), vehicleShowCmd(), vehicleUpdateCmd(), vehicleDeleteCmd())
	return cmd
}

func addVehicleFieldFlags(cmd *cobra.Command) {
	for _, f := range vehicleFlags {
		cmd.Flags().String(f.name, "", f.usage)
	}
	cmd.Flags().String("photo", "", "path to a photo to import")
}

// collectVehicleFields gathers only the flags the user actually set, so an
// update leaves untouched fields alone.
func collectVehicleFields(cmd *cobra.Command) map[primary.VehicleField]string {
	fields := make(map[primary.VehicleField]string)
	for _, f := range vehicleFlags {
		if cmd.Flags().Changed(f.name) {
			value, _ := cmd.Flags().GetString(f.name)
			fields[f.field] = value
		}
	}
	return fields
}

func vehicleAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new vehicle",
		RunE: func(cmd *cobra.Command, args []string) error {
			adapter, err := wire.VehicleAdapter()
			if err != nil {
				return err
			}
			photo, _ := cmd.Flags().GetString("photo")
			return adapter.Add(cmd.Context(), collectVehicleFields(cmd), photo)
		},
	}
	addVehicleFieldFlags(cmd)
	return cmd
}

func vehicleListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List vehicles",
		RunE: func(cmd *cobra.Command, args []string) error {
			adapter, err := wire.VehicleAdapter()
			if err != nil {
				return err
			}
			return adapter.List(cmd.Context())
		},
	}
}

func vehicleShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [id]",
		Short: "Show vehicle details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			adapter, err := wire.VehicleAdapter()
			if err != nil {
				return err
			}
			return adapter.Show(cmd.Context(), id)
		},
	}
}

func vehicleUpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update [id]",
		Short: "Update a vehicle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			adapter, err := wire.VehicleAdapter()
			if err != nil {
				return err
			}
			photo, _ := cmd.Flags().GetString("photo")
			return adapter.Update(cmd.Context(), id, collectVehicleFields(cmd), photo)
		},
	}
	addVehicleFieldFlags(cmd)
	return cmd
}

func vehicleDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a vehicle and its service history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			adapter, err := wire.VehicleAdapter()
			if err != nil {
				return err
			}
			return adapter.Delete(cmd.Context(), id)
		},
	}
}

func parseID(arg string) (int64, error) {
	return strconv.ParseInt(arg, 10, 64)
}
