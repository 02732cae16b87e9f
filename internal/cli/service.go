package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/garage/internal/wire"
)

// ServiceCmd returns the service command
func ServiceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "service",
		Short: "Manage service history",
		Long:  "Add, list, update, and delete maintenance records for a vehicle",
	}

	cmd.AddCommand(serviceAddCmd(), serviceListCmd(), serviceUpdateCmd(), serviceDeleteCmd())
	return cmd
}

func addServiceFieldFlags(cmd *cobra.Command) {
	cmd.Flags().String("date", "", "service date (required)")
	cmd.Flags().String("type", "", "service type, e.g. oil change (required)")
	cmd.Flags().String("description", "", "what was done (required)")
	cmd.Flags().String("cost", "", "cost, must be greater than zero (required)")
}

func serviceAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a service record",
		RunE: func(cmd *cobra.Command, args []string) error {
			carID, err := cmd.Flags().GetInt64("vehicle")
			if err != nil {
				return err
			}
			adapter, err := wire.ServiceAdapter()
			if err != nil {
				return err
			}
			date, _ := cmd.Flags().GetString("date")
			recordType, _ := cmd.Flags().GetString("type")
			description, _ := cmd.Flags().GetString("description")
			cost, _ := cmd.Flags().GetString("cost")
			return adapter.Add(cmd.Context(), carID, date, recordType, description, cost)
		},
	}
	cmd.Flags().Int64("vehicle", 0, "owning vehicle id (required)")
	_ = cmd.MarkFlagRequired("vehicle")
	addServiceFieldFlags(cmd)
	return cmd
}

func serviceListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List service records for a vehicle, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			carID, err := cmd.Flags().GetInt64("vehicle")
			if err != nil {
				return err
			}
			adapter, err := wire.ServiceAdapter()
			if err != nil {
				return err
			}
			return adapter.List(cmd.Context(), carID)
		},
	}
	cmd.Flags().Int64("vehicle", 0, "owning vehicle id (required)")
	_ = cmd.MarkFlagRequired("vehicle")
	return cmd
}

func serviceUpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update [id]",
		Short: "Update a service record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			carID, err := cmd.Flags().GetInt64("vehicle")
			if err != nil {
				return err
			}
			adapter, err := wire.ServiceAdapter()
			if err != nil {
				return err
			}
			date, _ := cmd.Flags().GetString("date")
			recordType, _ := cmd.Flags().GetString("type")
			description, _ := cmd.Flags().GetString("description")
			cost, _ := cmd.Flags().GetString("cost")
			return adapter.Update(cmd.Context(), id, carID, date, recordType, description, cost)
		},
	}
	cmd.Flags().Int64("vehicle", 0, "owning vehicle id (required)")
	_ = cmd.MarkFlagRequired("vehicle")
	addServiceFieldFlags(cmd)
	return cmd
}

func serviceDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a service record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			adapter, err := wire.ServiceAdapter()
			if err != nil {
				return err
			}
			return adapter.Delete(cmd.Context(), id)
		},
	}
}
