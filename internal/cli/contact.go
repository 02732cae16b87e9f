package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/garage/internal/ports/primary"
	"github.com/example/garage/internal/wire"
)

// contactFlags maps flag names to draft form fields.
var contactFlags = []struct {
	name  string
	field primary.PersonField
	usage string
}{
	{"first-name", primary.PersonFieldFirstName, "first name (required)"},
	{"last-name", primary.PersonFieldLastName, "last name (required)"},
	{"phone", primary.PersonFieldPhone, "phone number"},
	{"email", primary.PersonFieldEmail, "email address"},
	{"address", primary.PersonFieldAddress, "postal address"},
	{"note", primary.PersonFieldNote, "free-form note"},
	{"born", primary.PersonFieldDateOfBirth, "date of birth"},
}

// ContactCmd returns the contact command
func ContactCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contact",
		Short: "Manage contacts",
		Long:  "Add, list, show, update, and delete contact persons",
	}

	cmd.AddCommand(contactAddCmd(), contactListCmd(), contactShowCmd(), contactUpdateCmd(), contactDeleteCmd())
	return cmd
}

func addContactFieldFlags(cmd *cobra.Command) {
	for _, f := range contactFlags {
		cmd.Flags().String(f.name, "", f.usage)
	}
	cmd.Flags().String("photo", "", "path to a photo to import")
}

func collectContactFields(cmd *cobra.Command) map[primary.PersonField]string {
	fields := make(map[primary.PersonField]string)
	for _, f := range contactFlags {
		if cmd.Flags().Changed(f.name) {
			value, _ := cmd.Flags().GetString(f.name)
			fields[f.field] = value
		}
	}
	return fields
}

func contactAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new contact",
		RunE: func(cmd *cobra.Command, args []string) error {
			adapter, err := wire.PersonAdapter()
			if err != nil {
				return err
			}
			photo, _ := cmd.Flags().GetString("photo")
			return adapter.Add(cmd.Context(), collectContactFields(cmd), photo)
		},
	}
	addContactFieldFlags(cmd)
	return cmd
}

func contactListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List contacts",
		RunE: func(cmd *cobra.Command, args []string) error {
			adapter, err := wire.PersonAdapter()
			if err != nil {
				return err
			}
			return adapter.List(cmd.Context())
		},
	}
}

func contactShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [id]",
		Short: "Show contact details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			adapter, err := wire.PersonAdapter()
			if err != nil {
				return err
			}
			return adapter.Show(cmd.Context(), id)
		},
	}
}

func contactUpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update [id]",
		Short: "Update a contact",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			adapter, err := wire.PersonAdapter()
			if err != nil {
				return err
			}
			photo, _ := cmd.Flags().GetString("photo")
			return adapter.Update(cmd.Context(), id, collectContactFields(cmd), photo)
		},
	}
	addContactFieldFlags(cmd)
	return cmd
}

func contactDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a contact",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			adapter, err := wire.PersonAdapter()
			if err != nil {
				return err
			}
			return adapter.Delete(cmd.Context(), id)
		},
	}
}
