package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/garage/internal/config"
	"github.com/example/garage/internal/db"
)

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize the garage database",
		Long:  `Initialize the garage database and config at ~/.garage with the required schema.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			home, err := os.UserHomeDir()
			if err != nil {
				return fmt.Errorf("failed to get home directory: %w", err)
			}

			cfg, err := config.LoadConfig(home)
			if err != nil {
				cfg, err = config.Default()
				if err != nil {
					return err
				}
				if err := config.SaveConfig(home, cfg); err != nil {
					return err
				}
				fmt.Println("✓ Config written to ~/.garage/config.json")
			}

			fmt.Printf("Initializing garage database at %s\n", cfg.DatabasePath)

			database, err := db.Open(cfg.DatabasePath)
			if err != nil {
				return fmt.Errorf("failed to initialize database: %w", err)
			}
			defer database.Close()

			if err := os.MkdirAll(cfg.PhotoDir, 0755); err != nil {
				return fmt.Errorf("failed to create photo directory: %w", err)
			}

			fmt.Println("✓ Database initialized successfully")
			fmt.Println()
			fmt.Println("Next steps:")
			fmt.Println("  garage vehicle add --brand Toyota --model Corolla --year 2019")
			fmt.Println("  garage vehicle list")

			return nil
		},
	}
}
