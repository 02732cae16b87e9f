package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/garage/internal/cli"
	"github.com/example/garage/internal/version"
	"github.com/example/garage/internal/wire"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "garage",
		Short:   "garage - personal vehicle catalogue",
		Version: version.String(),
		Long: `garage is a CLI tool for cataloguing personally owned vehicles,
their service history, and related contacts. All data lives locally.`,
	}

	// Add subcommands
	rootCmd.AddCommand(cli.InitCmd())
	rootCmd.AddCommand(cli.VehicleCmd())
	rootCmd.AddCommand(cli.ServiceCmd())
	rootCmd.AddCommand(cli.ContactCmd())

	err := rootCmd.Execute()
	if closeErr := wire.Close(); closeErr != nil && err == nil {
		err = closeErr
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
