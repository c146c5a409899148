package main

import (
	"os"

	"github.com/spf13/cobra"

	"fixtrack/internal/interfaces/cli/admin"
	"fixtrack/internal/interfaces/cli/migrate"
	"fixtrack/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "fixtrack",
		Short: "FixTrack - repair shop management service",
		Long:  `FixTrack tracks repair tickets from intake to delivery, with technician accounts, shop accounting and notifications.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		admin.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
