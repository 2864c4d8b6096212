package main

import (
	"os"

	"github.com/spf13/cobra"

	"folios/internal/interfaces/cli/migrate"
	"folios/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "folios",
		Short: "Folios - service desk folio tracking",
		Long:  `Folios is a folio tracking service with an HTTP API, pluggable storage backends, and schema management commands.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
