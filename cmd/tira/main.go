package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/tjcichra/tira-backend/internal/interfaces/cli/migrate"
	"github.com/tjcichra/tira-backend/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "tira",
		Short: "Tira - ticket tracking backend",
		Long:  `Tira is a ticket tracking backend with a built-in HTTP server and migration tools.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
