package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/manideepv28/CustomerSupportPortal/internal/interfaces/cli/migrate"
	"github.com/manideepv28/CustomerSupportPortal/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "portal",
		Short: "Customer support portal",
		Long:  `Customer support portal with ticketing, FAQs, and a chat assistant.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
