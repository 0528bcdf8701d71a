package main

import (
	"os"

	"github.com/spf13/cobra"

	"jirabridge/internal/interfaces/cli/migrate"
	"jirabridge/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "jirabridge",
		Short: "Jirabridge - Jira webhook to customer mapping bridge",
		Long:  `Jirabridge receives Jira automation webhooks, records closed tickets as customer mapping rows, and exposes migration tooling for the backing database.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
