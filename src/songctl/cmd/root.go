package cmd

import (
	"github.com/spf13/cobra"
)

func NewRootCommand(deps Dependencies) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "songctl",
		Short: "Manage the song list from the command line",
		Long: `songctl imports, exports and lists songs.

Import and export talk to the song store directly, list goes through the HTTP API.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		newImportCommand(deps),
		newExportCommand(deps),
		newListCommand(deps),
	)

	return rootCmd
}
