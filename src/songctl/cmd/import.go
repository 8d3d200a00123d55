package cmd

import (
	"fmt"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/veedubyou/songlist-be/src/shared/backup"
	"github.com/veedubyou/songlist-be/src/shared/song/storage"
	"os"
)

func newImportCommand(deps Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "import <songs.json>",
		Short: "Create songs from a JSON file",
		Long: `Reads {"songs": [...]} and creates every entry as a new song.

Entries need a name and at least one singer. Invalid entries are reported and skipped.
An export file can be imported as is, songs get new IDs and creation times.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := os.Open(args[0])
			if err != nil {
				return errors.Wrapf(err, "Failed to open %s", args[0])
			}
			defer file.Close()

			importer := backup.NewImporter(songstorage.NewDB(deps.OpenStore()))
			report, err := importer.Import(cmd.Context(), file)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Imported %d songs, %d failed\n", len(report.Imported), len(report.Failures))
			for _, failure := range report.Failures {
				fmt.Fprintf(out, "  #%d %q: %v\n", failure.Index, failure.Name, failure.Err)
			}

			return nil
		},
	}
}
