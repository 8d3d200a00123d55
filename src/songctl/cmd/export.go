package cmd

import (
	"fmt"
	"github.com/spf13/cobra"
	"github.com/veedubyou/songlist-be/src/shared/backup"
	"github.com/veedubyou/songlist-be/src/shared/song/storage"
)

const defaultExportDir = "backups"

func newExportCommand(deps Dependencies) *cobra.Command {
	var dest string

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Back up every song into one JSON file",
		Long: `Writes songs_<timestamp>.json holding every song, newest first.

The destination is a local directory or a Cloud Storage location like gs://bucket/prefix.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			var fileStore backup.FileStore = backup.LocalFileStore{Dir: dest}
			if bucket, prefix, ok := backup.ParseGSURL(dest); ok {
				googleStore, err := deps.OpenCloudStorage(ctx, bucket, prefix)
				if err != nil {
					return err
				}
				defer googleStore.Close()

				fileStore = googleStore
			}

			exporter := backup.NewExporter(songstorage.NewDB(deps.OpenStore()), fileStore)
			result, err := exporter.Export(ctx)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d songs to %s\n", result.SongCount, result.Location)
			return nil
		},
	}

	exportCmd.Flags().StringVar(&dest, "dest", defaultExportDir, "directory or gs://bucket/prefix to write to")
	return exportCmd
}
