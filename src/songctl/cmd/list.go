package cmd

import (
	"fmt"
	"github.com/spf13/cobra"
	"github.com/veedubyou/songlist-be/src/client/songclient"
	"github.com/veedubyou/songlist-be/src/shared/song/query"
	"strings"
	"text/tabwriter"
)

func newListCommand(deps Dependencies) *cobra.Command {
	var (
		server  string
		filters songquery.Filters
		sort    string
	)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Print the song list from a running server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			order, err := songquery.ParseOrder(sort)
			if err != nil {
				return err
			}

			if server == "" {
				server = deps.ServerURL()
			}

			client := songclient.NewClient(server, deps.Password(), nil)
			controller := songclient.NewController(client, nil)

			songs, err := controller.Songs(cmd.Context(), true, songquery.Query{
				Filters: filters,
				Order:   order,
				Locale:  songquery.DefaultLocale,
			})
			if err != nil {
				return err
			}

			writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(writer, "NAME\tSINGERS\tKEY\tTAGS\tFEATURED")
			for _, song := range songs {
				featured := ""
				if song.Featured {
					featured = "*"
				}

				fmt.Fprintf(writer, "%s\t%s\t%+d\t%s\t%s\n",
					song.Name,
					strings.Join(song.Singers, ", "),
					song.Key,
					strings.Join(song.Tags, ", "),
					featured)
			}

			if err := writer.Flush(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%d songs\n", len(songs))
			return nil
		},
	}

	flags := listCmd.Flags()
	flags.StringVar(&server, "server", "", "song list server URL")
	flags.StringVar(&filters.Name, "name", "", "only songs whose name contains this")
	flags.StringVar(&filters.Singer, "singer", "", "only songs with a singer containing this")
	flags.StringVar(&filters.Tag, "tag", "", "only songs with a tag containing this")
	flags.BoolVar(&filters.FeaturedOnly, "featured", false, "only featured songs")
	flags.StringVar(&sort, "sort", string(songquery.OrderRecent), "recent or canonical")

	return listCmd
}
