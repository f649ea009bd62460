package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/omdbctl/omdbctl/omdb"
)

// episodesCmd represents the episodes command
var episodesCmd = &cobra.Command{
	Use:   "episodes <imdb-id>",
	Short: "List every episode of a series",
	Long:  `Fetch a series by IMDb id and print its full per-season episode table.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runEpisodes,
}

func init() {
	rootCmd.AddCommand(episodesCmd)
}

func runEpisodes(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	title, err := client.Get(ctx, omdb.TitleRequest{ID: args[0]})
	if err != nil {
		return err
	}

	show, ok := title.(*omdb.TvShow)
	if !ok {
		return fmt.Errorf("%s is a %s, not a series", args[0], title.MediaType())
	}

	episodes, err := show.Episodes(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("%s (%s) — %d seasons\n\n", show.Title, show.YearText, show.TotalSeasons)
	printEpisodes(episodes)
	return nil
}
