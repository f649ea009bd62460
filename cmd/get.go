package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/omdbctl/omdbctl/omdb"
)

var (
	getID        string
	getTitle     string
	getYear      int
	fullPlot     bool
	withEpisodes bool
)

// getCmd represents the get command
var getCmd = &cobra.Command{
	Use:   "get",
	Short: "Fetch a single title by IMDb id or title text",
	Long: `Fetch one movie, series or episode from OMDb.

Exactly one of --id and --title must be given. For a series, --episodes
additionally fetches and prints the full episode table.`,
	RunE: runGet,
}

func init() {
	rootCmd.AddCommand(getCmd)

	getCmd.Flags().StringVarP(&getID, "id", "i", "", "IMDb id (e.g. tt0482571)")
	getCmd.Flags().StringVarP(&getTitle, "title", "t", "", "exact title text")
	getCmd.Flags().IntVarP(&getYear, "year", "y", 0, "release year filter")
	getCmd.Flags().BoolVar(&fullPlot, "full-plot", false, "request the long plot synopsis")
	getCmd.Flags().BoolVar(&withEpisodes, "episodes", false, "for a series, also fetch the episode list")
}

func runGet(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	title, err := client.Get(ctx, omdb.TitleRequest{
		ID:       getID,
		Title:    getTitle,
		Year:     getYear,
		FullPlot: fullPlot,
	})
	if err != nil {
		return err
	}

	switch record := title.(type) {
	case *omdb.Movie:
		printMovie(record)
	case *omdb.TvShow:
		printShow(record)
		if withEpisodes {
			episodes, err := record.Episodes(ctx)
			if err != nil {
				return fmt.Errorf("failed to fetch episodes: %w", err)
			}
			fmt.Println()
			printEpisodes(episodes)
		}
	case *omdb.Episode:
		printEpisode(record)
	}

	return nil
}

func printMovie(movie *omdb.Movie) {
	fmt.Printf("%s (%d)\n", movie.Title, movie.Year)
	fmt.Println(strings.Repeat("-", 80))
	fmt.Printf("  Rated:     %s\n", movie.Rated)
	fmt.Printf("  Released:  %s\n", movie.Released.Format("2006-01-02"))
	fmt.Printf("  Runtime:   %s\n", movie.Runtime)
	fmt.Printf("  Genres:    %s\n", strings.Join(movie.Genres, ", "))
	fmt.Printf("  Director:  %s\n", movie.Director)
	fmt.Printf("  Actors:    %s\n", movie.Actors)
	fmt.Printf("  Rating:    %.1f (%s votes)\n", movie.Rating, movie.Votes)
	fmt.Printf("  Plot:      %s\n", movie.Plot)
	fmt.Printf("  URL:       %s\n", movie.URL)
}

func printShow(show *omdb.TvShow) {
	printMovie(&show.Movie)
	end := "ongoing"
	if show.EndYear != nil {
		end = fmt.Sprintf("%d", *show.EndYear)
	}
	fmt.Printf("  Years:     %d - %s\n", show.StartYear, end)
	fmt.Printf("  Seasons:   %d\n", show.TotalSeasons)
}

func printEpisode(episode *omdb.Episode) {
	fmt.Printf("S%02dE%02d %s\n", episode.Season, episode.Episode, episode.Title)
	fmt.Println(strings.Repeat("-", 80))
	fmt.Printf("  Aired:   %s\n", episode.Released.Format("2006-01-02"))
	fmt.Printf("  Rating:  %.1f\n", episode.Rating)
	fmt.Printf("  IMDb id: %s\n", episode.ImdbID)
}

func printEpisodes(episodes []omdb.Episode) {
	fmt.Printf("%-8s %-45s %-12s %s\n", "EPISODE", "TITLE", "AIRED", "RATING")
	fmt.Println(strings.Repeat("-", 80))
	for _, episode := range episodes {
		title := episode.Title
		if len(title) > 43 {
			title = title[:40] + "..."
		}
		fmt.Printf("S%02dE%02d   %-45s %-12s %.1f\n",
			episode.Season, episode.Episode, title,
			episode.Released.Format("2006-01-02"), episode.Rating)
	}
}
