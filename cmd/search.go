package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/omdbctl/omdbctl/filter"
	"github.com/omdbctl/omdbctl/omdb"
)

var (
	searchType string
	searchYear int
	searchPage int
	searchAll  bool
	filterExpr string
	preset     string
)

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search the OMDb catalog",
	Long: `Search OMDb by free text with optional media-type and year filters.

Results can be narrowed client-side with --filter, e.g.:

  omdbctl search batman --filter 'Year > 2000 && Type == "movie"'`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().StringVar(&searchType, "type", "", "media type filter (movie/series/episode/game)")
	searchCmd.Flags().IntVarP(&searchYear, "year", "y", 0, "release year filter")
	searchCmd.Flags().IntVar(&searchPage, "page", 1, "result page to fetch")
	searchCmd.Flags().BoolVar(&searchAll, "all", false, "follow pagination until all results are fetched")
	searchCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression")
	searchCmd.Flags().StringVarP(&preset, "preset", "p", "", "use a preset filter from config")
}

func runSearch(cmd *cobra.Command, args []string) error {
	resultFilter, err := buildFilter()
	if err != nil {
		return err
	}

	ctx := context.Background()
	page, err := client.Search(ctx, omdb.SearchRequest{
		Query: args[0],
		Type:  omdb.MediaType(searchType),
		Year:  searchYear,
		Page:  searchPage,
	})
	if err != nil {
		return err
	}

	results := page.Results
	if searchAll {
		// Chase Next until the total-result count says we have everything.
		for len(results) < page.TotalResults && len(page.Results) > 0 {
			page, err = page.Next(ctx)
			if err != nil {
				return err
			}
			results = append(results, page.Results...)
		}
	}

	if resultFilter != nil {
		results, err = applyFilter(resultFilter, results)
		if err != nil {
			return err
		}
	}

	if len(results) == 0 {
		fmt.Println("No results found.")
		return nil
	}

	fmt.Printf("\n%d of %d results:\n", len(results), page.TotalResults)
	fmt.Println(strings.Repeat("-", 80))
	for _, result := range results {
		fmt.Printf("• %s (%d) [%s] %s\n", result.Title, result.Year, result.Type, result.ImdbID)
	}

	return nil
}

// buildFilter resolves the filter expression: flag > preset > config default.
func buildFilter() (*filter.Filter, error) {
	expression := filterExpr
	if expression == "" && preset != "" {
		presetExpr, ok := cfg.Filter.Presets[preset]
		if !ok {
			return nil, fmt.Errorf("preset '%s' not found in config", preset)
		}
		expression = presetExpr
	}
	if expression == "" {
		expression = cfg.Filter.Default
	}
	if expression == "" {
		return nil, nil
	}

	compiled, err := filter.Compile(expression)
	if err != nil {
		return nil, fmt.Errorf("invalid filter expression: %w", err)
	}

	logger.Debug().Str("filter", compiled.Expression()).Msg("Filtering results")
	return compiled, nil
}

func applyFilter(f *filter.Filter, results []omdb.SearchResult) ([]omdb.SearchResult, error) {
	filtered := make([]omdb.SearchResult, 0, len(results))
	for _, result := range results {
		match, err := f.MatchResult(result)
		if err != nil {
			return nil, err
		}
		if match {
			filtered = append(filtered, result)
		}
	}
	return filtered, nil
}
