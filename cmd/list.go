package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/JusticeSenyo/movieproject/browse"
	"github.com/JusticeSenyo/movieproject/filter"
)

var (
	searchQuery string
	filterExpr  string
	showPosters bool
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list [trending|upcoming]",
	Short: "List trending or upcoming movies, or search by title",
	Long: `List the movies of a tab, or the results of a title search with --search.
Filter expressions can narrow the list, for example:

  movieproject list upcoming --filter 'VoteAverage >= 7 and year() >= 2020'`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{string(browse.CategoryTrending), string(browse.CategoryUpcoming)},
	RunE:      runList,
}

func init() {
	listCmd.Flags().StringVarP(&searchQuery, "search", "s", "", "search movies by title")
	listCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression")
	listCmd.Flags().BoolVar(&showPosters, "posters", false, "show poster URLs")
}

func runList(cmd *cobra.Command, args []string) error {
	var f *filter.Filter
	if filterExpr != "" {
		var err error
		f, err = filter.NewCompiler().Compile(filterExpr)
		if err != nil {
			return fmt.Errorf("invalid filter expression: %w", err)
		}
	}

	ctx := cmd.Context()

	controller := browse.NewController(tmdbClient, logger)
	defer controller.Close()

	switch {
	case searchQuery != "":
		if !controller.Search(ctx, searchQuery) {
			return fmt.Errorf("search query is blank")
		}
	case len(args) == 1:
		tab, ok := browse.ParseCategory(args[0])
		if !ok {
			return fmt.Errorf("unknown category %q (want trending or upcoming)", args[0])
		}
		controller.ChangeCategory(ctx, tab)
	default:
		controller.Initialize(ctx)
	}

	state := controller.State()
	if f != nil {
		before := len(state.Movies)
		state.Movies = f.Apply(state.Movies)
		logger.Debug().
			Str("filter", f.Expression()).
			Int("before", before).
			Int("after", len(state.Movies)).
			Msg("Applied filter")
	}

	formatter := browse.NewConsoleFormatter()
	fmt.Print(formatter.FormatState(state, browse.FormatOptions{
		ShowPosters: showPosters,
		Images:      imageURLs(),
	}))

	return nil
}
