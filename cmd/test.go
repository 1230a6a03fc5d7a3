package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/JusticeSenyo/movieproject/tmdb"
)

// testCmd represents the test command
var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Test connection to TMDB",
	Long:  `Verify the API key and check that the trending and upcoming lists load.`,
	RunE:  runTest,
}

func runTest(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	fmt.Printf("Testing connection to TMDB at %s...\n", cfg.TMDB.BaseURL)
	if err := tmdbClient.TestConnection(ctx); err != nil {
		return err
	}
	fmt.Println("✓ Connection successful!")

	trending, upcoming, err := probeLists(ctx, tmdbClient)

	fmt.Printf("\nTMDB Lists:\n")
	fmt.Printf("- Trending this week: %s\n", countOrError(trending))
	fmt.Printf("- Upcoming: %s\n", countOrError(upcoming))

	if err != nil {
		return fmt.Errorf("failed to load lists: %w", err)
	}
	return nil
}

// probeLists fetches both tabs concurrently. Neither fetch cancels the other,
// so each result reports on its own endpoint.
func probeLists(ctx context.Context, api tmdb.API) (trending, upcoming tmdb.ListResult, err error) {
	var g errgroup.Group
	g.Go(func() error {
		trending = api.TrendingMovies(ctx)
		return trending.Err
	})
	g.Go(func() error {
		upcoming = api.UpcomingMovies(ctx)
		return upcoming.Err
	})
	err = g.Wait()
	return trending, upcoming, err
}

func countOrError(res tmdb.ListResult) string {
	if res.Err != nil {
		return "failed (" + res.Err.Error() + ")"
	}
	return fmt.Sprintf("%d movies", len(res.Results))
}
