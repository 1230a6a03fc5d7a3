package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/JusticeSenyo/movieproject/browse"
)

// detailsCmd represents the details command
var detailsCmd = &cobra.Command{
	Use:   "details <movie-id>",
	Short: "Show details, cast and box office for one movie",
	Args:  cobra.ExactArgs(1),
	RunE:  runDetails,
}

func runDetails(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil || id <= 0 {
		return fmt.Errorf("invalid movie id %q", args[0])
	}

	res := tmdbClient.MovieDetails(cmd.Context(), id)
	if !res.OK() {
		return fmt.Errorf("failed to get movie %d: %w", id, res.Err)
	}

	fmt.Print(browse.NewConsoleFormatter().FormatDetail(res.Detail))
	return nil
}
