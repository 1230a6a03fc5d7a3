package tmdb

import (
	"context"
)

// API defines the catalog operations used by the view state controller
type API interface {
	// SearchMovies searches the catalog by title
	SearchMovies(ctx context.Context, query string) ListResult

	// TrendingMovies retrieves this week's trending movies
	TrendingMovies(ctx context.Context) ListResult

	// UpcomingMovies retrieves upcoming releases
	UpcomingMovies(ctx context.Context) ListResult

	// MovieDetails retrieves one movie with its credits embedded
	MovieDetails(ctx context.Context, id int) DetailResult
}
