package filter

import (
	"strings"
	"time"

	"github.com/JusticeSenyo/movieproject/tmdb"
)

const dateLayout = "2006-01-02"

// helperFuncs holds the movie-independent helpers
func helperFuncs(now func() time.Time) map[string]any {
	return map[string]any{
		"daysSince": func(t time.Time) int {
			return int(now().Sub(t).Hours() / 24)
		},
		"parseDate": func(s string) time.Time {
			t, _ := time.Parse(dateLayout, s)
			return t
		},
		"hasText": func(s, substr string) bool {
			return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
		},
		"lower": strings.ToLower,
		"upper": strings.ToUpper,
	}
}

// movieEnv builds the evaluation environment for one movie. Compilation uses
// the same keys with a zero movie so names and types are checked up front.
func movieEnv(movie tmdb.MovieSummary, now func() time.Time) map[string]any {
	env := helperFuncs(now)

	env["ID"] = movie.ID
	env["Title"] = movie.Title
	env["VoteAverage"] = movie.VoteAverage
	env["ReleaseDate"] = movie.ReleaseDate
	env["HasPoster"] = movie.PosterPath != ""

	env["year"] = func() int {
		return movie.Year()
	}
	env["released"] = func() bool {
		return movie.Released(now())
	}

	return env
}
