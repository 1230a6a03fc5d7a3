package browse

import (
	"fmt"
	"strings"

	"github.com/JusticeSenyo/movieproject/tmdb"
)

// FormatOptions contains options for console output
type FormatOptions struct {
	ShowPosters bool
	Images      tmdb.ImageURLBuilder
}

// ConsoleFormatter renders view state as a tree for the terminal
type ConsoleFormatter struct{}

// NewConsoleFormatter creates a new console formatter
func NewConsoleFormatter() *ConsoleFormatter {
	return &ConsoleFormatter{}
}

// FormatState formats the banner and movie list of state
func (f *ConsoleFormatter) FormatState(state ViewState, options FormatOptions) string {
	var sb strings.Builder

	header := state.Category.Label()
	if state.Category == CategorySearch {
		header = fmt.Sprintf("Search: %q", state.SearchQuery)
	}
	fmt.Fprintf(&sb, "\n%s\n", header)

	if state.Error != "" {
		fmt.Fprintf(&sb, "! %s\n", state.Error)
	}

	sb.WriteString(f.FormatMovieList(state.Movies, options))
	return sb.String()
}

// FormatMovieList formats a list of movies for console display
func (f *ConsoleFormatter) FormatMovieList(movies []tmdb.MovieSummary, options FormatOptions) string {
	if len(movies) == 0 {
		return "No movies found\n"
	}

	var sb strings.Builder

	sb.WriteString("\nMovie")
	if len(movies) != 1 {
		sb.WriteString("s")
	}
	fmt.Fprintf(&sb, " (%d):\n\n", len(movies))

	for i, movie := range movies {
		isLast := i == len(movies)-1
		f.formatMovie(&sb, movie, isLast, options)

		if !isLast {
			sb.WriteString("│\n")
		}
	}

	sb.WriteString("\n")
	return sb.String()
}

// formatMovie formats a single movie entry
func (f *ConsoleFormatter) formatMovie(sb *strings.Builder, movie tmdb.MovieSummary, isLast bool, options FormatOptions) {
	prefix := "├"
	indent := "│   "
	if isLast {
		prefix = "╰"
		indent = "    "
	}

	fmt.Fprintf(sb, "%s── %s", prefix, movie.Title)
	if year := YearLabel(movie); year != "" {
		fmt.Fprintf(sb, " (%s)", year)
	}
	sb.WriteString("\n")

	fmt.Fprintf(sb, "%sID: %d | Rating: %s\n", indent, movie.ID, RatingLabel(movie.VoteAverage))

	if options.ShowPosters {
		if poster := options.Images.URL(tmdb.PosterSize, movie.PosterPath); poster != "" {
			fmt.Fprintf(sb, "%sPoster: %s\n", indent, poster)
		}
	}
}

// FormatDetail formats a movie's full details
func (f *ConsoleFormatter) FormatDetail(d *tmdb.MovieDetail) string {
	if d == nil {
		return "Movie details unavailable\n"
	}

	var sb strings.Builder

	fmt.Fprintf(&sb, "\n%s", d.Title)
	if year := YearLabel(d.MovieSummary); year != "" {
		fmt.Fprintf(&sb, " (%s)", year)
	}
	sb.WriteString("\n")

	if d.Tagline != "" {
		fmt.Fprintf(&sb, "%s\n", d.Tagline)
	}

	fmt.Fprintf(&sb, "├── Rating: %s | Runtime: %s | Status: %s\n",
		RatingLabel(d.VoteAverage), RuntimeLabel(d.Runtime), d.Status)

	if genres := d.GenreNames(); len(genres) > 0 {
		fmt.Fprintf(&sb, "├── Genres: %s\n", strings.Join(genres, ", "))
	}

	fmt.Fprintf(&sb, "├── Budget: %s | Revenue: %s\n", MoneyLabel(d.Budget), MoneyLabel(d.Revenue))

	if d.Overview != "" {
		fmt.Fprintf(&sb, "├── %s\n", d.Overview)
	}

	cast := d.TopCast(5)
	if len(cast) == 0 {
		sb.WriteString("╰── Cast: none listed\n")
		return sb.String()
	}

	sb.WriteString("╰── Cast:\n")
	for _, member := range cast {
		fmt.Fprintf(&sb, "    - %s as %s\n", member.Name, member.Character)
	}
	return sb.String()
}
