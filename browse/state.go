package browse

import (
	"slices"

	"github.com/JusticeSenyo/movieproject/tmdb"
)

// Category identifies which list the grid is showing
type Category string

const (
	// CategoryTrending shows this week's trending movies
	CategoryTrending Category = "trending"
	// CategoryUpcoming shows upcoming releases
	CategoryUpcoming Category = "upcoming"
	// CategorySearch shows the results of the last search
	CategorySearch Category = "search"
)

// Categories lists the browsable tabs in display order
var Categories = []Category{CategoryTrending, CategoryUpcoming}

// Label returns the human-readable tab label
func (c Category) Label() string {
	switch c {
	case CategoryUpcoming:
		return "Upcoming"
	case CategorySearch:
		return "Search"
	default:
		return "Trending"
	}
}

// normalizeTab maps anything that is not a browsable tab to trending
func normalizeTab(c Category) Category {
	if c == CategoryUpcoming {
		return CategoryUpcoming
	}
	return CategoryTrending
}

// ParseCategory parses a tab name. ok is false for anything other than
// trending or upcoming, in which case trending is returned.
func ParseCategory(s string) (Category, bool) {
	switch Category(s) {
	case CategoryTrending:
		return CategoryTrending, true
	case CategoryUpcoming:
		return CategoryUpcoming, true
	}
	return CategoryTrending, false
}

// ViewState is the complete state the page renders from
type ViewState struct {
	Movies      []tmdb.MovieSummary
	Selected    *tmdb.MovieSummary
	SearchQuery string
	Loading     bool
	Category    Category
	Error       string
}

// clone returns a copy that shares nothing with s
func (s ViewState) clone() ViewState {
	out := s
	out.Movies = slices.Clone(s.Movies)
	if s.Selected != nil {
		sel := *s.Selected
		out.Selected = &sel
	}
	return out
}

// FindMovie returns the movie with id from the current list
func (s ViewState) FindMovie(id int) (tmdb.MovieSummary, bool) {
	for _, m := range s.Movies {
		if m.ID == id {
			return m, true
		}
	}
	return tmdb.MovieSummary{}, false
}

// DetailView is what the detail overlay renders. Detail is nil until the
// details fetch has succeeded; Pending is true while it is in flight.
type DetailView struct {
	Movie   tmdb.MovieSummary
	Detail  *tmdb.MovieDetail
	Pending bool
}

// Messages shown in the error banner
const (
	MsgInitialEmpty   = "No movies found. Please try again later."
	MsgInitialFailed  = "Failed to load movies. Please try again later."
	MsgCategoryEmpty  = "No movies found for this category."
	MsgCategoryFailed = "Failed to load movies. Please try again."
	MsgSearchEmpty    = "No movies found matching your search."
	MsgSearchFailed   = "Search failed. Please try again."
)

// outcomeMessages pairs the banner text for an empty and a failed fetch
type outcomeMessages struct {
	empty  string
	failed string
}

var (
	initialMessages  = outcomeMessages{empty: MsgInitialEmpty, failed: MsgInitialFailed}
	categoryMessages = outcomeMessages{empty: MsgCategoryEmpty, failed: MsgCategoryFailed}
	searchMessages   = outcomeMessages{empty: MsgSearchEmpty, failed: MsgSearchFailed}
)
