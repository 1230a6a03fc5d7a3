package tmdb

import (
	"time"
)

// releaseDateLayout is the date format TMDB uses for release_date
const releaseDateLayout = "2006-01-02"

// MovieSummary is one entry of a list endpoint's results array
type MovieSummary struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	PosterPath  string  `json:"poster_path"`
	VoteAverage float64 `json:"vote_average"`
	ReleaseDate string  `json:"release_date"`
}

// ReleaseTime parses ReleaseDate. ok is false when the date is empty or malformed.
func (m MovieSummary) ReleaseTime() (t time.Time, ok bool) {
	if m.ReleaseDate == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(releaseDateLayout, m.ReleaseDate)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Year returns the release year, or 0 when the release date is unknown
func (m MovieSummary) Year() int {
	t, ok := m.ReleaseTime()
	if !ok {
		return 0
	}
	return t.Year()
}

// Released reports whether the movie's release date is on or before now
func (m MovieSummary) Released(now time.Time) bool {
	t, ok := m.ReleaseTime()
	return ok && !t.After(now)
}

// Genre represents a TMDB genre
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// CastMember is a single credits.cast entry
type CastMember struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Character   string `json:"character"`
	ProfilePath string `json:"profile_path"`
	Order       int    `json:"order"`
}

// Credits holds the credits appended to a details response
type Credits struct {
	Cast []CastMember `json:"cast"`
}

// MovieDetail is the flat object returned by the details endpoint
type MovieDetail struct {
	MovieSummary
	Overview     string  `json:"overview"`
	Tagline      string  `json:"tagline"`
	Budget       int64   `json:"budget"`
	Revenue      int64   `json:"revenue"`
	Runtime      int     `json:"runtime"`
	Status       string  `json:"status"`
	BackdropPath string  `json:"backdrop_path"`
	Genres       []Genre `json:"genres"`
	Credits      Credits `json:"credits"`
}

// TopCast returns at most n cast members in billing order
func (d *MovieDetail) TopCast(n int) []CastMember {
	cast := d.Credits.Cast
	if n < 0 || len(cast) <= n {
		return cast
	}
	return cast[:n]
}

// GenreNames returns the genre names in API order
func (d *MovieDetail) GenreNames() []string {
	names := make([]string, 0, len(d.Genres))
	for _, g := range d.Genres {
		names = append(names, g.Name)
	}
	return names
}

// ListResult is the outcome of a list endpoint call. Results is never nil;
// on failure it is empty and Err holds the reason.
type ListResult struct {
	Results []MovieSummary
	Err     error
}

// OK reports whether the call succeeded
func (r ListResult) OK() bool {
	return r.Err == nil
}

// DetailResult is the outcome of a details call. Detail is nil on failure.
type DetailResult struct {
	Detail *MovieDetail
	Err    error
}

// OK reports whether the call succeeded
func (r DetailResult) OK() bool {
	return r.Err == nil && r.Detail != nil
}

// listResponse is the wire shape shared by the list endpoints
type listResponse struct {
	Page         int            `json:"page"`
	Results      []MovieSummary `json:"results"`
	TotalPages   int            `json:"total_pages"`
	TotalResults int            `json:"total_results"`
}

// errorResponse is the body TMDB sends with non-200 responses
type errorResponse struct {
	StatusCode    int    `json:"status_code"`
	StatusMessage string `json:"status_message"`
	Success       bool   `json:"success"`
}
