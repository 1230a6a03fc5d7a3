package tmdb

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMovieSummaryYear(t *testing.T) {
	tests := []struct {
		date string
		want int
	}{
		{"2023-07-21", 2023},
		{"", 0},
		{"not-a-date", 0},
		{"1999", 0},
	}

	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			assert.Equal(t, tt.want, MovieSummary{ReleaseDate: tt.date}.Year())
		})
	}
}

func TestMovieSummaryReleased(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	assert.True(t, MovieSummary{ReleaseDate: "2025-06-01"}.Released(now))
	assert.True(t, MovieSummary{ReleaseDate: "2001-01-01"}.Released(now))
	assert.False(t, MovieSummary{ReleaseDate: "2025-06-02"}.Released(now))
	assert.False(t, MovieSummary{}.Released(now))
}

func TestTopCast(t *testing.T) {
	d := &MovieDetail{Credits: Credits{Cast: []CastMember{
		{Name: "A"}, {Name: "B"}, {Name: "C"}, {Name: "D"}, {Name: "E"}, {Name: "F"},
	}}}

	assert.Len(t, d.TopCast(5), 5)
	assert.Equal(t, "E", d.TopCast(5)[4].Name)
	assert.Len(t, d.TopCast(10), 6)
	assert.Len(t, d.TopCast(-1), 6)
	assert.Empty(t, (&MovieDetail{}).TopCast(5))
}

func TestImageURL(t *testing.T) {
	assert.Equal(t, "https://image.tmdb.org/t/p/w500/poster.jpg", ImageURL(PosterSize, "/poster.jpg"))
	assert.Equal(t, "https://image.tmdb.org/t/p/original/back.jpg", ImageURL(BackdropSize, "back.jpg"))
	assert.Equal(t, "", ImageURL(ProfileSize, ""))

	b := NewImageURLBuilder("http://cdn.local/img/")
	assert.Equal(t, "http://cdn.local/img/w45/face.jpg", b.URL(ProfileSize, "/face.jpg"))

	assert.Equal(t, ImageURL(PosterSize, "/x.jpg"), NewImageURLBuilder("").URL(PosterSize, "/x.jpg"))
}

func TestResultOK(t *testing.T) {
	assert.True(t, ListResult{Results: []MovieSummary{}}.OK())
	assert.False(t, ListResult{Results: []MovieSummary{}, Err: ErrDecode}.OK())
	assert.True(t, DetailResult{Detail: &MovieDetail{}}.OK())
	assert.False(t, DetailResult{}.OK())
}
