package browse

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JusticeSenyo/movieproject/tmdb"
)

// fakeAPI implements tmdb.API with per-endpoint hooks and call counters
type fakeAPI struct {
	search   func(ctx context.Context, query string) tmdb.ListResult
	trending func(ctx context.Context) tmdb.ListResult
	upcoming func(ctx context.Context) tmdb.ListResult
	details  func(ctx context.Context, id int) tmdb.DetailResult

	searchCalls   atomic.Int32
	trendingCalls atomic.Int32
	upcomingCalls atomic.Int32
	detailCalls   atomic.Int32
}

func (f *fakeAPI) SearchMovies(ctx context.Context, query string) tmdb.ListResult {
	f.searchCalls.Add(1)
	if f.search == nil {
		return ok()
	}
	return f.search(ctx, query)
}

func (f *fakeAPI) TrendingMovies(ctx context.Context) tmdb.ListResult {
	f.trendingCalls.Add(1)
	if f.trending == nil {
		return ok()
	}
	return f.trending(ctx)
}

func (f *fakeAPI) UpcomingMovies(ctx context.Context) tmdb.ListResult {
	f.upcomingCalls.Add(1)
	if f.upcoming == nil {
		return ok()
	}
	return f.upcoming(ctx)
}

func (f *fakeAPI) MovieDetails(ctx context.Context, id int) tmdb.DetailResult {
	f.detailCalls.Add(1)
	if f.details == nil {
		return tmdb.DetailResult{Detail: &tmdb.MovieDetail{MovieSummary: tmdb.MovieSummary{ID: id}}}
	}
	return f.details(ctx, id)
}

func movies(titles ...string) []tmdb.MovieSummary {
	out := make([]tmdb.MovieSummary, 0, len(titles))
	for i, title := range titles {
		out = append(out, tmdb.MovieSummary{ID: i + 1, Title: title})
	}
	return out
}

func ok(titles ...string) tmdb.ListResult {
	return tmdb.ListResult{Results: movies(titles...)}
}

func failed() tmdb.ListResult {
	return tmdb.ListResult{Results: []tmdb.MovieSummary{}, Err: errors.New("boom")}
}

func fixed(res tmdb.ListResult) func(context.Context) tmdb.ListResult {
	return func(context.Context) tmdb.ListResult { return res }
}

func newController(t *testing.T, api *fakeAPI) *Controller {
	t.Helper()
	c := NewController(api, zerolog.Nop())
	t.Cleanup(c.Close)
	return c
}

func titles(s ViewState) []string {
	out := make([]string, 0, len(s.Movies))
	for _, m := range s.Movies {
		out = append(out, m.Title)
	}
	return out
}

func TestInitialize(t *testing.T) {
	tests := []struct {
		name       string
		result     tmdb.ListResult
		wantTitles []string
		wantError  string
	}{
		{
			name:       "results",
			result:     ok("Dune", "Alien"),
			wantTitles: []string{"Dune", "Alien"},
		},
		{
			name:       "empty results",
			result:     ok(),
			wantTitles: []string{},
			wantError:  MsgInitialEmpty,
		},
		{
			name:       "fetch failure",
			result:     failed(),
			wantTitles: []string{},
			wantError:  MsgInitialFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := &fakeAPI{trending: fixed(tt.result)}
			c := newController(t, api)

			c.Initialize(context.Background())

			s := c.State()
			assert.False(t, s.Loading)
			assert.Equal(t, CategoryTrending, s.Category)
			assert.Equal(t, tt.wantTitles, titles(s))
			assert.Equal(t, tt.wantError, s.Error)
			assert.Equal(t, int32(1), api.trendingCalls.Load())
		})
	}
}

func TestLoadingDuringFetch(t *testing.T) {
	api := &fakeAPI{}
	c := newController(t, api)

	var sawLoading, sawErrorCleared bool
	api.upcoming = func(context.Context) tmdb.ListResult {
		s := c.State()
		sawLoading = s.Loading
		sawErrorCleared = s.Error == ""
		return ok("Soon")
	}

	api.trending = fixed(failed())
	c.Initialize(context.Background())
	require.Equal(t, MsgInitialFailed, c.State().Error)

	c.ChangeCategory(context.Background(), CategoryUpcoming)

	assert.True(t, sawLoading, "loading is raised before the fetch")
	assert.True(t, sawErrorCleared, "error is cleared before the fetch")
	assert.False(t, c.State().Loading)
}

func TestChangeCategory(t *testing.T) {
	tests := []struct {
		name         string
		tab          Category
		upcoming     tmdb.ListResult
		trending     tmdb.ListResult
		wantCategory Category
		wantTitles   []string
		wantError    string
		wantTrending int32
		wantUpcoming int32
	}{
		{
			name:         "upcoming",
			tab:          CategoryUpcoming,
			upcoming:     ok("Soon"),
			wantCategory: CategoryUpcoming,
			wantTitles:   []string{"Soon"},
			wantUpcoming: 1,
		},
		{
			name:         "trending",
			tab:          CategoryTrending,
			trending:     ok("Hot", "Hotter"),
			wantCategory: CategoryTrending,
			wantTitles:   []string{"Hot", "Hotter"},
			wantTrending: 1,
		},
		{
			name:         "unknown tab falls back to trending",
			tab:          Category("popular"),
			trending:     ok("Hot"),
			wantCategory: CategoryTrending,
			wantTitles:   []string{"Hot"},
			wantTrending: 1,
		},
		{
			name:         "empty category",
			tab:          CategoryUpcoming,
			upcoming:     ok(),
			wantCategory: CategoryUpcoming,
			wantTitles:   []string{},
			wantError:    MsgCategoryEmpty,
			wantUpcoming: 1,
		},
		{
			name:         "failed category",
			tab:          CategoryUpcoming,
			upcoming:     failed(),
			wantCategory: CategoryUpcoming,
			wantTitles:   []string{},
			wantError:    MsgCategoryFailed,
			wantUpcoming: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := &fakeAPI{trending: fixed(tt.trending), upcoming: fixed(tt.upcoming)}
			c := newController(t, api)

			c.ChangeCategory(context.Background(), tt.tab)

			s := c.State()
			assert.False(t, s.Loading)
			assert.Equal(t, tt.wantCategory, s.Category)
			assert.Equal(t, tt.wantTitles, titles(s))
			assert.Equal(t, tt.wantError, s.Error)
			assert.Equal(t, tt.wantTrending, api.trendingCalls.Load())
			assert.Equal(t, tt.wantUpcoming, api.upcomingCalls.Load())
		})
	}
}

func TestFailureClearsPreviousMovies(t *testing.T) {
	api := &fakeAPI{trending: fixed(ok("Old"))}
	c := newController(t, api)
	c.Initialize(context.Background())
	require.Len(t, c.State().Movies, 1)

	api.upcoming = fixed(failed())
	c.ChangeCategory(context.Background(), CategoryUpcoming)

	s := c.State()
	assert.Empty(t, s.Movies)
	assert.Equal(t, MsgCategoryFailed, s.Error)
}

func TestSearchBlankQueryIsNoop(t *testing.T) {
	api := &fakeAPI{trending: fixed(ok("Hot"))}
	c := newController(t, api)
	c.Initialize(context.Background())
	before := c.State()

	for _, q := range []string{"", " ", "\t\n  "} {
		assert.False(t, c.Search(context.Background(), q))
	}

	assert.Equal(t, int32(0), api.searchCalls.Load())
	assert.Equal(t, before, c.State())
}

func TestSearch(t *testing.T) {
	t.Run("results", func(t *testing.T) {
		var gotQuery string
		api := &fakeAPI{search: func(_ context.Context, q string) tmdb.ListResult {
			gotQuery = q
			return ok("Alien", "Aliens")
		}}
		c := newController(t, api)

		assert.True(t, c.Search(context.Background(), "alien"))

		s := c.State()
		assert.Equal(t, "alien", gotQuery)
		assert.Equal(t, "alien", s.SearchQuery)
		assert.Equal(t, CategorySearch, s.Category)
		assert.Equal(t, []string{"Alien", "Aliens"}, titles(s))
		assert.Empty(t, s.Error)
		assert.False(t, s.Loading)
	})

	t.Run("no matches", func(t *testing.T) {
		api := &fakeAPI{search: func(context.Context, string) tmdb.ListResult { return ok() }}
		c := newController(t, api)

		c.Search(context.Background(), "zzzz")

		s := c.State()
		assert.Empty(t, s.Movies)
		assert.Equal(t, MsgSearchEmpty, s.Error)
	})

	t.Run("failure", func(t *testing.T) {
		api := &fakeAPI{search: func(context.Context, string) tmdb.ListResult { return failed() }}
		c := newController(t, api)

		c.Search(context.Background(), "alien")

		s := c.State()
		assert.Empty(t, s.Movies)
		assert.Equal(t, MsgSearchFailed, s.Error)
		assert.False(t, s.Loading)
	})
}

func TestSearchThenSwitchBackRefetchesTrending(t *testing.T) {
	trendingRound := 0
	api := &fakeAPI{
		upcoming: fixed(ok("Soon")),
		search: func(context.Context, string) tmdb.ListResult {
			return ok("Result")
		},
		trending: func(context.Context) tmdb.ListResult {
			trendingRound++
			if trendingRound == 1 {
				return ok("Hot v1")
			}
			return ok("Hot v2")
		},
	}
	c := newController(t, api)

	c.Initialize(context.Background())
	c.ChangeCategory(context.Background(), CategoryUpcoming)
	c.Search(context.Background(), "result")
	require.Equal(t, CategorySearch, c.State().Category)

	c.ChangeCategory(context.Background(), CategoryTrending)

	s := c.State()
	assert.Equal(t, CategoryTrending, s.Category)
	assert.Equal(t, []string{"Hot v2"}, titles(s))
	assert.Equal(t, int32(2), api.trendingCalls.Load())
}

// gatedFetch blocks until release is closed and signals entry on started
func gatedFetch(started chan<- struct{}, release <-chan struct{}, res tmdb.ListResult) func(context.Context) tmdb.ListResult {
	return func(context.Context) tmdb.ListResult {
		started <- struct{}{}
		<-release
		return res
	}
}

func TestStaleResultIsDiscarded(t *testing.T) {
	started := make(chan struct{}, 1)
	release := make(chan struct{})
	api := &fakeAPI{
		upcoming: gatedFetch(started, release, ok("Stale upcoming")),
		trending: fixed(ok("Fresh trending")),
	}
	c := newController(t, api)

	done := make(chan struct{})
	go func() {
		defer close(done)
		c.ChangeCategory(context.Background(), CategoryUpcoming)
	}()
	<-started

	c.ChangeCategory(context.Background(), CategoryTrending)
	require.Equal(t, []string{"Fresh trending"}, titles(c.State()))

	close(release)
	<-done

	s := c.State()
	assert.Equal(t, CategoryTrending, s.Category)
	assert.Equal(t, []string{"Fresh trending"}, titles(s))
	assert.False(t, s.Loading)
}

func TestLoadingHeldUntilLatestFetchSettles(t *testing.T) {
	firstStarted := make(chan struct{}, 1)
	firstRelease := make(chan struct{})
	secondStarted := make(chan struct{}, 1)
	secondRelease := make(chan struct{})
	api := &fakeAPI{
		trending: gatedFetch(firstStarted, firstRelease, ok("Old")),
		upcoming: gatedFetch(secondStarted, secondRelease, ok("New")),
	}
	c := newController(t, api)

	firstDone := make(chan struct{})
	go func() {
		defer close(firstDone)
		c.ChangeCategory(context.Background(), CategoryTrending)
	}()
	<-firstStarted

	secondDone := make(chan struct{})
	go func() {
		defer close(secondDone)
		c.ChangeCategory(context.Background(), CategoryUpcoming)
	}()
	<-secondStarted

	close(firstRelease)
	<-firstDone
	s := c.State()
	assert.True(t, s.Loading, "older fetch must not clear loading")
	assert.Empty(t, s.Movies)

	close(secondRelease)
	<-secondDone
	s = c.State()
	assert.False(t, s.Loading)
	assert.Equal(t, CategoryUpcoming, s.Category)
	assert.Equal(t, []string{"New"}, titles(s))
}

func TestLoadingClearedWhenFetchPanics(t *testing.T) {
	api := &fakeAPI{trending: func(context.Context) tmdb.ListResult { panic("transport exploded") }}
	c := newController(t, api)

	assert.Panics(t, func() { c.Initialize(context.Background()) })

	s := c.State()
	assert.False(t, s.Loading)
	assert.Equal(t, MsgInitialFailed, s.Error)
}

func TestStateIsACopy(t *testing.T) {
	api := &fakeAPI{trending: fixed(ok("Dune"))}
	c := newController(t, api)
	c.Initialize(context.Background())

	s := c.State()
	s.Movies[0].Title = "Changed"
	s.Error = "changed"

	assert.Equal(t, []string{"Dune"}, titles(c.State()))
	assert.Empty(t, c.State().Error)
}

func TestParseCategory(t *testing.T) {
	c, ok := ParseCategory("upcoming")
	assert.True(t, ok)
	assert.Equal(t, CategoryUpcoming, c)

	c, ok = ParseCategory("trending")
	assert.True(t, ok)
	assert.Equal(t, CategoryTrending, c)

	for _, s := range []string{"", "search", "popular"} {
		c, ok = ParseCategory(s)
		assert.False(t, ok)
		assert.Equal(t, CategoryTrending, c)
	}
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	assert.Eventually(t, cond, 2*time.Second, 5*time.Millisecond)
}
