// Package browse holds the per-session view state of the movie browser and
// the transitions user actions drive through it.
package browse

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/JusticeSenyo/movieproject/tmdb"
)

// errFetchAborted stands in for a list fetch that never returned normally
var errFetchAborted = errors.New("fetch aborted")

// Controller owns one ViewState and applies user actions to it.
//
// Every list fetch takes a ticket when it is issued. Only the fetch holding the
// latest ticket may write its results and clear Loading; older fetches that
// settle late are dropped.
type Controller struct {
	api    tmdb.API
	logger zerolog.Logger

	mu      sync.Mutex
	state   ViewState
	listSeq uint64

	detailGen     uint64
	detail        *tmdb.MovieDetail
	detailPending bool
	detailCancel  context.CancelFunc
	detailWG      sync.WaitGroup

	baseCtx context.Context
	cancel  context.CancelFunc
}

// NewController creates a controller showing the trending tab with no movies
func NewController(api tmdb.API, logger zerolog.Logger) *Controller {
	ctx, cancel := context.WithCancel(context.Background())
	return &Controller{
		api:     api,
		logger:  logger,
		state:   ViewState{Category: CategoryTrending},
		baseCtx: ctx,
		cancel:  cancel,
	}
}

// State returns a copy of the current view state
func (c *Controller) State() ViewState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.clone()
}

// Initialize performs the first load of the trending list
func (c *Controller) Initialize(ctx context.Context) {
	c.load(ctx, "initialize", initialMessages,
		func(s *ViewState) { s.Category = CategoryTrending },
		c.api.TrendingMovies)
}

// ChangeCategory switches tabs and fetches that tab's list. Anything other
// than upcoming is treated as trending.
func (c *Controller) ChangeCategory(ctx context.Context, tab Category) {
	tab = normalizeTab(tab)

	fetch := c.api.TrendingMovies
	if tab == CategoryUpcoming {
		fetch = c.api.UpcomingMovies
	}

	c.load(ctx, "change_category", categoryMessages,
		func(s *ViewState) { s.Category = tab },
		fetch)
}

// Search runs a title search. Blank or whitespace-only queries are ignored
// without touching the state or the network; the return value reports
// whether a search was issued.
func (c *Controller) Search(ctx context.Context, query string) bool {
	if strings.TrimSpace(query) == "" {
		return false
	}

	c.load(ctx, "search", searchMessages,
		func(s *ViewState) {
			s.SearchQuery = query
			s.Category = CategorySearch
		},
		func(ctx context.Context) tmdb.ListResult {
			return c.api.SearchMovies(ctx, query)
		})
	return true
}

// load issues one list fetch and applies the result when it settles. The
// settle step is deferred so Loading is cleared whatever happens in fetch.
func (c *Controller) load(
	ctx context.Context,
	action string,
	msgs outcomeMessages,
	mutate func(*ViewState),
	fetch func(context.Context) tmdb.ListResult,
) {
	ticket := c.begin(mutate)

	res := tmdb.ListResult{Results: []tmdb.MovieSummary{}, Err: errFetchAborted}
	defer func() {
		c.settle(ticket, action, res, msgs)
	}()

	res = fetch(ctx)
}

// begin applies the action's own fields, raises Loading and issues a ticket
func (c *Controller) begin(mutate func(*ViewState)) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.listSeq++
	mutate(&c.state)
	c.state.Loading = true
	c.state.Error = ""
	return c.listSeq
}

// settle writes a fetch result if its ticket is still the latest one
func (c *Controller) settle(ticket uint64, action string, res tmdb.ListResult, msgs outcomeMessages) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if ticket != c.listSeq {
		c.logger.Debug().
			Str("action", action).
			Uint64("ticket", ticket).
			Uint64("latest", c.listSeq).
			Msg("Discarding stale result")
		return
	}

	switch {
	case res.Err != nil:
		c.state.Movies = []tmdb.MovieSummary{}
		c.state.Error = msgs.failed
		c.logger.Warn().Err(res.Err).Str("action", action).Msg("Failed to load movies")
	case len(res.Results) == 0:
		c.state.Movies = []tmdb.MovieSummary{}
		c.state.Error = msgs.empty
	default:
		c.state.Movies = append([]tmdb.MovieSummary(nil), res.Results...)
		c.state.Error = ""
	}
	c.state.Loading = false

	c.logger.Debug().
		Str("action", action).
		Str("category", string(c.state.Category)).
		Int("count", len(c.state.Movies)).
		Msg("Applied movie list")
}

// Close cancels any in-flight detail fetch and waits for it to return.
// Selecting a movie after Close is a no-op.
func (c *Controller) Close() {
	c.mu.Lock()
	c.cancel()
	c.resetDetailLocked()
	c.mu.Unlock()

	c.detailWG.Wait()
}
