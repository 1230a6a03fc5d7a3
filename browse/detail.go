package browse

import (
	"context"

	"github.com/JusticeSenyo/movieproject/tmdb"
)

// SelectMovie opens the detail overlay for movie and fetches its details in
// the background. A previous selection's fetch is cancelled.
func (c *Controller) SelectMovie(movie tmdb.MovieSummary) {
	c.mu.Lock()
	if c.baseCtx.Err() != nil {
		c.mu.Unlock()
		return
	}
	c.resetDetailLocked()

	gen := c.detailGen
	selected := movie
	c.state.Selected = &selected
	c.detailPending = true

	ctx, cancel := context.WithCancel(c.baseCtx)
	c.detailCancel = cancel
	c.detailWG.Add(1)
	c.mu.Unlock()

	go func() {
		defer c.detailWG.Done()
		defer cancel()

		res := c.api.MovieDetails(ctx, movie.ID)
		c.applyDetail(gen, movie.ID, res)
	}()
}

// applyDetail stores a detail result unless the overlay moved on meanwhile
func (c *Controller) applyDetail(gen uint64, id int, res tmdb.DetailResult) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.detailGen {
		c.logger.Debug().Int("movie_id", id).Msg("Discarding detail for closed overlay")
		return
	}

	c.detailPending = false
	if res.Detail == nil {
		// The overlay keeps showing only its close control
		c.logger.Warn().Err(res.Err).Int("movie_id", id).Msg("Movie details unavailable")
		return
	}
	c.detail = res.Detail
}

// Deselect closes the overlay and discards any fetched detail
func (c *Controller) Deselect() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.resetDetailLocked()
	c.state.Selected = nil
}

// resetDetailLocked cancels the running detail fetch and forgets its result
func (c *Controller) resetDetailLocked() {
	if c.detailCancel != nil {
		c.detailCancel()
		c.detailCancel = nil
	}
	c.detailGen++
	c.detail = nil
	c.detailPending = false
}

// Detail returns what the overlay should show. ok is false when no movie is
// selected. The returned Detail is shared and must not be modified.
func (c *Controller) Detail() (view DetailView, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.Selected == nil {
		return DetailView{}, false
	}
	return DetailView{
		Movie:   *c.state.Selected,
		Detail:  c.detail,
		Pending: c.detailPending,
	}, true
}
