package web

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/JusticeSenyo/movieproject/browse"
)

// actionContext detaches a transition from the request so a closed browser
// tab does not abort the fetch it started.
func actionContext(r *http.Request) context.Context {
	return context.WithoutCancel(r.Context())
}

func redirectHome(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	c := s.sessions.Controller(w, r)
	state := c.State()
	detail, selected := c.Detail()
	s.render(w, r, s.newPage(state, detail, selected))
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	c := s.sessions.Controller(w, r)
	query := r.URL.Query().Get("q")
	if !c.Search(actionContext(r), query) {
		s.logger.Debug().Str("request_id", RequestID(r.Context())).Msg("Ignoring blank search")
	}
	redirectHome(w, r)
}

func (s *Server) handleCategory(w http.ResponseWriter, r *http.Request) {
	c := s.sessions.Controller(w, r)
	tab, ok := browse.ParseCategory(chi.URLParam(r, "tab"))
	if !ok {
		s.logger.Debug().Str("tab", chi.URLParam(r, "tab")).Msg("Unknown tab, showing trending")
	}
	c.ChangeCategory(actionContext(r), tab)
	redirectHome(w, r)
}

func (s *Server) handleSelect(w http.ResponseWriter, r *http.Request) {
	c := s.sessions.Controller(w, r)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid movie id", http.StatusBadRequest)
		return
	}

	// Only movies on the current grid can be opened
	movie, found := c.State().FindMovie(id)
	if !found {
		s.logger.Debug().Int("movie_id", id).Msg("Movie not in current list")
		redirectHome(w, r)
		return
	}

	c.SelectMovie(movie)
	redirectHome(w, r)
}

func (s *Server) handleClose(w http.ResponseWriter, r *http.Request) {
	s.sessions.Controller(w, r).Deselect()
	redirectHome(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
