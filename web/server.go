// Package web serves the movie browser as server-rendered HTML.
package web

import (
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/JusticeSenyo/movieproject/config"
	"github.com/JusticeSenyo/movieproject/session"
	"github.com/JusticeSenyo/movieproject/tmdb"
)

// Server routes browser actions to the caller's session controller
type Server struct {
	cfg       config.ServerConfig
	sessions  *session.Store
	images    tmdb.ImageURLBuilder
	logger    zerolog.Logger
	templates *template.Template
	router    chi.Router
}

// NewServer parses the page templates and builds the router
func NewServer(cfg config.ServerConfig, sessions *session.Store, images tmdb.ImageURLBuilder, logger zerolog.Logger) (*Server, error) {
	s := &Server{
		cfg:      cfg,
		sessions: sessions,
		images:   images,
		logger:   logger,
	}

	tpl, err := s.parseTemplates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	s.templates = tpl

	s.routes()
	return s, nil
}

func (s *Server) routes() {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(accessLog(s.logger))
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleIndex)
	r.Get("/search", s.handleSearch)
	r.Get("/category/{tab}", s.handleCategory)
	r.Get("/movie/{id}", s.handleSelect)
	r.Get("/close", s.handleClose)
	r.Get("/healthz", s.handleHealth)

	s.router = r
}

// Handler returns the root HTTP handler
func (s *Server) Handler() http.Handler {
	return s.router
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
