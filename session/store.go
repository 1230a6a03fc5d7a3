// Package session maps browser sessions to their own view state controller.
package session

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/JusticeSenyo/movieproject/browse"
	"github.com/JusticeSenyo/movieproject/cache"
	"github.com/JusticeSenyo/movieproject/tmdb"
)

// CookieName is the cookie carrying the session id
const CookieName = "movieproject_session"

const cookieMaxAge = 30 * 24 * time.Hour

// Store owns one browse.Controller per session, bounded by an LRU. Evicted
// controllers are closed.
type Store struct {
	api      tmdb.API
	logger   zerolog.Logger
	sessions *cache.LRU[string, *browse.Controller]
}

// NewStore creates a store holding at most maxSessions controllers
func NewStore(api tmdb.API, maxSessions int, logger zerolog.Logger) *Store {
	s := &Store{
		api:    api,
		logger: logger,
	}
	s.sessions = cache.New(maxSessions, cache.WithEvictCallback(func(id string, c *browse.Controller) {
		s.logger.Debug().Str("session", id).Msg("Evicting session")
		c.Close()
	}))
	return s
}

// Controller returns the request's controller, creating a session and
// setting its cookie when the request has none. A new controller is
// initialized with the trending list before it is returned.
func (s *Store) Controller(w http.ResponseWriter, r *http.Request) *browse.Controller {
	id := ""
	if cookie, err := r.Cookie(CookieName); err == nil {
		if _, err := uuid.Parse(cookie.Value); err == nil {
			id = cookie.Value
		}
	}

	if id == "" {
		id = uuid.NewString()
		http.SetCookie(w, &http.Cookie{
			Name:     CookieName,
			Value:    id,
			Path:     "/",
			MaxAge:   int(cookieMaxAge.Seconds()),
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}

	c, created := s.sessions.GetOrCreate(id, func() *browse.Controller {
		return browse.NewController(s.api, s.logger.With().Str("session", id).Logger())
	})
	if created {
		s.logger.Debug().Str("session", id).Msg("Created session")
		c.Initialize(context.WithoutCancel(r.Context()))
	}
	return c
}

// Len returns the number of live sessions
func (s *Store) Len() int {
	return s.sessions.Size()
}

// Close closes every session's controller
func (s *Store) Close() {
	s.sessions.Clear()
}
