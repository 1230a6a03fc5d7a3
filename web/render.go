package web

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/JusticeSenyo/movieproject/browse"
	"github.com/JusticeSenyo/movieproject/tmdb"
)

//go:embed templates/*.html
var templateFS embed.FS

// castLimit is how many cast members the overlay lists
const castLimit = 5

type tabLink struct {
	Href   string
	Label  string
	Active bool
}

type pageData struct {
	Title    string
	State    browse.ViewState
	Tabs     []tabLink
	Selected bool
	Detail   browse.DetailView
	Refresh  int
}

func (s *Server) newPage(state browse.ViewState, detail browse.DetailView, selected bool) pageData {
	tabs := make([]tabLink, 0, len(browse.Categories))
	for _, c := range browse.Categories {
		tabs = append(tabs, tabLink{
			Href:   "/category/" + string(c),
			Label:  c.Label(),
			Active: state.Category == c,
		})
	}

	page := pageData{
		Title:    "MovieBuzzFeed",
		State:    state,
		Tabs:     tabs,
		Selected: selected,
		Detail:   detail,
	}
	if state.Loading || (selected && detail.Pending) {
		page.Refresh = s.cfg.RefreshSeconds
	}
	return page
}

func (s *Server) parseTemplates() (*template.Template, error) {
	funcs := template.FuncMap{
		"poster": func(path string) string {
			return s.images.URL(tmdb.PosterSize, path)
		},
		"backdrop": func(path string) string {
			return s.images.URL(tmdb.BackdropSize, path)
		},
		"profile": func(path string) string {
			return s.images.URL(tmdb.ProfileSize, path)
		},
		"year":    browse.YearLabel,
		"rating":  browse.RatingLabel,
		"money":   browse.MoneyLabel,
		"runtime": browse.RuntimeLabel,
		"topCast": func(d *tmdb.MovieDetail) []tmdb.CastMember {
			return d.TopCast(castLimit)
		},
	}
	return template.New("page").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
}

// render executes into a buffer so a template error never leaves a half
// written page behind.
func (s *Server) render(w http.ResponseWriter, r *http.Request, page pageData) {
	var buf bytes.Buffer
	if err := s.templates.ExecuteTemplate(&buf, "layout", page); err != nil {
		s.logger.Error().Err(err).Str("request_id", RequestID(r.Context())).Msg("Failed to render page")
		http.Error(w, "failed to render page", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = buf.WriteTo(w)
}
