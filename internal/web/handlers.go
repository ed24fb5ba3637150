package web

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/inovacc/repogallery/internal/derive"
	"github.com/inovacc/repogallery/internal/gallery"
	"github.com/inovacc/repogallery/internal/model"
)

// PageData holds the data of every page template
type PageData struct {
	Title        string
	Owner        string
	Phase        string
	Problem      gallery.Problem
	Summary      string
	State        gallery.State
	AllLanguages string
	Languages    []string
	SortOptions  []SortOption
	Cards        []gallery.Card
	NoMatches    string
	LoadedAt     time.Time
}

// SortOption is one entry of the sort select
type SortOption struct {
	Value    string
	Label    string
	Selected bool
}

// ReposResponse is the JSON view of the gallery
type ReposResponse struct {
	Phase        string             `json:"phase"`
	Owner        string             `json:"owner"`
	Error        *ProblemResponse   `json:"error,omitempty"`
	Total        int                `json:"total"`
	Shown        int                `json:"shown"`
	Languages    []string           `json:"languages"`
	Filter       FilterResponse     `json:"filter"`
	Repositories []model.Repository `json:"repositories"`
}

// ProblemResponse describes why the gallery has nothing to show
type ProblemResponse struct {
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

// FilterResponse echoes the applied filter
type FilterResponse struct {
	Sort      string `json:"sort"`
	Language  string `json:"language"`
	HideForks bool   `json:"hide_forks"`
}

// stateFromQuery reads sort, language and hide_forks; invalid values fall back to defaults
func stateFromQuery(r *http.Request, languages []string) gallery.State {
	q := r.URL.Query()

	state := gallery.DefaultState()
	state.Sort = model.SortKey(q.Get("sort"))

	if lang := q.Get("language"); lang != "" {
		state.Language = lang
	}

	if v := q.Get("hide_forks"); v != "" {
		hide, err := strconv.ParseBool(v)
		state.HideForks = (err == nil && hide) || v == "on"
	}

	return state.Normalize(languages)
}

func sortOptions(selected model.SortKey) []SortOption {
	keys := model.SortKeys()

	opts := make([]SortOption, len(keys))
	for i, k := range keys {
		opts[i] = SortOption{Value: k.String(), Label: k.Label(), Selected: k == selected}
	}

	return opts
}

// handleIndex renders the page for the current phase
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	snap := s.session.read()

	data := PageData{
		Title: s.config.Owner + "'s repositories",
		Owner: s.config.Owner,
		Phase: snap.phase.String(),
	}

	switch snap.phase {
	case gallery.PhaseLoading:
		s.render(w, http.StatusOK, "loading.html", data)
		return

	case gallery.PhaseError:
		data.Problem = snap.problem
		s.render(w, http.StatusOK, "error.html", data)

		return
	}

	state := stateFromQuery(r, snap.languages)
	view := s.project(snap, state)

	data.Summary = gallery.Summary(len(snap.records), len(view))
	data.State = state
	data.AllLanguages = derive.AllLanguages
	data.Languages = snap.languages
	data.SortOptions = sortOptions(state.Sort)
	data.Cards = gallery.NewCards(view)
	data.LoadedAt = snap.loadedAt

	if len(view) == 0 {
		data.NoMatches = gallery.NoMatches
	}

	s.render(w, http.StatusOK, "gallery.html", data)
}

// handleRetry performs a full reload and sends the browser back to the gallery
func (s *Server) handleRetry(w http.ResponseWriter, r *http.Request) {
	if !s.reload() {
		s.logger.Debug("reload skipped, a load is already running")
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// handleRepos returns the projected view as JSON
func (s *Server) handleRepos(w http.ResponseWriter, r *http.Request) {
	snap := s.session.read()

	resp := ReposResponse{
		Phase:        snap.phase.String(),
		Owner:        s.config.Owner,
		Languages:    []string{},
		Repositories: []model.Repository{},
	}

	switch snap.phase {
	case gallery.PhaseLoading:
		w.Header().Set("Retry-After", "1")
		writeJSON(w, http.StatusServiceUnavailable, resp, s.logger)

		return

	case gallery.PhaseError:
		resp.Error = &ProblemResponse{Title: snap.problem.Title, Detail: snap.problem.Detail}
		writeJSON(w, http.StatusBadGateway, resp, s.logger)

		return
	}

	state := stateFromQuery(r, snap.languages)
	view := s.project(snap, state)

	resp.Total = len(snap.records)
	resp.Shown = len(view)
	resp.Languages = snap.languages
	resp.Filter = FilterResponse{Sort: state.Sort.String(), Language: state.Language, HideForks: state.HideForks}
	resp.Repositories = view

	writeJSON(w, http.StatusOK, resp, s.logger)
}

// handleHealth reports liveness
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

func writeJSON(w http.ResponseWriter, status int, v any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("failed to encode response", slog.String("error", err.Error()))
	}
}
