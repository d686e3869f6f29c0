package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/ziadkadry99/folio/internal/collection"
	"github.com/ziadkadry99/folio/internal/interact"
	"github.com/ziadkadry99/folio/internal/pages"
	"github.com/ziadkadry99/folio/internal/render"
)

// pageInfo describes one page in the /api/pages listing.
type pageInfo struct {
	Name        string   `json:"name"`
	Title       string   `json:"title"`
	Path        string   `json:"path"`
	Interactive bool     `json:"interactive"`
	Filters     []string `json:"filters,omitempty"`
	Vocabulary  []string `json:"vocabulary,omitempty"`
	Total       int      `json:"total"`
	Error       string   `json:"error,omitempty"`
}

// pageResponse is the JSON body of GET /api/pages/{page}.
type pageResponse struct {
	Page    string              `json:"page"`
	State   collection.Snapshot `json:"state"`
	Records []pages.Entry       `json:"records"`
	Tree    *render.Node        `json:"tree"`
}

func (s *Server) handleListPages(w http.ResponseWriter, r *http.Request) {
	all := pages.All()
	out := make([]pageInfo, 0, len(all))
	for _, p := range all {
		info := pageInfo{Name: p.Name, Title: p.Title, Path: p.Path, Interactive: p.Interactive}
		v, err := p.Open(r.Context(), s.cfg.Env)
		if err != nil {
			s.metrics.LoadFailures.WithLabelValues(p.Name).Inc()
			info.Error = err.Error()
		} else {
			snap := v.Snapshot()
			info.Filters = snap.Filters
			info.Vocabulary = snap.Vocabulary
			info.Total = snap.Total
		}
		out = append(out, info)
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	name, v, ok := s.openQueried(w, r, false)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, pageResponse{
		Page:    name,
		State:   v.Snapshot(),
		Records: v.Visible(),
		Tree:    v.Tree(),
	})
}

func (s *Server) handleFragment(w http.ResponseWriter, r *http.Request) {
	_, v, ok := s.openQueried(w, r, true)
	if !ok {
		return
	}
	fragment, err := render.HTML(v.Tree())
	if err != nil {
		s.logger.Error("render failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "render failed")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(fragment))
}

// openQueried opens the page named in the URL and replays the selection
// from the query string (filter, tag..., q). It writes the error response
// itself and reports whether the caller should continue. Load failures on
// the fragment endpoint answer with the page's error placeholder.
func (s *Server) openQueried(w http.ResponseWriter, r *http.Request, fragment bool) (string, pages.View, bool) {
	name := chi.URLParam(r, "page")
	p, err := pages.Lookup(name)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return name, nil, false
	}

	v, err := p.Open(r.Context(), s.cfg.Env)
	if err != nil {
		s.metrics.LoadFailures.WithLabelValues(name).Inc()
		s.logger.Warn("page load failed", zap.String("page", name), zap.Error(err))
		if fragment {
			failed, _ := render.HTML(p.FailedTree())
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.WriteHeader(http.StatusBadGateway)
			w.Write([]byte(failed))
			return name, nil, false
		}
		writeError(w, http.StatusBadGateway, err.Error())
		return name, nil, false
	}

	q := r.URL.Query()
	events := interact.QueryEvents(q.Get("filter"), q["tag"], q.Get("q"))
	if len(events) > 0 && !p.Interactive {
		writeError(w, http.StatusBadRequest, pages.ErrNotInteractive.Error())
		return name, nil, false
	}
	for _, ev := range events {
		err := v.Dispatch(ev)
		s.metrics.ObserveEvent(name, string(ev.Type), err)
		if err != nil {
			writeError(w, statusFor(err), err.Error())
			return name, nil, false
		}
	}
	return name, v, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// statusFor maps a dispatch error to an HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, collection.ErrUnknownFilter),
		errors.Is(err, interact.ErrUnknownEvent),
		errors.Is(err, pages.ErrNotInteractive):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
