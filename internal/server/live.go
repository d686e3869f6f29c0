package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/ziadkadry99/folio/internal/collection"
	"github.com/ziadkadry99/folio/internal/interact"
	"github.com/ziadkadry99/folio/internal/pages"
	"github.com/ziadkadry99/folio/internal/render"
)

// liveMessage is sent after the session opens and after every event.
type liveMessage struct {
	Session string               `json:"session"`
	State   *collection.Snapshot `json:"state,omitempty"`
	Tree    *render.Node         `json:"tree,omitempty"`
	Records []pages.Entry        `json:"records,omitempty"`
	Error   string               `json:"error,omitempty"`
}

func (s *Server) upgrader() *websocket.Upgrader {
	u := &websocket.Upgrader{}
	if s.cfg.AllowAll {
		u.CheckOrigin = func(r *http.Request) bool { return true }
	}
	return u
}

// handleLive runs one interactive session over a websocket. The session's
// view is owned by this handler's goroutine; events are applied in the
// order they are read.
func (s *Server) handleLive(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "page")
	p, err := pages.Lookup(name)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	v, err := p.Open(r.Context(), s.cfg.Env)
	if err != nil {
		s.metrics.LoadFailures.WithLabelValues(name).Inc()
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}

	conn, err := s.upgrader().Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", zap.String("page", name), zap.Error(err))
		return
	}
	defer conn.Close()

	session := uuid.NewString()
	logger := s.logger.With(zap.String("page", name), zap.String("session", session))
	s.metrics.LiveSessions.Inc()
	defer s.metrics.LiveSessions.Dec()
	logger.Debug("live session opened")

	if !s.sendState(conn, logger, session, v) {
		return
	}

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Warn("websocket read failed", zap.Error(err))
			}
			logger.Debug("live session closed")
			return
		}

		var ev interact.Event
		if err := json.Unmarshal(msg, &ev); err != nil {
			s.sendError(conn, logger, session, "invalid message format")
			continue
		}

		err = v.Dispatch(ev)
		s.metrics.ObserveEvent(name, string(ev.Type), err)
		if err != nil {
			s.sendError(conn, logger, session, err.Error())
			continue
		}
		if !s.sendState(conn, logger, session, v) {
			return
		}
	}
}

func (s *Server) sendState(conn *websocket.Conn, logger *zap.Logger, session string, v pages.View) bool {
	snap := v.Snapshot()
	msg := liveMessage{
		Session: session,
		State:   &snap,
		Tree:    v.Tree(),
		Records: v.Visible(),
	}
	if err := conn.WriteJSON(msg); err != nil {
		logger.Warn("websocket write failed", zap.Error(err))
		return false
	}
	return true
}

func (s *Server) sendError(conn *websocket.Conn, logger *zap.Logger, session, message string) {
	if err := conn.WriteJSON(liveMessage{Session: session, Error: message}); err != nil {
		logger.Warn("websocket write failed", zap.Error(err))
	}
}
