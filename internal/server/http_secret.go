package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/alfredjeanlab/bdayd/internal/gate"
	"github.com/alfredjeanlab/bdayd/internal/session"
)

// sessionView is the client-visible slice of a gate session. Collected
// answers are never echoed back.
type sessionView struct {
	SessionID string `json:"session_id"`
	State     string `json:"state"`
	Attempts  int    `json:"attempts"`
	Error     string `json:"error,omitempty"`
}

func viewOf(id string, sess gate.Session, applyErr error) sessionView {
	v := sessionView{
		SessionID: id,
		State:     sess.State.String(),
		Attempts:  sess.Attempts,
	}
	if applyErr != nil {
		v.Error = applyErr.Error()
	}
	return v
}

// handleCreateSession handles POST /v1/secret/sessions.
func (s *Server) handleCreateSession(w http.ResponseWriter, _ *http.Request) {
	id, sess, err := s.sessions.Create()
	if err != nil {
		s.logger.Error("failed to create gate session", "err", err)
		writeError(w, http.StatusInternalServerError, "failed to create session")
		return
	}
	writeJSON(w, http.StatusCreated, viewOf(id, sess, nil))
}

// handleGetSession handles GET /v1/secret/sessions/{id}.
func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	sess, err := s.sessions.Get(id)
	if errors.Is(err, session.ErrNotFound) {
		writeError(w, http.StatusNotFound, "session not found")
		return
	}
	writeJSON(w, http.StatusOK, viewOf(id, sess, nil))
}

// handleSubmitPassword handles POST /v1/secret/sessions/{id}/password.
func (s *Server) handleSubmitPassword(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	s.applyGateEvent(w, r, gate.SubmitPassword{Value: req.Password})
}

// handleBegin handles POST /v1/secret/sessions/{id}/begin.
func (s *Server) handleBegin(w http.ResponseWriter, r *http.Request) {
	s.applyGateEvent(w, r, gate.Begin{})
}

// handleSubmitAnswer handles POST /v1/secret/sessions/{id}/answers.
func (s *Server) handleSubmitAnswer(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Answer string `json:"answer"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	s.applyGateEvent(w, r, gate.SubmitAnswer{Value: req.Answer})
}

// handleReset handles POST /v1/secret/sessions/{id}/reset.
func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	s.applyGateEvent(w, r, gate.Reset{})
}

// applyGateEvent runs one event against the session named in the path and
// writes the resulting view. Gate validation errors are part of the normal
// flow: the response carries the (possibly advanced) state plus the error
// text, with a 422 status so clients can distinguish rejected input.
func (s *Server) applyGateEvent(w http.ResponseWriter, r *http.Request, ev gate.Event) {
	id := r.PathValue("id")
	sess, err := s.sessions.Apply(id, ev)
	if errors.Is(err, session.ErrNotFound) {
		writeError(w, http.StatusNotFound, "session not found")
		return
	}

	status := http.StatusOK
	if err != nil {
		status = http.StatusUnprocessableEntity
	}
	writeJSON(w, status, viewOf(id, sess, err))
}

// handleSecretGallery handles GET /v1/secret/sessions/{id}/gallery. The
// image list is only revealed once the session is unlocked.
func (s *Server) handleSecretGallery(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	sess, err := s.sessions.Get(id)
	if errors.Is(err, session.ErrNotFound) {
		writeError(w, http.StatusNotFound, "session not found")
		return
	}
	if sess.State != gate.Unlocked {
		writeError(w, http.StatusForbidden, "content is locked")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"images": s.catalog.SecretGallery})
}
