package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/umputun/nudge/pkg/rating"
)

// pendingDialog is a dialog parked by a running flow, waiting for a web
// client to answer it
type pendingDialog struct {
	id      string
	content rating.Content
	answer  chan rating.Outcome
}

// Show implements rating.Presenter. It parks the dialog for web clients and
// blocks until one posts an answer or ctx is cancelled. Cancellation
// withdraws the dialog, a stale answer posted afterwards gets a 404.
func (s *Server) Show(ctx context.Context, content rating.Content) (rating.Outcome, error) {
	d := &pendingDialog{
		id:      uuid.New().String(),
		content: content,
		answer:  make(chan rating.Outcome, 1),
	}

	s.dialogMu.Lock()
	s.pending = d
	s.dialogMu.Unlock()

	defer func() {
		s.dialogMu.Lock()
		if s.pending == d {
			s.pending = nil
		}
		s.dialogMu.Unlock()
	}()

	select {
	case outcome := <-d.answer:
		return outcome, nil
	case <-ctx.Done():
		return rating.Negative, ctx.Err()
	}
}

// dialogHandler returns the currently pending dialog, 204 when none
func (s *Server) dialogHandler(w http.ResponseWriter, r *http.Request) {
	s.dialogMu.Lock()
	d := s.pending
	s.dialogMu.Unlock()

	if d == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	RenderJSON(w, r, http.StatusOK, map[string]interface{}{
		"id":      d.id,
		"content": d.content,
	})
}

// answerHandler resolves a pending dialog with the client's choice
func (s *Server) answerHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Choice string `json:"choice"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RenderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}

	var outcome rating.Outcome
	switch req.Choice {
	case "positive":
		outcome = rating.Positive
	case "negative":
		outcome = rating.Negative
	default:
		RenderError(w, r, fmt.Errorf("choice must be positive or negative"), http.StatusBadRequest)
		return
	}

	s.dialogMu.Lock()
	d := s.pending
	if d != nil && d.id == r.PathValue("id") {
		s.pending = nil // claimed, no double answers
	} else {
		d = nil
	}
	s.dialogMu.Unlock()

	if d == nil {
		RenderError(w, r, fmt.Errorf("no pending dialog with this id"), http.StatusNotFound)
		return
	}

	d.answer <- outcome
	RenderJSON(w, r, http.StatusOK, map[string]string{"status": "answered"})
}
