package server

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/umputun/nudge/pkg/rating"
)

// statusHandler returns server status with the scheduler state snapshot
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	state, err := s.rater.State(r.Context())
	if err != nil {
		log.Printf("[ERROR] failed to get rating state: %v", err)
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}

	status := map[string]interface{}{
		"status":  "ok",
		"version": s.version,
		"time":    time.Now().UTC(),
		"rating":  state,
	}
	RenderJSON(w, r, http.StatusOK, status)
}

// actionHandler logs one user action and reports the updated count
func (s *Server) actionHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := s.rater.LogUserAction(ctx); err != nil {
		log.Printf("[ERROR] failed to log user action: %v", err)
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}

	state, err := s.rater.State(ctx)
	if err != nil {
		log.Printf("[ERROR] failed to get rating state: %v", err)
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	RenderJSON(w, r, http.StatusOK, map[string]int{"actions": state.Actions})
}

// flowHandler starts a rating flow in the background. The flow's dialogs are
// delivered via the dialog endpoints, only one flow runs at a time.
func (s *Server) flowHandler(w http.ResponseWriter, r *http.Request) {
	if !s.flowActive.CompareAndSwap(false, true) {
		RenderError(w, r, fmt.Errorf("rating flow already in progress"), http.StatusConflict)
		return
	}

	flowID := uuid.New().String()
	go func() {
		defer s.flowActive.Store(false)
		listener := func(e rating.Event) { s.appendEvent(flowID, e) }
		if err := s.rater.StartRatingFlow(s.flowContext(), listener); err != nil {
			log.Printf("[ERROR] rating flow %s failed: %v", flowID, err)
		}
	}()

	RenderJSON(w, r, http.StatusAccepted, map[string]string{"flow_id": flowID})
}

// eventsHandler returns recent flow events, oldest first
func (s *Server) eventsHandler(w http.ResponseWriter, r *http.Request) {
	s.eventsMu.Lock()
	events := make([]FlowEvent, len(s.events))
	copy(events, s.events)
	s.eventsMu.Unlock()

	RenderJSON(w, r, http.StatusOK, events)
}

// resetHandler clears the persisted rating state
func (s *Server) resetHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.rater.Reset(r.Context()); err != nil {
		log.Printf("[ERROR] failed to reset rating state: %v", err)
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	RenderJSON(w, r, http.StatusOK, map[string]string{"status": "reset"})
}

func (s *Server) appendEvent(flowID string, e rating.Event) {
	s.eventsMu.Lock()
	defer s.eventsMu.Unlock()

	s.events = append(s.events, FlowEvent{Flow: flowID, Event: e.String(), Time: time.Now().UTC()})
	if len(s.events) > maxEvents {
		s.events = s.events[len(s.events)-maxEvents:]
	}
}
