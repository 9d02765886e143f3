package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/marketmood/moodscope/pkg/scheduler"
	"github.com/marketmood/moodscope/pkg/store"
)

// getSummariesHandler returns up to N most recent day summaries, newest
// first. An empty window is a valid result, not an error.
func (s *Server) getSummariesHandler(w http.ResponseWriter, r *http.Request) {
	limit := store.Slots
	if v := r.URL.Query().Get("limit"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed <= 0 {
			RenderError(w, r, fmt.Errorf("invalid limit %q", v), http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	summaries, err := s.store.ListRecent(r.Context(), limit)
	if err != nil {
		RenderError(w, r, fmt.Errorf("failed to list summaries: %w", err), http.StatusInternalServerError)
		return
	}

	RenderJSON(w, r, http.StatusOK, map[string]interface{}{
		"summaries": summaries,
		"count":     len(summaries),
	})
}

// getTodayHandler returns the most recently analyzed day with its articles.
// "Today" is the slot with the newest summary timestamp.
func (s *Server) getTodayHandler(w http.ResponseWriter, r *http.Request) {
	articles, summary, err := s.store.Latest(r.Context())
	if errors.Is(err, store.ErrSlotNotFound) {
		RenderError(w, r, errors.New("no analysis available yet"), http.StatusNotFound)
		return
	}
	if err != nil {
		RenderError(w, r, fmt.Errorf("failed to get today's analysis: %w", err), http.StatusInternalServerError)
		return
	}

	RenderJSON(w, r, http.StatusOK, map[string]interface{}{
		"summary":  summary,
		"articles": articles,
	})
}

// getSlotArticlesHandler returns the stored articles and summary for one slot
func (s *Server) getSlotArticlesHandler(w http.ResponseWriter, r *http.Request) {
	slot, err := strconv.Atoi(r.PathValue("slot"))
	if err != nil || slot < 0 || slot >= store.Slots {
		RenderError(w, r, fmt.Errorf("invalid slot %q, expected 0-%d", r.PathValue("slot"), store.Slots-1),
			http.StatusBadRequest)
		return
	}

	articles, summary, err := s.store.Get(r.Context(), slot)
	if errors.Is(err, store.ErrSlotNotFound) {
		RenderError(w, r, fmt.Errorf("slot %d has no data", slot), http.StatusNotFound)
		return
	}
	if err != nil {
		RenderError(w, r, fmt.Errorf("failed to get slot %d: %w", slot, err), http.StatusInternalServerError)
		return
	}

	RenderJSON(w, r, http.StatusOK, map[string]interface{}{
		"slot":     slot,
		"summary":  summary,
		"articles": articles,
	})
}

// triggerAnalysisHandler starts an aggregation run in the background.
// Responds 202 when accepted and 409 when a run is already in flight.
func (s *Server) triggerAnalysisHandler(w http.ResponseWriter, r *http.Request) {
	// the run outlives the request, detach it from the request lifecycle
	err := s.trigger.TriggerNow(context.WithoutCancel(r.Context()))
	if errors.Is(err, scheduler.ErrJobRunning) {
		RenderError(w, r, err, http.StatusConflict)
		return
	}
	if err != nil {
		RenderError(w, r, fmt.Errorf("failed to trigger analysis: %w", err), http.StatusInternalServerError)
		return
	}

	RenderJSON(w, r, http.StatusAccepted, map[string]string{"status": "accepted"})
}

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]interface{}{
		"status":  "ok",
		"version": s.version,
		"time":    time.Now().UTC(),
	}

	if _, summary, err := s.store.Latest(r.Context()); err == nil {
		status["latest_day"] = summary.Timestamp.Format("2006-01-02")
	}

	RenderJSON(w, r, http.StatusOK, status)
}
