package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"skillflow-backend/internal/models"
	"skillflow-backend/internal/services"
	"skillflow-backend/internal/state"
)

// Advisor produces learning advice for a user, or nil when the assistant
// is unavailable.
type Advisor interface {
	LearningAdvice(ctx context.Context, user models.User) *models.LearningAdvice
}

type MatchmakerHandler struct {
	state   *state.AppState
	matches *services.MatchService
	advisor Advisor
}

func NewMatchmakerHandler(appState *state.AppState, matches *services.MatchService, advisor Advisor) *MatchmakerHandler {
	return &MatchmakerHandler{state: appState, matches: matches, advisor: advisor}
}

func (h *MatchmakerHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req models.MatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	if strings.TrimSpace(req.Query) == "" {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Query is required", r))
		return
	}

	candidates := h.matches.FindMatches(r.Context(), req.Query)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"matches": candidates,
	})
}

// Advice returns the assistant's suggestions for the current user. When
// the assistant fails the response carries an explicit null so clients
// can fall back to their static copy.
func (h *MatchmakerHandler) Advice(w http.ResponseWriter, r *http.Request) {
	advice := h.advisor.LearningAdvice(r.Context(), h.state.CurrentUser())
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"advice": advice,
	})
}
