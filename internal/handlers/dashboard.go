package handlers

import (
	"net/http"

	"skillflow-backend/internal/models"
	"skillflow-backend/internal/state"
)

type DashboardHandler struct {
	state  *state.AppState
	bursts []models.SkillBurst
}

func NewDashboardHandler(appState *state.AppState, bursts []models.SkillBurst) *DashboardHandler {
	return &DashboardHandler{state: appState, bursts: bursts}
}

func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	user := h.state.CurrentUser()

	var active, pending, completed int
	for _, sess := range h.state.Sessions() {
		switch sess.Status {
		case models.SessionActive:
			active++
		case models.SessionPending:
			pending++
		case models.SessionCompleted:
			completed++
		}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"credits":            user.Credits,
		"impact_score":       user.ImpactScore,
		"streak":             user.Streak,
		"active_sessions":    active,
		"pending_sessions":   pending,
		"completed_sessions": completed,
		"unread":             h.state.UnreadCount(),
	})
}

// Bursts serves the live skill-burst board. The board is demo content and
// never changes at runtime.
func (h *DashboardHandler) Bursts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"bursts": h.bursts,
	})
}
