package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"skillflow-backend/internal/state"
)

type NotificationHandler struct {
	state *state.AppState
}

func NewNotificationHandler(appState *state.AppState) *NotificationHandler {
	return &NotificationHandler{state: appState}
}

func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"notifications": h.state.Notifications(),
		"unread":        h.state.UnreadCount(),
	})
}

func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !h.state.MarkNotificationRead(id) {
		writeJSON(w, http.StatusNotFound, errorResp("NOT_FOUND", "Notification not found", r))
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"unread": h.state.UnreadCount(),
	})
}

func (h *NotificationHandler) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	h.state.MarkAllNotificationsRead()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"unread": 0,
	})
}
