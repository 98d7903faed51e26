package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"skillflow-backend/internal/models"
	"skillflow-backend/internal/services"
	"skillflow-backend/internal/state"
)

type SessionHandler struct {
	state    *state.AppState
	sessions *services.SessionService
}

func NewSessionHandler(appState *state.AppState, sessions *services.SessionService) *SessionHandler {
	return &SessionHandler{state: appState, sessions: sessions}
}

func (h *SessionHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"sessions": h.state.Sessions(),
	})
}

func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	sess, ok := h.state.SessionByID(id)
	if !ok {
		writeJSON(w, http.StatusNotFound, errorResp("NOT_FOUND", "Session not found", r))
		return
	}
	writeJSON(w, http.StatusOK, sess)
}

func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	if req.PeerID == "" || req.Skill == "" {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "peer_id and skill are required", r))
		return
	}

	var scheduled *time.Time
	if req.ScheduledTime != "" {
		t, err := time.Parse(time.RFC3339, req.ScheduledTime)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "scheduled_time must be RFC 3339", r))
			return
		}
		scheduled = &t
	}

	sess, err := h.sessions.Create(r.Context(), req.PeerID, models.SessionType(req.Type), req.Skill, scheduled)
	switch err {
	case nil:
	case state.ErrInsufficientCredits:
		writeJSON(w, http.StatusPaymentRequired, errorResp("INSUFFICIENT_CREDITS", "Not enough credits for this session type", r))
		return
	case services.ErrUnknownPeer:
		writeJSON(w, http.StatusNotFound, errorResp("NOT_FOUND", "Peer not found", r))
		return
	default:
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to create session", r))
		return
	}

	writeJSON(w, http.StatusCreated, sess)
}

func (h *SessionHandler) Complete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !h.sessions.Complete(r.Context(), id) {
		writeJSON(w, http.StatusNotFound, errorResp("NOT_FOUND", "Session not found", r))
		return
	}
	sess, _ := h.state.SessionByID(id)
	writeJSON(w, http.StatusOK, sess)
}

func (h *SessionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !h.sessions.Delete(r.Context(), id) {
		writeJSON(w, http.StatusNotFound, errorResp("NOT_FOUND", "Session not found", r))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Update replaces the stored session wholesale, matching the editor's
// save-all model. Changing the schedule re-arms its reminder.
func (h *SessionHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var sess models.Session
	if err := json.NewDecoder(r.Body).Decode(&sess); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}
	sess.ID = id

	if !h.sessions.Edit(r.Context(), sess) {
		writeJSON(w, http.StatusNotFound, errorResp("NOT_FOUND", "Session not found", r))
		return
	}
	writeJSON(w, http.StatusOK, sess)
}

func (h *SessionHandler) PostMessage(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	if !h.sessions.PostMessage(r.Context(), id, req.Text) {
		writeJSON(w, http.StatusNotFound, errorResp("NOT_FOUND", "Session not found", r))
		return
	}
	sess, _ := h.state.SessionByID(id)
	writeJSON(w, http.StatusOK, sess)
}

// ──── Shared helpers ────

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func errorResp(code, message string, r *http.Request) models.ErrorResponse {
	return models.ErrorResponse{
		Error: models.APIError{
			Code:      code,
			Message:   message,
			RequestID: r.Header.Get("X-Request-ID"),
		},
	}
}
