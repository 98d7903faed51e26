package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"skillflow-backend/internal/models"
	"skillflow-backend/internal/services"
	"skillflow-backend/internal/state"
)

type MeetingHandler struct {
	state    *state.AppState
	meetings *services.MeetingService
}

func NewMeetingHandler(appState *state.AppState, meetings *services.MeetingService) *MeetingHandler {
	return &MeetingHandler{state: appState, meetings: meetings}
}

func (h *MeetingHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"meetings": h.state.Meetings(),
	})
}

func (h *MeetingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateMeetingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	meeting, err := h.meetings.Create(r.Context(), req.Topic)
	if err == services.ErrEmptyTopic {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Topic is required", r))
		return
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to create meeting", r))
		return
	}

	writeJSON(w, http.StatusCreated, meeting)
}

func (h *MeetingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !h.meetings.Delete(r.Context(), id) {
		writeJSON(w, http.StatusNotFound, errorResp("NOT_FOUND", "Meeting not found", r))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
