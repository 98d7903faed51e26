package handlers

import (
	"net/http"

	"skillflow-backend/internal/services"
)

type CallHandler struct {
	call *services.CallSimulator
}

func NewCallHandler(call *services.CallSimulator) *CallHandler {
	return &CallHandler{call: call}
}

func (h *CallHandler) State(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"state": h.call.State(),
	})
}

func (h *CallHandler) Prompt(w http.ResponseWriter, r *http.Request) {
	if err := h.call.Prompt(); err != nil {
		writeJSON(w, http.StatusConflict, errorResp("CONFLICT", "A call is already in progress", r))
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"state": h.call.State(),
	})
}

func (h *CallHandler) Dial(w http.ResponseWriter, r *http.Request) {
	if err := h.call.Dial(); err != nil {
		writeJSON(w, http.StatusConflict, errorResp("CONFLICT", "Dialing requires a pending call prompt", r))
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"state": h.call.State(),
	})
}

func (h *CallHandler) Hangup(w http.ResponseWriter, r *http.Request) {
	h.call.Hangup()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"state": h.call.State(),
	})
}
