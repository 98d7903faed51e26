package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"skillflow-backend/internal/models"
	"skillflow-backend/internal/services"
	"skillflow-backend/internal/state"
)

type ProfileHandler struct {
	state   *state.AppState
	profile *services.ProfileService
}

func NewProfileHandler(appState *state.AppState, profile *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{state: appState, profile: profile}
}

func (h *ProfileHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.state.CurrentUser())
}

func (h *ProfileHandler) ListPeers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"peers": h.state.Peers(),
	})
}

func (h *ProfileHandler) BeginDraft(w http.ResponseWriter, r *http.Request) {
	surface, ok := draftSurface(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Unknown draft surface", r))
		return
	}
	writeJSON(w, http.StatusCreated, h.profile.BeginDraft(surface))
}

func (h *ProfileHandler) GetDraft(w http.ResponseWriter, r *http.Request) {
	surface, ok := draftSurface(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Unknown draft surface", r))
		return
	}
	draft, ok := h.profile.Draft(surface)
	if !ok {
		writeJSON(w, http.StatusNotFound, errorResp("NOT_FOUND", "No draft in progress", r))
		return
	}
	writeJSON(w, http.StatusOK, draft)
}

func (h *ProfileHandler) SetIdentity(w http.ResponseWriter, r *http.Request) {
	surface, ok := draftSurface(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Unknown draft surface", r))
		return
	}

	var req struct {
		Name   string `json:"name"`
		Bio    string `json:"bio"`
		Avatar string `json:"avatar"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	if err := h.profile.SetIdentity(surface, req.Name, req.Bio, req.Avatar); err != nil {
		writeJSON(w, http.StatusNotFound, errorResp("NOT_FOUND", "No draft in progress", r))
		return
	}
	draft, _ := h.profile.Draft(surface)
	writeJSON(w, http.StatusOK, draft)
}

func (h *ProfileHandler) AddSkill(w http.ResponseWriter, r *http.Request) {
	surface, ok := draftSurface(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Unknown draft surface", r))
		return
	}
	list := chi.URLParam(r, "list")

	var skill models.Skill
	if err := json.NewDecoder(r.Body).Decode(&skill); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	switch err := h.profile.AddSkill(surface, list, skill); err {
	case nil:
	case services.ErrNoDraft:
		writeJSON(w, http.StatusNotFound, errorResp("NOT_FOUND", "No draft in progress", r))
		return
	case services.ErrUnknownList:
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Unknown skill list", r))
		return
	default:
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to add skill", r))
		return
	}
	draft, _ := h.profile.Draft(surface)
	writeJSON(w, http.StatusOK, draft)
}

func (h *ProfileHandler) RemoveSkill(w http.ResponseWriter, r *http.Request) {
	surface, ok := draftSurface(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Unknown draft surface", r))
		return
	}
	list := chi.URLParam(r, "list")
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Index must be an integer", r))
		return
	}

	switch err := h.profile.RemoveSkill(surface, list, index); err {
	case nil:
	case services.ErrNoDraft:
		writeJSON(w, http.StatusNotFound, errorResp("NOT_FOUND", "No draft in progress", r))
		return
	case services.ErrUnknownList, services.ErrUnknownIndex:
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", err.Error(), r))
		return
	default:
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to remove skill", r))
		return
	}
	draft, _ := h.profile.Draft(surface)
	writeJSON(w, http.StatusOK, draft)
}

func (h *ProfileHandler) SaveDraft(w http.ResponseWriter, r *http.Request) {
	surface, ok := draftSurface(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Unknown draft surface", r))
		return
	}
	if err := h.profile.SaveDraft(r.Context(), surface); err != nil {
		writeJSON(w, http.StatusNotFound, errorResp("NOT_FOUND", "No draft in progress", r))
		return
	}
	writeJSON(w, http.StatusOK, h.state.CurrentUser())
}

func (h *ProfileHandler) DiscardDraft(w http.ResponseWriter, r *http.Request) {
	surface, ok := draftSurface(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Unknown draft surface", r))
		return
	}
	h.profile.DiscardDraft(surface)
	w.WriteHeader(http.StatusNoContent)
}

func draftSurface(r *http.Request) (services.DraftSurface, bool) {
	switch s := services.DraftSurface(chi.URLParam(r, "surface")); s {
	case services.DraftProfile, services.DraftDashboard:
		return s, true
	default:
		return "", false
	}
}
