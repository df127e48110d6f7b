package session

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mentorlab/coachdesk/internal/model/coach"
	sessionmodel "github.com/mentorlab/coachdesk/internal/model/session"
	sessionservice "github.com/mentorlab/coachdesk/internal/service/session"
	"github.com/mentorlab/coachdesk/pkg/utils"
)

// Handler exposes the session lifecycle over HTTP.
type Handler struct {
	svc     *sessionservice.Service
	catalog coach.Catalog
}

// New creates the session handler.
func New(svc *sessionservice.Service, catalog coach.Catalog) *Handler {
	return &Handler{svc: svc, catalog: catalog}
}

// RegisterRoutes mounts the session endpoints.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/start_session", h.handleStartSession)
	r.Post("/set_goal", h.handleSetGoal)
	r.Post("/chat", h.handleChat)
	r.Post("/switch_coach", h.handleSwitchCoach)
	r.Get("/coaches", h.handleListCoaches)
}

func (h *Handler) handleStartSession(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		AgeGroup   string `json:"ageGroup"`
		MentorRole string `json:"mentorRole"`
		Tone       string `json:"tone"`
		Language   string `json:"language"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	state, err := h.svc.CreateSession(r.Context(), payload.AgeGroup, payload.MentorRole, payload.Tone, payload.Language)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusCreated, state)
}

func (h *Handler) handleSetGoal(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		SessionID string `json:"sessionId"`
		Goal      string `json:"goal"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	res, err := h.svc.SetGoal(r.Context(), payload.SessionID, payload.Goal)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, res)
}

func (h *Handler) handleChat(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		SessionID string `json:"sessionId"`
		Message   string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	res, err := h.svc.RecordChatTurn(r.Context(), payload.SessionID, payload.Message)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, res)
}

func (h *Handler) handleSwitchCoach(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		SessionID  string `json:"sessionId"`
		MentorRole string `json:"mentorRole"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	res, err := h.svc.SwitchCoach(r.Context(), payload.SessionID, payload.MentorRole)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, res)
}

func (h *Handler) handleListCoaches(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.catalog.List())
}

// respondServiceError translates core errors to transport status codes.
func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, sessionservice.ErrSessionNotFound):
		utils.RespondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, sessionmodel.ErrUnknownAgeGroup):
		utils.RespondError(w, http.StatusBadRequest, err.Error())
	default:
		utils.RespondError(w, http.StatusInternalServerError, err.Error())
	}
}
