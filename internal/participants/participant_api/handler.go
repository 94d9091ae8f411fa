package participant_api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/kalokoh/event-management-system/internal/errs"
	"github.com/kalokoh/event-management-system/internal/logger"
	"github.com/kalokoh/event-management-system/internal/participants"
	"github.com/kalokoh/event-management-system/internal/utils"
)

type Handler struct {
	ParticipantService *participants.ParticipantService
	Logger             *logger.Logger
}

func NewHandler(participantService *participants.ParticipantService, logger *logger.Logger) *Handler {
	return &Handler{ParticipantService: participantService, Logger: logger}
}

// RegisterRoutes registers the participant routes, scoped to an
// event, on a chi router.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/events/{eventId}/participants", func(r chi.Router) {
		r.Get("/", h.ListParticipants)
		r.Post("/", h.RegisterParticipant)
		r.Get("/counts", h.GetCounts)
	})
}

func (h *Handler) RegisterParticipant(w http.ResponseWriter, r *http.Request) {
	eventID, err := eventID(r)
	if err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, utils.ErrorResponse("invalid event id", err.Error()))
		return
	}

	var req struct {
		Name string `json:"name"`
		Type string `json:"type"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, utils.ErrorResponse("invalid request body", err.Error()))
		return
	}

	id, err := h.ParticipantService.Register(r.Context(), eventID, req.Name, req.Type)
	switch {
	case errors.Is(err, errs.ErrInvalidParticipantType):
		utils.WriteJSON(w, http.StatusBadRequest, utils.ErrorResponse("invalid participant type", err.Error()))
		return
	case errors.Is(err, errs.ErrEventNotFound):
		utils.WriteJSON(w, http.StatusNotFound, utils.ErrorResponse("event not found", err.Error()))
		return
	case err != nil:
		h.Logger.Error("PARTICIPANTS", "Register failed: "+err.Error())
		utils.WriteJSON(w, http.StatusInternalServerError, utils.ErrorResponse("failed to register participant", err.Error()))
		return
	}

	h.Logger.LogDatabase("INSERT", "participants", "Registered participant "+strconv.FormatInt(id, 10))
	utils.WriteJSON(w, http.StatusCreated, utils.SuccessResponse("participant registered", map[string]int64{"id": id}))
}

func (h *Handler) ListParticipants(w http.ResponseWriter, r *http.Request) {
	eventID, err := eventID(r)
	if err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, utils.ErrorResponse("invalid event id", err.Error()))
		return
	}

	list, err := h.ParticipantService.List(r.Context(), eventID)
	if err != nil {
		h.Logger.Error("PARTICIPANTS", "List failed: "+err.Error())
		utils.WriteJSON(w, http.StatusInternalServerError, utils.ErrorResponse("failed to list participants", err.Error()))
		return
	}

	h.Logger.Debug("PARTICIPANTS", fmt.Sprintf("ListParticipants: found %d participants for event %d", len(list), eventID))
	utils.WriteJSON(w, http.StatusOK, utils.SuccessResponse("participants listed", list))
}

// GetCounts returns the event's total participant count and the
// per-type breakdown, both recomputed from the live rows.
func (h *Handler) GetCounts(w http.ResponseWriter, r *http.Request) {
	eventID, err := eventID(r)
	if err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, utils.ErrorResponse("invalid event id", err.Error()))
		return
	}

	total, err := h.ParticipantService.TotalCount(r.Context(), eventID)
	if err != nil {
		h.Logger.Error("PARTICIPANTS", "Count failed: "+err.Error())
		utils.WriteJSON(w, http.StatusInternalServerError, utils.ErrorResponse("failed to count participants", err.Error()))
		return
	}

	byType, err := h.ParticipantService.CountByType(r.Context(), eventID)
	if err != nil {
		h.Logger.Error("PARTICIPANTS", "Count by type failed: "+err.Error())
		utils.WriteJSON(w, http.StatusInternalServerError, utils.ErrorResponse("failed to count participants", err.Error()))
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.SuccessResponse("participant counts", map[string]interface{}{
		"total":   total,
		"by_type": byType,
	}))
}

func eventID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "eventId"), 10, 64)
}
