package event_api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/kalokoh/event-management-system/internal/events"
	"github.com/kalokoh/event-management-system/internal/logger"
	"github.com/kalokoh/event-management-system/internal/utils"
)

type Handler struct {
	EventService *events.EventService
	Logger       *logger.Logger
}

func NewHandler(eventService *events.EventService, logger *logger.Logger) *Handler {
	return &Handler{EventService: eventService, Logger: logger}
}

// RegisterRoutes registers the event CRUD routes on a chi router.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/events", func(r chi.Router) {
		r.Get("/", h.ListEvents)
		r.Post("/", h.CreateEvent)
		r.Put("/{eventId}", h.UpdateEvent)
		r.Delete("/{eventId}", h.DeleteEvent)
	})
}

type eventRequest struct {
	Name      string `json:"event_name"`
	Date      string `json:"event_date"`
	Venue     string `json:"venue"`
	Organizer string `json:"organizer"`
}

func (h *Handler) ListEvents(w http.ResponseWriter, r *http.Request) {
	list, err := h.EventService.List(r.Context())
	if err != nil {
		h.Logger.Error("EVENTS", "List failed: "+err.Error())
		utils.WriteJSON(w, http.StatusInternalServerError, utils.ErrorResponse("failed to list events", err.Error()))
		return
	}

	h.Logger.Debug("EVENTS", fmt.Sprintf("ListEvents: found %d events", len(list)))
	utils.WriteJSON(w, http.StatusOK, utils.SuccessResponse("events listed", list))
}

func (h *Handler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req eventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, utils.ErrorResponse("invalid request body", err.Error()))
		return
	}

	id, err := h.EventService.Create(r.Context(), req.Name, req.Date, req.Venue, req.Organizer)
	if err != nil {
		h.Logger.Error("EVENTS", "Create failed: "+err.Error())
		utils.WriteJSON(w, http.StatusInternalServerError, utils.ErrorResponse("failed to create event", err.Error()))
		return
	}

	h.Logger.LogDatabase("INSERT", "events", "Created event "+strconv.FormatInt(id, 10))
	utils.WriteJSON(w, http.StatusCreated, utils.SuccessResponse("event created", map[string]int64{"event_id": id}))
}

func (h *Handler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	id, err := eventID(r)
	if err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, utils.ErrorResponse("invalid event id", err.Error()))
		return
	}

	var req eventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, utils.ErrorResponse("invalid request body", err.Error()))
		return
	}

	// An unknown id updates zero rows; that is not an error.
	if err := h.EventService.Update(r.Context(), id, req.Name, req.Date, req.Venue, req.Organizer); err != nil {
		h.Logger.Error("EVENTS", "Update failed: "+err.Error())
		utils.WriteJSON(w, http.StatusInternalServerError, utils.ErrorResponse("failed to update event", err.Error()))
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.SuccessResponse("event updated", nil))
}

func (h *Handler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	id, err := eventID(r)
	if err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, utils.ErrorResponse("invalid event id", err.Error()))
		return
	}

	if err := h.EventService.Delete(r.Context(), id); err != nil {
		h.Logger.Error("EVENTS", "Delete failed: "+err.Error())
		utils.WriteJSON(w, http.StatusInternalServerError, utils.ErrorResponse("failed to delete event", err.Error()))
		return
	}

	h.Logger.LogDatabase("DELETE", "events", "Deleted event "+strconv.FormatInt(id, 10)+" with its participants")
	utils.WriteJSON(w, http.StatusOK, utils.SuccessResponse("event deleted", nil))
}

func eventID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "eventId"), 10, 64)
}
