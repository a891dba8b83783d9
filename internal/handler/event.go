package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/paperhub/paperhub/internal/httpx"
	"github.com/paperhub/paperhub/internal/repository"
	"github.com/paperhub/paperhub/internal/service"
)

type EventHandler struct {
	eventService *service.EventService
}

func NewEventHandler(eventService *service.EventService) *EventHandler {
	return &EventHandler{eventService: eventService}
}

func (h *EventHandler) List(w http.ResponseWriter, r *http.Request) {
	events, err := h.eventService.List()
	if err != nil {
		slog.Error("failed to list events", "error", err)
		httpx.Error(w, http.StatusInternalServerError, "Failed to list events")
		return
	}

	httpx.JSON(w, http.StatusOK, events)
}

func (h *EventHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req service.CreateEventInput
	err := httpx.Decode(r, &req)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	event, err := h.eventService.Create(req)
	if err != nil {
		if errors.Is(err, service.ErrTitleRequired) {
			httpx.Error(w, http.StatusBadRequest, err.Error())
			return
		}
		slog.Error("failed to create event", "error", err)
		httpx.Error(w, http.StatusInternalServerError, "Failed to create event")
		return
	}

	httpx.JSON(w, http.StatusCreated, event)
}

func (h *EventHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	err := h.eventService.Delete(id)
	if err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			httpx.Error(w, http.StatusNotFound, "Event not found")
			return
		}
		slog.Error("failed to delete event", "error", err, "event_id", id)
		httpx.Error(w, http.StatusInternalServerError, "Failed to delete event")
		return
	}

	httpx.JSON(w, http.StatusOK, map[string]bool{"ok": true})
}
