package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/MATEOCAIZA/ProyectoFInal/internal/domain"
	"github.com/MATEOCAIZA/ProyectoFInal/internal/service/timeline"
)

//go:generate moq -out timeline_service_mock_test.go -pkg rest . timelineService

type timelineService interface {
	CreateTimeline(ctx context.Context, processID uuid.UUID) (*domain.Timeline, error)
	GetByProcessID(ctx context.Context, processID uuid.UUID) (*domain.Timeline, error)
	DeleteTimeline(ctx context.Context, timelineID uuid.UUID) error
	ListEvents(ctx context.Context, timelineID uuid.UUID) ([]domain.Event, error)
	AddEvent(ctx context.Context, input timeline.AddEventInput) (*domain.Event, error)
	ModifyEvent(ctx context.Context, input timeline.ModifyEventInput) (*domain.Event, error)
	RemoveEvent(ctx context.Context, eventID uuid.UUID) error
}

// TimelineHandler serves timeline and event endpoints.
type TimelineHandler struct {
	svc timelineService
	log *slog.Logger
}

// NewTimelineHandler creates a TimelineHandler.
func NewTimelineHandler(svc timelineService, logger *slog.Logger) *TimelineHandler {
	return &TimelineHandler{svc: svc, log: logger.With("handler", "timeline")}
}

type addEventRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type modifyEventRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

// Create handles POST /processes/{id}/timeline.
func (h *TimelineHandler) Create(w http.ResponseWriter, r *http.Request) {
	processID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	tl, err := h.svc.CreateTimeline(r.Context(), processID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toTimelineResponse(tl))
}

// GetByProcess handles GET /processes/{id}/timeline.
func (h *TimelineHandler) GetByProcess(w http.ResponseWriter, r *http.Request) {
	processID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	tl, err := h.svc.GetByProcessID(r.Context(), processID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toTimelineResponse(tl))
}

// Delete handles DELETE /timelines/{id}. Events go with the timeline.
func (h *TimelineHandler) Delete(w http.ResponseWriter, r *http.Request) {
	timelineID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.DeleteTimeline(r.Context(), timelineID); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListEvents handles GET /timelines/{id}/events.
func (h *TimelineHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	timelineID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	events, err := h.svc.ListEvents(r.Context(), timelineID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toEventList(events))
}

// AddEvent handles POST /timelines/{id}/events.
func (h *TimelineHandler) AddEvent(w http.ResponseWriter, r *http.Request) {
	timelineID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req addEventRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	ev, err := h.svc.AddEvent(r.Context(), timeline.AddEventInput{
		TimelineID:  timelineID,
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toEventResponse(ev))
}

// ModifyEvent handles PATCH /events/{id}.
func (h *TimelineHandler) ModifyEvent(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req modifyEventRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	ev, err := h.svc.ModifyEvent(r.Context(), timeline.ModifyEventInput{
		EventID:     eventID,
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toEventResponse(ev))
}

// RemoveEvent handles DELETE /events/{id}. Later events move up one place.
func (h *TimelineHandler) RemoveEvent(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.RemoveEvent(r.Context(), eventID); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
