package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/MATEOCAIZA/ProyectoFInal/internal/domain"
	"github.com/MATEOCAIZA/ProyectoFInal/internal/service/observation"
)

//go:generate moq -out observation_service_mock_test.go -pkg rest . observationService

type observationService interface {
	CreateObservation(ctx context.Context, input observation.CreateObservationInput) (*domain.Observation, error)
	ModifyObservation(ctx context.Context, input observation.ModifyObservationInput) (*domain.Observation, error)
	DeleteObservation(ctx context.Context, observationID uuid.UUID) error
	ListByProcess(ctx context.Context, processID uuid.UUID) ([]domain.Observation, error)
}

// ObservationHandler serves observation endpoints.
type ObservationHandler struct {
	svc observationService
	log *slog.Logger
}

// NewObservationHandler creates an ObservationHandler.
func NewObservationHandler(svc observationService, logger *slog.Logger) *ObservationHandler {
	return &ObservationHandler{svc: svc, log: logger.With("handler", "observation")}
}

type createObservationRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type modifyObservationRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

// Create handles POST /processes/{id}/observations.
func (h *ObservationHandler) Create(w http.ResponseWriter, r *http.Request) {
	processID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req createObservationRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	obs, err := h.svc.CreateObservation(r.Context(), observation.CreateObservationInput{
		ProcessID: processID,
		Title:     req.Title,
		Content:   req.Content,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toObservationResponse(obs))
}

// ListByProcess handles GET /processes/{id}/observations.
func (h *ObservationHandler) ListByProcess(w http.ResponseWriter, r *http.Request) {
	processID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	list, err := h.svc.ListByProcess(r.Context(), processID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toObservationList(list))
}

// Modify handles PATCH /observations/{id}.
func (h *ObservationHandler) Modify(w http.ResponseWriter, r *http.Request) {
	observationID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req modifyObservationRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	obs, err := h.svc.ModifyObservation(r.Context(), observation.ModifyObservationInput{
		ObservationID: observationID,
		Title:         req.Title,
		Content:       req.Content,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toObservationResponse(obs))
}

// Delete handles DELETE /observations/{id}.
func (h *ObservationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	observationID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.DeleteObservation(r.Context(), observationID); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
