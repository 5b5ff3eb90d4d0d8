package rest

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/MATEOCAIZA/ProyectoFInal/internal/domain"
	"github.com/MATEOCAIZA/ProyectoFInal/internal/service/process"
)

//go:generate moq -out process_service_mock_test.go -pkg rest . processService

type processService interface {
	CreateProcess(ctx context.Context, input process.CreateProcessInput) (*domain.ProcessAggregate, error)
	GetProcess(ctx context.Context, processID uuid.UUID) (*domain.ProcessAggregate, error)
	UpdateProcess(ctx context.Context, input process.UpdateProcessInput) (*domain.Process, error)
	DeleteProcess(ctx context.Context, processID uuid.UUID) error
	ListMyProcesses(ctx context.Context) ([]domain.Process, error)
	ListProcesses(ctx context.Context, input process.ListInput) ([]domain.Process, error)
}

// ProcessHandler serves the process endpoints.
type ProcessHandler struct {
	svc processService
	log *slog.Logger
}

// NewProcessHandler creates a ProcessHandler.
func NewProcessHandler(svc processService, logger *slog.Logger) *ProcessHandler {
	return &ProcessHandler{svc: svc, log: logger.With("handler", "process")}
}

type createProcessRequest struct {
	Title     string `json:"title"`
	Type      string `json:"type"`
	Offense   string `json:"offense"`
	Denounced string `json:"denounced"`
	Denouncer string `json:"denouncer"`
	Province  string `json:"province"`
	Carton    string `json:"carton"`
}

type updateProcessRequest struct {
	Title      *string    `json:"title"`
	Type       *string    `json:"type"`
	Offense    *string    `json:"offense"`
	Denounced  *string    `json:"denounced"`
	Denouncer  *string    `json:"denouncer"`
	Province   *string    `json:"province"`
	Carton     *string    `json:"carton"`
	LastUpdate *time.Time `json:"lastUpdate"`
}

// Create handles POST /processes.
func (h *ProcessHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createProcessRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	agg, err := h.svc.CreateProcess(r.Context(), process.CreateProcessInput{
		Title:     req.Title,
		Type:      req.Type,
		Offense:   req.Offense,
		Denounced: req.Denounced,
		Denouncer: req.Denouncer,
		Province:  req.Province,
		Carton:    req.Carton,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toAggregateResponse(agg))
}

// Get handles GET /processes/{id}.
func (h *ProcessHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	agg, err := h.svc.GetProcess(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toAggregateResponse(agg))
}

// Update handles PATCH /processes/{id}.
func (h *ProcessHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req updateProcessRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	p, err := h.svc.UpdateProcess(r.Context(), process.UpdateProcessInput{
		ProcessID:  id,
		Title:      req.Title,
		Type:       req.Type,
		Offense:    req.Offense,
		Denounced:  req.Denounced,
		Denouncer:  req.Denouncer,
		Province:   req.Province,
		Carton:     req.Carton,
		LastUpdate: req.LastUpdate,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toProcessResponse(p))
}

// Delete handles DELETE /processes/{id}.
func (h *ProcessHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.DeleteProcess(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListMine handles GET /processes/mine.
func (h *ProcessHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.ListMyProcesses(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toProcessList(list))
}

// List handles GET /processes. Query parameters: status, name, from, to,
// limit, offset. Dates accept RFC 3339 or YYYY-MM-DD.
func (h *ProcessHandler) List(w http.ResponseWriter, r *http.Request) {
	input, err := parseListQuery(r.URL.Query())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	list, err := h.svc.ListProcesses(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toProcessList(list))
}

func parseListQuery(q url.Values) (process.ListInput, error) {
	var (
		input process.ListInput
		errs  []domain.FieldError
	)

	input.Status = optionalParam(q, "status")
	input.Name = optionalParam(q, "name")

	for _, p := range []struct {
		name string
		dst  **time.Time
	}{
		{"from", &input.From},
		{"to", &input.To},
	} {
		raw := q.Get(p.name)
		if raw == "" {
			continue
		}
		t, ok := parseDate(raw)
		if !ok {
			errs = append(errs, domain.FieldError{Field: p.name, Message: "must be RFC 3339 or YYYY-MM-DD"})
			continue
		}
		*p.dst = &t
	}

	// date selects a single calendar day in UTC and excludes from/to.
	if raw := q.Get("date"); raw != "" {
		day, err := time.Parse(time.DateOnly, raw)
		switch {
		case err != nil:
			errs = append(errs, domain.FieldError{Field: "date", Message: "must be YYYY-MM-DD"})
		case q.Has("from") || q.Has("to"):
			errs = append(errs, domain.FieldError{Field: "date", Message: "cannot be combined with from or to"})
		default:
			next := day.AddDate(0, 0, 1)
			input.From, input.To = &day, &next
		}
	}

	for _, p := range []struct {
		name string
		dst  *int
	}{
		{"limit", &input.Limit},
		{"offset", &input.Offset},
	} {
		raw := q.Get(p.name)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: p.name, Message: "must be an integer"})
			continue
		}
		*p.dst = n
	}

	if len(errs) > 0 {
		return process.ListInput{}, &domain.ValidationError{Errors: errs}
	}
	return input, nil
}

func optionalParam(q url.Values, name string) *string {
	if v := q.Get(name); v != "" {
		return &v
	}
	return nil
}

func parseDate(raw string) (time.Time, bool) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.DateOnly, raw); err == nil {
		return t, true
	}
	return time.Time{}, false
}
