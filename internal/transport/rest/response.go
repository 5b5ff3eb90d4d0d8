package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/MATEOCAIZA/ProyectoFInal/internal/domain"
)

type errorResponse struct {
	Error  string               `json:"error"`
	Fields []fieldErrorResponse `json:"fields,omitempty"`
}

type fieldErrorResponse struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// decodeJSON reads a single JSON object from the request body. Unknown
// fields are rejected. It writes the error response itself and reports
// whether the handler should continue.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return false
		}
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

// pathID parses the {name} path segment as a UUID.
func pathID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid %s", name))
		return uuid.Nil, false
	}
	return id, true
}

// handleError maps a service error to a status code by its domain.Kind.
// Internal errors are logged and hidden from the client.
func handleError(log *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	switch domain.KindOf(err) {
	case domain.KindValidation:
		resp := errorResponse{Error: "validation failed"}
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			for _, fe := range ve.Errors {
				resp.Fields = append(resp.Fields, fieldErrorResponse{Field: fe.Field, Message: fe.Message})
			}
		}
		writeJSON(w, http.StatusBadRequest, resp)
	case domain.KindUnauthenticated:
		writeError(w, http.StatusUnauthorized, "authentication required")
	case domain.KindUnauthorized:
		writeError(w, http.StatusForbidden, "forbidden")
	case domain.KindNotFound:
		writeError(w, http.StatusNotFound, notFoundMessage(err))
	case domain.KindConflict:
		writeError(w, http.StatusConflict, conflictMessage(err))
	default:
		log.ErrorContext(r.Context(), "internal error",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func notFoundMessage(err error) string {
	for _, target := range []error{
		domain.ErrEventNotFound,
		domain.ErrTimelineNotFound,
		domain.ErrObservationNotFound,
		domain.ErrProcessNotFound,
		domain.ErrAccountNotFound,
	} {
		if errors.Is(err, target) {
			return target.Error()
		}
	}
	return domain.ErrNotFound.Error()
}

func conflictMessage(err error) string {
	if errors.Is(err, domain.ErrDuplicateTimeline) {
		return "timeline already exists for process"
	}
	return domain.ErrAlreadyExists.Error()
}
