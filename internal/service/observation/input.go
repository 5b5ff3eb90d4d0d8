package observation

import (
	"strings"

	"github.com/google/uuid"

	"github.com/MATEOCAIZA/ProyectoFInal/internal/domain"
)

const (
	maxTitleLength   = 255
	maxContentLength = 10000
)

// CreateObservationInput holds the parameters for creating an observation.
type CreateObservationInput struct {
	ProcessID uuid.UUID
	Title     string
	Content   string
}

// Validate checks all fields and collects all errors.
func (i CreateObservationInput) Validate() error {
	var errs []domain.FieldError

	if i.ProcessID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "process_id", Message: "required"})
	}
	title := strings.TrimSpace(i.Title)
	if title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if len([]rune(title)) > maxTitleLength {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 255 characters"})
	}
	if len([]rune(i.Content)) > maxContentLength {
		errs = append(errs, domain.FieldError{Field: "content", Message: "max 10000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ModifyObservationInput holds the parameters for modifying an observation.
// A field overwrites only when non-nil and non-empty; an empty string keeps
// the stored value just like nil does.
type ModifyObservationInput struct {
	ObservationID uuid.UUID
	Title         *string
	Content       *string
}

// Validate checks all fields and collects all errors.
func (i ModifyObservationInput) Validate() error {
	var errs []domain.FieldError

	if i.ObservationID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "observation_id", Message: "required"})
	}
	if i.Title != nil && len([]rune(*i.Title)) > maxTitleLength {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 255 characters"})
	}
	if i.Content != nil && len([]rune(*i.Content)) > maxContentLength {
		errs = append(errs, domain.FieldError{Field: "content", Message: "max 10000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// nonEmpty returns s unless it points to "".
func nonEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
