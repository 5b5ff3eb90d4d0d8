package timeline

import (
	"strings"

	"github.com/google/uuid"

	"github.com/MATEOCAIZA/ProyectoFInal/internal/domain"
)

const (
	maxTitleLength       = 255
	maxDescriptionLength = 5000
)

// AddEventInput holds the parameters for appending an event.
type AddEventInput struct {
	TimelineID  uuid.UUID
	Title       string
	Description string
}

// Validate checks all fields and collects all errors.
func (i AddEventInput) Validate() error {
	var errs []domain.FieldError

	if i.TimelineID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "timeline_id", Message: "required"})
	}
	title := strings.TrimSpace(i.Title)
	if title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if len([]rune(title)) > maxTitleLength {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 255 characters"})
	}
	if len([]rune(i.Description)) > maxDescriptionLength {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 5000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ModifyEventInput holds the parameters for modifying an event.
// Nil or blank fields keep their stored value.
type ModifyEventInput struct {
	EventID     uuid.UUID
	Title       *string
	Description *string
}

// Validate checks all fields and collects all errors.
func (i ModifyEventInput) Validate() error {
	var errs []domain.FieldError

	if i.EventID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "event_id", Message: "required"})
	}
	if t := trimOrNil(i.Title); t != nil && len([]rune(*t)) > maxTitleLength {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 255 characters"})
	}
	if d := trimOrNil(i.Description); d != nil && len([]rune(*d)) > maxDescriptionLength {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 5000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
