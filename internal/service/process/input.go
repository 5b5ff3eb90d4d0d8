package process

import (
	"time"

	"github.com/google/uuid"

	"github.com/MATEOCAIZA/ProyectoFInal/internal/domain"
)

const (
	maxTextLength = 255
	lettersOnly   = "only letters and spaces"
)

// CreateProcessInput holds the parameters for creating a process.
type CreateProcessInput struct {
	Title     string
	Type      string
	Offense   string
	Denounced string
	Denouncer string
	Province  string
	Carton    string
}

// normalize returns a copy with every field NFC-composed, trimmed and
// whitespace-compressed.
func (i CreateProcessInput) normalize() CreateProcessInput {
	return CreateProcessInput{
		Title:     domain.NormalizeName(i.Title),
		Type:      domain.NormalizeName(i.Type),
		Offense:   domain.NormalizeName(i.Offense),
		Denounced: domain.NormalizeName(i.Denounced),
		Denouncer: domain.NormalizeName(i.Denouncer),
		Province:  domain.NormalizeName(i.Province),
		Carton:    domain.NormalizeName(i.Carton),
	}
}

// Validate checks all fields and collects all errors. Expects normalized input.
func (i CreateProcessInput) Validate() error {
	var errs []domain.FieldError

	for _, f := range []struct {
		name    string
		value   string
		letters bool
	}{
		{"title", i.Title, false},
		{"type", i.Type, false},
		{"offense", i.Offense, false},
		{"denounced", i.Denounced, true},
		{"denouncer", i.Denouncer, true},
		{"province", i.Province, true},
		{"carton", i.Carton, false},
	} {
		errs = append(errs, checkField(f.name, f.value, f.letters)...)
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateProcessInput holds the parameters for a partial process update.
// A nil field keeps its stored value.
type UpdateProcessInput struct {
	ProcessID  uuid.UUID
	Title      *string
	Type       *string
	Offense    *string
	Denounced  *string
	Denouncer  *string
	Province   *string
	Carton     *string
	LastUpdate *time.Time
}

func (i UpdateProcessInput) normalize() UpdateProcessInput {
	n := i
	for _, p := range []**string{&n.Title, &n.Type, &n.Offense, &n.Denounced, &n.Denouncer, &n.Province, &n.Carton} {
		if *p != nil {
			v := domain.NormalizeName(**p)
			*p = &v
		}
	}
	return n
}

// Validate checks all fields and collects all errors. Expects normalized input.
func (i UpdateProcessInput) Validate() error {
	var errs []domain.FieldError

	if i.ProcessID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "process_id", Message: "required"})
	}

	for _, f := range []struct {
		name    string
		value   *string
		letters bool
	}{
		{"title", i.Title, false},
		{"type", i.Type, false},
		{"offense", i.Offense, false},
		{"denounced", i.Denounced, true},
		{"denouncer", i.Denouncer, true},
		{"province", i.Province, true},
		{"carton", i.Carton, false},
	} {
		if f.value != nil {
			errs = append(errs, checkField(f.name, *f.value, f.letters)...)
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i UpdateProcessInput) params() domain.ProcessUpdateParams {
	p := domain.ProcessUpdateParams{
		Title:     i.Title,
		Type:      i.Type,
		Offense:   i.Offense,
		Denounced: i.Denounced,
		Denouncer: i.Denouncer,
		Province:  i.Province,
		Carton:    i.Carton,
	}
	if i.LastUpdate != nil {
		p.LastUpdate = *i.LastUpdate
	}
	return p
}

// ListInput holds the public listing filters. Limit 0 means the configured default.
type ListInput struct {
	Status *string
	Name   *string
	From   *time.Time
	To     *time.Time
	Limit  int
	Offset int
}

// Validate checks all fields and collects all errors.
func (i ListInput) Validate() error {
	var errs []domain.FieldError

	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be non-negative"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}
	if i.From != nil && i.To != nil && !i.From.Before(*i.To) {
		errs = append(errs, domain.FieldError{Field: "to", Message: "must be after from"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func checkField(name, value string, letters bool) []domain.FieldError {
	switch {
	case value == "":
		return []domain.FieldError{{Field: name, Message: "required"}}
	case len([]rune(value)) > maxTextLength:
		return []domain.FieldError{{Field: name, Message: "max 255 characters"}}
	case letters && !domain.IsLettersAndSpaces(value):
		return []domain.FieldError{{Field: name, Message: lettersOnly}}
	}
	return nil
}
