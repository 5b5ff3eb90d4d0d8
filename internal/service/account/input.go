package account

import (
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/MATEOCAIZA/ProyectoFInal/internal/domain"
)

const (
	minPasswordLength = 8
	maxPasswordLength = 72 // bcrypt input limit
	maxEmailLength    = 254
)

var (
	usernameRe = regexp.MustCompile(`^[A-Za-z]{8,}$`)
	// Login only requires letters: accounts created before the length rule still sign in.
	loginUsernameRe = regexp.MustCompile(`^[A-Za-z]+$`)
	emailRe         = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phoneRe         = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)
)

// profileEmailDomains lists the mail providers accepted on profile update.
var profileEmailDomains = []string{"gmail.com", "outlook.com", "yahoo.com", "hotmail.com", "espe.ec.edu.ec"}

// RegisterInput holds parameters for account registration.
type RegisterInput struct {
	Username string
	Password string
	Email    string
	Phone    *string
	Role     domain.Role
}

func (i RegisterInput) normalize() RegisterInput {
	i.Username = strings.TrimSpace(i.Username)
	i.Email = strings.ToLower(strings.TrimSpace(i.Email))
	i.Role = domain.Role(strings.ToLower(strings.TrimSpace(string(i.Role))))
	if i.Role == "" {
		i.Role = domain.RoleLector
	}
	i.Phone = trimmedOrNil(i.Phone)
	return i
}

// Validate checks all fields and collects all errors. Expects normalized input.
func (i RegisterInput) Validate() error {
	var errs []domain.FieldError

	if i.Username == "" {
		errs = append(errs, domain.FieldError{Field: "username", Message: "required"})
	} else if !usernameRe.MatchString(i.Username) {
		errs = append(errs, domain.FieldError{Field: "username", Message: "at least 8 letters, letters only"})
	}

	errs = append(errs, checkPassword(i.Password)...)
	errs = append(errs, checkEmail(i.Email)...)

	if i.Phone != nil && !phoneRe.MatchString(*i.Phone) {
		errs = append(errs, domain.FieldError{Field: "phone", Message: "invalid format"})
	}

	switch {
	case !i.Role.IsValid():
		errs = append(errs, domain.FieldError{Field: "role", Message: "invalid value"})
	case i.Role.IsAdmin():
		errs = append(errs, domain.FieldError{Field: "role", Message: "cannot self-register as admin"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// LoginInput holds parameters for password login.
type LoginInput struct {
	Username string
	Password string
}

// Validate validates the login input.
func (i LoginInput) Validate() error {
	var errs []domain.FieldError

	if i.Username == "" {
		errs = append(errs, domain.FieldError{Field: "username", Message: "required"})
	} else if !loginUsernameRe.MatchString(i.Username) {
		errs = append(errs, domain.FieldError{Field: "username", Message: "letters only"})
	}

	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateProfileInput holds the profile fields to change. nil = don't change.
type UpdateProfileInput struct {
	Email    *string
	Phone    *string
	Password *string
}

func (i UpdateProfileInput) normalize() UpdateProfileInput {
	if i.Email != nil {
		e := strings.ToLower(strings.TrimSpace(*i.Email))
		i.Email = &e
	}
	i.Phone = trimmedOrNil(i.Phone)
	return i
}

// Validate checks all fields and collects all errors. Expects normalized input.
func (i UpdateProfileInput) Validate() error {
	var errs []domain.FieldError

	if i.Email != nil {
		if fe := checkEmail(*i.Email); len(fe) > 0 {
			errs = append(errs, fe...)
		} else if !slices.Contains(profileEmailDomains, emailDomain(*i.Email)) {
			errs = append(errs, domain.FieldError{Field: "email", Message: "domain not allowed"})
		}
	}

	if i.Phone != nil && !phoneRe.MatchString(*i.Phone) {
		errs = append(errs, domain.FieldError{Field: "phone", Message: "invalid format"})
	}

	if i.Password != nil {
		errs = append(errs, checkPassword(*i.Password)...)
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func checkPassword(pw string) []domain.FieldError {
	switch {
	case pw == "":
		return []domain.FieldError{{Field: "password", Message: "required"}}
	case utf8.RuneCountInString(pw) < minPasswordLength:
		return []domain.FieldError{{Field: "password", Message: "at least 8 characters"}}
	case len(pw) > maxPasswordLength:
		return []domain.FieldError{{Field: "password", Message: "too long"}}
	}
	return nil
}

func checkEmail(email string) []domain.FieldError {
	switch {
	case email == "":
		return []domain.FieldError{{Field: "email", Message: "required"}}
	case len(email) > maxEmailLength:
		return []domain.FieldError{{Field: "email", Message: "too long"}}
	case !emailRe.MatchString(email):
		return []domain.FieldError{{Field: "email", Message: "invalid format"}}
	}
	return nil
}

func emailDomain(email string) string {
	_, d, _ := strings.Cut(email, "@")
	return d
}

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
