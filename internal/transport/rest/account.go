package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/MATEOCAIZA/ProyectoFInal/internal/domain"
	"github.com/MATEOCAIZA/ProyectoFInal/internal/service/account"
)

//go:generate moq -out account_service_mock_test.go -pkg rest . accountService

type accountService interface {
	Register(ctx context.Context, input account.RegisterInput) (*domain.Account, error)
	Login(ctx context.Context, input account.LoginInput) (*account.AuthResult, error)
	GetProfile(ctx context.Context) (*domain.Account, error)
	UpdateProfile(ctx context.Context, input account.UpdateProfileInput) (*domain.Account, error)
}

// AccountHandler serves registration, login and the caller's profile.
type AccountHandler struct {
	svc accountService
	log *slog.Logger
}

// NewAccountHandler creates an AccountHandler.
func NewAccountHandler(svc accountService, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{svc: svc, log: logger.With("handler", "account")}
}

type registerRequest struct {
	Username string  `json:"username"`
	Password string  `json:"password"`
	Email    string  `json:"email"`
	Phone    *string `json:"phone"`
	Role     string  `json:"role"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type updateProfileRequest struct {
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	Password *string `json:"password"`
}

// Register handles POST /auth/register.
func (h *AccountHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	acc, err := h.svc.Register(r.Context(), account.RegisterInput{
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
		Phone:    req.Phone,
		Role:     domain.Role(req.Role),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toAccountResponse(acc))
}

// Login handles POST /auth/login.
func (h *AccountHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.svc.Login(r.Context(), account.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, authResponse{
		AccessToken: result.AccessToken,
		Account:     toAccountResponse(result.Account),
	})
}

// Me handles GET /accounts/me.
func (h *AccountHandler) Me(w http.ResponseWriter, r *http.Request) {
	acc, err := h.svc.GetProfile(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toAccountResponse(acc))
}

// UpdateMe handles PATCH /accounts/me.
func (h *AccountHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	var req updateProfileRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	acc, err := h.svc.UpdateProfile(r.Context(), account.UpdateProfileInput{
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toAccountResponse(acc))
}
