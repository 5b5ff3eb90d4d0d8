package account

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/MATEOCAIZA/ProyectoFInal/internal/domain"
	"github.com/MATEOCAIZA/ProyectoFInal/pkg/ctxutil"
)

// GetProfile returns the caller's account.
func (s *Service) GetProfile(ctx context.Context) (*domain.Account, error) {
	accountID, ok := ctxutil.AccountIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthenticated
	}

	acc, err := s.accounts.GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("account.GetProfile: %w", err)
	}
	return acc, nil
}

// UpdateProfile changes the caller's email, phone or password.
func (s *Service) UpdateProfile(ctx context.Context, input UpdateProfileInput) (*domain.Account, error) {
	accountID, ok := ctxutil.AccountIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthenticated
	}

	input = input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	params := domain.AccountUpdateParams{Email: input.Email, Phone: input.Phone}
	if input.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*input.Password), s.cfg.PasswordHashCost)
		if err != nil {
			return nil, fmt.Errorf("account.UpdateProfile hash password: %w", err)
		}
		h := string(hash)
		params.PasswordHash = &h
	}

	acc, err := s.accounts.Update(ctx, accountID, params)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return nil, domain.ErrAccountNotFound
		case errors.Is(err, domain.ErrAlreadyExists):
			return nil, fmt.Errorf("account.UpdateProfile: %w", domain.ErrAlreadyExists)
		}
		return nil, fmt.Errorf("account.UpdateProfile: %w", err)
	}

	s.log.InfoContext(ctx, "profile updated",
		slog.String("account_id", accountID.String()),
		slog.Bool("password_changed", input.Password != nil),
	)

	return acc, nil
}
