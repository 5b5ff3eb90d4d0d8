package account

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/MATEOCAIZA/ProyectoFInal/internal/domain"
)

// Register creates a new account. Returns ErrAlreadyExists if the username
// or email is already taken.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*domain.Account, error) {
	input = input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cfg.PasswordHashCost)
	if err != nil {
		return nil, fmt.Errorf("account.Register hash password: %w", err)
	}

	// Username and email uniqueness are enforced by DB constraints.
	acc, err := s.accounts.Create(ctx, &domain.Account{
		Username:     input.Username,
		PasswordHash: string(hash),
		Email:        input.Email,
		Phone:        input.Phone,
		Role:         input.Role,
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("account.Register: %w", domain.ErrAlreadyExists)
		}
		return nil, fmt.Errorf("account.Register: %w", err)
	}

	s.log.InfoContext(ctx, "account registered",
		slog.String("account_id", acc.ID.String()),
		slog.String("role", acc.Role.String()),
	)

	return acc, nil
}
