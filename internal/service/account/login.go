package account

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/MATEOCAIZA/ProyectoFInal/internal/domain"
)

// Login authenticates an account with username + password.
// Returns ErrUnauthenticated if the username is unknown or the password is wrong.
func (s *Service) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	input.Username = strings.TrimSpace(input.Username)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	acc, err := s.accounts.GetByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthenticated
		}
		return nil, fmt.Errorf("account.Login get account: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte(input.Password)); err != nil {
		return nil, domain.ErrUnauthenticated
	}

	token, err := s.tokens.GenerateAccessToken(acc.ID, acc.Role.String())
	if err != nil {
		return nil, fmt.Errorf("account.Login generate token: %w", err)
	}

	s.log.InfoContext(ctx, "account logged in",
		slog.String("account_id", acc.ID.String()))

	return &AuthResult{AccessToken: token, Account: acc}, nil
}
