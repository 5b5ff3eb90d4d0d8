// Package account implements registration, password login and profile
// management for accounts.
package account

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/MATEOCAIZA/ProyectoFInal/internal/config"
	"github.com/MATEOCAIZA/ProyectoFInal/internal/domain"
)

type accountRepo interface {
	Create(ctx context.Context, acc *domain.Account) (*domain.Account, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error)
	GetByUsername(ctx context.Context, username string) (*domain.Account, error)
	Update(ctx context.Context, id uuid.UUID, params domain.AccountUpdateParams) (*domain.Account, error)
}

type tokenIssuer interface {
	GenerateAccessToken(accountID uuid.UUID, role string) (string, error)
}

// Service implements account operations.
type Service struct {
	log      *slog.Logger
	accounts accountRepo
	tokens   tokenIssuer
	cfg      config.AuthConfig
}

// NewService creates a new account service instance.
func NewService(logger *slog.Logger, accounts accountRepo, tokens tokenIssuer, cfg config.AuthConfig) *Service {
	return &Service{
		log:      logger.With("service", "account"),
		accounts: accounts,
		tokens:   tokens,
		cfg:      cfg,
	}
}
