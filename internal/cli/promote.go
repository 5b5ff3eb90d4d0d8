package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MATEOCAIZA/ProyectoFInal/internal/adapter/postgres"
	accountrepo "github.com/MATEOCAIZA/ProyectoFInal/internal/adapter/postgres/account"
	"github.com/MATEOCAIZA/ProyectoFInal/internal/config"
	"github.com/MATEOCAIZA/ProyectoFInal/internal/domain"
)

type roleUpdater interface {
	UpdateRole(ctx context.Context, username string, role domain.Role) (*domain.Account, error)
}

// openRoleUpdater is replaced in tests. The returned func releases the
// connection.
var openRoleUpdater = func(ctx context.Context, cfg config.DatabaseConfig) (roleUpdater, func(), error) {
	pool, err := postgres.NewPool(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	return accountrepo.New(pool), pool.Close, nil
}

// NewPromoteCommand creates the promote command. Registration never
// grants admin, so this is the only way to create one.
func NewPromoteCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		username string
		role     string
	)

	cmd := &cobra.Command{
		Use:   "promote --username <name>",
		Short: "Change the role of an existing account (admin by default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r := domain.Role(strings.ToLower(strings.TrimSpace(role)))
			if !r.IsValid() {
				return fmt.Errorf("invalid role %q: must be admin, abogada or lector", role)
			}

			cfg, err := rootOpts.loadConfig()
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), rootOpts.Timeout)
			defer cancel()

			accounts, closeFn, err := openRoleUpdater(ctx, cfg.Database)
			if err != nil {
				return err
			}
			defer closeFn()

			acc, err := accounts.UpdateRole(ctx, username, r)
			if errors.Is(err, domain.ErrNotFound) {
				return fmt.Errorf("no account with username %q", username)
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "account %q (%s) is now %s\n", acc.Username, acc.ID, acc.Role)
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "username of the account to change")
	cmd.Flags().StringVar(&role, "role", string(domain.RoleAdmin), "role to assign (admin|abogada|lector)")
	_ = cmd.MarkFlagRequired("username")

	return cmd
}
