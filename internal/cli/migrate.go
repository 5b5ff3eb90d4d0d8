package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/MATEOCAIZA/ProyectoFInal/internal/adapter/postgres"
)

type migrator interface {
	Up(ctx context.Context) ([]int64, error)
	Down(ctx context.Context) (int64, error)
	Status(ctx context.Context) ([]postgres.MigrationStatus, error)
	Close() error
}

// openMigrator is replaced in tests.
var openMigrator = func(ctx context.Context, dsn string) (migrator, error) {
	return postgres.OpenMigrator(ctx, dsn)
}

// NewMigrateCommand creates the migrate command and its up/down/status
// subcommands.
func NewMigrateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or inspect the database schema migrations",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return withMigrator(cmd, rootOpts, func(ctx context.Context, m migrator) error {
					versions, err := m.Up(ctx)
					if err != nil {
						return err
					}
					if len(versions) == 0 {
						fmt.Fprintln(cmd.OutOrStdout(), "schema is up to date")
						return nil
					}
					for _, v := range versions {
						fmt.Fprintf(cmd.OutOrStdout(), "applied %05d\n", v)
					}
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back the most recent migration",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return withMigrator(cmd, rootOpts, func(ctx context.Context, m migrator) error {
					v, err := m.Down(ctx)
					if err != nil {
						return err
					}
					if v == 0 {
						fmt.Fprintln(cmd.OutOrStdout(), "nothing to roll back")
						return nil
					}
					fmt.Fprintf(cmd.OutOrStdout(), "rolled back %05d\n", v)
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "status",
			Short: "List migrations and whether they are applied",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return withMigrator(cmd, rootOpts, func(ctx context.Context, m migrator) error {
					statuses, err := m.Status(ctx)
					if err != nil {
						return err
					}
					return printStatus(cmd.OutOrStdout(), statuses)
				})
			},
		},
	)

	return cmd
}

func withMigrator(cmd *cobra.Command, opts *RootOptions, fn func(ctx context.Context, m migrator) error) error {
	cfg, err := opts.loadConfig()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), opts.Timeout)
	defer cancel()

	m, err := openMigrator(ctx, cfg.Database.DSN)
	if err != nil {
		return err
	}
	defer m.Close()

	return fn(ctx, m)
}

func printStatus(w io.Writer, statuses []postgres.MigrationStatus) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "VERSION\tSTATE\tFILE")
	for _, s := range statuses {
		state := "pending"
		if s.Applied {
			state = "applied"
		}
		fmt.Fprintf(tw, "%05d\t%s\t%s\n", s.Version, state, s.Name)
	}
	return tw.Flush()
}
