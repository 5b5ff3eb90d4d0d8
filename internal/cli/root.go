// Package cli implements the legalctl operator commands.
package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/MATEOCAIZA/ProyectoFInal/internal/config"
)

const defaultTimeout = 2 * time.Minute

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigPath string
	Timeout    time.Duration

	// loadConfig is replaced in tests.
	loadConfig func() (*config.Config, error)
}

// NewRootCommand creates the legalctl root command.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{loadConfig: config.Load}

	cmd := &cobra.Command{
		Use:           "legalctl",
		Short:         "Operator tooling for the legal-process backend",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.ConfigPath != "" {
				if err := os.Setenv("CONFIG_PATH", opts.ConfigPath); err != nil {
					return fmt.Errorf("set CONFIG_PATH: %w", err)
				}
			}
			if opts.Timeout <= 0 {
				return fmt.Errorf("invalid timeout %v: must be positive", opts.Timeout)
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "config file (overrides CONFIG_PATH)")
	cmd.PersistentFlags().DurationVar(&opts.Timeout, "timeout", defaultTimeout, "deadline for database operations")

	cmd.AddCommand(NewMigrateCommand(opts))
	cmd.AddCommand(NewPromoteCommand(opts))
	cmd.AddCommand(NewConfigCommand())
	cmd.AddCommand(NewVersionCommand())

	return cmd
}
