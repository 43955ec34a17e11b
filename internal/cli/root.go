// Package cli implements engagementctl, the operator command line for the
// engagement store.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/jbeshir/fritter-engagement/internal/app"
	"github.com/jbeshir/fritter-engagement/internal/domain"
	"github.com/spf13/cobra"
)

// DependencyLoader opens the connections a subcommand needs. The caller
// closes the returned dependencies.
type DependencyLoader func(ctx context.Context) (*app.Dependencies, error)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"

	loadDependencies DependencyLoader
}

var validFormats = []string{"text", "json"}

// NewRootCommand creates the engagementctl root command. Subcommands that
// touch the store open it through load.
func NewRootCommand(load DependencyLoader) *cobra.Command {
	opts := &RootOptions{loadDependencies: load}

	cmd := &cobra.Command{
		Use:   "engagementctl",
		Short: "Operate the Fritter engagement store",
		Long: "Operator tooling for Fritter engagement: schema migration, fixture seeding, " +
			"ranking, cascading deletes and the dangling engagement sweep.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if !slices.Contains(validFormats, opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, validFormats)
			}

			level := slog.LevelWarn
			if opts.Verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			cmd.SetContext(domain.ContextWithLogger(cmd.Context(), logger))
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")

	cmd.AddCommand(newMigrateCommand(opts))
	cmd.AddCommand(newSeedCommand(opts))
	cmd.AddCommand(newRankCommand(opts))
	cmd.AddCommand(newDeleteUserCommand(opts))
	cmd.AddCommand(newDeleteFreetCommand(opts))
	cmd.AddCommand(newSweepCommand(opts))
	cmd.AddCommand(newMintSessionTokenCommand(opts))

	return cmd
}

// withDependencies runs fn against freshly loaded dependencies and closes
// them afterwards.
func (o *RootOptions) withDependencies(
	ctx context.Context,
	fn func(ctx context.Context, deps *app.Dependencies) error,
) (err error) {
	deps, err := o.loadDependencies(ctx)
	if err != nil {
		return fmt.Errorf("setting up dependencies: %w", err)
	}
	defer func() {
		if closeErr := deps.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("closing dependencies: %w", closeErr)
		}
	}()

	return fn(ctx, deps)
}
