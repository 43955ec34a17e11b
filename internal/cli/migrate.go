package cli

import (
	"context"
	"fmt"

	"github.com/jbeshir/fritter-engagement/internal/app"
	"github.com/jbeshir/fritter-engagement/internal/datasources/sqldb"
	"github.com/spf13/cobra"
)

func newMigrateCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create any missing tables and indexes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.withDependencies(cmd.Context(), func(ctx context.Context, deps *app.Dependencies) error {
				if err := sqldb.Migrate(ctx, deps.DB, deps.Driver); err != nil {
					return fmt.Errorf("migrating schema: %w", err)
				}
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "schema up to date (%s)\n", deps.Driver)
				return err
			})
		},
	}
}
