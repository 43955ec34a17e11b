package cli

import (
	"context"

	"github.com/jbeshir/fritter-engagement/internal/app"
	"github.com/jbeshir/fritter-engagement/internal/command"
	"github.com/spf13/cobra"
)

func newRankCommand(opts *RootOptions) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "rank",
		Short: "Print every freet ordered by recommendation score",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.withDependencies(cmd.Context(), func(ctx context.Context, deps *app.Dependencies) error {
				dataset := deps.Dataset
				ranked, err := command.NewRankFreets(dataset, dataset, dataset).Execute(ctx, command.Empty{})
				if err != nil {
					return err
				}
				if limit > 0 && len(ranked) > limit {
					ranked = ranked[:limit]
				}
				return writeRanked(cmd.OutOrStdout(), opts.Format, ranked)
			})
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "only print the top n freets (0 prints all)")
	return cmd
}
