package cli

import (
	"context"

	"github.com/jbeshir/fritter-engagement/internal/app"
	"github.com/jbeshir/fritter-engagement/internal/command"
	"github.com/spf13/cobra"
)

func newDeleteUserCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete-user <user-id>",
		Short: "Delete a user's freets and every engagement record referencing them",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withDependencies(cmd.Context(), func(ctx context.Context, deps *app.Dependencies) error {
				result, err := command.NewDeleteUser(deps.Dataset, deps.Events).Execute(ctx, command.DeleteUserRequest{
					UserID: args[0],
				})
				if err != nil {
					return err
				}
				return writeCascadeResult(cmd.OutOrStdout(), opts.Format, "user "+args[0], result)
			})
		},
	}
}

func newDeleteFreetCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete-freet <freet-id>",
		Short: "Delete a freet with its reactions and bookmarks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withDependencies(cmd.Context(), func(ctx context.Context, deps *app.Dependencies) error {
				dataset := deps.Dataset
				result, err := command.NewDeleteFreet(dataset, dataset, deps.Events).Execute(ctx, command.DeleteFreetRequest{
					FreetID: args[0],
				})
				if err != nil {
					return err
				}
				return writeCascadeResult(cmd.OutOrStdout(), opts.Format, "freet "+args[0], result)
			})
		},
	}
}

func newSweepCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "sweep",
		Short: "Remove engagement on freets that no longer exist and expired statuses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.withDependencies(cmd.Context(), func(ctx context.Context, deps *app.Dependencies) error {
				result, err := command.NewSweepDanglingEngagement(deps.Dataset).Execute(ctx, command.Empty{})
				if err != nil {
					return err
				}
				return writeCascadeResult(cmd.OutOrStdout(), opts.Format, "sweep", result)
			})
		},
	}
}
