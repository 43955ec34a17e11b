package cli

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/jbeshir/fritter-engagement/internal/session"
	"github.com/spf13/cobra"
)

type mintedToken struct {
	Token     string    `json:"token"`
	UserID    string    `json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
}

func newMintSessionTokenCommand(opts *RootOptions) *cobra.Command {
	var ttl time.Duration

	cmd := &cobra.Command{
		Use:   "mint-session-token <user-id>",
		Short: "Issue a session token for a user, signed with SESSION_SECRET",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			secret := os.Getenv("SESSION_SECRET")
			if secret == "" {
				return errors.New("SESSION_SECRET environment variable is required")
			}
			if ttl <= 0 {
				return fmt.Errorf("ttl must be positive, got %s", ttl)
			}

			signer, err := session.NewSigner(secret)
			if err != nil {
				return err
			}

			now := time.Now().UTC()
			token, err := signer.Sign(args[0], now, ttl)
			if err != nil {
				return err
			}

			if opts.Format == "json" {
				return writeJSON(cmd.OutOrStdout(), mintedToken{
					Token:     token,
					UserID:    args[0],
					ExpiresAt: now.Add(ttl),
				})
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "session|%s\n", token)
			return err
		},
	}

	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "how long the token stays valid")
	return cmd
}
