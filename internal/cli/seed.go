package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jbeshir/fritter-engagement/internal/app"
	"github.com/jbeshir/fritter-engagement/internal/command"
	"github.com/jbeshir/fritter-engagement/internal/domain"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// SeedFile is a fixture of users, freets and engagement. Freets, reactions
// and bookmarks name users by username.
type SeedFile struct {
	Users     []SeedUser     `yaml:"users"`
	Freets    []SeedFreet    `yaml:"freets"`
	Reactions []SeedReaction `yaml:"reactions"`
	Bookmarks []SeedBookmark `yaml:"bookmarks"`
}

type SeedUser struct {
	ID       string `yaml:"id"`
	Username string `yaml:"username"`
}

type SeedFreet struct {
	ID        string    `yaml:"id"`
	Author    string    `yaml:"author"`
	Content   string    `yaml:"content"`
	CreatedAt time.Time `yaml:"created_at"`
}

type SeedReaction struct {
	User  string `yaml:"user"`
	Freet string `yaml:"freet"`
	Kind  string `yaml:"kind"`

	// Recommended resolves a sad reaction: "yes" or "no". Empty leaves it undecided.
	Recommended string `yaml:"recommended"`
}

type SeedBookmark struct {
	User  string `yaml:"user"`
	Freet string `yaml:"freet"`
}

// SeedSummary counts what a seed run wrote.
type SeedSummary struct {
	Users     int `json:"users"`
	Freets    int `json:"freets"`
	Reactions int `json:"reactions"`
	Bookmarks int `json:"bookmarks"`
}

func LoadSeedFile(path string) (SeedFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return SeedFile{}, fmt.Errorf("reading seed file: %w", err)
	}

	var seed SeedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return SeedFile{}, fmt.Errorf("parsing seed file %s: %w", path, err)
	}
	return seed, nil
}

func newSeedCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "seed <file.yaml>",
		Short: "Load users, freets, reactions and bookmarks from a YAML fixture",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			seed, err := LoadSeedFile(args[0])
			if err != nil {
				return err
			}

			return opts.withDependencies(cmd.Context(), func(ctx context.Context, deps *app.Dependencies) error {
				summary, err := applySeed(ctx, deps, seed)
				if err != nil {
					return err
				}

				if opts.Format == "json" {
					return writeJSON(cmd.OutOrStdout(), summary)
				}
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "seeded %d users, %d freets, %d reactions, %d bookmarks\n",
					summary.Users, summary.Freets, summary.Reactions, summary.Bookmarks)
				return err
			})
		},
	}
}

// applySeed writes users and freets directly and engagement through the same
// commands the HTTP API uses, so events and notifications fire as they would
// in production.
func applySeed(ctx context.Context, deps *app.Dependencies, seed SeedFile) (SeedSummary, error) {
	var summary SeedSummary
	dataset := deps.Dataset

	registerUser := command.NewRegisterUser(dataset, dataset)
	for _, u := range seed.Users {
		if _, err := registerUser.Execute(ctx, command.RegisterUserRequest{UserID: u.ID, Username: u.Username}); err != nil {
			return summary, fmt.Errorf("seeding user [%s]: %w", u.Username, err)
		}
		summary.Users++
	}

	userIDs := make(map[string]string)
	resolve := func(username string) (string, error) {
		if id, ok := userIDs[username]; ok {
			return id, nil
		}
		user, err := dataset.ResolveUsername(ctx, username)
		if err != nil {
			return "", fmt.Errorf("resolving username [%s]: %w", username, err)
		}
		userIDs[username] = user.ID
		return user.ID, nil
	}

	now := time.Now().UTC()
	for i, f := range seed.Freets {
		authorID, err := resolve(f.Author)
		if err != nil {
			return summary, err
		}

		content := strings.TrimSpace(f.Content)
		if content == "" {
			return summary, fmt.Errorf("seeding freet [%s]: %w", f.ID, command.ErrEmptyFreet)
		}

		createdAt := f.CreatedAt
		if createdAt.IsZero() {
			createdAt = now.Add(time.Duration(i) * time.Second)
		}

		if err := dataset.CreateFreet(ctx, domain.Freet{
			ID:        f.ID,
			AuthorID:  authorID,
			Content:   content,
			CreatedAt: createdAt.UTC(),
		}); err != nil {
			return summary, fmt.Errorf("seeding freet [%s]: %w", f.ID, err)
		}
		summary.Freets++
	}

	createReaction := command.NewCreateReaction(dataset, dataset, dataset, deps.Events, deps.Notifications, 0)
	resolveReaction := command.NewResolveReaction(dataset, dataset, deps.Events)
	for _, r := range seed.Reactions {
		userID, err := resolve(r.User)
		if err != nil {
			return summary, err
		}

		kind, err := domain.ParseReactionKind(r.Kind)
		if err != nil {
			return summary, fmt.Errorf("seeding reaction by [%s] on [%s]: %w", r.User, r.Freet, err)
		}

		reaction, err := createReaction.Execute(ctx, command.CreateReactionRequest{
			UserID:  userID,
			FreetID: r.Freet,
			Kind:    kind,
		})
		if err != nil {
			return summary, fmt.Errorf("seeding reaction by [%s] on [%s]: %w", r.User, r.Freet, err)
		}

		if r.Recommended != "" {
			decision, err := domain.ParseDecision(r.Recommended)
			if err != nil {
				return summary, fmt.Errorf("seeding reaction by [%s] on [%s]: %w", r.User, r.Freet, err)
			}
			if _, err := resolveReaction.Execute(ctx, command.ResolveReactionRequest{
				UserID:     userID,
				ReactionID: reaction.ID,
				Decision:   decision,
			}); err != nil {
				return summary, fmt.Errorf("resolving reaction by [%s] on [%s]: %w", r.User, r.Freet, err)
			}
		}
		summary.Reactions++
	}

	createBookmark := command.NewCreateBookmark(dataset, dataset, deps.Events, deps.Notifications, 0)
	for _, b := range seed.Bookmarks {
		userID, err := resolve(b.User)
		if err != nil {
			return summary, err
		}

		if _, err := createBookmark.Execute(ctx, command.CreateBookmarkRequest{UserID: userID, FreetID: b.Freet}); err != nil {
			return summary, fmt.Errorf("seeding bookmark by [%s] on [%s]: %w", b.User, b.Freet, err)
		}
		summary.Bookmarks++
	}

	return summary, nil
}
