package app

import (
	"time"

	"github.com/jbeshir/fritter-engagement/internal/command"
	"github.com/jbeshir/fritter-engagement/internal/transport/web/router"
)

// NewCommands wires every HTTP use case to the process's dependencies.
func NewCommands(deps *Dependencies, notificationTTL time.Duration) router.Commands {
	dataset := deps.Dataset

	return router.Commands{
		ListReactions:   command.NewListReactions(dataset, dataset, dataset, dataset),
		CreateReaction:  command.NewCreateReaction(dataset, dataset, dataset, deps.Events, deps.Notifications, notificationTTL),
		DeleteReaction:  command.NewDeleteReaction(dataset, dataset, deps.Events),
		ResolveReaction: command.NewResolveReaction(dataset, dataset, deps.Events),
		RankFreets:      command.NewRankFreets(dataset, dataset, dataset),

		ListBookmarkedFreets: command.NewListBookmarkedFreets(dataset, dataset, dataset),
		ListBookmarks:        command.NewListBookmarks(dataset, dataset, dataset),
		GetBookmark:          command.NewGetBookmark(dataset),
		CreateBookmark:       command.NewCreateBookmark(dataset, dataset, deps.Events, deps.Notifications, notificationTTL),
		DeleteBookmark:       command.NewDeleteBookmark(dataset, deps.Events),

		ListStatuses: command.NewListStatuses(dataset, dataset),
		CreateStatus: command.NewCreateStatus(dataset, dataset),
		DeleteStatus: command.NewDeleteStatus(dataset, dataset),

		RegisterUser: command.NewRegisterUser(dataset, dataset),
		DeleteUser:   command.NewDeleteUser(dataset, deps.Events),
		CreateFreet:  command.NewCreateFreet(dataset, dataset),
		DeleteFreet:  command.NewDeleteFreet(dataset, dataset, deps.Events),

		CreateAPIToken: command.NewCreateAPIToken(dataset, dataset),
	}
}
