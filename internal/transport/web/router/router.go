package router

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/jbeshir/fritter-engagement/internal/command"
	"github.com/jbeshir/fritter-engagement/internal/datasources"
	"github.com/jbeshir/fritter-engagement/internal/domain"
	"github.com/jbeshir/fritter-engagement/internal/transport/web/controller"
	"github.com/rs/cors"
)

type Config struct {
	RSSFeedBaseURL        string
	RSSFeedAuthorName     string
	RSSFeedAuthorEmail    string
	RankedFeedCacheMaxAge time.Duration
	CORSAllowedOrigins    []string
}

// Commands holds the use cases the HTTP API exposes.
type Commands struct {
	ListReactions        command.Command[command.ListReactionsRequest, []domain.Reaction]
	CreateReaction       command.Command[command.CreateReactionRequest, domain.Reaction]
	DeleteReaction       command.Command[command.DeleteReactionRequest, command.Empty]
	ResolveReaction      command.Command[command.ResolveReactionRequest, domain.Reaction]
	RankFreets           command.Command[command.Empty, []domain.RankedFreet]
	ListBookmarkedFreets command.Command[command.ListBookmarkedFreetsRequest, []domain.Freet]
	ListBookmarks        command.Command[command.ListBookmarksRequest, []domain.Bookmark]
	GetBookmark          command.Command[command.GetBookmarkRequest, domain.Bookmark]
	CreateBookmark       command.Command[command.CreateBookmarkRequest, domain.Bookmark]
	DeleteBookmark       command.Command[command.DeleteBookmarkRequest, command.Empty]
	ListStatuses         command.Command[command.ListStatusesRequest, []domain.Status]
	CreateStatus         command.Command[command.CreateStatusRequest, domain.Status]
	DeleteStatus         command.Command[command.DeleteStatusRequest, command.Empty]
	RegisterUser         command.Command[command.RegisterUserRequest, domain.User]
	DeleteUser           command.Command[command.DeleteUserRequest, domain.CascadeResult]
	CreateFreet          command.Command[command.CreateFreetRequest, domain.Freet]
	DeleteFreet          command.Command[command.DeleteFreetRequest, domain.CascadeResult]
	CreateAPIToken       command.Command[command.CreateAPITokenRequest, command.CreateAPITokenResponse]
}

// Store is the read access controllers need directly.
type Store interface {
	datasources.FreetFetcher
	datasources.UserAPITokenLister
	datasources.APITokenRevoker
}

func MakeRouter(
	cfg Config,
	cmds Commands,
	store Store,
	notifications datasources.NotificationLister,
	authMiddleware func(http.Handler) http.Handler,
) (http.Handler, error) {
	r := mux.NewRouter()
	r.Use(authMiddleware)

	r.Handle("/v1/reactions", controller.ReactionsList{
		ListCmd: cmds.ListReactions,
	}).Methods(http.MethodGet)

	r.Handle("/v1/reactions", requireAuthMiddleware(controller.ReactionCreate{
		CreateCmd: cmds.CreateReaction,
	})).Methods(http.MethodPost)

	r.Handle("/v1/reactions/freets", controller.RankedFreetsList{
		RankCmd:     cmds.RankFreets,
		CacheMaxAge: cfg.RankedFeedCacheMaxAge,
	}).Methods(http.MethodGet)

	r.Handle("/v1/reactions/{reaction_id}", requireAuthMiddleware(controller.ReactionResolve{
		ResolveCmd: cmds.ResolveReaction,
	})).Methods(http.MethodPut)

	r.Handle("/v1/reactions/{reaction_id}", requireAuthMiddleware(controller.ReactionDelete{
		DeleteCmd: cmds.DeleteReaction,
	})).Methods(http.MethodDelete)

	r.Handle("/v1/bookmarks", controller.BookmarksList{
		ListCmd: cmds.ListBookmarkedFreets,
	}).Methods(http.MethodGet)

	r.Handle("/v1/bookmarks", requireAuthMiddleware(controller.BookmarkCreate{
		CreateCmd: cmds.CreateBookmark,
	})).Methods(http.MethodPost)

	r.Handle("/v1/bookmarks/records", controller.BookmarkRecordsList{
		ListCmd: cmds.ListBookmarks,
	}).Methods(http.MethodGet)

	r.Handle("/v1/bookmarks/{freet_id}", requireAuthMiddleware(controller.BookmarkGet{
		GetCmd: cmds.GetBookmark,
	})).Methods(http.MethodGet)

	r.Handle("/v1/bookmarks/{freet_id}", requireAuthMiddleware(controller.BookmarkDelete{
		DeleteCmd: cmds.DeleteBookmark,
	})).Methods(http.MethodDelete)

	r.Handle("/v1/statuses", controller.StatusesList{
		ListCmd: cmds.ListStatuses,
	}).Methods(http.MethodGet)

	r.Handle("/v1/statuses", requireAuthMiddleware(controller.StatusCreate{
		CreateCmd: cmds.CreateStatus,
	})).Methods(http.MethodPost)

	r.Handle("/v1/statuses/{status_id}", requireAuthMiddleware(controller.StatusDelete{
		DeleteCmd: cmds.DeleteStatus,
	})).Methods(http.MethodDelete)

	r.Handle("/v1/users/me", requireAuthMiddleware(controller.UserRegister{
		RegisterCmd: cmds.RegisterUser,
	})).Methods(http.MethodPut)

	r.Handle("/v1/users/me", requireAuthMiddleware(controller.UserDelete{
		DeleteCmd: cmds.DeleteUser,
	})).Methods(http.MethodDelete)

	r.Handle("/v1/freets", requireAuthMiddleware(controller.FreetCreate{
		CreateCmd: cmds.CreateFreet,
	})).Methods(http.MethodPost)

	r.Handle("/v1/freets/{freet_id}", controller.FreetGet{
		Fetcher:     store,
		CacheMaxAge: cfg.RankedFeedCacheMaxAge,
	}).Methods(http.MethodGet)

	r.Handle("/v1/freets/{freet_id}", requireAuthMiddleware(controller.FreetDelete{
		DeleteCmd: cmds.DeleteFreet,
	})).Methods(http.MethodDelete)

	r.Handle("/v1/notifications", requireAuthMiddleware(controller.NotificationsList{
		Lister: notifications,
	})).Methods(http.MethodGet)

	r.Handle("/v1/tokens", requireAuthMiddleware(controller.APITokenCreate{
		CreateCmd: cmds.CreateAPIToken,
	})).Methods(http.MethodPost)

	r.Handle("/v1/tokens", requireAuthMiddleware(controller.APITokenList{
		TokenLister: store,
	})).Methods(http.MethodGet)

	r.Handle("/v1/tokens/{token_id}", requireAuthMiddleware(controller.APITokenRevoke{
		TokenRevoker: store,
	})).Methods(http.MethodDelete)

	r.Handle("/rss", controller.RSS{
		FeedHostname:    cfg.RSSFeedBaseURL,
		FeedPath:        "/rss",
		FeedAuthorName:  cfg.RSSFeedAuthorName,
		FeedAuthorEmail: cfg.RSSFeedAuthorEmail,
		RankCmd:         cmds.RankFreets,
		CacheMaxAge:     cfg.RankedFeedCacheMaxAge,
	}).Methods(http.MethodGet)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
		},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
		MaxAge:         int((10 * time.Minute).Seconds()),
	})

	return corsHandler.Handler(r), nil
}
