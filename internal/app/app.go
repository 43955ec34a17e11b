package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jbeshir/fritter-engagement/internal/command"
	"github.com/jbeshir/fritter-engagement/internal/datasources"
	"github.com/jbeshir/fritter-engagement/internal/session"
	"github.com/jbeshir/fritter-engagement/internal/transport/events"
	"github.com/jbeshir/fritter-engagement/internal/transport/web/router"
	"github.com/jbeshir/fritter-engagement/internal/transport/web/server"
)

type Component interface {
	Run(ctx context.Context) error
}

func Setup(ctx context.Context, deps *Dependencies) ([]Component, error) {
	authMiddleware, err := setupAuthMiddleware(ctx, deps.Dataset)
	if err != nil {
		return nil, fmt.Errorf("setting up auth middleware: %w", err)
	}

	cmds := NewCommands(deps, MustGetEnvAsDuration(ctx, "NOTIFICATION_TTL"))

	httpRouter, err := router.MakeRouter(
		router.Config{
			RSSFeedBaseURL:        MustGetEnvAsString(ctx, "RSS_FEED_BASE_URL"),
			RSSFeedAuthorName:     MustGetEnvAsString(ctx, "RSS_FEED_AUTHOR_NAME"),
			RSSFeedAuthorEmail:    MustGetEnvAsString(ctx, "RSS_FEED_AUTHOR_EMAIL"),
			RankedFeedCacheMaxAge: MustGetEnvAsDuration(ctx, "RANKED_FEED_CACHE_MAX_AGE"),
			CORSAllowedOrigins:    MustGetEnvAsStrings(ctx, "CORS_ALLOWED_ORIGINS"),
		},
		cmds,
		deps.Dataset,
		deps.Notifications,
		authMiddleware,
	)
	if err != nil {
		return nil, fmt.Errorf("unable to create HTTP router: %w", err)
	}

	components := []Component{
		&server.Server{
			TLSDisabled:       MustGetEnvAsBoolean(ctx, "HTTP_TLS_DISABLED"),
			TLSDisabledPort:   MustGetEnvAsInt(ctx, "PORT"),
			AutocertHostnames: MustGetEnvAsStrings(ctx, "HTTP_AUTOCERT_HOSTNAMES"),
			Router:            httpRouter,
		},
	}

	if interval := MustGetEnvAsDuration(ctx, "SWEEP_INTERVAL"); interval > 0 {
		components = append(components, &Sweeper{
			Interval: interval,
			SweepCmd: command.NewSweepDanglingEngagement(deps.Dataset),
		})
	}

	if deps.NATS != nil {
		components = append(components, &events.LifecycleSubscriber{
			Conn:        deps.NATS,
			DeleteUser:  cmds.DeleteUser,
			DeleteFreet: cmds.DeleteFreet,
		})
	}

	return components, nil
}

func setupAuthMiddleware(
	ctx context.Context, tokens datasources.APITokenRepository,
) (func(http.Handler) http.Handler, error) {
	var validators []router.AuthValidator

	for _, driver := range MustGetEnvAsStrings(ctx, "AUTH_DRIVERS") {
		switch driver {
		case "auth0":
			v, err := router.NewAuth0Validator(
				MustGetEnvAsString(ctx, "AUTH0_DOMAIN"),
				MustGetEnvAsString(ctx, "AUTH0_AUDIENCE"),
			)
			if err != nil {
				return nil, fmt.Errorf("creating Auth0 validator: %w", err)
			}
			validators = append(validators, v)
		case "api_token":
			validators = append(validators, router.NewAPITokenValidator(ctx, tokens, tokens))
		case "session":
			signer, err := session.NewSigner(MustGetEnvAsString(ctx, "SESSION_SECRET"))
			if err != nil {
				return nil, fmt.Errorf("creating session validator: %w", err)
			}
			validators = append(validators, router.NewSessionValidator(signer))
		default:
			return nil, fmt.Errorf("unknown auth driver [%s]", driver)
		}
	}

	return router.NewAuthMiddleware(validators), nil
}
