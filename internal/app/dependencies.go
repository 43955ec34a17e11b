package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jbeshir/fritter-engagement/internal/datasources"
	"github.com/jbeshir/fritter-engagement/internal/datasources/nats"
	"github.com/jbeshir/fritter-engagement/internal/datasources/redis"
	"github.com/jbeshir/fritter-engagement/internal/datasources/sqldb"
	natsgo "github.com/nats-io/nats.go"
	goredis "github.com/redis/go-redis/v9"
)

// Dependencies are the external systems a process talks to.
type Dependencies struct {
	DB            *sql.DB
	Driver        sqldb.Driver
	Dataset       *sqldb.Repository
	Events        datasources.EventPublisher
	Notifications datasources.NotificationStore

	// NATS is nil unless EVENTS_DRIVER is nats.
	NATS  *natsgo.Conn
	redis *goredis.Client
}

func SetupDependencies(ctx context.Context) (*Dependencies, error) {
	deps := &Dependencies{}

	db, driver, err := setupDatabase(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up database: %w", err)
	}
	deps.DB = db
	deps.Driver = driver
	deps.Dataset = sqldb.New(db, driver)

	switch eventsDriver := GetEnvAsString("EVENTS_DRIVER", "null"); eventsDriver {
	case "null":
		deps.Events = datasources.NullEventPublisher{}
	case "nats":
		conn, err := nats.Connect(MustGetEnvAsString(ctx, "NATS_URL"))
		if err != nil {
			return nil, errors.Join(err, deps.Close())
		}
		deps.NATS = conn
		deps.Events = nats.NewEventPublisher(conn)
	default:
		return nil, errors.Join(fmt.Errorf("unknown events driver [%s]", eventsDriver), deps.Close())
	}

	switch notificationsDriver := GetEnvAsString("NOTIFICATIONS_DRIVER", "null"); notificationsDriver {
	case "null":
		deps.Notifications = datasources.NullNotificationStore{}
	case "redis":
		client, err := redis.Connect(ctx, MustGetEnvAsString(ctx, "REDIS_ADDR"))
		if err != nil {
			return nil, errors.Join(err, deps.Close())
		}
		deps.redis = client
		deps.Notifications = redis.NewNotificationStore(client)
	default:
		return nil, errors.Join(fmt.Errorf("unknown notifications driver [%s]", notificationsDriver), deps.Close())
	}

	return deps, nil
}

func setupDatabase(ctx context.Context) (*sql.DB, sqldb.Driver, error) {
	driver, err := sqldb.ParseDriver(MustGetEnvAsString(ctx, "DATABASE_DRIVER"))
	if err != nil {
		return nil, "", err
	}

	db, err := sqldb.Connect(ctx, driver, MustGetEnvAsString(ctx, "DATABASE_URI"))
	if err != nil {
		return nil, "", err
	}

	if GetEnvAsString("DATABASE_AUTO_MIGRATE", "false") == "true" {
		if err := sqldb.Migrate(ctx, db, driver); err != nil {
			return nil, "", errors.Join(fmt.Errorf("migrating schema: %w", err), db.Close())
		}
	}

	return db, driver, nil
}

// Close releases every connection that was opened.
func (d *Dependencies) Close() error {
	var errs []error
	if d.NATS != nil {
		if err := d.NATS.Drain(); err != nil {
			errs = append(errs, fmt.Errorf("draining NATS connection: %w", err))
		}
	}
	if d.redis != nil {
		if err := d.redis.Close(); err != nil {
			errs = append(errs, fmt.Errorf("closing redis client: %w", err))
		}
	}
	if d.DB != nil {
		if err := d.DB.Close(); err != nil {
			errs = append(errs, fmt.Errorf("closing database: %w", err))
		}
	}
	return errors.Join(errs...)
}
