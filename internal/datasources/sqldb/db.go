package sqldb

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	"github.com/huandu/go-sqlbuilder"
	_ "github.com/mattn/go-sqlite3"
)

// Driver selects the SQL backend. MySQL is used in production; SQLite backs
// local development and the repository tests.
type Driver string

const (
	DriverMySQL  Driver = "mysql"
	DriverSQLite Driver = "sqlite3"
)

const mysqlParamStr string = "?parseTime=true"

func ParseDriver(s string) (Driver, error) {
	switch s {
	case "mysql":
		return DriverMySQL, nil
	case "sqlite", "sqlite3":
		return DriverSQLite, nil
	default:
		return "", fmt.Errorf("unknown database driver %q", s)
	}
}

func (d Driver) Flavor() sqlbuilder.Flavor {
	if d == DriverSQLite {
		return sqlbuilder.SQLite
	}
	return sqlbuilder.MySQL
}

// Connect opens and pings a database. For SQLite, uri is a file path.
func Connect(ctx context.Context, driver Driver, uri string) (*sql.DB, error) {
	switch driver {
	case DriverMySQL:
		return connectMySQL(ctx, uri)
	case DriverSQLite:
		return connectSQLite(ctx, uri)
	default:
		return nil, fmt.Errorf("unknown database driver %q", driver)
	}
}

func connectMySQL(ctx context.Context, uri string) (*sql.DB, error) {
	db, err := sql.Open("mysql", uri+mysqlParamStr)
	if err != nil {
		return nil, fmt.Errorf("connecting to MySQL DB: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(10)

	err = db.PingContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("checking MySQL DB connection: %w", err)
	}

	return db, nil
}

var sqlitePragmas = []string{
	"PRAGMA journal_mode = WAL",
	"PRAGMA synchronous = NORMAL",
	"PRAGMA busy_timeout = 5000",
}

func connectSQLite(ctx context.Context, path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening SQLite DB: %w", err)
	}

	// SQLite allows a single writer.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("checking SQLite DB connection: %w", err)
	}

	for _, pragma := range sqlitePragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("executing %q: %w", pragma, err)
		}
	}

	return db, nil
}
