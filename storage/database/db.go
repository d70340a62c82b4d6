package database

import (
	"database/sql"
	"net"
	"net/url"
	"path/filepath"
	"time"

	_ "github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/pressly/goose"

	"github.com/huyanluanyuing/LMS/core"
)

// Open connects to the configured database.
func Open() (*sql.DB, error) {
	user := url.UserPassword(core.Conf.GetString("database.user"), core.Conf.GetString("database.password"))

	sslMode := "require"
	if core.Conf.GetBool("database.disableTLS") {
		sslMode = "disable"
	}
	q := make(url.Values)
	q.Set("sslmode", sslMode)
	q.Set("timezone", "utc")

	u := url.URL{
		Scheme:   core.Conf.GetString("database.engine"),
		User:     user,
		Host:     net.JoinHostPort(core.Conf.GetString("database.host"), core.Conf.GetString("database.port")),
		Path:     core.Conf.GetString("database.name"),
		RawQuery: q.Encode(),
	}

	db, err := sql.Open(core.Conf.GetString("database.engine"), u.String())
	if err != nil {
		return nil, errors.Wrap(err, "opening database")
	}
	if err = ping(db); err != nil {
		return nil, err
	}
	return db, nil
}

// ping waits for the database to be ready. Waits 100ms longer between each attempt.
func ping(db *sql.DB) error {
	var err error
	maxAttempts := 30
	for attempts := 1; attempts <= maxAttempts; attempts++ {
		err = db.Ping()
		if err == nil {
			break
		}
		time.Sleep(time.Duration(attempts) * 100 * time.Millisecond)
	}

	if err != nil {
		return errors.Wrap(err, "DB ping timeout")
	}
	return nil
}

// MigrationsDir locates the SQL migrations from the project root.
func MigrationsDir() string {
	return filepath.Join(core.Getwd(), "storage", "database", "migrations")
}

func Migrate(db *sql.DB) error {
	if err := goose.Run("up", db, MigrationsDir()); err != nil {
		return errors.Wrap(err, "migrating database")
	}
	return nil
}
