package db

import (
	"fmt"

	"s3-buckets/internal/config"

	"github.com/gurkankaymak/hocon"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// DSN builds the driver data source name from the db.* keys. For sqlite3 the
// db.name key is the database file.
func DSN(conf *hocon.Config, dbPass string) (driver string, dsn string) {
	driver = config.String(conf, "db.driver", "postgres")
	if driver == "sqlite3" {
		return driver, config.String(conf, "db.name", "s3-buckets.db")
	}
	return driver, fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		config.String(conf, "db.host", "localhost"),
		config.String(conf, "db.port", "5432"),
		config.String(conf, "db.user", "postgres"),
		dbPass,
		config.String(conf, "db.name", "postgres"),
		config.String(conf, "db.ssl", "disable"),
	)
}

func Connect(conf *hocon.Config, dbPass string) (*sqlx.DB, error) {
	driver, dsn := DSN(conf, dbPass)
	db, err := sqlx.Connect(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("connect %s database %s: %w", driver, config.String(conf, "db.name", ""), err)
	}
	return db, nil
}
