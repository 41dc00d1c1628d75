package database

import (
	"database/sql"
	"embed"
	"fmt"
	"net/url"
	"tntfl-ladder/internal/config"
	"tntfl-ladder/internal/constants"

	_ "github.com/mattn/go-sqlite3"
	"github.com/pressly/goose/v3"
	"github.com/rs/zerolog"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

func New(cfg *config.Config, logger zerolog.Logger) (*sql.DB, error) {
	return Open(cfg.DBPath, logger)
}

// connParams are applied by the driver to every pooled connection.
// Writers take the lock at BEGIN so concurrent transactions queue on
// busy_timeout instead of failing on lock upgrade.
var connParams = []struct {
	name  string
	value string
}{
	{"_journal_mode", "WAL"},
	{"_synchronous", "NORMAL"},
	{"_busy_timeout", "5000"},
	{"_cache_size", "-16000"},
	{"_foreign_keys", "on"},
	{"_txlock", "immediate"},
}

// DSN builds the go-sqlite3 connection string for a database file.
func DSN(path string) string {
	q := url.Values{}
	for _, p := range connParams {
		q.Set(p.name, p.value)
	}
	return "file:" + path + "?" + q.Encode()
}

// Open connects to the SQLite file at path and brings the schema up to
// date.
func Open(path string, logger zerolog.Logger) (*sql.DB, error) {
	logger.Info().Str("path", path).Msg("connecting to database")

	db, err := sql.Open("sqlite3", DSN(path))
	if err != nil {
		logger.Error().Err(err).Msg("failed to connect to database")
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(constants.DBMaxOpenConns)
	db.SetMaxIdleConns(constants.DBMaxIdleConns)
	db.SetConnMaxLifetime(constants.DBConnMaxLifetime)
	db.SetConnMaxIdleTime(constants.DBMaxIdleTime)

	if err := db.Ping(); err != nil {
		logger.Error().Err(err).Msg("failed to open database file")
		db.Close()
		return nil, fmt.Errorf("failed to open database %s: %w", path, err)
	}
	for _, p := range connParams {
		logger.Debug().Str("param", p.name).Str("value", p.value).Msg("SQLite connection setting")
	}

	if err := runMigrations(db, logger); err != nil {
		logger.Error().Err(err).Msg("failed to run migrations")
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	version, err := goose.GetDBVersion(db)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to read schema version: %w", err)
	}
	logger.Info().Int64("schema_version", version).Msg("database ready")
	return db, nil
}

func runMigrations(db *sql.DB, logger zerolog.Logger) error {
	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := goose.Up(db, "migrations"); err != nil {
		return fmt.Errorf("failed to run goose migrations: %w", err)
	}

	logger.Info().Msg("migrations completed successfully")
	return nil
}
