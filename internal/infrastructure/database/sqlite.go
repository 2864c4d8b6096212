package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	sqlite "modernc.org/sqlite"

	"folios/internal/infrastructure/config"
)

// sqliteEngine is the embedded file-based backend. The canonical `?`
// placeholder syntax is native here, and generated ids come from the
// driver's last-insert-id side channel.
type sqliteEngine struct {
	db *sql.DB
}

// SQLite extended result codes for unique constraint breaches.
const (
	sqliteConstraintPrimaryKey = 1555
	sqliteConstraintUnique     = 2067
)

func openSQLite(cfg *config.DatabaseConfig) (Engine, error) {
	if dir := filepath.Dir(cfg.Path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	busyTimeout := cfg.ConnTimeout * 1000
	if busyTimeout <= 0 {
		busyTimeout = 5000
	}

	// foreign_keys must be enabled per connection for the cascade rules to
	// hold; busy_timeout bounds lock waits instead of failing immediately.
	dsn := fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(%d)", cfg.Path, busyTimeout)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, &StorageError{Message: "failed to open embedded database", Err: err}
	}

	// The embedded engine serializes writers; a single connection avoids
	// spurious table-lock errors under concurrent use.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, &StorageError{Message: "failed to open embedded database", Err: err}
	}

	return &sqliteEngine{db: db}, nil
}

func (e *sqliteEngine) Execute(ctx context.Context, query string, args ...any) (*Result, error) {
	if isReadStatement(query) {
		rows, err := e.db.QueryContext(ctx, query, args...)
		if err != nil {
			return nil, e.wrap(err)
		}
		scanned, err := scanRows(rows)
		if err != nil {
			return nil, e.wrap(err)
		}
		return &Result{Rows: scanned}, nil
	}

	res, err := e.db.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, e.wrap(err)
	}

	result := &Result{}
	if affected, err := res.RowsAffected(); err == nil {
		result.AffectedRows = affected
	}
	if _, ok := insertTarget(query); ok {
		if id, err := res.LastInsertId(); err == nil && id > 0 {
			result.GeneratedID = &id
		}
	}
	return result, nil
}

func (e *sqliteEngine) TableNames(ctx context.Context) ([]string, error) {
	return e.names(ctx, "table")
}

func (e *sqliteEngine) IndexNames(ctx context.Context) ([]string, error) {
	return e.names(ctx, "index")
}

func (e *sqliteEngine) names(ctx context.Context, kind string) ([]string, error) {
	res, err := e.Execute(ctx,
		`SELECT name FROM sqlite_master WHERE type = ? AND name NOT LIKE 'sqlite_%'`, kind)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(res.Rows))
	for _, row := range res.Rows {
		names = append(names, row.String("name"))
	}
	return names, nil
}

func (e *sqliteEngine) Dialect() string {
	return DialectSQLite
}

func (e *sqliteEngine) Close() error {
	return e.db.Close()
}

func (e *sqliteEngine) wrap(err error) error {
	return &StorageError{
		Message:             "embedded backend error",
		ConstraintViolation: isSQLiteUniqueViolation(err),
		Err:                 err,
	}
}

func isSQLiteUniqueViolation(err error) bool {
	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) {
		code := sqliteErr.Code()
		return code == sqliteConstraintPrimaryKey || code == sqliteConstraintUnique
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
