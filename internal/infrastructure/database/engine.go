// Package database provides a uniform query execution surface over the two
// supported relational backends: an embedded SQLite file and a PostgreSQL
// server. Statements are written once, in a canonical dialect with `?`
// placeholders, and each engine normalizes placeholder syntax, generated-id
// retrieval, and driver error classification so that no repository ever
// branches on which backend is active.
package database

import (
	"context"
	"strings"

	"folios/internal/infrastructure/config"
)

// Engine executes canonical statements against the active backend.
//
// Execute returns row data for read statements and generated-id/affected-row
// counts for write statements; the statement class is derived from its
// leading keyword, never from the caller. TableNames and IndexNames expose
// the backend's catalog for the schema convergence routine.
type Engine interface {
	Execute(ctx context.Context, query string, args ...any) (*Result, error)
	TableNames(ctx context.Context) ([]string, error)
	IndexNames(ctx context.Context) ([]string, error)
	Dialect() string
	Close() error
}

const (
	DialectSQLite   = "sqlite"
	DialectPostgres = "postgres"
)

// Open selects the backend once, at process start: a configured URL means
// the client-server engine, otherwise the embedded engine opens the file at
// the configured path. The returned engine lives for the whole process.
func Open(cfg *config.DatabaseConfig) (Engine, error) {
	if cfg.URL != "" {
		return openPostgres(cfg)
	}
	return openSQLite(cfg)
}

// isReadStatement classifies a statement by its leading keyword.
func isReadStatement(query string) bool {
	q := strings.TrimSpace(query)
	if i := strings.IndexAny(q, " \t\r\n("); i > 0 {
		q = q[:i]
	}
	switch strings.ToUpper(q) {
	case "SELECT", "WITH", "PRAGMA", "EXPLAIN", "SHOW":
		return true
	}
	return false
}

// insertTarget extracts the table name from an INSERT statement. Returns
// false for any other statement shape.
func insertTarget(query string) (string, bool) {
	fields := strings.Fields(strings.TrimSpace(query))
	if len(fields) < 3 || !strings.EqualFold(fields[0], "INSERT") || !strings.EqualFold(fields[1], "INTO") {
		return "", false
	}
	table := fields[2]
	if i := strings.IndexByte(table, '('); i >= 0 {
		table = table[:i]
	}
	table = strings.Trim(table, `"`)
	if table == "" {
		return "", false
	}
	return strings.ToLower(table), true
}
