package database

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"

	"folios/internal/infrastructure/config"
)

// postgresEngine is the client-server backend. Canonical `?` placeholders
// are rewritten to the numbered `$n` syntax, and generated ids are read
// back through a RETURNING clause since the driver has no last-insert-id
// side channel.
type postgresEngine struct {
	db *sql.DB
}

// pgUniqueViolation is the SQLSTATE class for unique constraint breaches.
const pgUniqueViolation = "23505"

// serialKeys maps each table with a generated primary key to its key
// column, so INSERT statements can be extended with a RETURNING clause.
var serialKeys = map[string]string{
	"roles":             "id",
	"users":             "id",
	"folios":            "id",
	"folio_assignments": "id",
	"folio_responses":   "id",
}

func openPostgres(cfg *config.DatabaseConfig) (Engine, error) {
	dsn := cfg.URL
	if cfg.SSLMode != "" && !strings.Contains(dsn, "sslmode=") {
		sep := "?"
		if strings.Contains(dsn, "?") {
			sep = "&"
		}
		dsn += sep + "sslmode=" + cfg.SSLMode
	}
	if cfg.ConnTimeout > 0 && !strings.Contains(dsn, "connect_timeout=") {
		sep := "?"
		if strings.Contains(dsn, "?") {
			sep = "&"
		}
		dsn += sep + "connect_timeout=" + strconv.Itoa(cfg.ConnTimeout)
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, &StorageError{Message: "failed to open database connection", Err: err}
	}

	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Minute)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, &StorageError{Message: "failed to ping database", Err: err}
	}

	return &postgresEngine{db: db}, nil
}

func (e *postgresEngine) Execute(ctx context.Context, query string, args ...any) (*Result, error) {
	rebound := rebindPositional(query)

	if isReadStatement(query) {
		rows, err := e.db.QueryContext(ctx, rebound, args...)
		if err != nil {
			return nil, e.wrap(err)
		}
		scanned, err := scanRows(rows)
		if err != nil {
			return nil, e.wrap(err)
		}
		return &Result{Rows: scanned}, nil
	}

	if table, ok := insertTarget(query); ok {
		if key, known := serialKeys[table]; known && !strings.Contains(strings.ToUpper(query), "RETURNING") {
			var id int64
			row := e.db.QueryRowContext(ctx, rebound+" RETURNING "+key, args...)
			if err := row.Scan(&id); err != nil {
				return nil, e.wrap(err)
			}
			return &Result{GeneratedID: &id, AffectedRows: 1}, nil
		}
	}

	res, err := e.db.ExecContext(ctx, rebound, args...)
	if err != nil {
		return nil, e.wrap(err)
	}

	result := &Result{}
	if affected, err := res.RowsAffected(); err == nil {
		result.AffectedRows = affected
	}
	return result, nil
}

func (e *postgresEngine) TableNames(ctx context.Context) ([]string, error) {
	return e.names(ctx, `SELECT tablename AS name FROM pg_tables WHERE schemaname = 'public'`)
}

func (e *postgresEngine) IndexNames(ctx context.Context) ([]string, error) {
	return e.names(ctx, `SELECT indexname AS name FROM pg_indexes WHERE schemaname = 'public'`)
}

func (e *postgresEngine) names(ctx context.Context, query string) ([]string, error) {
	res, err := e.Execute(ctx, query)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(res.Rows))
	for _, row := range res.Rows {
		names = append(names, row.String("name"))
	}
	return names, nil
}

func (e *postgresEngine) Dialect() string {
	return DialectPostgres
}

func (e *postgresEngine) Close() error {
	return e.db.Close()
}

func (e *postgresEngine) wrap(err error) error {
	return &StorageError{
		Message:             "database backend error",
		ConstraintViolation: isPostgresUniqueViolation(err),
		Err:                 err,
	}
}

func isPostgresUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

// rebindPositional rewrites canonical `?` placeholders into the numbered
// `$n` form. Question marks inside single-quoted literals are left alone.
func rebindPositional(query string) string {
	var b strings.Builder
	b.Grow(len(query) + 8)

	n := 0
	inLiteral := false
	for i := 0; i < len(query); i++ {
		c := query[i]
		switch {
		case c == '\'':
			inLiteral = !inLiteral
			b.WriteByte(c)
		case c == '?' && !inLiteral:
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}
