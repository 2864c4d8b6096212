package database

import (
	"database/sql"
	"fmt"
	"strconv"
	"time"
)

// Result is the normalized outcome of a statement execution. Read statements
// populate Rows; write statements populate AffectedRows and, when the
// backend produced one, GeneratedID.
type Result struct {
	Rows         []Row
	GeneratedID  *int64
	AffectedRows int64
}

// Row is a single result row keyed by column name. Values keep whatever
// concrete type the driver produced; the typed accessors below normalize
// the differences between the two backends.
type Row map[string]any

// TimeLayout is the canonical wire format for timestamps written through
// the adapter. The embedded backend stores timestamps as text, so every
// repository formats with this layout to keep ordering and parsing uniform.
const TimeLayout = time.RFC3339

// FormatTime renders a timestamp in the canonical wire format.
func FormatTime(t time.Time) string {
	return t.UTC().Format(TimeLayout)
}

// Int64 returns the named column as int64. Missing or null columns yield 0.
func (r Row) Int64(column string) int64 {
	v, _ := toInt64(r[column])
	return v
}

// NullInt64 returns the named column as *int64, nil when null or absent.
func (r Row) NullInt64(column string) *int64 {
	if r[column] == nil {
		return nil
	}
	v, ok := toInt64(r[column])
	if !ok {
		return nil
	}
	return &v
}

// String returns the named column as string. Missing or null columns yield "".
func (r Row) String(column string) string {
	v, _ := toString(r[column])
	return v
}

// NullString returns the named column as *string, nil when null or absent.
func (r Row) NullString(column string) *string {
	if r[column] == nil {
		return nil
	}
	v, ok := toString(r[column])
	if !ok {
		return nil
	}
	return &v
}

// Time returns the named column as time.Time. The client-server driver
// yields time.Time directly; the embedded backend yields text in one of the
// layouts below. Unparseable or absent values yield the zero time.
func (r Row) Time(column string) time.Time {
	switch v := r[column].(type) {
	case time.Time:
		return v
	case string:
		return parseTime(v)
	case []byte:
		return parseTime(string(v))
	}
	return time.Time{}
}

var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
}

func parseTime(s string) time.Time {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case int32:
		return int64(n), true
	case int:
		return int64(n), true
	case float64:
		return int64(n), true
	case string:
		parsed, err := strconv.ParseInt(n, 10, 64)
		return parsed, err == nil
	case []byte:
		parsed, err := strconv.ParseInt(string(n), 10, 64)
		return parsed, err == nil
	case sql.NullInt64:
		return n.Int64, n.Valid
	}
	return 0, false
}

func toString(v any) (string, bool) {
	switch s := v.(type) {
	case string:
		return s, true
	case []byte:
		return string(s), true
	case time.Time:
		return FormatTime(s), true
	case int64, int32, int, float64:
		return fmt.Sprint(s), true
	}
	return "", false
}

// scanRows drains a *sql.Rows into normalized Row maps.
func scanRows(rows *sql.Rows) ([]Row, error) {
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	var out []Row
	for rows.Next() {
		values := make([]any, len(columns))
		pointers := make([]any, len(columns))
		for i := range values {
			pointers[i] = &values[i]
		}
		if err := rows.Scan(pointers...); err != nil {
			return nil, err
		}

		row := make(Row, len(columns))
		for i, col := range columns {
			row[col] = values[i]
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
