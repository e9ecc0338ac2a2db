package repository

import (
	"database/sql"
	"time"
)

// parseTime parses an RFC3339 column, returning the zero time when empty or
// malformed.
func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

// nullableString stores "" as SQL NULL.
func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func stringOrEmpty(s sql.NullString) string {
	if !s.Valid {
		return ""
	}
	return s.String
}

func nowUTC() string {
	return formatTime(time.Now())
}
