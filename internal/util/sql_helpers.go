package util

import (
	"database/sql"
	"time"
)

// TimePtrToNullTime converts an optional time to sql.NullTime.
// A nil pointer is treated as NULL.
func TimePtrToNullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

// NullTimeToPtr converts sql.NullTime to an optional time.
// NULL becomes nil.
func NullTimeToPtr(nt sql.NullTime) *time.Time {
	if !nt.Valid {
		return nil
	}
	t := nt.Time
	return &t
}
