package util

import (
	"github.com/oklog/ulid/v2"
)

// NewULID generates a new ULID string. IDs sort by creation time, which keeps
// job listings and log lines in run order.
func NewULID() string {
	return ulid.Make().String()
}
