package repository

import (
	"os"
	"time"
)

// Every date-ranged table carries a constant gsi1pk attribute plus a
// created_at sort key, indexed by created_at-index. Range fetches are
// Queries with BETWEEN over that GSI.
const createdAtIndex = "created_at-index"

// Fixed-width fractional seconds: RFC3339Nano trims trailing zeros, which
// would break lexicographic ordering on the sort key.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}
