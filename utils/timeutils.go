package utils

import (
	"time"
)

// Iso8601Now returns the current time in ISO8601 format
func Iso8601Now() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// Iso8601FromUnixSeconds converts a feed header timestamp to ISO8601.
// Zero means the feed never reported one and yields "".
func Iso8601FromUnixSeconds(sec uint64) string {
	if sec == 0 {
		return ""
	}
	return time.Unix(int64(sec), 0).UTC().Format(time.RFC3339)
}

// FeedAge is how old a feed header timestamp is at now, truncated to seconds.
// It returns 0 for a missing timestamp or one in the future.
func FeedAge(sec uint64, now time.Time) time.Duration {
	if sec == 0 {
		return 0
	}
	age := now.Sub(time.Unix(int64(sec), 0))
	if age < 0 {
		return 0
	}
	return age.Truncate(time.Second)
}
