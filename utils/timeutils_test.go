package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIso8601FromUnixSeconds(t *testing.T) {
	assert.Equal(t, "2023-11-14T22:15:23Z", Iso8601FromUnixSeconds(1700000123))
	assert.Empty(t, Iso8601FromUnixSeconds(0))
}

func TestIso8601Now(t *testing.T) {
	_, err := time.Parse(time.RFC3339, Iso8601Now())
	assert.NoError(t, err)
}

func TestFeedAge(t *testing.T) {
	now := time.Unix(1700000153, 500)
	assert.Equal(t, 30*time.Second, FeedAge(1700000123, now))
	assert.Zero(t, FeedAge(0, now))
	assert.Zero(t, FeedAge(1700000200, now))
}
