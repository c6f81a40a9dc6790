package tracker

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromLonLat(t *testing.T) {
	origin := FromLonLat(0, 0)
	assert.InDelta(t, 0, origin.X, 1e-9)
	assert.InDelta(t, 0, origin.Y, 1e-9)

	edge := FromLonLat(180, 0)
	assert.InDelta(t, 20037508.34, edge.X, 0.01)

	kelowna := FromLonLat(-119.4960, 49.8879)
	assert.InDelta(t, -13302233.87, kelowna.X, 1)
	assert.Greater(t, kelowna.Y, 6.4e6)
	assert.Less(t, kelowna.Y, 6.5e6)

	mirrored := FromLonLat(119.4960, -49.8879)
	assert.InDelta(t, -kelowna.X, mirrored.X, 1e-6)
	assert.InDelta(t, -kelowna.Y, mirrored.Y, 1e-6)
}

func TestFromLonLat_ClampsPoles(t *testing.T) {
	north := FromLonLat(0, 90)
	assert.InDelta(t, 20037508.34, north.Y, 1)
	assert.Equal(t, FromLonLat(0, -maxLatitude), FromLonLat(0, -90))
}

func TestNewView(t *testing.T) {
	v := NewView(-119.4960, 49.8879, 13)
	assert.Equal(t, FromLonLat(-119.4960, 49.8879), v.Center)
	assert.Equal(t, 13.0, v.Zoom)
}
