package tracker

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func positioned(id, routeID string, lat, lon float64) Entity {
	e := Entity{ID: id, Vehicle: &Vehicle{Position: &Position{Latitude: lat, Longitude: lon}}}
	if routeID != "" {
		e.Vehicle.Trip = &Trip{RouteID: routeID}
	}
	return e
}

func TestBuildMarkers_FiltersUnpositioned(t *testing.T) {
	feed := &Feed{Entity: []Entity{
		positioned("a", "11-A", 49.88, -119.49),
		{ID: "no-vehicle"},
		{ID: "no-position", Vehicle: &Vehicle{Trip: &Trip{RouteID: "1"}}},
		positioned("b", "", 49.9, -119.4),
	}}

	markers := BuildMarkers(feed, Styler{PixelRatio: 1})
	require.Len(t, markers, 2)

	assert.Equal(t, "a", markers[0].ID)
	assert.Equal(t, "11", markers[0].Label)
	assert.Equal(t, "#34495e", markers[0].Style.Color)
	assert.Equal(t, FromLonLat(-119.49, 49.88), markers[0].Coordinate)
	assert.Equal(t, 49.88, markers[0].Latitude)
	assert.Equal(t, -119.49, markers[0].Longitude)

	assert.Equal(t, "b", markers[1].ID)
	assert.Equal(t, UnknownRoute, markers[1].Label)
	assert.Equal(t, DefaultColor, markers[1].Style.Color)
}

func TestBuildMarkers_Empty(t *testing.T) {
	assert.Empty(t, BuildMarkers(nil, Styler{}))
	assert.Empty(t, BuildMarkers(&Feed{}, Styler{}))
	assert.NotNil(t, BuildMarkers(&Feed{}, Styler{}))
}

func TestBuildMarkers_HighDensityScale(t *testing.T) {
	markers := BuildMarkers(&Feed{Entity: []Entity{positioned("a", "97", 1, 1)}}, Styler{PixelRatio: 2})
	require.Len(t, markers, 1)
	assert.Equal(t, 1.5, markers[0].Style.Scale)
}

type recordingRenderer struct {
	calls [][]Marker
	err   error
}

func (r *recordingRenderer) Render(markers []Marker) error {
	r.calls = append(r.calls, markers)
	return r.err
}

func TestLayer_ReplaceAll(t *testing.T) {
	r := &recordingRenderer{}
	layer := NewLayer(r)
	assert.Empty(t, layer.Markers())
	assert.Zero(t, layer.Generation())

	first := []Marker{{ID: "a"}, {ID: "b"}}
	require.NoError(t, layer.ReplaceAll(first))
	assert.Equal(t, first, layer.Markers())
	assert.Equal(t, uint64(1), layer.Generation())

	require.NoError(t, layer.ReplaceAll([]Marker{}))
	assert.Empty(t, layer.Markers())
	assert.Equal(t, uint64(2), layer.Generation())

	require.Len(t, r.calls, 2)
	assert.Equal(t, first, r.calls[0])
}

func TestLayer_ReplaceAllSwapsWhenRenderFails(t *testing.T) {
	boom := errors.New("boom")
	layer := NewLayer(&recordingRenderer{err: boom})

	err := layer.ReplaceAll([]Marker{{ID: "a"}})
	assert.ErrorIs(t, err, boom)
	assert.Len(t, layer.Markers(), 1)
	assert.Equal(t, uint64(1), layer.Generation())
}

func TestLayer_NilRenderer(t *testing.T) {
	layer := NewLayer(nil)
	require.NoError(t, layer.ReplaceAll([]Marker{{ID: "a"}}))
	assert.Len(t, layer.Markers(), 1)
}
