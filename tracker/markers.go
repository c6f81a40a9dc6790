package tracker

import (
	"sync"
)

// Marker is the rendering of one positioned vehicle
type Marker struct {
	ID         string
	Longitude  float64
	Latitude   float64
	Coordinate Coordinate
	Label      string
	Style      Style
}

// BuildMarkers derives one marker per entity that has a position. Entities
// without a vehicle or position are dropped.
func BuildMarkers(feed *Feed, styler Styler) []Marker {
	if feed == nil {
		return []Marker{}
	}
	markers := make([]Marker, 0, len(feed.Entity))
	for _, e := range feed.Entity {
		if e.Vehicle == nil || e.Vehicle.Position == nil {
			continue
		}
		pos := e.Vehicle.Position
		var routeID string
		if e.Vehicle.Trip != nil {
			routeID = e.Vehicle.Trip.RouteID
		}
		label := RouteLabel(routeID)
		markers = append(markers, Marker{
			ID:         e.ID,
			Longitude:  pos.Longitude,
			Latitude:   pos.Latitude,
			Coordinate: FromLonLat(pos.Longitude, pos.Latitude),
			Label:      label,
			Style:      styler.StyleFor(label),
		})
	}
	return markers
}

// Renderer draws a complete marker set
type Renderer interface {
	Render(markers []Marker) error
}

// Layer owns the current marker set. ReplaceAll is its only mutation.
type Layer struct {
	mu         sync.Mutex
	markers    []Marker
	generation uint64
	renderer   Renderer
}

// NewLayer creates an empty layer; renderer may be nil
func NewLayer(renderer Renderer) *Layer {
	return &Layer{markers: []Marker{}, renderer: renderer}
}

// ReplaceAll swaps in markers as one update and hands them to the renderer.
// The swap happens even when rendering fails.
func (l *Layer) ReplaceAll(markers []Marker) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.markers = markers
	l.generation++
	if l.renderer == nil {
		return nil
	}
	return l.renderer.Render(markers)
}

// Markers returns the current set. Callers must not modify it.
func (l *Layer) Markers() []Marker {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.markers
}

// Generation counts completed swaps
func (l *Layer) Generation() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.generation
}
