package tracker

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog/log"
)

// Renderers fans a marker set out to several renderers
type Renderers []Renderer

func (rs Renderers) Render(markers []Marker) error {
	var errs []error
	for _, r := range rs {
		if err := r.Render(markers); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// LogRenderer writes the marker set to the global logger
type LogRenderer struct{}

func (LogRenderer) Render(markers []Marker) error {
	log.Info().Int("markers", len(markers)).Msg("bus positions updated")
	for _, m := range markers {
		log.Debug().
			Str("id", m.ID).
			Str("route", m.Label).
			Str("color", m.Style.Color).
			Float64("lat", m.Latitude).
			Float64("lon", m.Longitude).
			Float64("x", m.Coordinate.X).
			Float64("y", m.Coordinate.Y).
			Msg("bus")
	}
	return nil
}

// GeoJSONRenderer writes the marker set as a GeoJSON FeatureCollection so
// any map widget can display it. The file is replaced atomically.
type GeoJSONRenderer struct {
	Path string
}

type featureCollection struct {
	Type     string    `json:"type"`
	Features []feature `json:"features"`
}

type feature struct {
	Type       string            `json:"type"`
	Geometry   pointGeometry     `json:"geometry"`
	Properties featureProperties `json:"properties"`
}

type pointGeometry struct {
	Type        string     `json:"type"`
	Coordinates [2]float64 `json:"coordinates"`
}

type featureProperties struct {
	ID        string     `json:"id,omitempty"`
	Route     string     `json:"route"`
	Color     string     `json:"color"`
	Icon      string     `json:"icon"`
	Scale     float64    `json:"scale"`
	Anchor    [2]float64 `json:"anchor"`
	Projected [2]float64 `json:"projected"`
}

// FeatureCollection converts markers to GeoJSON bytes
func FeatureCollection(markers []Marker) ([]byte, error) {
	fc := featureCollection{Type: "FeatureCollection", Features: make([]feature, 0, len(markers))}
	for _, m := range markers {
		fc.Features = append(fc.Features, feature{
			Type:     "Feature",
			Geometry: pointGeometry{Type: "Point", Coordinates: [2]float64{m.Longitude, m.Latitude}},
			Properties: featureProperties{
				ID:        m.ID,
				Route:     m.Label,
				Color:     m.Style.Color,
				Icon:      m.Style.Icon,
				Scale:     m.Style.Scale,
				Anchor:    [2]float64{m.Style.AnchorX, m.Style.AnchorY},
				Projected: [2]float64{m.Coordinate.X, m.Coordinate.Y},
			},
		})
	}
	return json.Marshal(fc)
}

func (g GeoJSONRenderer) Render(markers []Marker) error {
	b, err := FeatureCollection(markers)
	if err != nil {
		return fmt.Errorf("encode geojson: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(g.Path), ".markers-*.geojson")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()
	if _, err := tmp.Write(b); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), g.Path)
}
