package tracker

import "math"

const (
	earthRadius = 6378137.0
	maxLatitude = 85.0511287798066
)

// Coordinate is a Web Mercator (EPSG:3857) position in metres
type Coordinate struct {
	X float64
	Y float64
}

// FromLonLat projects WGS84 degrees onto Web Mercator. Latitudes beyond the
// projection's limit are clamped.
func FromLonLat(lon, lat float64) Coordinate {
	lat = math.Max(-maxLatitude, math.Min(maxLatitude, lat))
	return Coordinate{
		X: earthRadius * lon * math.Pi / 180,
		Y: earthRadius * math.Log(math.Tan(math.Pi/4+lat*math.Pi/360)),
	}
}

// View is the initial map viewport
type View struct {
	Center Coordinate
	Zoom   float64
}

// NewView centers the map on lon/lat
func NewView(lon, lat, zoom float64) View {
	return View{Center: FromLonLat(lon, lat), Zoom: zoom}
}
