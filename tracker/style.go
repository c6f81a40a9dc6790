package tracker

import (
	"fmt"
	"html"
	"net/url"
)

// DefaultColor is used for every route missing from the color table
const DefaultColor = "#555"

var routeColors = map[string]string{
	"1":  "#e74c3c",
	"2":  "#3498db",
	"5":  "#2ecc71",
	"8":  "#9b59b6",
	"10": "#f39c12",
	"11": "#34495e",
	"12": "#1abc9c",
	"19": "#8e44ad",
	"97": "#7f8c8d",
}

const busIconSVG = `<svg xmlns="http://www.w3.org/2000/svg" width="40" height="40" viewBox="0 0 64 64">` +
	`<rect x="8" y="16" width="48" height="28" rx="4" ry="4" fill="%s"/>` +
	`<circle cx="20" cy="48" r="4" fill="black"/>` +
	`<circle cx="44" cy="48" r="4" fill="black"/>` +
	`<text x="32" y="34" text-anchor="middle" fill="white" font-size="14" font-weight="bold" font-family="sans-serif">%s</text>` +
	`</svg>`

// Style is the rendering style of one marker
type Style struct {
	Color   string
	Label   string
	Icon    string // data: URL of the SVG glyph
	Scale   float64
	AnchorX float64 // fraction of icon width
	AnchorY float64 // fraction of icon height
}

// Styler maps route labels to styles for one display density
type Styler struct {
	PixelRatio float64
}

// ColorFor looks label up in the route color table. Matching is exact.
func ColorFor(label string) string {
	if c, ok := routeColors[label]; ok {
		return c
	}
	return DefaultColor
}

// StyleFor is total over all strings, including "" and UnknownRoute
func (s Styler) StyleFor(label string) Style {
	color := ColorFor(label)
	return Style{
		Color:   color,
		Label:   label,
		Icon:    IconDataURL(color, label),
		Scale:   s.scale(),
		AnchorX: 0.5,
		AnchorY: 1,
	}
}

func (s Styler) scale() float64 {
	if s.PixelRatio >= 2 {
		return 1.5
	}
	return 1
}

// IconSVG draws the bus glyph: a rounded body, two wheels and the label
func IconSVG(color, label string) string {
	return fmt.Sprintf(busIconSVG, html.EscapeString(color), html.EscapeString(label))
}

// IconDataURL wraps IconSVG in a data: URL
func IconDataURL(color, label string) string {
	return "data:image/svg+xml;utf8," + url.PathEscape(IconSVG(color, label))
}
