package tracker

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColorFor(t *testing.T) {
	tests := []struct {
		label string
		want  string
	}{
		{label: "1", want: "#e74c3c"},
		{label: "11", want: "#34495e"},
		{label: "97", want: "#7f8c8d"},
		{label: "3", want: DefaultColor},
		{label: "", want: DefaultColor},
		{label: UnknownRoute, want: DefaultColor},
		{label: "11 ", want: DefaultColor},
		{label: "011", want: DefaultColor},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			assert.Equal(t, tt.want, ColorFor(tt.label))
		})
	}
}

func TestStyleFor_Total(t *testing.T) {
	s := Styler{PixelRatio: 1}
	for _, label := range []string{"", UnknownRoute, "11", "日本", "<script>"} {
		st := s.StyleFor(label)
		assert.NotEmpty(t, st.Color, label)
		assert.True(t, strings.HasPrefix(st.Icon, "data:image/svg+xml;utf8,"), label)
		assert.Equal(t, label, st.Label)
		assert.Equal(t, 0.5, st.AnchorX)
		assert.Equal(t, 1.0, st.AnchorY)
	}
}

func TestStyleFor_Scale(t *testing.T) {
	tests := []struct {
		ratio float64
		want  float64
	}{
		{ratio: 0, want: 1},
		{ratio: 1, want: 1},
		{ratio: 1.99, want: 1},
		{ratio: 2, want: 1.5},
		{ratio: 3, want: 1.5},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Styler{PixelRatio: tt.ratio}.StyleFor("5").Scale, "ratio %v", tt.ratio)
	}
}

func TestIconDataURL(t *testing.T) {
	icon := IconDataURL("#34495e", "<11>")
	svg, err := url.PathUnescape(strings.TrimPrefix(icon, "data:image/svg+xml;utf8,"))
	require.NoError(t, err)

	assert.Contains(t, svg, `fill="#34495e"`)
	assert.Contains(t, svg, "&lt;11&gt;</text>")
	assert.Equal(t, 2, strings.Count(svg, "<circle"))
	assert.NotContains(t, icon, " ")
}
