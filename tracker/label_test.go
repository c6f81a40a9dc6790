package tracker

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRouteLabel(t *testing.T) {
	tests := []struct {
		routeID string
		want    string
	}{
		{routeID: "12-variant", want: "12"},
		{routeID: "97", want: "97"},
		{routeID: "", want: UnknownRoute},
		{routeID: "11-A", want: "11"},
		{routeID: "8-x-y", want: "8"},
		{routeID: "-x", want: UnknownRoute},
		{routeID: "N/A", want: "N/A"},
	}

	for _, tt := range tests {
		t.Run(tt.routeID, func(t *testing.T) {
			assert.Equal(t, tt.want, RouteLabel(tt.routeID))
		})
	}
}
