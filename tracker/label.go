package tracker

import "strings"

// UnknownRoute labels vehicles without a usable route id
const UnknownRoute = "N/A"

const routeDelimiter = "-"

// RouteLabel returns the text of routeID before the first "-", so "12-variant"
// and "12-a-b" both become "12". An absent id or an empty prefix yields UnknownRoute.
func RouteLabel(routeID string) string {
	prefix, _, _ := strings.Cut(routeID, routeDelimiter)
	if prefix == "" {
		return UnknownRoute
	}
	return prefix
}
