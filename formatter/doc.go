// Package formatter serializes decoded feed projections for HTTP responses.
package formatter
