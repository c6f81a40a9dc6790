// Package bustracker serves live GTFS-Realtime vehicle positions as JSON.
//
// GET /api/buses fetches the upstream feed on every request, decodes it with
// the schema compiled at startup, and returns the projection. Until the
// schema gate is ready the endpoint answers 503 without touching the
// upstream; fetch and decode failures answer 500 with a generic body while
// the cause is logged.
package bustracker
