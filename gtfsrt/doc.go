// Package gtfsrt fetches GTFS-Realtime payloads and decodes them against a
// runtime-compiled schema descriptor.
//
// Decoding produces a Projection: a plain map tree keyed by the message's
// JSON field names, with absent optional fields filled with their declared
// defaults so consumers never have to tell "missing" from "default" apart.
package gtfsrt
