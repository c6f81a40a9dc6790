// Package schema acquires and compiles the wire-format schema used to decode
// the realtime feed.
//
// The schema is loaded exactly once at process start. A Loader fetches the
// .proto source text (or uses the copy bundled with the gtfs-realtime Go
// bindings), compiles it, and resolves one message type into a Descriptor.
// The outcome is published through a Gate, which every request handler
// consults before decoding: uncompiled and failed gates both report
// ErrSchemaUnavailable. There is no automatic retry; recovering from a failed
// load requires a restart.
package schema
