// Package protocol defines the newline-delimited JSON wire protocol spoken
// between the CLI and the tab daemon.
//
// One frame is one compact JSON envelope terminated by a single newline.
// The envelope's type field distinguishes ping/pong liveness probes from
// command/response exchanges; command payloads carry the Command and
// CommandResponse shapes with camelCase keys matching the daemon's parser.
// Absent optional fields (profile, params, data, error) are omitted from
// the wire rather than serialized as null or empty objects.
//
// The codec is symmetric and framing-agnostic above the delimiter: Encode
// appends it, callers strip it before Decode.
package protocol
