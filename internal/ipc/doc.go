// Package ipc is the only component that sends and receives wire
// envelopes.
//
// It composes the platform transport (Unix domain socket or Windows named
// pipe) with the protocol codec into two operations: Probe, a silent
// boolean liveness check used for daemon supervision, and Exchange, one
// command/response round trip with distinct connect and command timeouts.
// Connections are never reused; each operation dials fresh and closes on
// return.
package ipc
