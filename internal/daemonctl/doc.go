// Package daemonctl supervises the external tab-daemon process.
//
// The supervisor runs a small per-invocation state machine: probe the
// well-known address, and when nothing answers, locate the daemon
// executable, spawn it as a detached background process, and poll the
// probe until the daemon binds or a startup deadline elapses. Platform
// divergence (new-session spawn vs. detached-process creation flags) lives
// behind a single launch function selected at build time.
package daemonctl
