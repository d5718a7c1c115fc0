// Package logging builds the slog loggers used for CLI diagnostics.
//
// The CLI is silent by default; --debug wires a console or json logger to
// stderr so the connect, spawn, and poll phases of an invocation can be
// observed without touching stdout, which is reserved for command output.
package logging
