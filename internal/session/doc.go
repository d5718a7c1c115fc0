// Package session resolves which browser session and profile an
// invocation targets.
//
// Resolution is a pure function of three optional inputs (flag, environment,
// configured default) evaluated once per invocation, before any command is
// built. Name validation happens here too, so bad sessions fail before any
// IPC attempt.
package session
