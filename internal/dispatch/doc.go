// Package dispatch turns a command kind and parameter payload into one
// wire exchange with the daemon.
//
// The dispatcher owns per-invocation command metadata: unique ids, the
// resolved session and profile, and creation timestamps. It runs the
// daemon supervisor's ensure step exactly once, before the first command,
// and otherwise stays a thin pass-through so failures keep their original
// classification.
package dispatch
