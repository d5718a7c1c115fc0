// Package clierr defines the CLI failure taxonomy and its exit-code
// contract.
//
// Every layer of the IPC path wraps lower-level failures into a classified
// Error so the entrypoint can print one line to stderr and exit with a
// stable code per failure class. Kinds distinguish a daemon that is not
// running from a socket that refused the connection, a command the daemon
// rejected, and a malformed wire exchange.
//
// Classify errors at the layer that first understands them; callers above
// should wrap with context via fmt.Errorf and %w rather than reclassify.
package clierr
