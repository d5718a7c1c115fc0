// Package testsupport provides an in-process fake daemon for tests.
//
// The fake listens on a temporary Unix socket, serves one framed request
// per connection, and lets tests script replies at either the envelope or
// raw byte level to exercise protocol violations.
package testsupport
