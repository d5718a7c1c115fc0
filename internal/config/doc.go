// Package config loads and validates tab CLI configuration.
//
// Settings come from three layers: compiled-in defaults (including the
// platform's well-known daemon address), an optional TOML file at
// ~/.config/tab/config.toml, and environment overrides. The Config type is
// resolved once per invocation and threaded explicitly through the
// dispatcher, client, and supervisor; no IPC-layer code reads the
// environment on its own.
package config
