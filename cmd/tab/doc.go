// Package main hosts the tab CLI entrypoint and command graph.
//
// The Cobra-based command tree translates terminal invocations into framed
// envelope exchanges with the browser daemon: navigation, accessibility
// snapshots, element interaction, tab management, and script evaluation.
// It centralizes configuration resolution, session and profile selection,
// daemon supervision, and output rendering so subcommands stay declarative.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
