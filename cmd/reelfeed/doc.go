// Package main hosts the reelfeed CLI entrypoint and command graph.
//
// The Cobra-based command tree covers serving the feed, index maintenance,
// control of a running server over its HTTP API, launching the legacy Python
// application, and configuration scaffolding. It centralizes configuration
// resolution and logging setup so subcommands can focus on user experience
// instead of wiring.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
