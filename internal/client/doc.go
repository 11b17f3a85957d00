// Package client provides the HTTP control client used by CLI commands to
// talk to a running feed server: status inspection, reindex requests, and
// remote shutdown. Wildcard bind addresses are resolved to loopback so a
// server listening on 0.0.0.0 can be reached from the same host.
package client
