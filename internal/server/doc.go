// Package server exposes the feed UI and JSON API over HTTP: paginated feed
// queries, typeahead suggestions, range-capable video streaming, on-demand
// reindexing, and remote shutdown.
package server
