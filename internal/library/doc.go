// Package library scans the media root into index snapshots and caches them
// in SQLite so restarts avoid rescanning large collections.
package library
