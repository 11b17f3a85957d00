// Package config loads, normalizes, and validates reelfeed configuration
// from TOML files with sensible defaults for every field.
package config
