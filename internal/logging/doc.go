// Package logging builds the process-wide slog logger and provides attribute
// helpers shared across packages.
package logging
