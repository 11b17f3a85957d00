// Package media defines the indexed video item model and the path rules
// shared by the scanner and the HTTP handlers.
package media
