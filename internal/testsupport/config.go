package testsupport

import (
	"path/filepath"
	"testing"

	"reelfeed/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.Root = filepath.Join(base, "media")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Paths.CacheDir = filepath.Join(base, "cache")
	cfg.Paths.Bind = "127.0.0.1:0"
	cfg.Launcher.AppDir = filepath.Join(base, "app")
	cfg.Launcher.Root = cfg.Paths.Root

	for _, opt := range opts {
		opt(&cfg)
	}
	return &cfg
}

// WithRoot overrides the media root on the test config.
func WithRoot(path string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Paths.Root = path
		cfg.Launcher.Root = path
	}
}

// WithExtensions overrides the recognized video extensions.
func WithExtensions(exts ...string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Server.VideoExtensions = exts
	}
}
