package config

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	defaultRoot            = "~/Videos/reels"
	defaultLogDir          = "~/.local/share/reelfeed/logs"
	defaultBind            = "0.0.0.0:5179"
	defaultPageSize        = 12
	defaultMaxPageSize     = 50
	defaultSuggestLimit    = 8
	defaultMaxSuggestLimit = 20
	defaultLogFormat       = "console"
	defaultLogLevel        = "info"

	defaultLauncherManager     = "conda"
	defaultLauncherEnvironment = "reels"
	defaultLauncherInterpreter = "python"
	defaultLauncherEntrypoint  = "app.py"
	defaultLauncherAppDir      = "~/apps/reels"
	defaultLauncherHost        = "0.0.0.0"
	defaultLauncherPort        = 5179
)

func defaultVideoExtensions() []string {
	return []string{".mp4", ".mov", ".m4v", ".webm"}
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			Root:     defaultRoot,
			LogDir:   defaultLogDir,
			CacheDir: defaultCacheDir(),
			Bind:     defaultBind,
		},
		Server: Server{
			PageSize:        defaultPageSize,
			MaxPageSize:     defaultMaxPageSize,
			SuggestLimit:    defaultSuggestLimit,
			MaxSuggestLimit: defaultMaxSuggestLimit,
			VideoExtensions: defaultVideoExtensions(),
		},
		Launcher: Launcher{
			Manager:     defaultLauncherManager,
			Environment: defaultLauncherEnvironment,
			Interpreter: defaultLauncherInterpreter,
			Entrypoint:  defaultLauncherEntrypoint,
			AppDir:      defaultLauncherAppDir,
			Host:        defaultLauncherHost,
			Port:        defaultLauncherPort,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}

func defaultCacheDir() string {
	if base, ok := os.LookupEnv("XDG_CACHE_HOME"); ok && strings.TrimSpace(base) != "" {
		return filepath.Join(base, "reelfeed")
	}
	return "~/.cache/reelfeed"
}
