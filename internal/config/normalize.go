package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeServer()
	if err := c.normalizeLauncher(); err != nil {
		return err
	}
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if c.Paths.Root == "" {
		if value, ok := os.LookupEnv("REELFEED_ROOT"); ok {
			c.Paths.Root = strings.TrimSpace(value)
		}
	}
	if c.Paths.Root, err = expandPath(c.Paths.Root); err != nil {
		return fmt.Errorf("paths.root: %w", err)
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.CacheDir) == "" {
		c.Paths.CacheDir = defaultCacheDir()
	}
	if c.Paths.CacheDir, err = expandPath(c.Paths.CacheDir); err != nil {
		return fmt.Errorf("paths.cache_dir: %w", err)
	}
	c.Paths.Bind = strings.TrimSpace(c.Paths.Bind)
	if c.Paths.Bind == "" {
		c.Paths.Bind = defaultBind
	}
	return nil
}

func (c *Config) normalizeServer() {
	if c.Server.PageSize <= 0 {
		c.Server.PageSize = defaultPageSize
	}
	if c.Server.MaxPageSize <= 0 {
		c.Server.MaxPageSize = defaultMaxPageSize
	}
	if c.Server.SuggestLimit <= 0 {
		c.Server.SuggestLimit = defaultSuggestLimit
	}
	if c.Server.MaxSuggestLimit <= 0 {
		c.Server.MaxSuggestLimit = defaultMaxSuggestLimit
	}
	if len(c.Server.VideoExtensions) == 0 {
		c.Server.VideoExtensions = defaultVideoExtensions()
	}
	normalized := make([]string, 0, len(c.Server.VideoExtensions))
	for _, ext := range c.Server.VideoExtensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		normalized = append(normalized, ext)
	}
	c.Server.VideoExtensions = normalized
}

func (c *Config) normalizeLauncher() error {
	var err error
	c.Launcher.Manager = strings.TrimSpace(c.Launcher.Manager)
	if c.Launcher.Manager == "" {
		c.Launcher.Manager = defaultLauncherManager
	}
	c.Launcher.Environment = strings.TrimSpace(c.Launcher.Environment)
	if c.Launcher.Environment == "" {
		c.Launcher.Environment = defaultLauncherEnvironment
	}
	c.Launcher.Interpreter = strings.TrimSpace(c.Launcher.Interpreter)
	if c.Launcher.Interpreter == "" {
		c.Launcher.Interpreter = defaultLauncherInterpreter
	}
	c.Launcher.Entrypoint = strings.TrimSpace(c.Launcher.Entrypoint)
	if c.Launcher.Entrypoint == "" {
		c.Launcher.Entrypoint = defaultLauncherEntrypoint
	}
	if c.Launcher.AppDir, err = expandPath(c.Launcher.AppDir); err != nil {
		return fmt.Errorf("launcher.app_dir: %w", err)
	}
	// The launcher data root follows the media root unless overridden.
	c.Launcher.Root = strings.TrimSpace(c.Launcher.Root)
	if c.Launcher.Root == "" {
		c.Launcher.Root = c.Paths.Root
	} else if c.Launcher.Root, err = expandPath(c.Launcher.Root); err != nil {
		return fmt.Errorf("launcher.root: %w", err)
	}
	c.Launcher.Host = strings.TrimSpace(c.Launcher.Host)
	if c.Launcher.Host == "" {
		c.Launcher.Host = defaultLauncherHost
	}
	if c.Launcher.Port == 0 {
		c.Launcher.Port = defaultLauncherPort
	}
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
