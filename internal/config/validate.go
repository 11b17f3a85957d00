package config

import (
	"fmt"
	"net"
	"strings"
)

// Validate checks configuration invariants that normalization cannot repair.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateServer(); err != nil {
		return err
	}
	if err := c.validateLauncher(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validatePaths() error {
	if strings.TrimSpace(c.Paths.Root) == "" {
		return fmt.Errorf("paths.root must be set (or export REELFEED_ROOT)")
	}
	if _, _, err := net.SplitHostPort(c.Paths.Bind); err != nil {
		return fmt.Errorf("paths.bind %q is not a host:port value: %w", c.Paths.Bind, err)
	}
	return nil
}

func (c *Config) validateServer() error {
	if c.Server.PageSize > c.Server.MaxPageSize {
		return fmt.Errorf("server.page_size %d exceeds server.max_page_size %d", c.Server.PageSize, c.Server.MaxPageSize)
	}
	if c.Server.SuggestLimit > c.Server.MaxSuggestLimit {
		return fmt.Errorf("server.suggest_limit %d exceeds server.max_suggest_limit %d", c.Server.SuggestLimit, c.Server.MaxSuggestLimit)
	}
	if len(c.Server.VideoExtensions) == 0 {
		return fmt.Errorf("server.video_extensions must not be empty")
	}
	return nil
}

func (c *Config) validateLauncher() error {
	if c.Launcher.Port < 0 || c.Launcher.Port > 65535 {
		return fmt.Errorf("launcher.port %d is out of range", c.Launcher.Port)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format %q is not supported (use console or json)", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level %q is not supported", c.Logging.Level)
	}
	return nil
}
