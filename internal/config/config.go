package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/adrg/xdg"
	"github.com/natefinch/atomic"
)

// ErrConfig reports missing required configuration.
var ErrConfig = errors.New("configuration error")

// Config holds the values rnote needs from the calling environment.
type Config struct {
	DataHome string `toml:"data_home"`
	Editor   string `toml:"editor"`
	Author   string `toml:"author"`
	Wrap     int    `toml:"wrap"`

	// path is the file the config was read from, or would be written to.
	path string `toml:"-"`
}

// Path returns the default location of the config file.
func Path() string {
	return filepath.Join(xdg.ConfigHome, "rnote", "config.toml")
}

// Load builds the configuration from the config file and the environment.
// Environment variables take precedence over the file.
func Load() (*Config, error) {
	xdg.Reload()

	cfg := &Config{
		Wrap: 80,
		path: Path(),
	}

	if _, err := os.Stat(cfg.path); err == nil {
		if _, err := toml.DecodeFile(cfg.path, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
		cfg.DataHome = expandEnv(cfg.DataHome)
		cfg.Editor = expandEnv(cfg.Editor)
	}

	if dataHome := firstEnv("RNOTE_DATA_HOME", "XDG_DATA_HOME"); dataHome != "" {
		cfg.DataHome = dataHome
	}
	if editor := firstEnv("EDITOR", "VISUAL"); editor != "" {
		cfg.Editor = editor
	}
	if cfg.Author == "" {
		cfg.Author = os.Getenv("USER")
	}

	// xdg falls back to ~/.local/share when XDG_DATA_HOME is unset
	if cfg.DataHome == "" {
		cfg.DataHome = xdg.DataHome
	}
	if cfg.Wrap <= 0 {
		cfg.Wrap = 80
	}

	return cfg, nil
}

// Validate reports missing required values. It must be called before any
// filesystem mutation.
func (c *Config) Validate() error {
	if c.DataHome == "" {
		return fmt.Errorf("%w: data home not set (set XDG_DATA_HOME or data_home in %s)", ErrConfig, c.File())
	}
	if strings.TrimSpace(c.Editor) == "" {
		return fmt.Errorf("%w: editor not set (set EDITOR or editor in %s)", ErrConfig, c.File())
	}
	return nil
}

// File returns the path of the config file backing c.
func (c *Config) File() string {
	if c.path == "" {
		return Path()
	}
	return c.path
}

// Set updates a single key by its TOML name.
func (c *Config) Set(key, value string) error {
	switch key {
	case "data_home":
		c.DataHome = value
	case "editor":
		c.Editor = value
	case "author":
		c.Author = value
	case "wrap":
		var n int
		if _, err := fmt.Sscanf(value, "%d", &n); err != nil || n <= 0 {
			return fmt.Errorf("wrap must be a positive number, got %q", value)
		}
		c.Wrap = n
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return nil
}

// Save writes the config file atomically, creating its directory if needed.
func (c *Config) Save() error {
	path := c.File()
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := atomic.WriteFile(path, &buf); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return os.Chmod(path, 0o600)
}

func firstEnv(keys ...string) string {
	for _, k := range keys {
		if v := os.Getenv(k); v != "" {
			return v
		}
	}
	return ""
}

func expandEnv(s string) string {
	if s == "" {
		return s
	}
	// Replace $HOME with actual home directory
	if strings.Contains(s, "$HOME") {
		home, _ := os.UserHomeDir()
		s = strings.ReplaceAll(s, "$HOME", home)
	}
	if strings.HasPrefix(s, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			s = filepath.Join(home, s[2:])
		}
	}
	return os.ExpandEnv(s)
}
