// Package config loads and saves the ragchat configuration file.
package config

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/zhubert/ragchat/internal/errors"
	"github.com/zhubert/ragchat/internal/files"
	"github.com/zhubert/ragchat/internal/widget"
)

// Config holds the application configuration. Zero values mean "use the
// built-in default".
type Config struct {
	Theme                string        `yaml:"theme,omitempty"`                 // UI theme name (e.g., "dark-purple", "nord")
	ReplyText            string        `yaml:"reply_text,omitempty"`            // Canned assistant reply
	ReplyDelay           time.Duration `yaml:"reply_delay,omitempty"`           // e.g. "1s"
	ProcessingDelay      time.Duration `yaml:"processing_delay,omitempty"`      // e.g. "2s"
	ClearDelay           time.Duration `yaml:"clear_delay,omitempty"`           // e.g. "3s"
	CountMode            string        `yaml:"count_mode,omitempty"`            // "completion" or "start"
	NotificationsEnabled bool          `yaml:"notifications_enabled,omitempty"` // Desktop notification when ingestion completes
	StartDir             string        `yaml:"start_dir,omitempty"`             // Base directory for relative paths in the add-files dialog
	WatchDir             string        `yaml:"watch_dir,omitempty"`             // Drop folder, empty to disable
	WatchExtensions      []string      `yaml:"watch_extensions,omitempty"`      // Extensions picked up from the drop folder

	mu       sync.RWMutex
	filePath string
}

// configDir returns the path to the config directory
func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".ragchat"), nil
}

// DefaultPath returns the path of the config file used when none is given.
func DefaultPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads the config at path, or returns defaults if the file doesn't
// exist. An empty path means DefaultPath.
func Load(path string) (*Config, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, errors.ConfigLoadFailed("~/.ragchat", err)
		}
		path = p
	}

	cfg := &Config{filePath: path}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, errors.ConfigLoadFailed(path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.ConfigLoadFailed(path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that every value is usable.
func (c *Config) Validate() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	delays := []struct {
		key string
		d   time.Duration
	}{
		{"reply_delay", c.ReplyDelay},
		{"processing_delay", c.ProcessingDelay},
		{"clear_delay", c.ClearDelay},
	}
	for _, d := range delays {
		if d.d < 0 {
			return errors.ConfigInvalid(d.key + " must not be negative")
		}
	}

	if _, ok := widget.ParseCountMode(c.CountMode); !ok {
		return errors.ConfigInvalid("count_mode must be \"completion\" or \"start\", got " + c.CountMode)
	}

	for _, ext := range c.WatchExtensions {
		if ext == "" || ext == "." {
			return errors.ConfigInvalid("watch_extensions contains an empty extension")
		}
	}

	return nil
}

// Save writes the config to disk
func (c *Config) Save() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.filePath == "" {
		return errors.ConfigSaveFailed("", errors.E("no config path set"))
	}

	if err := os.MkdirAll(filepath.Dir(c.filePath), 0755); err != nil {
		return errors.ConfigSaveFailed(c.filePath, err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.ConfigSaveFailed(c.filePath, err)
	}

	tmp := c.filePath + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return errors.ConfigSaveFailed(c.filePath, err)
	}
	if err := os.Rename(tmp, c.filePath); err != nil {
		os.Remove(tmp)
		return errors.ConfigSaveFailed(c.filePath, err)
	}
	return nil
}

// Path returns the file the config is loaded from and saved to.
func (c *Config) Path() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.filePath
}

// GetTheme returns the current theme name
func (c *Config) GetTheme() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Theme
}

// SetTheme sets the current theme name
func (c *Config) SetTheme(theme string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Theme = theme
}

// GetNotificationsEnabled returns whether desktop notifications are enabled
func (c *Config) GetNotificationsEnabled() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.NotificationsEnabled
}

// GetStartDir returns the base directory for relative file patterns,
// falling back to the working directory.
func (c *Config) GetStartDir() string {
	c.mu.RLock()
	dir := c.StartDir
	c.mu.RUnlock()

	if dir != "" {
		return files.ExpandHome(dir)
	}
	if wd, err := os.Getwd(); err == nil {
		return wd
	}
	return "."
}

// GetWatchDir returns the drop folder, or "" when disabled.
func (c *Config) GetWatchDir() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.WatchDir == "" {
		return ""
	}
	return files.ExpandHome(c.WatchDir)
}

// GetWatchExtensions returns a copy of the drop folder extensions, nil
// for the defaults.
func (c *Config) GetWatchExtensions() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if len(c.WatchExtensions) == 0 {
		return nil
	}
	exts := make([]string, len(c.WatchExtensions))
	copy(exts, c.WatchExtensions)
	return exts
}

// WidgetOptions translates the config into chat widget options.
func (c *Config) WidgetOptions() []widget.Option {
	c.mu.RLock()
	defer c.mu.RUnlock()

	unset := func(d time.Duration) time.Duration {
		if d == 0 {
			return -1
		}
		return d
	}

	mode, _ := widget.ParseCountMode(c.CountMode)
	return []widget.Option{
		widget.WithReply(c.ReplyText),
		widget.WithDelays(unset(c.ReplyDelay), unset(c.ProcessingDelay), unset(c.ClearDelay)),
		widget.WithCountMode(mode),
	}
}
