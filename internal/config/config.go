// internal/config/config.go
package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/bethropolis/glance/internal/logger"
)

// Config holds the application's combined configuration.
type Config struct {
	Logger logger.Config `toml:"logger"`
	Editor EditorConfig  `toml:"editor"`
}

// EditorConfig holds viewer settings.
type EditorConfig struct {
	TabWidth  int    `toml:"tab_width"`
	Theme     string `toml:"theme"`      // theme name, case-insensitive
	ThemesDir string `toml:"themes_dir"` // empty means <config dir>/glance/themes
}

// NewDefaultConfig creates a Config struct with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Logger: logger.NewConfig(),
		Editor: EditorConfig{
			TabWidth: DefaultTabWidth,
		},
	}
}

// DefaultConfigPath returns <user config dir>/glance/config.toml, or "" when
// the user config directory is unknown.
func DefaultConfigPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(configDir, AppName, DefaultConfigFileName)
}

// loadFromFile decodes filePath on top of cfg. A missing file leaves cfg
// untouched and is not an error.
func loadFromFile(filePath string, cfg *Config) error {
	if _, err := os.Stat(filePath); errors.Is(err, fs.ErrNotExist) {
		return nil
	} else if err != nil {
		return fmt.Errorf("error checking config file '%s': %w", filePath, err)
	}

	metadata, err := toml.DecodeFile(filePath, cfg)
	if err != nil {
		return fmt.Errorf("failed to parse config file '%s': %w", filePath, err)
	}
	if undecoded := metadata.Undecoded(); len(undecoded) > 0 {
		// The logger is not set up yet; surface typos through the error.
		return fmt.Errorf("config file '%s': unrecognized keys: %v", filePath, undecoded)
	}
	return nil
}

// validate resets invalid values to defaults.
func (c *Config) validate() {
	defaults := NewDefaultConfig()

	if c.Editor.TabWidth <= 0 || c.Editor.TabWidth > MaxTabWidth {
		c.Editor.TabWidth = defaults.Editor.TabWidth
	}
	if c.Logger.LogLevel == "" {
		c.Logger.LogLevel = defaults.Logger.LogLevel
	}
}

// LoadConfig builds the configuration: defaults, then the config file, then
// the flags that were set on fset, then validation. configFilePath "" means
// the default location.
//
// A config file that cannot be read or parsed does not stop loading: the
// returned Config is still usable and the error describes what was skipped.
func LoadConfig(configFilePath string, flags *Flags, fset *flag.FlagSet) (*Config, error) {
	cfg := NewDefaultConfig()

	effectivePath := configFilePath
	if effectivePath == "" {
		effectivePath = DefaultConfigPath()
	}

	var loadErr error
	if effectivePath != "" {
		fileCfg := NewDefaultConfig()
		if err := loadFromFile(effectivePath, fileCfg); err != nil {
			loadErr = err
		} else {
			cfg = fileCfg
		}
	}

	if flags != nil && fset != nil {
		flags.ApplyOverrides(cfg, fset)
	}

	cfg.validate()
	return cfg, loadErr
}
