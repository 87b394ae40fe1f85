package lineage

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrNoIdentifiers is returned by Validate when the family or root id is missing.
var ErrNoIdentifiers = errors.New("lineage: family_id and root_id are required")

// Config is the viewer configuration, usually read from a YAML file.
type Config struct {
	BaseURL      string        `yaml:"base_url"`
	FamilyID     string        `yaml:"family_id"`
	RootID       string        `yaml:"root_id"`
	ShowDeceased *bool         `yaml:"show_deceased"`
	FetchTimeout time.Duration `yaml:"fetch_timeout"`

	Window WindowConfig `yaml:"window"`

	LogLevel string `yaml:"log_level"`
	// Debug logs per-pass draw statistics.
	Debug bool `yaml:"debug"`

	// Script is an optional JSON input script run against the viewer.
	Script string `yaml:"script"`
	// ExitAfterScript closes the window once the script has finished.
	ExitAfterScript bool   `yaml:"exit_after_script"`
	ScreenshotDir   string `yaml:"screenshot_dir"`
}

// WindowConfig sizes the viewer window.
type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// DefaultConfig returns a Config with every optional field set.
func DefaultConfig() Config {
	show := DefaultShowDeceased
	return Config{
		BaseURL:      "http://localhost:8000",
		ShowDeceased: &show,
		Window: WindowConfig{
			Title:  "Family Tree",
			Width:  1024,
			Height: 768,
		},
		LogLevel:      "info",
		ScreenshotDir: "screenshots",
	}
}

// LoadConfig reads a YAML file on top of DefaultConfig. An empty path yields
// the defaults. FAMILY_ID and ROOT_ID from the environment fill identifiers
// the file leaves empty.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("lineage: read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("lineage: parse config %s: %w", path, err)
		}
	}
	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if c.FamilyID == "" {
		c.FamilyID = os.Getenv("FAMILY_ID")
	}
	if c.RootID == "" {
		c.RootID = os.Getenv("ROOT_ID")
	}
}

// ShowDeceasedOrDefault returns the configured visibility, or
// DefaultShowDeceased when unset.
func (c Config) ShowDeceasedOrDefault() bool {
	if c.ShowDeceased == nil {
		return DefaultShowDeceased
	}
	return *c.ShowDeceased
}

// Validate reports the first problem that would prevent the viewer from starting.
func (c Config) Validate() error {
	if c.FamilyID == "" || c.RootID == "" {
		return ErrNoIdentifiers
	}
	if c.BaseURL == "" {
		return errors.New("lineage: base_url is required")
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("lineage: invalid window size %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.FetchTimeout < 0 {
		return fmt.Errorf("lineage: negative fetch_timeout %s", c.FetchTimeout)
	}
	return nil
}

// LoaderConfig returns the loader settings derived from c.
func (c Config) LoaderConfig() LoaderConfig {
	return LoaderConfig{
		BaseURL:  c.BaseURL,
		FamilyID: c.FamilyID,
		RootID:   c.RootID,
		Timeout:  c.FetchTimeout,
	}
}
