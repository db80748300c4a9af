package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"

	"scribe/internal/eventbus"
)

// DefaultGreeting is shown on an empty, untouched buffer
const DefaultGreeting = "Scribe editor -- version %s"

// Config represents the application configuration
type Config struct {
	Version int            `toml:"version"`
	Editor  EditorSettings `toml:"editor"`
	Search  SearchSettings `toml:"search"`
	UI      UISettings     `toml:"ui"`
}

// EditorSettings configures editing behaviour
type EditorSettings struct {
	Greeting          string `toml:"greeting"` // %s is replaced by the version
	MessageDurationMS int    `toml:"message_duration_ms"`
	ConfirmQuit       bool   `toml:"confirm_quit"` // ask before quitting with unsaved changes
}

// SearchSettings configures the search prompt
type SearchSettings struct {
	IgnoreCase bool `toml:"ignore_case"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	ShowHelpHint bool `toml:"show_help_hint"`
}

// MessageDuration returns how long status messages stay visible
func (c *Config) MessageDuration() time.Duration {
	if c.Editor.MessageDurationMS <= 0 {
		return time.Second
	}
	return time.Duration(c.Editor.MessageDurationMS) * time.Millisecond
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	LoadOrCreate() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
}

// configService is the concrete implementation
type configService struct {
	fs       afero.Fs
	bus      eventbus.EventBus
	filePath string
}

// DefaultPath returns the config file location under the user config dir
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "scribe", "config.toml")
}

// NewConfigServiceWithFs creates a config service on fsys for the given path. bus may be nil.
func NewConfigServiceWithFs(fsys afero.Fs, path string, bus eventbus.EventBus) ConfigService {
	return &configService{
		fs:       fsys,
		bus:      bus,
		filePath: path,
	}
}

// Load loads the configuration from the service's file. A missing file yields the defaults.
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, fs.ErrNotExist) {
		cfg, err = DefaultConfig(), nil
	}
	if err != nil {
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: cs.filePath})
	}
	return cfg, nil
}

// LoadOrCreate loads the service's file, writing the defaults there first
// when it does not exist yet. A failed write still returns the defaults.
func (cs *configService) LoadOrCreate() (*Config, error) {
	exists, err := afero.Exists(cs.fs, cs.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to check config file: %w", err)
	}
	if exists {
		return cs.Load()
	}

	log.Printf("Creating default config at %s", cs.filePath)
	cfg := DefaultConfig()
	return cfg, cs.Save(cfg)
}

// Save saves the configuration to the service's file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}
	return nil
}

// LoadFromPath loads configuration from a specific path. Keys missing from
// the file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := afero.ReadFile(cs.fs, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config file not found: %s: %w", path, fs.ErrNotExist)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := cs.fs.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := afero.WriteFile(cs.fs, path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Editor: EditorSettings{
			Greeting:          DefaultGreeting,
			MessageDurationMS: 1000,
			ConfirmQuit:       true,
		},
		UI: UISettings{
			ShowHelpHint: true,
		},
	}
}
