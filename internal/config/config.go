package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/pelletier/go-toml/v2"

	"cinematch/internal/eventbus"
)

// EnvBackendURL overrides backend.url when set
const EnvBackendURL = "CINEMATCH_BACKEND"

// Config represents the application configuration
type Config struct {
	Backend BackendSettings `toml:"backend"`
	Suggest SuggestSettings `toml:"suggest"`
	UI      UISettings      `toml:"ui"`
	Log     LogSettings     `toml:"log"`
}

// BackendSettings configures the HTTP client talking to the recommender
type BackendSettings struct {
	URL               string   `toml:"url"`
	Timeout           Duration `toml:"timeout"`
	RequestsPerSecond float64  `toml:"requests_per_second"`
	Burst             int      `toml:"burst"`
	BreakerFailures   uint32   `toml:"breaker_failures"`
	BreakerCooldown   Duration `toml:"breaker_cooldown"`
}

// SuggestSettings configures the autosuggest engine
type SuggestSettings struct {
	MinQuery   int `toml:"min_query"`
	MaxResults int `toml:"max_results"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	CardWidth    int      `toml:"card_width"`
	ContactReset Duration `toml:"contact_reset"`
	ProbePosters bool     `toml:"probe_posters"`
}

// LogSettings controls the log file
type LogSettings struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// Duration is a time.Duration written as a Go duration string ("3s") in TOML
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return errors.Wrapf(err, "invalid duration %q", string(text))
	}
	d.Duration = parsed
	return nil
}

// MarshalText formats the duration as a string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// DefaultPath returns $XDG_CONFIG_HOME/cinematch/config.toml or the closest equivalent
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
	return filepath.Join(configDir, "cinematch", "config.toml")
}

// NewConfigService creates a config service reading from path, or DefaultPath when empty
func NewConfigService(path string) ConfigService {
	if path == "" {
		path = DefaultPath()
	}
	return &configService{filePath: path}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(path string, bus eventbus.EventBus) ConfigService {
	cs := NewConfigService(path).(*configService)
	cs.bus = bus
	return cs
}

// Path returns the file the service reads and writes
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file, falling back to defaults when it does not exist
func (cs *configService) Load() (*Config, error) {
	var cfg *Config
	if _, err := os.Stat(cs.filePath); errors.Is(err, os.ErrNotExist) {
		cfg = DefaultConfig()
	} else {
		loaded, err := cs.LoadFromPath(cs.filePath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	cfg.ApplyEnv()

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{
			Path:       cs.filePath,
			BackendURL: cfg.Backend.URL,
		})
	}

	return cfg, nil
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

// LoadFromPath loads configuration from a specific path; unset keys keep their defaults
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %s", path)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, errors.WithHint(
			errors.Wrapf(err, "failed to parse config %s", path),
			"durations are written as strings, e.g. timeout = \"10s\"",
		)
	}

	cfg.normalize()
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrap(err, "failed to create config directory")
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return errors.Wrap(err, "failed to marshal config")
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrap(err, "failed to write config file")
	}

	return nil
}

// ApplyEnv applies environment overrides
func (c *Config) ApplyEnv() {
	if url := os.Getenv(EnvBackendURL); url != "" {
		c.Backend.URL = url
	}
}

// normalize replaces nonsensical values with defaults
func (c *Config) normalize() {
	def := DefaultConfig()
	if c.Backend.URL == "" {
		c.Backend.URL = def.Backend.URL
	}
	if c.Backend.Timeout.Duration <= 0 {
		c.Backend.Timeout = def.Backend.Timeout
	}
	if c.Backend.RequestsPerSecond <= 0 {
		c.Backend.RequestsPerSecond = def.Backend.RequestsPerSecond
	}
	if c.Backend.Burst <= 0 {
		c.Backend.Burst = def.Backend.Burst
	}
	if c.Backend.BreakerFailures == 0 {
		c.Backend.BreakerFailures = def.Backend.BreakerFailures
	}
	if c.Backend.BreakerCooldown.Duration <= 0 {
		c.Backend.BreakerCooldown = def.Backend.BreakerCooldown
	}
	if c.Suggest.MinQuery <= 0 {
		c.Suggest.MinQuery = def.Suggest.MinQuery
	}
	if c.Suggest.MaxResults <= 0 {
		c.Suggest.MaxResults = def.Suggest.MaxResults
	}
	if c.UI.CardWidth <= 0 {
		c.UI.CardWidth = def.UI.CardWidth
	}
	if c.UI.ContactReset.Duration <= 0 {
		c.UI.ContactReset = def.UI.ContactReset
	}
	if c.Log.Level == "" {
		c.Log.Level = def.Log.Level
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Backend: BackendSettings{
			URL:               "http://127.0.0.1:5000",
			Timeout:           Duration{10 * time.Second},
			RequestsPerSecond: 5,
			Burst:             5,
			BreakerFailures:   3,
			BreakerCooldown:   Duration{30 * time.Second},
		},
		Suggest: SuggestSettings{
			MinQuery:   2,
			MaxResults: 8,
		},
		UI: UISettings{
			CardWidth:    26,
			ContactReset: Duration{3 * time.Second},
			ProbePosters: true,
		},
		Log: LogSettings{
			Level: "info",
			File:  "cinematch.log",
		},
	}
}
