package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"tabsync/internal/domain"
	"tabsync/internal/eventbus"
)

// ErrInvalid is returned for a configuration that parses but cannot be used
var ErrInvalid = errors.New("invalid config")

const (
	OrientationVertical   = "vertical"
	OrientationHorizontal = "horizontal"

	LayoutLinear = "linear"
	LayoutGrid   = "grid"
)

// Config represents the application configuration
type Config struct {
	Version     int               `toml:"version"`
	Orientation string            `toml:"orientation"`
	Layout      string            `toml:"layout"`
	Span        int               `toml:"span"`        // items per row in grid layout
	ItemExtent  int               `toml:"item_extent"` // cells per item along the scroll axis
	LogFile     string            `toml:"log_file"`
	Animation   AnimationSettings `toml:"animation"`
	Sections    []domain.Section  `toml:"sections"`
}

// AnimationSettings controls smooth scrolling
type AnimationSettings struct {
	FPS       int     `toml:"fps"`
	Frequency float64 `toml:"frequency"`
	Damping   float64 `toml:"damping"`
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

// DefaultPath returns $XDG_CONFIG_HOME/tabsync/config.toml or the closest
// equivalent on this platform
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
	return filepath.Join(configDir, "tabsync", "config.toml")
}

// NewConfigService creates a config service for the default path
func NewConfigService() ConfigService {
	return &configService{filePath: DefaultPath()}
}

// NewConfigServiceAt creates a config service for path. An empty path
// means the default path.
func NewConfigServiceAt(path string, bus eventbus.EventBus) ConfigService {
	if path == "" {
		path = DefaultPath()
	}
	return &configService{filePath: path, bus: bus}
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file, falling back to the defaults
// when the file does not exist yet
func (cs *configService) Load() (*Config, error) {
	var cfg *Config
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		cfg = DefaultConfig()
	} else {
		cfg, err = cs.LoadFromPath(cs.filePath)
		if err != nil {
			return nil, err
		}
	}

	// Publish ConfigLoaded event if bus is available
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{
			Path:     cs.filePath,
			Sections: cfg.Sections,
		})
	}

	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	// Publish ConfigSaved event if bus is available
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}

	return nil
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return Parse(data)
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	if err := config.Validate(); err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Parse decodes TOML, fills in defaults for missing settings and
// validates the result
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Version == 0 {
		c.Version = 1
	}
	if c.Orientation == "" {
		c.Orientation = OrientationVertical
	}
	if c.Layout == "" {
		c.Layout = LayoutLinear
	}
	if c.Span == 0 {
		c.Span = 2
	}
	if c.ItemExtent == 0 {
		c.ItemExtent = 1
	}
	if c.LogFile == "" {
		c.LogFile = "tabsync.log"
	}
	if c.Animation.FPS == 0 {
		c.Animation.FPS = 60
	}
	if c.Animation.Frequency == 0 {
		c.Animation.Frequency = 7.0
	}
	if c.Animation.Damping == 0 {
		c.Animation.Damping = 1.0
	}
	if c.Sections == nil {
		c.Sections = DefaultSections()
	}
}

// DefaultSections is the sample catalogue shown when nothing is configured
func DefaultSections() []domain.Section {
	return []domain.Section{
		{Title: "Fruit", Count: 5},
		{Title: "Vegetables", Count: 5},
		{Title: "Grains", Count: 5},
		{Title: "Dairy", Count: 5},
		{Title: "Spices", Count: 3},
		{Title: "Drinks", Count: 7},
	}
}

// Validate reports the first setting that cannot be used
func (c *Config) Validate() error {
	switch c.Orientation {
	case OrientationVertical, OrientationHorizontal:
	default:
		return fmt.Errorf("%w: unknown orientation %q", ErrInvalid, c.Orientation)
	}
	switch c.Layout {
	case LayoutLinear, LayoutGrid:
	default:
		return fmt.Errorf("%w: unknown layout %q", ErrInvalid, c.Layout)
	}
	if c.Span <= 0 {
		return fmt.Errorf("%w: span must be positive, got %d", ErrInvalid, c.Span)
	}
	if c.ItemExtent <= 0 {
		return fmt.Errorf("%w: item_extent must be positive, got %d", ErrInvalid, c.ItemExtent)
	}
	if c.Animation.FPS <= 0 {
		return fmt.Errorf("%w: fps must be positive, got %d", ErrInvalid, c.Animation.FPS)
	}
	if c.Animation.Frequency <= 0 {
		return fmt.Errorf("%w: frequency must be positive, got %g", ErrInvalid, c.Animation.Frequency)
	}
	if c.Animation.Damping < 0 {
		return fmt.Errorf("%w: damping must not be negative, got %g", ErrInvalid, c.Animation.Damping)
	}
	for i, s := range c.Sections {
		if s.Count < 0 {
			return fmt.Errorf("%w: section %d (%s) has negative count %d", ErrInvalid, i, s.Title, s.Count)
		}
	}
	return nil
}
