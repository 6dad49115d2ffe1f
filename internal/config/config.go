// Package config loads the organizer configuration from a YAML file,
// with environment overrides for the pieces that are secrets or
// machine-specific.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"ordino/internal/domain"
)

// EnvConfigPath overrides the config file location.
const EnvConfigPath = "ORDINO_CONFIG"

// Model holds the description backend settings. An empty APIKey with an
// empty BaseURL disables AI descriptions entirely.
type Model struct {
	APIKey            string `yaml:"api_key"`
	BaseURL           string `yaml:"base_url"`
	Vision            string `yaml:"vision"`
	Text              string `yaml:"text"`
	Transcribe        string `yaml:"transcribe"`
	RequestsPerMinute int    `yaml:"requests_per_minute"`
}

// Config is the full organizer configuration.
type Config struct {
	Layout     string         `yaml:"layout"`
	Areas      map[int]string `yaml:"areas"`
	Categories map[int]string `yaml:"categories"`
	Output     string         `yaml:"output"`
	Model      Model          `yaml:"model"`
}

// DefaultPath returns the standard config file location,
// ~/.config/ordino/config.yaml.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.yaml"
	}
	return filepath.Join(home, ".config", "ordino", "config.yaml")
}

// Load reads the configuration. Resolution order for the file path:
// the explicit argument, then ORDINO_CONFIG, then DefaultPath. A
// missing file is not an error: defaults apply. OPENAI_API_KEY and
// ORDINO_MODEL override the configured key and model names either way.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	if path == "" {
		path = DefaultPath()
	}

	cfg := &Config{}
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// Fall through with defaults.
	case err != nil:
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		cfg.Model.APIKey = key
	}
	if model := os.Getenv("ORDINO_MODEL"); model != "" {
		cfg.Model.Vision = model
		cfg.Model.Text = model
	}
	return cfg, nil
}

// Registry builds the numbering structure from the configuration,
// falling back to the built-in areas and categories when the file
// defines none.
func (c *Config) Registry() (*domain.Registry, error) {
	layout, err := domain.LayoutByName(c.Layout)
	if err != nil {
		return nil, err
	}

	areas := c.Areas
	categories := c.Categories
	if len(areas) == 0 && len(categories) == 0 {
		areas = domain.DefaultAreas()
		categories = domain.DefaultCategories()
		if !layout.SystemArea {
			for cat := range categories {
				if domain.IsSystemCategory(cat) {
					delete(categories, cat)
				}
			}
		}
	}
	return domain.NewRegistry(layout, areas, categories)
}
