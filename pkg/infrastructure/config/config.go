// Package config loads optional tool configuration. Config files are HuJSON
// (JSON with comments and trailing commas) so teams can annotate their
// defaults.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tailscale/hujson"
)

// ConfigFileName is the per-project config file, looked up in the project
// directory.
const ConfigFileName = "mpr.json"

// Config holds all configuration options.
type Config struct {
	ProjectName       string             `json:"project_name,omitempty"`
	DeliveryLeadWeeks int                `json:"delivery_lead_weeks,omitempty"`
	Format            string             `json:"format,omitempty"`
	OutputDir         string             `json:"output_dir,omitempty"`
	NoColor           bool               `json:"no_color,omitempty"`
	CatalogOverrides  map[string]float64 `json:"catalog_overrides,omitempty"`
}

// Sources tracks which config files were loaded.
type Sources struct {
	Global  string // path to the global config if loaded, empty otherwise
	Project string // path to the project config if loaded, empty otherwise
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		ProjectName:       "New Project",
		DeliveryLeadWeeks: 40,
		Format:            "text",
	}
}

// Load loads configuration with the following precedence (highest wins):
//  1. Defaults
//  2. Global user config ($XDG_CONFIG_HOME/mpr/config.json or
//     ~/.config/mpr/config.json)
//  3. Project config file (<projectDir>/mpr.json, if it exists)
//
// CLI flags are applied on top by the command layer.
func Load(projectDir string) (Config, Sources, error) {
	cfg := DefaultConfig()
	var sources Sources

	globalPath := globalConfigPath()
	if globalPath != "" {
		loaded, ok, err := loadFile(globalPath)
		if err != nil {
			return Config{}, Sources{}, err
		}
		if ok {
			sources.Global = globalPath
			cfg = merge(cfg, loaded)
		}
	}

	if projectDir != "" {
		projectPath := filepath.Join(projectDir, ConfigFileName)
		loaded, ok, err := loadFile(projectPath)
		if err != nil {
			return Config{}, Sources{}, err
		}
		if ok {
			sources.Project = projectPath
			cfg = merge(cfg, loaded)
		}
	}

	if err := validate(cfg); err != nil {
		return Config{}, Sources{}, err
	}
	return cfg, sources, nil
}

// globalConfigPath returns the path of the global config file, or empty if
// the home directory cannot be determined.
func globalConfigPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "mpr", "config.json")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "mpr", "config.json")
}

// loadFile parses one config file. A missing file is not an error; a present
// but malformed file is.
func loadFile(path string) (Config, bool, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Config{}, false, nil
	}
	if err != nil {
		return Config{}, false, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	standardized, err := hujson.Standardize(data)
	if err != nil {
		return Config{}, false, fmt.Errorf("invalid config %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(standardized, &cfg); err != nil {
		return Config{}, false, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, true, nil
}

// merge overlays non-zero fields of override onto base.
func merge(base, override Config) Config {
	if override.ProjectName != "" {
		base.ProjectName = override.ProjectName
	}
	if override.DeliveryLeadWeeks != 0 {
		base.DeliveryLeadWeeks = override.DeliveryLeadWeeks
	}
	if override.Format != "" {
		base.Format = override.Format
	}
	if override.OutputDir != "" {
		base.OutputDir = override.OutputDir
	}
	if override.NoColor {
		base.NoColor = true
	}
	if len(override.CatalogOverrides) > 0 {
		if base.CatalogOverrides == nil {
			base.CatalogOverrides = make(map[string]float64, len(override.CatalogOverrides))
		}
		for name, weeks := range override.CatalogOverrides {
			base.CatalogOverrides[name] = weeks
		}
	}
	return base
}

func validate(cfg Config) error {
	if cfg.DeliveryLeadWeeks < 0 {
		return fmt.Errorf("delivery_lead_weeks must not be negative: %d", cfg.DeliveryLeadWeeks)
	}
	switch cfg.Format {
	case "text", "json", "csv":
	default:
		return fmt.Errorf("unsupported format %q (expected text, json or csv)", cfg.Format)
	}
	for name, weeks := range cfg.CatalogOverrides {
		if weeks < 0 {
			return fmt.Errorf("catalog override for %q must not be negative: %v", name, weeks)
		}
	}
	return nil
}
