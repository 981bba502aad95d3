package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// FileName is the project-level config file, looked up at the workspace root.
const FileName = ".fsd.yaml"

// userFile is the user-level config, relative to the XDG config directories.
const userFile = "fsd/config.yaml"

type Config struct {
	TSConfig  string   `yaml:"tsconfig,omitempty"`
	Extension string   `yaml:"extension,omitempty"`
	Layers    []string `yaml:"layers,omitempty"`
	Segments  []string `yaml:"segments,omitempty"`
}

// DefaultLayers are the standard FSD layers offered by the layer picker.
var DefaultLayers = []string{"app", "pages", "widgets", "features", "entities", "shared"}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		TSConfig:  "tsconfig.json",
		Extension: "ts",
		Layers:    append([]string(nil), DefaultLayers...),
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return &cfg, nil
}

// UserPath returns the user-level config file if one exists.
func UserPath() (string, bool) {
	path, err := xdg.SearchConfigFile(userFile)
	if err != nil {
		return "", false
	}
	return path, true
}

// Resolve layers the built-in defaults, the user config and the project config
// at projectPath, later files overriding earlier ones field by field.
// Missing files are skipped; unreadable or malformed ones are errors.
func Resolve(projectPath string) (*Config, error) {
	cfg := Default()

	var paths []string
	if p, ok := UserPath(); ok {
		paths = append(paths, p)
	}
	if projectPath != "" {
		paths = append(paths, projectPath)
	}

	for _, p := range paths {
		layer, err := Load(p)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, err
		}
		cfg.Merge(layer)
	}
	return cfg, nil
}

// Merge overrides c with every field set in o.
func (c *Config) Merge(o *Config) {
	if o.TSConfig != "" {
		c.TSConfig = o.TSConfig
	}
	if o.Extension != "" {
		c.Extension = o.Extension
	}
	if o.Layers != nil {
		c.Layers = o.Layers
	}
	if o.Segments != nil {
		c.Segments = o.Segments
	}
}
