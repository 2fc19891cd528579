package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the optional user settings. Everything has a sensible
// default; the file may be absent entirely.
type Config struct {
	Theme     string `yaml:"theme"`      // classic | neon | mono
	Seed      string `yaml:"seed"`       // path to a JSON seed file
	CharLimit int    `yaml:"char_limit"` // max title length in the add form
}

const defaultCharLimit = 200

func Default() Config {
	return Config{Theme: "classic", CharLimit: defaultCharLimit}
}

// Load reads ~/.todo/config.yaml. A missing file yields defaults.
func Load() (Config, error) {
	p, err := path()
	if err != nil {
		return Default(), err
	}
	return loadFrom(p)
}

func loadFrom(p string) (Config, error) {
	cfg := Default()
	b, err := os.ReadFile(p)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config: %w", err)
	}
	if cfg.Theme == "" {
		cfg.Theme = "classic"
	}
	if cfg.CharLimit <= 0 {
		cfg.CharLimit = defaultCharLimit
	}
	return cfg, nil
}

func path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("home: %w", err)
	}
	return filepath.Join(home, ".todo", "config.yaml"), nil
}
