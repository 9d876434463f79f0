package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds CLI defaults. Flags override anything set here.
type Config struct {
	// Comment is the marker starting a comment line in scalar files.
	Comment string `yaml:"comment"`

	// Equil is the default number of equilibration rows to drop.
	Equil int `yaml:"equil"`

	// Archive is the directory of the persistent summary archive.
	// Empty disables persistence.
	Archive string `yaml:"archive"`
}

func Default() *Config {
	return &Config{
		Comment: "#",
		Equil:   0,
		Archive: "",
	}
}

// Load reads a yaml config file over the defaults. A missing path
// returns the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	buf, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}
	if err := yaml.Unmarshal(buf, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if cfg.Equil < 0 {
		return nil, fmt.Errorf("%s: equil must not be negative", path)
	}
	return cfg, nil
}
