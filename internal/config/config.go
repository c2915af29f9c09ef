// Package config loads server and solver settings from an optional YAML
// file. Command-line flags override anything set here.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"svw.info/nonogram/internal/domain"
)

type Config struct {
	Addr       string   `yaml:"addr"`
	LevelsPath string   `yaml:"levels_path"`
	Budget     Duration `yaml:"budget"`
	Mode       string   `yaml:"mode"` // permissive|strict
}

// Duration accepts Go duration strings ("10s", "250ms") in YAML.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("config: invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

func Default() Config {
	return Config{
		Addr:       ":8080",
		LevelsPath: "custom-levels.json",
		Budget:     Duration(10 * time.Second),
		Mode:       "permissive",
	}
}

// Load reads the file at path over the defaults. A missing file is not an
// error; an unparseable one is.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// SolveMode maps the textual mode to its domain value; anything but
// "strict" is permissive.
func (c Config) SolveMode() domain.Mode {
	if c.Mode == "strict" {
		return domain.ModeStrict
	}
	return domain.ModePermissive
}
