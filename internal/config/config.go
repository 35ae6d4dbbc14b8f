package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/CompProgTools/Algoview/internal/search"
	"github.com/CompProgTools/Algoview/internal/viz"
)

const (
	DefaultAlgorithm = "binary"
	DefaultTheme     = "default"
	DefaultDataDir   = ".algoview"
)

var (
	ErrUnknownPreset = errors.New("config: unknown preset")
	ErrInvalid       = errors.New("config: invalid")
)

// Config is read from YAML, or from TOML when the file ends in .toml.
type Config struct {
	Algorithm string `yaml:"algorithm" toml:"algorithm"`
	Sequence  []int  `yaml:"sequence" toml:"sequence"`
	Target    int    `yaml:"target" toml:"target"`
	// Interval overrides the algorithm cadence when non-empty, e.g. "250ms".
	Interval string `yaml:"interval,omitempty" toml:"interval,omitempty"`
	Theme    string `yaml:"theme" toml:"theme"`
	DataDir  string `yaml:"data_dir" toml:"data_dir"`
}

func DefaultConfig() *Config {
	p := Presets["binary"]["classic"]
	return &Config{
		Algorithm: DefaultAlgorithm,
		Sequence:  append([]int(nil), p.Sequence...),
		Target:    p.Target,
		Theme:     DefaultTheme,
		DataDir:   DefaultDataDir,
	}
}

func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if err := LoadInto(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadInto overlays the fields present in the file at path onto cfg.
func LoadInto(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	unmarshal := yaml.Unmarshal
	if isTOML(path) {
		unmarshal = toml.Unmarshal
	}
	if err := unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func Save(path string, cfg *Config) error {
	marshal := yaml.Marshal
	if isTOML(path) {
		marshal = toml.Marshal
	}
	data, err := marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

func (c *Config) Kind() (search.Kind, error) {
	return search.ParseKind(c.Algorithm)
}

// IntervalDuration returns the parsed override, or 0 for the algorithm
// default.
func (c *Config) IntervalDuration() (time.Duration, error) {
	if c.Interval == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Interval)
	if err != nil {
		return 0, fmt.Errorf("%w: interval %q: %v", ErrInvalid, c.Interval, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("%w: interval %q is negative", ErrInvalid, c.Interval)
	}
	return d, nil
}

func (c *Config) Validate() error {
	if _, err := c.Kind(); err != nil {
		return err
	}
	if _, err := c.IntervalDuration(); err != nil {
		return err
	}
	if c.Theme != "" && !knownTheme(c.Theme) {
		return fmt.Errorf("%w: unknown theme %q (available: %v)", ErrInvalid, c.Theme, viz.ThemeNames())
	}
	return nil
}

// ApplyPreset copies the named preset's sequence and target into c and
// switches c to the preset's algorithm.
func (c *Config) ApplyPreset(algorithm, name string) error {
	p := GetPreset(algorithm, name)
	if p == nil {
		return fmt.Errorf("%w: %s (available: %v)", ErrUnknownPreset, name, ListPresets(algorithm))
	}
	c.Algorithm = algorithm
	c.Sequence = append([]int(nil), p.Sequence...)
	c.Target = p.Target
	return nil
}

func knownTheme(name string) bool {
	return slices.Contains(viz.ThemeNames(), name)
}
