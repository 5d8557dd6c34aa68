package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/orbital/internal/gravity"
)

const (
	DefaultDt        = 1.0
	DefaultLimit     = 100
	DefaultFrameRate = 30
)

// Config is the YAML run configuration for the CLI. Engine parameters
// map onto gravity.Config; the rest drives scenario generation and the
// live view.
type Config struct {
	Scenario   string       `yaml:"scenario"`
	Dt         float64      `yaml:"dt"`
	TimeUnits  string       `yaml:"time_units"`
	SpaceUnits string       `yaml:"space_units"`
	MassUnits  string       `yaml:"mass_units"`
	Limit      int          `yaml:"limit"`
	NoHistory  bool         `yaml:"no_history"`
	Seed       int64        `yaml:"seed"`
	FrameRate  int          `yaml:"frame_rate"`
	Random     RandomConfig `yaml:"random"`
}

// RandomConfig bounds the randomizer when no scenario file is given.
type RandomConfig struct {
	MinBodies int        `yaml:"min_bodies"`
	MaxBodies int        `yaml:"max_bodies"`
	Position  [2]float64 `yaml:"position"`
	Velocity  [2]float64 `yaml:"velocity"`
	MassMin   float64    `yaml:"mass_min"`
	MassMax   float64    `yaml:"mass_max"`
}

func DefaultConfig() *Config {
	return &Config{
		Dt:         DefaultDt,
		TimeUnits:  "secs",
		SpaceUnits: "m",
		MassUnits:  "kg",
		Limit:      DefaultLimit,
		FrameRate:  DefaultFrameRate,
		Random: RandomConfig{
			MinBodies: 2,
			MaxBodies: 10,
			Position:  [2]float64{-200, 200},
			Velocity:  [2]float64{-100, 100},
			MassMin:   1e10,
			MassMax:   1e17,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// EngineConfig converts the run configuration into the engine's
// construction parameters.
func (c *Config) EngineConfig() gravity.Config {
	return gravity.Config{
		BaseInterval: c.Dt,
		TimeUnits:    c.TimeUnits,
		SpaceUnits:   c.SpaceUnits,
		MassUnits:    c.MassUnits,
		Limit:        c.Limit,
		NoHistory:    c.NoHistory,
	}
}
