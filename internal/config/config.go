package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/bouncesim/internal/bounce"
)

const (
	DefaultHeight    = bounce.DefaultHeight
	DefaultGravity   = bounce.DefaultGravity
	DefaultDemoCount = 10
	DefaultPrecision = 6
	DefaultDataDir   = ".bouncesim"
	DefaultLogLevel  = "warn"
	DefaultDt        = 0.01
	MaxPrecision     = 15
)

var (
	ErrDemoCount = errors.New("config: demo_count must be at least 1")
	ErrPrecision = errors.New("config: precision out of range")
	ErrDt        = errors.New("config: dt must be positive")
)

type Config struct {
	Height    float64 `yaml:"height"`
	Gravity   float64 `yaml:"gravity"`
	DemoCount int     `yaml:"demo_count"`
	Precision int     `yaml:"precision"`
	DataDir   string  `yaml:"data_dir"`
	LogLevel  string  `yaml:"log_level"`
	Dt        float64 `yaml:"dt"`
}

func DefaultConfig() *Config {
	return &Config{
		Height:    DefaultHeight,
		Gravity:   DefaultGravity,
		DemoCount: DefaultDemoCount,
		Precision: DefaultPrecision,
		DataDir:   DefaultDataDir,
		LogLevel:  DefaultLogLevel,
		Dt:        DefaultDt,
	}
}

// Load reads a YAML file over the defaults; keys absent from the file keep
// their default values.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if err := LoadInto(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadInto overlays the YAML file at path onto cfg.
func LoadInto(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Params() bounce.Params {
	return bounce.Params{Height: c.Height, Gravity: c.Gravity}
}

func (c *Config) Validate() error {
	if err := c.Params().Validate(); err != nil {
		return err
	}
	if c.DemoCount < 1 {
		return fmt.Errorf("%w (got %d)", ErrDemoCount, c.DemoCount)
	}
	if c.Precision < 0 || c.Precision > MaxPrecision {
		return fmt.Errorf("%w: %d not in [0, %d]", ErrPrecision, c.Precision, MaxPrecision)
	}
	if !(c.Dt > 0) {
		return fmt.Errorf("%w (got %g)", ErrDt, c.Dt)
	}
	return nil
}

// ApplyPreset copies the preset's physical parameters onto c.
func (c *Config) ApplyPreset(p *Preset) {
	if p.Height > 0 {
		c.Height = p.Height
	}
	if p.Gravity > 0 {
		c.Gravity = p.Gravity
	}
}
