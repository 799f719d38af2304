package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultSeparator = "\n"
	DefaultTheme     = "classic"
	DefaultDataDir   = ".sortstep"
	DefaultLogLevel  = "warn"
	DefaultFPS       = 2
	DefaultSVGWidth  = 800
	DefaultSVGHeight = 400
	DefaultGIFDelay  = 80
	DefaultGIFScale  = 1
)

type Config struct {
	Separator string    `yaml:"separator"`
	Theme     string    `yaml:"theme"`
	DataDir   string    `yaml:"data_dir"`
	LogLevel  string    `yaml:"log_level"`
	FPS       int       `yaml:"fps"`
	SVG       SVGConfig `yaml:"svg"`
	GIF       GIFConfig `yaml:"gif"`
}

type SVGConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// GIFConfig controls animated export. Delay is in hundredths of a second.
type GIFConfig struct {
	Delay int `yaml:"delay"`
	Scale int `yaml:"scale"`
}

func DefaultConfig() *Config {
	return &Config{
		Separator: DefaultSeparator,
		Theme:     DefaultTheme,
		DataDir:   DefaultDataDir,
		LogLevel:  DefaultLogLevel,
		FPS:       DefaultFPS,
		SVG: SVGConfig{
			Width:  DefaultSVGWidth,
			Height: DefaultSVGHeight,
		},
		GIF: GIFConfig{
			Delay: DefaultGIFDelay,
			Scale: DefaultGIFScale,
		},
	}
}

// Load reads path over the defaults, so omitted keys keep default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	cfg.normalize()
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) normalize() {
	if c.FPS <= 0 {
		c.FPS = DefaultFPS
	}
	if c.SVG.Width <= 0 {
		c.SVG.Width = DefaultSVGWidth
	}
	if c.SVG.Height <= 0 {
		c.SVG.Height = DefaultSVGHeight
	}
	if c.GIF.Delay <= 0 {
		c.GIF.Delay = DefaultGIFDelay
	}
	if c.GIF.Scale <= 0 {
		c.GIF.Scale = DefaultGIFScale
	}
}
