// Package config loads the chart tool settings from TOML or YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/iafilius/FiveStepCharts/src/charts"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config represents the main configuration structure
type Config struct {
	General GeneralConfig `toml:"general" yaml:"general"`
	Chart   ChartConfig   `toml:"chart" yaml:"chart"`
}

// GeneralConfig contains general settings
type GeneralConfig struct {
	LogLevel  string `toml:"log_level" yaml:"log_level"`
	OutputDir string `toml:"output_dir" yaml:"output_dir"`
	Format    string `toml:"format" yaml:"format"` // png, svg
	Reports   string `toml:"reports" yaml:"reports"`
	Database  string `toml:"database,omitempty" yaml:"database,omitempty"`
}

// ChartConfig sizes and styles rendered charts.
type ChartConfig struct {
	Width    int    `toml:"width" yaml:"width"`
	Height   int    `toml:"height" yaml:"height"`
	FontPath string `toml:"font_path,omitempty" yaml:"font_path,omitempty"`
	Donut    bool   `toml:"donut" yaml:"donut"`
	Footnote string `toml:"footnote,omitempty" yaml:"footnote,omitempty"`
}

const (
	minWidth  = 480
	minHeight = 300
	maxHeight = 640
)

// Default returns the settings used when no file is given.
func Default() *Config {
	return &Config{
		General: GeneralConfig{
			LogLevel:  "info",
			OutputDir: "./charts",
			Format:    "png",
			Reports:   "research_reports.json",
		},
		Chart: ChartConfig{
			Width:  charts.DefaultWidth,
			Height: charts.DefaultHeight,
		},
	}
}

// Load reads path (by extension: .toml, .yaml, .yml) over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg := Default()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(data, cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	default:
		return nil, fmt.Errorf("%w: unsupported config extension %q", ErrInvalidConfig, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate fills empty fields with defaults, clamps the chart size and
// rejects unknown values.
func (c *Config) Validate() error {
	d := Default()
	if c.General.LogLevel == "" {
		c.General.LogLevel = d.General.LogLevel
	}
	if !charts.ValidLogLevel(c.General.LogLevel) {
		return fmt.Errorf("%w: log_level %q", ErrInvalidConfig, c.General.LogLevel)
	}
	if c.General.OutputDir == "" {
		c.General.OutputDir = d.General.OutputDir
	}
	if c.General.Reports == "" {
		c.General.Reports = d.General.Reports
	}
	f, err := charts.ParseFormat(c.General.Format)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	c.General.Format = f.String()

	if c.Chart.Width < 0 || c.Chart.Height < 0 {
		return fmt.Errorf("%w: negative chart size %dx%d", ErrInvalidConfig, c.Chart.Width, c.Chart.Height)
	}
	if c.Chart.Width == 0 {
		c.Chart.Width = d.Chart.Width
	}
	if c.Chart.Height == 0 {
		c.Chart.Height = d.Chart.Height
	}
	c.Chart.Width = max(c.Chart.Width, minWidth)
	c.Chart.Height = min(max(c.Chart.Height, minHeight), maxHeight)
	return nil
}

// RendererOptions translates the chart section, reading the font file if set.
func (c *Config) RendererOptions() (charts.Options, error) {
	f, err := charts.ParseFormat(c.General.Format)
	if err != nil {
		return charts.Options{}, err
	}
	opts := charts.Options{Format: f, Donut: c.Chart.Donut, Footnote: c.Chart.Footnote}
	if c.Chart.FontPath != "" {
		b, err := os.ReadFile(c.Chart.FontPath)
		if err != nil {
			return charts.Options{}, fmt.Errorf("read font: %w", err)
		}
		opts.FontData = b
	}
	return opts, nil
}

// Save writes the configuration as TOML.
func (c *Config) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()
	if err := toml.NewEncoder(f).Encode(c); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}
