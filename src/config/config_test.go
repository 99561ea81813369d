package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/iafilius/FiveStepCharts/src/charts"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return p
}

func TestLoadTOML(t *testing.T) {
	p := writeFile(t, "charts.toml", `
[general]
log_level = "debug"
format = "svg"
reports = "data/reports.json"

[chart]
width = 1000
height = 2000
donut = true
footnote = "来源: 研报库"
`)
	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.General.LogLevel != "debug" || cfg.General.Format != "svg" {
		t.Fatalf("general: %+v", cfg.General)
	}
	if cfg.General.OutputDir != "./charts" {
		t.Fatalf("default output dir not applied: %q", cfg.General.OutputDir)
	}
	if cfg.Chart.Width != 1000 || cfg.Chart.Height != maxHeight {
		t.Fatalf("chart size %dx%d", cfg.Chart.Width, cfg.Chart.Height)
	}
	if !cfg.Chart.Donut || cfg.Chart.Footnote != "来源: 研报库" {
		t.Fatalf("chart: %+v", cfg.Chart)
	}
}

func TestLoadYAML(t *testing.T) {
	p := writeFile(t, "charts.yml", `
general:
  database: reports.db
chart:
  width: 100
`)
	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.General.Database != "reports.db" || cfg.General.Format != "png" {
		t.Fatalf("general: %+v", cfg.General)
	}
	if cfg.Chart.Width != minWidth || cfg.Chart.Height != charts.DefaultHeight {
		t.Fatalf("chart size %dx%d", cfg.Chart.Width, cfg.Chart.Height)
	}
}

func TestLoadInvalid(t *testing.T) {
	cases := map[string]string{
		"bad.toml":  "[general]\nformat = \"gif\"\n",
		"lvl.yaml":  "general:\n  log_level: loud\n",
		"neg.toml":  "[chart]\nwidth = -1\n",
		"conf.json": "{}",
	}
	for name, body := range cases {
		_, err := Load(writeFile(t, name, body))
		if !errors.Is(err, ErrInvalidConfig) {
			t.Fatalf("%s: want ErrInvalidConfig got %v", name, err)
		}
	}
}

func TestLoadParseError(t *testing.T) {
	if _, err := Load(writeFile(t, "broken.toml", "[general\n")); err == nil || errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected a parse error, got %v", err)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatalf("expected read error")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Chart.Donut = true
	p := filepath.Join(t.TempDir(), "out.toml")
	if err := cfg.Save(p); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := Load(p)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if *got != *cfg {
		t.Fatalf("reloaded %+v want %+v", got, cfg)
	}
}

func TestRendererOptions(t *testing.T) {
	cfg := Default()
	cfg.General.Format = "svg"
	cfg.Chart.Footnote = "x"
	opts, err := cfg.RendererOptions()
	if err != nil {
		t.Fatalf("options: %v", err)
	}
	if opts.Format != charts.FormatSVG || opts.Footnote != "x" || opts.FontData != nil {
		t.Fatalf("options %+v", opts)
	}
	cfg.Chart.FontPath = filepath.Join(t.TempDir(), "nofont.ttf")
	if _, err := cfg.RendererOptions(); err == nil {
		t.Fatalf("expected missing font error")
	}
}
