package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/iafilius/FiveStepCharts/src/analysis"
	"github.com/iafilius/FiveStepCharts/src/charts"
	"github.com/iafilius/FiveStepCharts/src/config"
)

// app holds what the subcommands share once flags are parsed.
type app struct {
	configPath string
	flags      config.Config // flag values; only changed flags override the file

	cfg      *config.Config
	renderer *charts.Renderer
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "reportcharts",
		Short: "Render five-step research report charts",
		Long: `reportcharts turns analysed research reports into charts.

Reports are read from research_reports.json or, with --db, from the SQLite
database. Charts are written to --out as PNG (default) or SVG.

Examples:
  reportcharts stats --html index.html        # aggregate charts + HTML page
  reportcharts radar --index 2                # radar for the third report
  reportcharts draw pie --labels 优秀,差 --values 3,1`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.configPath, "config", "c", "", "Path to config file (.toml, .yaml)")
	pf.StringVar(&a.flags.General.LogLevel, "log-level", "info", "Log level (debug|info|warn|error)")
	pf.StringVarP(&a.flags.General.OutputDir, "out", "o", "./charts", "Output directory")
	pf.StringVar(&a.flags.General.Format, "format", "png", "Image format (png|svg)")
	pf.StringVar(&a.flags.General.Reports, "reports", "research_reports.json", "Reports JSON file")
	pf.StringVar(&a.flags.General.Database, "db", "", "SQLite reports database (overrides --reports)")
	pf.IntVar(&a.flags.Chart.Width, "width", charts.DefaultWidth, "Chart width in pixels")
	pf.IntVar(&a.flags.Chart.Height, "height", charts.DefaultHeight, "Chart height in pixels")
	pf.StringVar(&a.flags.Chart.FontPath, "font", "", "TrueType font for chart text (CJK labels need one)")
	pf.BoolVar(&a.flags.Chart.Donut, "donut", false, "Draw the score distribution as a donut")
	pf.StringVar(&a.flags.Chart.Footnote, "footnote", "", "Footnote stamped on PNG output")

	root.AddCommand(newStatsCmd(a), newRadarCmd(a), newDrawCmd(a))
	return root
}

// setup loads the config file, applies explicitly set flags on top and
// builds the renderer.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg := config.Default()
	if a.configPath != "" {
		loaded, err := config.Load(a.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	cmd.Flags().Visit(func(f *pflag.Flag) {
		switch f.Name {
		case "log-level":
			cfg.General.LogLevel = a.flags.General.LogLevel
		case "out":
			cfg.General.OutputDir = a.flags.General.OutputDir
		case "format":
			cfg.General.Format = a.flags.General.Format
		case "reports":
			cfg.General.Reports = a.flags.General.Reports
		case "db":
			cfg.General.Database = a.flags.General.Database
		case "width":
			cfg.Chart.Width = a.flags.Chart.Width
		case "height":
			cfg.Chart.Height = a.flags.Chart.Height
		case "font":
			cfg.Chart.FontPath = a.flags.Chart.FontPath
		case "donut":
			cfg.Chart.Donut = a.flags.Chart.Donut
		case "footnote":
			cfg.Chart.Footnote = a.flags.Chart.Footnote
		}
	})
	if err := cfg.Validate(); err != nil {
		return err
	}
	charts.SetLogLevel(cfg.General.LogLevel)

	opts, err := cfg.RendererOptions()
	if err != nil {
		return err
	}
	r, err := charts.NewRenderer(opts)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.renderer = r
	charts.Debugf("[cli] config: %+v", *cfg)
	return nil
}

func (a *app) loadReports(ctx context.Context) ([]analysis.Report, error) {
	if a.cfg.General.Database != "" {
		reports, err := analysis.LoadReportsDB(ctx, a.cfg.General.Database)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", a.cfg.General.Database, err)
		}
		return reports, nil
	}
	return analysis.LoadReports(a.cfg.General.Reports)
}
