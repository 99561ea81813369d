package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iafilius/FiveStepCharts/src/charts"
)

type drawInput struct {
	labels      []string
	values      []float64
	counts      []int
	percentages []float64
	key         string
}

// drawKinds maps the draw argument to the chart kind and its render call.
var drawKinds = map[string]struct {
	kind charts.Kind
	draw func(r *charts.Renderer, s charts.Surface, in drawInput) error
}{
	"radar": {charts.KindRadar, func(r *charts.Renderer, s charts.Surface, in drawInput) error {
		return r.RenderRadar(s, in.values, in.labels)
	}},
	"steps": {charts.KindStepFrequency, func(r *charts.Renderer, s charts.Surface, in drawInput) error {
		return r.RenderStepFrequencyBars(s, in.labels, in.counts, in.percentages)
	}},
	"pie": {charts.KindScoreDistribution, func(r *charts.Renderer, s charts.Surface, in drawInput) error {
		return r.RenderScoreDistributionPie(s, in.labels, in.values)
	}},
	"industry": {charts.KindIndustryScores, func(r *charts.Renderer, s charts.Surface, in drawInput) error {
		return r.RenderIndustryScoresBars(s, in.labels, in.values, in.counts)
	}},
}

func newDrawCmd(a *app) *cobra.Command {
	var in drawInput
	cmd := &cobra.Command{
		Use:   "draw <radar|steps|pie|industry>",
		Short: "Render one chart from literal series",
		Long: `draw renders a single chart from the series given on the command line.

  radar     --labels --values (0-100 per axis)
  steps     --labels --counts --percentages
  pie       --labels --values
  industry  --labels --values (average scores) --counts`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"radar", "steps", "pie", "industry"},
		RunE: func(cmd *cobra.Command, args []string) error {
			k, ok := drawKinds[args[0]]
			if !ok {
				return fmt.Errorf("unknown chart %q (want radar, steps, pie or industry)", args[0])
			}
			key := in.key
			if key == "" {
				key = args[0]
			}
			w, h := a.cfg.Chart.Width, a.cfg.Chart.Height
			switch k.kind {
			case charts.KindRadar, charts.KindScoreDistribution:
				w, h = charts.ChartDimensions(w, k.kind)
			case charts.KindIndustryScores:
				h = charts.IndustryChartHeight(h, len(in.labels))
			}
			s := charts.NewFileSurface(a.cfg.General.OutputDir, key, w, h)
			if err := k.draw(a.renderer, s, in); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), s.Path)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringSliceVar(&in.labels, "labels", nil, "Comma-separated labels")
	f.Float64SliceVar(&in.values, "values", nil, "Values (radar, pie, industry scores)")
	f.IntSliceVar(&in.counts, "counts", nil, "Report counts (steps, industry)")
	f.Float64SliceVar(&in.percentages, "percentages", nil, "Percentages (steps)")
	f.StringVar(&in.key, "key", "", "Output file name without extension (default: chart name)")
	return cmd
}
