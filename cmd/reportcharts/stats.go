package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/iafilius/FiveStepCharts/src/analysis"
	"github.com/iafilius/FiveStepCharts/src/charts"
)

func newStatsCmd(a *app) *cobra.Command {
	var htmlName string
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Render the step frequency, score distribution and industry charts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reports, err := a.loadReports(cmd.Context())
			if err != nil {
				return err
			}
			st := analysis.ComputeStats(reports)
			printStats(cmd.OutOrStdout(), st)

			w, h := a.cfg.Chart.Width, a.cfg.Chart.Height
			pw, ph := charts.ChartDimensions(w, charts.KindScoreDistribution)
			jobs := []chartJob{
				{key: "stepsChart", width: w, height: h, draw: func(r *charts.Renderer, s charts.Surface) error {
					labels, counts, pcts := st.StepFrequencySeries()
					return r.RenderStepFrequencyBars(s, labels, counts, pcts)
				}},
				{key: "scoreChart", width: pw, height: ph, draw: func(r *charts.Renderer, s charts.Surface) error {
					labels, values := st.ScoreDistributionSeries()
					return r.RenderScoreDistributionPie(s, labels, values)
				}},
				{key: "industryChart", width: w, height: charts.IndustryChartHeight(h, len(st.Industries)), draw: func(r *charts.Renderer, s charts.Surface) error {
					labels, scores, counts := st.IndustrySeries()
					return r.RenderIndustryScoresBars(s, labels, scores, counts)
				}},
			}
			paths, err := exportCharts(a.renderer, a.cfg.General.OutputDir, "研报统计", htmlName, jobs)
			for _, p := range paths {
				fmt.Fprintln(cmd.OutOrStdout(), p)
			}
			return err
		},
	}
	cmd.Flags().StringVar(&htmlName, "html", "", "Also write an HTML page with this file name into the output directory")
	return cmd
}

func printStats(w io.Writer, st analysis.Stats) {
	fmt.Fprintf(w, "reports: %d\n", st.TotalReports)
	for _, s := range st.Steps {
		fmt.Fprintf(w, "  %-6s %3d  %5.1f%%\n", s.Step, s.Count, s.Percentage)
	}
	for b := analysis.BandExcellent; b <= analysis.BandPoor; b++ {
		fmt.Fprintf(w, "  %s: %d\n", b, st.Distribution[b])
	}
	for _, ind := range st.Industries {
		fmt.Fprintf(w, "  %s: %.1f (%d)\n", ind.Industry, ind.AvgScore, ind.Count)
	}
}
