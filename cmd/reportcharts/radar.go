package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iafilius/FiveStepCharts/src/analysis"
	"github.com/iafilius/FiveStepCharts/src/charts"
)

func newRadarCmd(a *app) *cobra.Command {
	var (
		index    int
		htmlName string
	)
	cmd := &cobra.Command{
		Use:   "radar",
		Short: "Render the five-step radar for one report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reports, err := a.loadReports(cmd.Context())
			if err != nil {
				return err
			}
			if index < 0 || index >= len(reports) {
				return fmt.Errorf("report index %d out of range (%d reports)", index, len(reports))
			}
			rep := reports[index]
			values, labels := analysis.RadarSeries(rep)
			w, h := charts.ChartDimensions(a.cfg.Chart.Width, charts.KindRadar)
			jobs := []chartJob{{key: "radarChart", width: w, height: h, draw: func(r *charts.Renderer, s charts.Surface) error {
				return r.RenderRadar(s, values, labels)
			}}}
			paths, err := exportCharts(a.renderer, a.cfg.General.OutputDir, rep.Title, htmlName, jobs)
			for _, p := range paths {
				fmt.Fprintln(cmd.OutOrStdout(), p)
			}
			return err
		},
	}
	cmd.Flags().IntVarP(&index, "index", "i", 0, "Report index (0-based, in load order)")
	cmd.Flags().StringVar(&htmlName, "html", "", "Also write an HTML page with this file name into the output directory")
	return cmd
}
