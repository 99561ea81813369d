package charts

import (
	"bytes"
	"fmt"

	chart "github.com/wcharczuk/go-chart/v2"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// percentTicks labels a fixed percent axis every step: 0%, 20%, ... 100%.
func percentTicks(a AxisRange, step float64) []chart.Tick {
	if step <= 0 || a.Max <= a.Min {
		return nil
	}
	var ticks []chart.Tick
	for v := a.Min; v <= a.Max+step/2; v += step {
		ticks = append(ticks, chart.Tick{Value: v, Label: formatNumber(v) + "%"})
	}
	return ticks
}

func (r *Renderer) drawStepFrequency(cfg *StepFrequencyConfig, w, h int) ([]byte, error) {
	bars := make([]chart.Value, len(cfg.Labels))
	for i, label := range cfg.Labels {
		fill, stroke := cfg.BarColors(i)
		bars[i] = chart.Value{
			Label: label,
			Value: cfg.Axis.Clamp(cfg.Percentages[i]),
			Style: chart.Style{FillColor: fill, StrokeColor: stroke, StrokeWidth: 1},
		}
	}
	bc := chart.BarChart{
		Title:      cfg.Title,
		Width:      w,
		Height:     h,
		Font:       r.font,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		XAxis:      chart.Style{FontSize: 11, FontColor: colorLabelText},
		YAxis: chart.YAxis{
			Name:  cfg.YAxisTitle,
			Style: chart.Style{FontSize: 10, FontColor: colorTickText},
			Range: &chart.ContinuousRange{Min: cfg.Axis.Min, Max: cfg.Axis.Max},
			Ticks: percentTicks(cfg.Axis, cfg.TickStep),
		},
		Bars: bars,
	}
	var buf bytes.Buffer
	if err := bc.Render(r.format.provider(), &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// pixels converts a pixel count to a gonum length at vgimg's 96 DPI.
func pixels(px int) vg.Length {
	return vg.Length(px) * vg.Inch / 96
}

// barThickness spreads n bars over the plot height, in points.
func barThickness(h, n int) vg.Length {
	t := pixels(h) * 0.6 / vg.Length(n)
	if t > vg.Points(40) {
		t = vg.Points(40)
	}
	if t < vg.Points(4) {
		t = vg.Points(4)
	}
	return t
}

// drawIndustryScores uses gonum/plot: go-chart only draws vertical bars.
func (r *Renderer) drawIndustryScores(cfg *IndustryScoresConfig, w, h int) ([]byte, error) {
	n := len(cfg.Industries)
	// gonum puts index 0 at the bottom; reverse so the first industry is on top.
	vals := make(plotter.Values, n)
	names := make([]string, n)
	for i := range cfg.Industries {
		vals[n-1-i] = cfg.Axis.Clamp(cfg.Scores[i])
		names[n-1-i] = cfg.Industries[i]
	}

	p := plot.New()
	p.Title.Text = cfg.Title
	p.X.Label.Text = cfg.XAxisTitle

	bars, err := plotter.NewBarChart(vals, barThickness(h, n))
	if err != nil {
		return nil, fmt.Errorf("bar chart: %w", err)
	}
	bars.Horizontal = true
	bars.Color = cfg.Fill
	bars.LineStyle.Color = cfg.Stroke
	bars.LineStyle.Width = vg.Points(1)

	grid := plotter.NewGrid()
	grid.Horizontal.Color = nil
	p.Add(grid, bars)
	p.NominalY(names...)
	// fixed axis; set after Add, which widens to the data range
	p.X.Min, p.X.Max = cfg.Axis.Min, cfg.Axis.Max

	wt, err := p.WriterTo(pixels(w), pixels(h), r.format.Ext())
	if err != nil {
		return nil, fmt.Errorf("plot writer: %w", err)
	}
	var buf bytes.Buffer
	if _, err := wt.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("write plot: %w", err)
	}
	return buf.Bytes(), nil
}
