package charts

import (
	"bytes"
	"fmt"
	"math"

	chart "github.com/wcharczuk/go-chart/v2"
)

func (r *Renderer) drawScoreDistribution(cfg *ScoreDistributionConfig, w, h int) ([]byte, error) {
	total := cfg.Total()
	values := make([]chart.Value, 0, len(cfg.Labels))
	for i, label := range cfg.Labels {
		if !(cfg.Values[i] > 0) || math.IsInf(cfg.Values[i], 0) {
			// zero slices would stack their labels on a neighbour; Inf has no share
			continue
		}
		fill, stroke := cfg.SliceColors(i)
		values = append(values, chart.Value{
			Label: fmt.Sprintf("%s %s%%", label, formatNumber(cfg.Percentage(i))),
			Value: cfg.Values[i] / total * 100,
			Style: chart.Style{FillColor: fill, StrokeColor: stroke, StrokeWidth: 1, FontColor: colorLabelText},
		})
	}
	background := chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}}

	var buf bytes.Buffer
	if cfg.Donut {
		dc := chart.DonutChart{
			Title:      cfg.Title,
			Width:      w,
			Height:     h,
			Font:       r.font,
			Background: background,
			Values:     values,
		}
		if err := dc.Render(r.format.provider(), &buf); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}
	pc := chart.PieChart{
		Title:      cfg.Title,
		Width:      w,
		Height:     h,
		Font:       r.font,
		Background: background,
		Values:     values,
	}
	if err := pc.Render(r.format.provider(), &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
