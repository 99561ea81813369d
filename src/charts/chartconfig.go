package charts

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ErrLengthMismatch is returned when parallel label/value slices differ in length.
var ErrLengthMismatch = errors.New("charts: parallel series length mismatch")

func lengthMismatch(kind Kind, names []string, lens []int) error {
	msg := ""
	for i := range names {
		if i > 0 {
			msg += " "
		}
		msg += fmt.Sprintf("%s=%d", names[i], lens[i])
	}
	return fmt.Errorf("%w: %s %s", ErrLengthMismatch, kind, msg)
}

func sameLength(lens ...int) bool {
	for _, l := range lens[1:] {
		if l != lens[0] {
			return false
		}
	}
	return true
}

// AxisRange bounds a value axis. A Suggested range grows to fit data outside
// it; a fixed range does not.
type AxisRange struct {
	Min       float64
	Max       float64
	Suggested bool
}

// Fit returns the range that is drawn for values.
func (a AxisRange) Fit(values []float64) (float64, float64) {
	lo, hi := a.Min, a.Max
	if a.Suggested {
		for _, v := range values {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
	}
	if hi <= lo {
		hi = lo + 1
	}
	return lo, hi
}

// TooltipFormatter returns the tooltip text for the datum at index i.
type TooltipFormatter func(i int) string

func tooltips(n int, f TooltipFormatter) []string {
	out := make([]string, n)
	if f == nil {
		return out
	}
	for i := 0; i < n; i++ {
		out[i] = f(i)
	}
	return out
}

// formatNumber prints v the way a browser prints a JS number: 60 -> "60",
// 60.5 -> "60.5", 1e21 -> "1e+21", 1e-7 -> "1e-7".
func formatNumber(v float64) string {
	switch {
	case v == 0:
		return "0"
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}
	if a := math.Abs(v); a >= 1e21 || a < 1e-6 {
		s := strconv.FormatFloat(v, 'e', -1, 64)
		// JS writes e-7 where Go writes e-07
		i := strings.IndexByte(s, 'e')
		mant, exp := s[:i], s[i+2:]
		exp = strings.TrimLeft(exp, "0")
		return mant + "e" + s[i+1:i+2] + exp
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Clamp pins v into the range; NaN becomes Min.
func (a AxisRange) Clamp(v float64) float64 {
	if math.IsNaN(v) || v < a.Min {
		return a.Min
	}
	if v > a.Max {
		return a.Max
	}
	return v
}

// clampAll returns vs pinned into a and how many values moved.
func clampAll(a AxisRange, vs []float64) ([]float64, int) {
	out := make([]float64, len(vs))
	moved := 0
	for i, v := range vs {
		out[i] = a.Clamp(v)
		if out[i] != v {
			moved++
		}
	}
	return out, moved
}

// roundHalfUp matches Math.round for the non-negative values charts deal with.
func roundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}

// RadarConfig describes the five-step radar chart.
type RadarConfig struct {
	Title       string
	SeriesName  string
	Labels      []string
	Values      []float64
	Fill        drawing.Color
	Stroke      drawing.Color
	Point       drawing.Color
	PointBorder drawing.Color
	Grid        drawing.Color
	TickText    drawing.Color
	LabelText   drawing.Color
	StrokeWidth float64
	PointRadius float64
	TickSize    float64
	LabelSize   float64
	Axis        AxisRange
	StepSize    float64
	Tooltip     TooltipFormatter
}

// NewRadarConfig builds the radar configuration. Values are percentages on a
// suggested 0-100 scale; out-of-range values are kept and widen the scale.
func NewRadarConfig(values []float64, labels []string) (*RadarConfig, error) {
	if !sameLength(len(values), len(labels)) {
		return nil, lengthMismatch(KindRadar, []string{"values", "labels"}, []int{len(values), len(labels)})
	}
	cfg := &RadarConfig{
		Title:       "五步法应用分析",
		SeriesName:  "五步法应用分析",
		Labels:      append([]string(nil), labels...),
		Values:      append([]float64(nil), values...),
		Fill:        withAlpha(colorPrimary, 0.2),
		Stroke:      withAlpha(colorPrimary, 0.8),
		Point:       colorPrimary,
		PointBorder: colorBackground,
		Grid:        colorGrid,
		TickText:    colorTickText,
		LabelText:   colorLabelText,
		StrokeWidth: 2,
		PointRadius: 4,
		TickSize:    10,
		LabelSize:   14,
		Axis:        AxisRange{Min: 0, Max: 100, Suggested: true},
		StepSize:    20,
	}
	cfg.Tooltip = func(i int) string {
		return fmt.Sprintf("%s: %s%%", cfg.Labels[i], formatNumber(cfg.Values[i]))
	}
	return cfg, nil
}

// Tooltips returns the tooltip of every datum in order.
func (c *RadarConfig) Tooltips() []string { return tooltips(len(c.Labels), c.Tooltip) }

// StepFrequencyConfig describes the step application frequency bar chart.
type StepFrequencyConfig struct {
	Title       string
	XAxisTitle  string
	YAxisTitle  string
	SeriesName  string
	Labels      []string
	Counts      []int
	Percentages []float64
	Palette     []drawing.Color
	Axis        AxisRange
	TickStep    float64
	Tooltip     TooltipFormatter
}

// NewStepFrequencyConfig builds the bar configuration. Bar height is the
// percentage; counts only feed the tooltips.
func NewStepFrequencyConfig(labels []string, counts []int, percentages []float64) (*StepFrequencyConfig, error) {
	if !sameLength(len(labels), len(counts), len(percentages)) {
		return nil, lengthMismatch(KindStepFrequency,
			[]string{"labels", "counts", "percentages"},
			[]int{len(labels), len(counts), len(percentages)})
	}
	cfg := &StepFrequencyConfig{
		Title:       "五步法步骤应用频率",
		XAxisTitle:  "五步分析法步骤",
		YAxisTitle:  "应用百分比 (%)",
		SeriesName:  "应用频率百分比",
		Labels:      append([]string(nil), labels...),
		Counts:      append([]int(nil), counts...),
		Percentages: append([]float64(nil), percentages...),
		Palette:     stepPalette,
		Axis:        AxisRange{Min: 0, Max: 100},
		TickStep:    20,
	}
	cfg.Tooltip = func(i int) string {
		return fmt.Sprintf("应用频率: %s%% (%d份研报)", formatNumber(cfg.Percentages[i]), cfg.Counts[i])
	}
	return cfg, nil
}

// BarColors returns the fill and border of bar i; the palette repeats.
func (c *StepFrequencyConfig) BarColors(i int) (drawing.Color, drawing.Color) {
	if len(c.Palette) == 0 {
		return withAlpha(colorGray, 0.7), colorGray
	}
	base := c.Palette[i%len(c.Palette)]
	return withAlpha(base, 0.7), base
}

// Tooltips returns the tooltip of every bar in order.
func (c *StepFrequencyConfig) Tooltips() []string { return tooltips(len(c.Labels), c.Tooltip) }

// ScoreDistributionConfig describes the completeness score distribution pie.
// Colors bind to categories by position only.
type ScoreDistributionConfig struct {
	Title   string
	Labels  []string
	Values  []float64
	Palette []drawing.Color
	Donut   bool
	Tooltip TooltipFormatter
}

// NewScoreDistributionConfig builds the pie configuration.
func NewScoreDistributionConfig(labels []string, values []float64) (*ScoreDistributionConfig, error) {
	if !sameLength(len(labels), len(values)) {
		return nil, lengthMismatch(KindScoreDistribution, []string{"labels", "values"}, []int{len(labels), len(values)})
	}
	cfg := &ScoreDistributionConfig{
		Title:   "完整度分数分布",
		Labels:  append([]string(nil), labels...),
		Values:  append([]float64(nil), values...),
		Palette: scorePalette,
	}
	cfg.Tooltip = func(i int) string {
		return fmt.Sprintf("%s: %s份 (%s%%)", cfg.Labels[i], formatNumber(cfg.Values[i]), formatNumber(cfg.Percentage(i)))
	}
	return cfg, nil
}

// Total sums the positive values.
func (c *ScoreDistributionConfig) Total() float64 {
	var t float64
	for _, v := range c.Values {
		if v > 0 && !math.IsInf(v, 0) {
			t += v
		}
	}
	return t
}

// Percentage is round(value/total*100), recomputed from the current values.
// Each share is rounded on its own, so the shares need not add up to 100.
func (c *ScoreDistributionConfig) Percentage(i int) float64 {
	t := c.Total()
	if t <= 0 || c.Values[i] <= 0 || math.IsInf(c.Values[i], 0) {
		return 0
	}
	return roundHalfUp(c.Values[i] / t * 100)
}

// SliceColors returns the fill and border of slice i. Slices past the end of
// the palette are gray.
func (c *ScoreDistributionConfig) SliceColors(i int) (drawing.Color, drawing.Color) {
	base := colorGray
	if i < len(c.Palette) {
		base = c.Palette[i]
	}
	return withAlpha(base, 0.7), base
}

// Tooltips returns the tooltip of every slice in order.
func (c *ScoreDistributionConfig) Tooltips() []string { return tooltips(len(c.Labels), c.Tooltip) }

// IndustryScoresConfig describes the horizontal per-industry average score chart.
type IndustryScoresConfig struct {
	Title      string
	XAxisTitle string
	SeriesName string
	Industries []string
	Scores     []float64
	Counts     []int
	Fill       drawing.Color
	Stroke     drawing.Color
	Axis       AxisRange
	Tooltip    TooltipFormatter
}

// NewIndustryScoresConfig builds the horizontal bar configuration.
func NewIndustryScoresConfig(industries []string, scores []float64, counts []int) (*IndustryScoresConfig, error) {
	if !sameLength(len(industries), len(scores), len(counts)) {
		return nil, lengthMismatch(KindIndustryScores,
			[]string{"industries", "scores", "counts"},
			[]int{len(industries), len(scores), len(counts)})
	}
	cfg := &IndustryScoresConfig{
		Title:      "行业平均完整度",
		XAxisTitle: "平均分数",
		SeriesName: "平均完整度分数",
		Industries: append([]string(nil), industries...),
		Scores:     append([]float64(nil), scores...),
		Counts:     append([]int(nil), counts...),
		Fill:       withAlpha(colorBlue, 0.7),
		Stroke:     colorBlue,
		Axis:       AxisRange{Min: 0, Max: 100},
	}
	cfg.Tooltip = func(i int) string {
		return fmt.Sprintf("平均分: %s分 (%d份研报)", formatNumber(cfg.Scores[i]), cfg.Counts[i])
	}
	return cfg, nil
}

// Tooltips returns the tooltip of every bar in order.
func (c *IndustryScoresConfig) Tooltips() []string { return tooltips(len(c.Industries), c.Tooltip) }
