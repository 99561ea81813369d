package charts

// ChartDimensions applies the width/height clamp rules used for charts.
// Input: the width available to the chart. Radar and pie keep a 4:3 shape,
// bar charts 2:1; heights stay within [300, 640].
func ChartDimensions(rawW int, kind Kind) (int, int) {
	w := rawW
	if w < 480 {
		w = 480
	}
	ratio := float32(0.5)
	switch kind {
	case KindRadar, KindScoreDistribution:
		ratio = 0.75
	}
	h := int(float32(w) * ratio)
	if h < 300 {
		h = 300
	}
	if h > 640 {
		h = 640
	}
	return w, h
}

// IndustryChartHeight grows the horizontal bar chart with the number of
// industries so labels do not overlap: 28px per bar plus room for title and
// axis, never below base.
func IndustryChartHeight(base, industries int) int {
	h := 96 + industries*28
	if h < base {
		h = base
	}
	return h
}
