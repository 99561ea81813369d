package charts

import (
	"bytes"
	"math"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// go-chart has no radar series; the radar is drawn on its renderer directly
// so PNG and SVG output share one code path.

const (
	radarLabelGap = 18
	radarMargin   = 48
	titleHeight   = 36
)

func fillRect(rr chart.Renderer, x0, y0, x1, y1 int, col drawing.Color) {
	rr.SetFillColor(col)
	rr.SetStrokeWidth(0)
	rr.MoveTo(x0, y0)
	rr.LineTo(x1, y0)
	rr.LineTo(x1, y1)
	rr.LineTo(x0, y1)
	rr.Close()
	rr.Fill()
}

// drawTitle centers title at the top and returns the height it took.
func (r *Renderer) drawTitle(rr chart.Renderer, title string, w int) int {
	if title == "" {
		return 0
	}
	rr.SetFont(r.font)
	rr.SetFontColor(colorLabelText)
	rr.SetFontSize(14)
	tb := rr.MeasureText(title)
	rr.Text(title, (w-tb.Width())/2, 24)
	return titleHeight
}

func (r *Renderer) drawRadar(cfg *RadarConfig, w, h int) ([]byte, error) {
	rr, err := r.format.provider()(w, h)
	if err != nil {
		return nil, err
	}
	fillRect(rr, 0, 0, w, h, colorBackground)
	top := r.drawTitle(rr, cfg.Title, w)

	lo, hi := cfg.Axis.Fit(cfg.Values)
	ticks := radarTicks(lo, hi, cfg.StepSize)
	if len(ticks) > 0 && ticks[len(ticks)-1] > hi {
		hi = ticks[len(ticks)-1]
	}
	n := len(cfg.Labels)
	cx := w / 2
	cy := top + (h-top)/2
	radius := float64(min(w, h-top))/2 - radarMargin
	if radius < 10 {
		radius = 10
	}
	angle := func(i int) float64 {
		return -math.Pi/2 + float64(i)*2*math.Pi/float64(n)
	}
	at := func(i int, dist float64) (int, int) {
		a := angle(i)
		return cx + int(math.Round(dist*math.Cos(a))), cy + int(math.Round(dist*math.Sin(a)))
	}
	// finite values never pass the outer ring: Fit widens to them. +Inf
	// is pinned there, -Inf and NaN to the center.
	scale := func(v float64) float64 {
		f := (v - lo) / (hi - lo)
		if math.IsNaN(f) || f < 0 {
			f = 0
		}
		if f > 1 {
			f = 1
		}
		return radius * f
	}

	// grid rings at each tick step
	rr.SetStrokeColor(cfg.Grid)
	rr.SetStrokeWidth(1)
	rr.SetFillColor(drawing.ColorTransparent)
	for _, t := range ticks {
		d := scale(t)
		if d <= 0 {
			continue
		}
		if n < 3 {
			rr.Circle(d, cx, cy)
			rr.Stroke()
			continue
		}
		x, y := at(0, d)
		rr.MoveTo(x, y)
		for i := 1; i < n; i++ {
			x, y = at(i, d)
			rr.LineTo(x, y)
		}
		rr.Close()
		rr.Stroke()
	}
	// angle lines
	for i := 0; i < n; i++ {
		x, y := at(i, radius)
		rr.MoveTo(cx, cy)
		rr.LineTo(x, y)
		rr.Stroke()
	}

	rr.SetFont(r.font)
	rr.SetFontColor(cfg.TickText)
	rr.SetFontSize(cfg.TickSize)
	for _, t := range ticks {
		rr.Text(formatNumber(t), cx+4, cy-int(math.Round(scale(t)))-2)
	}

	rr.SetFontColor(cfg.LabelText)
	rr.SetFontSize(cfg.LabelSize)
	for i, label := range cfg.Labels {
		x, y := at(i, radius+radarLabelGap)
		tb := rr.MeasureText(label)
		c := math.Cos(angle(i))
		switch {
		case c > 0.1:
		case c < -0.1:
			x -= tb.Width()
		default:
			x -= tb.Width() / 2
		}
		rr.Text(label, x, y+tb.Height()/2)
	}

	// dataset
	rr.SetFillColor(cfg.Fill)
	rr.SetStrokeColor(cfg.Stroke)
	rr.SetStrokeWidth(cfg.StrokeWidth)
	if n >= 2 {
		x, y := at(0, scale(cfg.Values[0]))
		rr.MoveTo(x, y)
		for i := 1; i < n; i++ {
			x, y = at(i, scale(cfg.Values[i]))
			rr.LineTo(x, y)
		}
		rr.Close()
		rr.FillStroke()
	}
	rr.SetFillColor(cfg.Point)
	rr.SetStrokeColor(cfg.PointBorder)
	rr.SetStrokeWidth(1)
	for i, v := range cfg.Values {
		x, y := at(i, scale(v))
		rr.Circle(cfg.PointRadius, x, y)
		rr.FillStroke()
	}

	var buf bytes.Buffer
	if err := rr.Save(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// radarTicks returns the gridline values from lo to hi. Like a suggested
// scale, the last ring is rounded up to a whole step.
func radarTicks(lo, hi, step float64) []float64 {
	if step <= 0 {
		step = (hi - lo) / 5
	}
	start := math.Ceil(lo/step) * step
	end := math.Ceil(hi/step) * step
	var out []float64
	for v := start; v <= end+step/2 && len(out) < 64; v += step {
		out = append(out, v)
	}
	return out
}
