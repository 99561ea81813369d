// Package charts renders the five-step report charts: a radar of one report's
// step coverage, step application frequency bars, the completeness score
// distribution pie and per-industry average score bars.
//
// Each render call is a one-shot: it validates the parallel series, builds a
// per-kind config (colors, axis range, tooltip formatter), lets the plotting
// library draw it at the surface's bounds and presents the encoded image.
// Nothing is cached between calls. Calls on the same surface are not
// serialized here; hosts that render concurrently must order them.
package charts

import (
	"fmt"
	"math"
	"time"

	"github.com/golang/freetype/truetype"
	chart "github.com/wcharczuk/go-chart/v2"
)

// Fallback bounds when a surface reports none.
const (
	DefaultWidth  = 800
	DefaultHeight = 400
)

// Options controls rendering for every chart a Renderer draws.
type Options struct {
	Format Format
	// FontData is a TrueType font used for all text. Needed for CJK labels;
	// nil falls back to the libraries' built-in Latin fonts.
	FontData []byte
	// Donut draws the score distribution as a donut instead of a pie.
	Donut bool
	// Footnote is stamped along the bottom edge of PNG charts (ASCII only).
	Footnote string
}

// Renderer draws charts onto surfaces. It holds options only and is safe to reuse.
type Renderer struct {
	format   Format
	font     *truetype.Font
	donut    bool
	footnote string
}

// NewRenderer parses the configured font and returns a renderer. A custom
// font is installed as gonum/plot's process default, which plot.New reads
// without locking, so build renderers before any rendering starts.
func NewRenderer(opts Options) (*Renderer, error) {
	r := &Renderer{format: opts.Format, donut: opts.Donut, footnote: opts.Footnote}
	if len(opts.FontData) > 0 {
		f, err := truetype.Parse(opts.FontData)
		if err != nil {
			return nil, fmt.Errorf("parse font: %w", err)
		}
		if err := registerPlotFont(opts.FontData); err != nil {
			return nil, err
		}
		r.font = f
	} else {
		f, err := chart.GetDefaultFont()
		if err != nil {
			return nil, fmt.Errorf("load default font: %w", err)
		}
		r.font = f
	}
	return r, nil
}

// Format is the encoding this renderer produces.
func (r *Renderer) Format() Format { return r.format }

func nonFinite(vs []float64) int {
	n := 0
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			n++
		}
	}
	return n
}

func normalizeBounds(w, h int) (int, int) {
	if w <= 0 {
		w = DefaultWidth
	}
	if h <= 0 {
		h = DefaultHeight
	}
	return w, h
}

// RenderRadar draws a filled radar with one series. values are percentages
// on a suggested 0-100 scale, one per label.
func (r *Renderer) RenderRadar(target Surface, values []float64, labels []string) error {
	if target == nil {
		return ErrNilSurface
	}
	cfg, err := NewRadarConfig(values, labels)
	if err != nil {
		return err
	}
	if n := nonFinite(cfg.Values); n > 0 {
		chartLog{KindRadar, target.Key()}.warnf("%d non-finite values drawn at the center or outer ring", n)
	}
	return r.render(target, KindRadar, cfg.Title, len(cfg.Values), cfg.Tooltips(), func(w, h int) ([]byte, error) {
		return r.drawRadar(cfg, w, h)
	})
}

// RenderStepFrequencyBars draws one vertical bar per step, height = percentage
// on a fixed 0-100 axis.
func (r *Renderer) RenderStepFrequencyBars(target Surface, labels []string, counts []int, percentages []float64) error {
	if target == nil {
		return ErrNilSurface
	}
	cfg, err := NewStepFrequencyConfig(labels, counts, percentages)
	if err != nil {
		return err
	}
	if _, moved := clampAll(cfg.Axis, cfg.Percentages); moved > 0 {
		chartLog{KindStepFrequency, target.Key()}.warnf("%d bars outside [%s,%s] drawn at the axis limit", moved, formatNumber(cfg.Axis.Min), formatNumber(cfg.Axis.Max))
	}
	return r.render(target, KindStepFrequency, cfg.Title, len(cfg.Labels), cfg.Tooltips(), func(w, h int) ([]byte, error) {
		return r.drawStepFrequency(cfg, w, h)
	})
}

// RenderScoreDistributionPie draws the score band distribution. Colors are
// bound by position: callers pass 优秀, 良好, 一般, 差 in that order. The
// category count is not checked against the palette.
func (r *Renderer) RenderScoreDistributionPie(target Surface, labels []string, values []float64) error {
	if target == nil {
		return ErrNilSurface
	}
	cfg, err := NewScoreDistributionConfig(labels, values)
	if err != nil {
		return err
	}
	cfg.Donut = r.donut
	if n := len(cfg.Labels); n > 0 && n != len(cfg.Palette) {
		chartLog{KindScoreDistribution, target.Key()}.warnf("%d categories for %d positional colors; extra slices are gray", n, len(cfg.Palette))
	}
	n := len(cfg.Values)
	if cfg.Total() <= 0 {
		n = 0
	}
	return r.render(target, KindScoreDistribution, cfg.Title, n, cfg.Tooltips(), func(w, h int) ([]byte, error) {
		return r.drawScoreDistribution(cfg, w, h)
	})
}

// RenderIndustryScoresBars draws one horizontal bar per industry on a fixed
// 0-100 axis, first industry at the top.
func (r *Renderer) RenderIndustryScoresBars(target Surface, industries []string, scores []float64, counts []int) error {
	if target == nil {
		return ErrNilSurface
	}
	cfg, err := NewIndustryScoresConfig(industries, scores, counts)
	if err != nil {
		return err
	}
	if _, moved := clampAll(cfg.Axis, cfg.Scores); moved > 0 {
		chartLog{KindIndustryScores, target.Key()}.warnf("%d bars outside [%s,%s] drawn at the axis limit", moved, formatNumber(cfg.Axis.Min), formatNumber(cfg.Axis.Max))
	}
	return r.render(target, KindIndustryScores, cfg.Title, len(cfg.Industries), cfg.Tooltips(), func(w, h int) ([]byte, error) {
		return r.drawIndustryScores(cfg, w, h)
	})
}

func (r *Renderer) render(target Surface, kind Kind, title string, n int, tips []string, draw func(w, h int) ([]byte, error)) error {
	lg := chartLog{kind, target.Key()}
	defer lg.took(time.Now())
	w, h := normalizeBounds(target.Bounds())
	c := &Chart{Kind: kind, Key: target.Key(), Format: r.format, Width: w, Height: h, Tooltips: tips}
	var err error
	if n == 0 {
		// go-chart and gonum both refuse empty series.
		c.Empty = true
		c.Image, err = r.drawEmpty(title, w, h)
	} else {
		c.Image, err = draw(w, h)
	}
	if err != nil {
		return fmt.Errorf("render %s: %w", kind, err)
	}
	if r.footnote != "" && r.format == FormatPNG {
		if c.Image, err = addFootnote(c.Image, r.footnote); err != nil {
			return fmt.Errorf("render %s footnote: %w", kind, err)
		}
	}
	if err := target.Present(c); err != nil {
		return fmt.Errorf("present %s on %q: %w", kind, c.Key, err)
	}
	lg.debugf("presented %dx%d %s, %d bytes", w, h, c.Format, len(c.Image))
	return nil
}
