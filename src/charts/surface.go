package charts

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	chart "github.com/wcharczuk/go-chart/v2"
)

// ErrNilSurface is returned when a render call gets no target.
var ErrNilSurface = errors.New("charts: nil surface")

// Kind names one of the four chart kinds.
type Kind string

const (
	KindRadar             Kind = "radar"
	KindStepFrequency     Kind = "step_frequency"
	KindScoreDistribution Kind = "score_distribution"
	KindIndustryScores    Kind = "industry_scores"
)

// Format is the encoding of a rendered chart.
type Format int

const (
	FormatPNG Format = iota
	FormatSVG
)

// ParseFormat accepts "png" or "svg" (case-insensitive).
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "png":
		return FormatPNG, nil
	case "svg":
		return FormatSVG, nil
	}
	return FormatPNG, fmt.Errorf("unknown chart format %q (want png or svg)", s)
}

func (f Format) String() string {
	if f == FormatSVG {
		return "svg"
	}
	return "png"
}

// Ext is the file extension without the dot.
func (f Format) Ext() string { return f.String() }

// MIME is the media type of the encoded image.
func (f Format) MIME() string {
	if f == FormatSVG {
		return "image/svg+xml"
	}
	return "image/png"
}

func (f Format) provider() chart.RendererProvider {
	if f == FormatSVG {
		return chart.SVG
	}
	return chart.PNG
}

// Chart is one rendered chart as handed to a surface.
type Chart struct {
	Kind     Kind
	Key      string
	Format   Format
	Width    int
	Height   int
	Image    []byte
	Tooltips []string
	// Empty is set when there was no data and a placeholder was drawn.
	Empty bool
}

// Surface is a drawable target owned by its host. The renderer looks at its
// bounds, draws, and hands over the result; it keeps no reference afterwards.
// Presenting onto an occupied surface replaces what was there.
type Surface interface {
	Key() string
	Bounds() (width, height int)
	Present(c *Chart) error
}

// MemorySurface keeps the last chart presented to it.
type MemorySurface struct {
	key      string
	width    int
	height   int
	last     *Chart
	presents int
}

func NewMemorySurface(key string, width, height int) *MemorySurface {
	return &MemorySurface{key: key, width: width, height: height}
}

func (m *MemorySurface) Key() string        { return m.key }
func (m *MemorySurface) Bounds() (int, int) { return m.width, m.height }
func (m *MemorySurface) Last() *Chart       { return m.last }
func (m *MemorySurface) Presents() int      { return m.presents }

func (m *MemorySurface) Present(c *Chart) error {
	m.last = c
	m.presents++
	return nil
}

// FileSurface writes each presented chart to <Dir>/<key>.<ext>, overwriting.
type FileSurface struct {
	Dir    string
	key    string
	width  int
	height int
	// Path is the file written by the last Present.
	Path string
}

func NewFileSurface(dir, key string, width, height int) *FileSurface {
	return &FileSurface{Dir: dir, key: key, width: width, height: height}
}

func (f *FileSurface) Key() string        { return f.key }
func (f *FileSurface) Bounds() (int, int) { return f.width, f.height }

func (f *FileSurface) Present(c *Chart) error {
	if err := os.MkdirAll(f.Dir, 0o755); err != nil {
		return fmt.Errorf("create out dir: %w", err)
	}
	p := filepath.Join(f.Dir, f.key+"."+c.Format.Ext())
	if err := os.WriteFile(p, c.Image, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", p, err)
	}
	f.Path = p
	chartLog{c.Kind, f.key}.debugf("wrote %s (%d bytes)", p, len(c.Image))
	return nil
}
