package charts

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestPageLookup(t *testing.T) {
	p := NewPage("研报统计")
	p.AddCanvas("radarChart", 400, 400)
	if _, err := p.Lookup("radarChart"); err != nil {
		t.Fatalf("lookup existing: %v", err)
	}
	if _, err := p.Lookup("missing"); !errors.Is(err, ErrSurfaceNotFound) {
		t.Fatalf("want ErrSurfaceNotFound got %v", err)
	}
}

func TestPageAddCanvasResizesExisting(t *testing.T) {
	p := NewPage("t")
	a := p.AddCanvas("c", 100, 100)
	b := p.AddCanvas("c", 300, 200)
	if a != b {
		t.Fatalf("re-adding a key should return the same canvas")
	}
	if w, h := b.Bounds(); w != 300 || h != 200 {
		t.Fatalf("bounds %dx%d", w, h)
	}
	if len(p.Keys()) != 1 {
		t.Fatalf("keys %v", p.Keys())
	}
}

func TestPageWriteHTML(t *testing.T) {
	r := newTestRenderer(t, Options{})
	p := NewPage("研报统计")
	steps := p.AddCanvas("stepsChart", 600, 300)
	p.AddCanvas("industryChart", 600, 300)
	if err := r.RenderStepFrequencyBars(steps, []string{"A", "B"}, []int{10, 5}, []float64{60, 40}); err != nil {
		t.Fatalf("render: %v", err)
	}
	if p.Chart("stepsChart") == nil || p.Chart("industryChart") != nil {
		t.Fatalf("unexpected canvas state")
	}
	var buf bytes.Buffer
	if err := p.WriteHTML(&buf); err != nil {
		t.Fatalf("WriteHTML: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"<title>研报统计</title>",
		`src="data:image/png;base64,`,
		"应用频率: 60% (10份研报)",
		"industryChart: not rendered",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("page missing %q", want)
		}
	}
	if strings.Index(out, `id="stepsChart"`) > strings.Index(out, `id="industryChart"`) {
		t.Fatalf("canvases out of insertion order")
	}
}
