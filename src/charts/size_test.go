package charts

import "testing"

func TestChartDimensions(t *testing.T) {
	cases := []struct {
		name  string
		raw   int
		kind  Kind
		wantW int
		wantH int
	}{
		{"bar below min width", 300, KindStepFrequency, 480, 300},
		{"bar normal", 1000, KindStepFrequency, 1000, 500},
		{"bar height cap", 2000, KindIndustryScores, 2000, 640},
		{"radar 4:3", 600, KindRadar, 600, 450},
		{"pie height cap", 1200, KindScoreDistribution, 1200, 640},
	}
	for _, c := range cases {
		w, h := ChartDimensions(c.raw, c.kind)
		if w != c.wantW || h != c.wantH {
			t.Fatalf("%s: got %dx%d want %dx%d", c.name, w, h, c.wantW, c.wantH)
		}
	}
}

func TestIndustryChartHeight(t *testing.T) {
	if h := IndustryChartHeight(400, 3); h != 400 {
		t.Fatalf("few industries should keep base, got %d", h)
	}
	if h := IndustryChartHeight(400, 20); h != 96+20*28 {
		t.Fatalf("many industries should grow, got %d", h)
	}
}
