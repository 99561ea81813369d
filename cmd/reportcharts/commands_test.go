package main

import (
	"bytes"
	"image"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const reportsJSON = `[
 {"title": "电子深度", "industry": "电子", "analysis": {
   "信息": {"found": true}, "逻辑": {"found": true}, "超预期": {"found": false},
   "催化剂": {"found": true}, "结论": {"found": true},
   "summary": {"completeness_score": 80}}},
 {"title": "银行点评", "industry": "银行", "analysis": {
   "信息": {"found": true}, "summary": {"completeness_score": 20}}}
]`

func runCLI(t *testing.T, args ...string) string {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("reportcharts %v: %v\n%s", args, err, out.String())
	}
	return out.String()
}

func writeReports(t *testing.T) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "research_reports.json")
	if err := os.WriteFile(p, []byte(reportsJSON), 0o644); err != nil {
		t.Fatalf("write reports: %v", err)
	}
	return p
}

func imageSize(t *testing.T, path string) (int, int) {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer f.Close()
	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		t.Fatalf("decode %s: %v", path, err)
	}
	return cfg.Width, cfg.Height
}

func TestStatsCommand(t *testing.T) {
	out := t.TempDir()
	stdout := runCLI(t, "stats", "--reports", writeReports(t), "--out", out, "--html", "index.html", "--width", "600", "--height", "300")
	if !strings.Contains(stdout, "reports: 2") {
		t.Fatalf("summary missing from output:\n%s", stdout)
	}
	for _, name := range []string{"stepsChart.png", "scoreChart.png", "industryChart.png", "index.html"} {
		if _, err := os.Stat(filepath.Join(out, name)); err != nil {
			t.Fatalf("expected %s: %v", name, err)
		}
	}
	if w, h := imageSize(t, filepath.Join(out, "stepsChart.png")); w != 600 || h != 300 {
		t.Fatalf("steps chart %dx%d", w, h)
	}
	if w, h := imageSize(t, filepath.Join(out, "scoreChart.png")); w != 600 || h != 450 {
		t.Fatalf("score chart %dx%d", w, h)
	}
	page, err := os.ReadFile(filepath.Join(out, "index.html"))
	if err != nil {
		t.Fatalf("read page: %v", err)
	}
	if !strings.Contains(string(page), "平均分: 80分 (1份研报)") {
		t.Fatalf("page lacks industry tooltip")
	}
}

func TestStatsCommand_MissingReports(t *testing.T) {
	out := t.TempDir()
	runCLI(t, "stats", "--reports", filepath.Join(t.TempDir(), "none.json"), "--out", out)
	if _, err := os.Stat(filepath.Join(out, "industryChart.png")); err != nil {
		t.Fatalf("empty data should still produce placeholder charts: %v", err)
	}
}

func TestRadarCommand(t *testing.T) {
	out := t.TempDir()
	stdout := runCLI(t, "radar", "--reports", writeReports(t), "--out", out, "--index", "1")
	if !strings.Contains(stdout, "radarChart.png") {
		t.Fatalf("output %q", stdout)
	}

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"radar", "--reports", writeReports(t), "--out", out, "--index", "5"})
	if err := cmd.Execute(); err == nil {
		t.Fatalf("expected out-of-range index error")
	}
}

func TestDrawCommand(t *testing.T) {
	out := t.TempDir()
	cases := [][]string{
		{"draw", "radar", "--labels", "a,b,c", "--values", "100,0,50"},
		{"draw", "steps", "--labels", "A,B", "--counts", "10,5", "--percentages", "60,40"},
		{"draw", "pie", "--labels", "优秀,差", "--values", "3,1", "--donut"},
		{"draw", "industry", "--labels", "电子,银行", "--values", "72.5,60", "--counts", "4,2", "--format", "svg"},
	}
	for _, args := range cases {
		runCLI(t, append(args, "--out", out)...)
	}
	for _, name := range []string{"radar.png", "steps.png", "pie.png", "industry.svg"} {
		if _, err := os.Stat(filepath.Join(out, name)); err != nil {
			t.Fatalf("expected %s: %v", name, err)
		}
	}
}

func TestDrawCommand_Errors(t *testing.T) {
	for _, args := range [][]string{
		{"draw", "bubble"},
		{"draw", "pie", "--labels", "a,b", "--values", "1"},
		{"draw", "pie", "--format", "gif"},
	} {
		cmd := newRootCmd()
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs(append(args, "--out", t.TempDir()))
		if err := cmd.Execute(); err == nil {
			t.Fatalf("%v: expected error", args)
		}
	}
}

func TestConfigFileWithFlagOverride(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "charts.toml")
	out := filepath.Join(dir, "out")
	body := "[general]\noutput_dir = \"" + filepath.ToSlash(out) + "\"\n[chart]\nwidth = 700\nheight = 350\n"
	if err := os.WriteFile(cfgPath, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	runCLI(t, "draw", "steps", "--config", cfgPath, "--height", "320", "--labels", "A", "--counts", "1", "--percentages", "100")
	if w, h := imageSize(t, filepath.Join(out, "steps.png")); w != 700 || h != 320 {
		t.Fatalf("size %dx%d want 700x320", w, h)
	}
}
