package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/iafilius/FiveStepCharts/src/charts"
)

// chartJob is one chart of an export run.
type chartJob struct {
	key    string
	width  int
	height int
	draw   func(*charts.Renderer, charts.Surface) error
}

// exportCharts renders jobs headlessly onto a page, writes every chart to
// outDir as <key>.<ext> and, when htmlName is set, the page as HTML next to
// them. It returns the written paths.
func exportCharts(r *charts.Renderer, outDir, title, htmlName string, jobs []chartJob) ([]string, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("create out dir: %w", err)
	}
	page := charts.NewPage(title)
	var written []string
	for _, job := range jobs {
		canvas := page.AddCanvas(job.key, job.width, job.height)
		if err := job.draw(r, canvas); err != nil {
			return written, err
		}
		fs := charts.NewFileSurface(outDir, job.key, job.width, job.height)
		if err := fs.Present(page.Chart(job.key)); err != nil {
			return written, err
		}
		written = append(written, fs.Path)
	}
	if htmlName == "" {
		return written, nil
	}
	p := filepath.Join(outDir, htmlName)
	f, err := os.Create(p)
	if err != nil {
		return written, fmt.Errorf("create page: %w", err)
	}
	if err := page.WriteHTML(f); err != nil {
		f.Close()
		return written, err
	}
	if err := f.Close(); err != nil {
		return written, err
	}
	charts.Infof("[cli] wrote page %s", p)
	return append(written, p), nil
}
