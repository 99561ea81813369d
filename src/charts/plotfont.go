package charts

import (
	"fmt"
	"sync"

	"golang.org/x/image/font/opentype"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/plotter"
)

// plotTypeface is the name the custom font is registered under in gonum's cache.
const plotTypeface = "FiveStepCharts"

var plotFontMu sync.Mutex

// registerPlotFont makes gonum/plot use the given font for new plots. gonum
// keeps its font cache and defaults in package globals, so this is process-wide.
func registerPlotFont(data []byte) error {
	f, err := opentype.Parse(data)
	if err != nil {
		return fmt.Errorf("parse plot font: %w", err)
	}
	// serializes writers only; plot.New reads the defaults unlocked
	plotFontMu.Lock()
	defer plotFontMu.Unlock()
	face := font.Font{Typeface: plotTypeface}
	font.DefaultCache.Add(font.Collection{{Font: face, Face: f}})
	plot.DefaultFont = face
	plotter.DefaultFont = face
	return nil
}
