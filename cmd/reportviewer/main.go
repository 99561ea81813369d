// Command reportviewer is a desktop viewer for the research-report charts.
package main

import (
	"context"
	"fmt"
	"image/png"
	"os"
	"strings"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"github.com/spf13/pflag"

	"github.com/iafilius/FiveStepCharts/src/analysis"
	"github.com/iafilius/FiveStepCharts/src/charts"
	"github.com/iafilius/FiveStepCharts/src/config"
)

type uiState struct {
	app      fyne.App
	window   fyne.Window
	cfg      *config.Config
	renderer *charts.Renderer

	filePath string // JSON export or, with a .db suffix, the SQLite database
	reports  []analysis.Report
	stats    analysis.Stats
	selected int

	radar    *imageSurface
	steps    *imageSurface
	score    *imageSurface
	industry *imageSurface

	reportSelect *widget.Select
	fileLabel    *widget.Label
	tabs         *container.AppTabs
}

func main() {
	var (
		fileFlag   string
		configFlag string
	)
	pflag.StringVarP(&fileFlag, "file", "f", "", "Path to research_reports.json or a reports .db")
	pflag.StringVarP(&configFlag, "config", "c", "", "Path to config file (.toml, .yaml)")
	pflag.Parse()

	cfg := config.Default()
	if configFlag != "" {
		loaded, err := config.Load(configFlag)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		cfg = loaded
	}
	charts.SetLogLevel(cfg.General.LogLevel)
	// the viewer can only show PNG
	cfg.General.Format = charts.FormatPNG.String()
	opts, err := cfg.RendererOptions()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	r, err := charts.NewRenderer(opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	a := app.NewWithID("com.fivestep.reportviewer")
	w := a.NewWindow("研报五步法图表")
	w.Resize(fyne.NewSize(1000, 760))

	state := newUIState(cfg, r)
	state.app = a
	state.window = w
	state.filePath = fileFlag
	if state.filePath == "" {
		state.filePath = a.Preferences().StringWithFallback("lastFile", "")
	}
	if state.filePath == "" {
		state.filePath = defaultSource(cfg)
	}

	state.fileLabel = widget.NewLabel(truncatePath(state.filePath, 60))
	state.reportSelect = widget.NewSelect(nil, func(v string) {
		i := state.reportIndex(v)
		if i < 0 {
			return
		}
		state.selected = i
		if err := state.redrawRadar(); err != nil {
			dialog.ShowError(err, state.window)
		}
	})
	state.reportSelect.PlaceHolder = "选择研报"

	state.tabs = container.NewAppTabs(
		container.NewTabItem("五步法雷达", container.NewBorder(state.reportSelect, nil, nil, nil, container.NewVScroll(state.radar.content()))),
		container.NewTabItem("步骤频率", container.NewVScroll(state.steps.content())),
		container.NewTabItem("分数分布", container.NewVScroll(state.score.content())),
		container.NewTabItem("行业平均", container.NewVScroll(state.industry.content())),
	)
	state.tabs.SetTabLocation(container.TabLocationTop)
	state.tabs.OnSelected = func(*container.TabItem) {
		a.Preferences().SetInt("selectedTabIndex", state.tabs.SelectedIndex())
	}
	if idx := a.Preferences().IntWithFallback("selectedTabIndex", 0); idx >= 0 && idx < len(state.tabs.Items) {
		state.tabs.SelectIndex(idx)
	}

	top := container.NewHBox(widget.NewLabel("数据:"), state.fileLabel)
	w.SetContent(container.NewBorder(top, nil, nil, nil, state.tabs))
	buildMenus(state)

	loadAll(state)
	w.ShowAndRun()
}

func newUIState(cfg *config.Config, r *charts.Renderer) *uiState {
	return &uiState{
		cfg:      cfg,
		renderer: r,
		radar:    newImageSurface("radarChart"),
		steps:    newImageSurface("stepsChart"),
		score:    newImageSurface("scoreChart"),
		industry: newImageSurface("industryChart"),
	}
}

func defaultSource(cfg *config.Config) string {
	if cfg.General.Database != "" {
		return cfg.General.Database
	}
	return cfg.General.Reports
}

// menus and dialogs
func buildMenus(state *uiState) {
	if state == nil || state.window == nil || state.app == nil {
		return
	}
	var items []*fyne.MenuItem
	for _, f := range recentFiles(state) {
		f := f
		items = append(items, fyne.NewMenuItem(truncatePath(f, 60), func() { openPath(state, f) }))
	}
	clearRecent := fyne.NewMenuItem("Clear Recent", func() { clearRecentFiles(state); buildMenus(state) })
	recentMenu := fyne.NewMenu("Open Recent", append(items, clearRecent)...)
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Open…", func() { openFileDialog(state) }),
		fyne.NewMenuItem("Reload", func() { loadAll(state) }),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Export Current Chart…", func() { exportChartPNG(state, state.currentSurface()) }),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() { state.window.Close() }),
	)
	state.window.SetMainMenu(fyne.NewMainMenu(fileMenu, recentMenu))

	if canv := state.window.Canvas(); canv != nil {
		for _, mod := range []fyne.KeyModifier{fyne.KeyModifierSuper, fyne.KeyModifierControl} {
			canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyO, Modifier: mod}, func(fyne.Shortcut) { openFileDialog(state) })
			canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyR, Modifier: mod}, func(fyne.Shortcut) { loadAll(state) })
			canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyE, Modifier: mod}, func(fyne.Shortcut) { exportChartPNG(state, state.currentSurface()) })
		}
	}
}

func openFileDialog(state *uiState) {
	d := dialog.NewFileOpen(func(rc fyne.URIReadCloser, err error) {
		if err != nil || rc == nil {
			return
		}
		defer rc.Close()
		openPath(state, rc.URI().Path())
	}, state.window)
	d.Show()
}

func openPath(state *uiState, p string) {
	state.filePath = p
	state.fileLabel.SetText(truncatePath(p, 60))
	addRecentFile(state, p)
	state.app.Preferences().SetString("lastFile", p)
	buildMenus(state)
	loadAll(state)
}

// loadAll reads the reports, recomputes the aggregates and redraws every tab.
func loadAll(state *uiState) {
	reports, err := loadReports(state.filePath)
	if err != nil {
		dialog.ShowError(err, state.window)
		return
	}
	state.setReports(reports)
	state.reportSelect.Options = reportOptions(reports)
	state.reportSelect.ClearSelected()
	if len(reports) > 0 {
		state.reportSelect.SetSelectedIndex(0)
	}
	state.reportSelect.Refresh()
	if err := redrawCharts(state); err != nil {
		dialog.ShowError(err, state.window)
	}
}

func loadReports(p string) ([]analysis.Report, error) {
	if strings.HasSuffix(strings.ToLower(p), ".db") {
		return analysis.LoadReportsDB(context.Background(), p)
	}
	return analysis.LoadReports(p)
}

func (state *uiState) setReports(reports []analysis.Report) {
	state.reports = reports
	state.stats = analysis.ComputeStats(reports)
	state.selected = 0
}

// reportOptions labels the select entries; the index prefix keeps duplicate
// titles distinct.
func reportOptions(reports []analysis.Report) []string {
	out := make([]string, len(reports))
	for i, r := range reports {
		out[i] = fmt.Sprintf("%d. %s", i+1, r.Title)
	}
	return out
}

func (state *uiState) reportIndex(option string) int {
	for i, o := range reportOptions(state.reports) {
		if o == option {
			return i
		}
	}
	return -1
}

// chartSize sizes a chart from the window width.
func chartSize(state *uiState, kind charts.Kind) (int, int) {
	if state.window == nil || state.window.Canvas() == nil {
		return charts.ChartDimensions(state.cfg.Chart.Width, kind)
	}
	sz := state.window.Canvas().Size()
	return charts.ChartDimensions(int(sz.Width*0.95)-12, kind)
}

func redrawCharts(state *uiState) error {
	if err := state.redrawRadar(); err != nil {
		return err
	}
	w, h := chartSize(state, charts.KindStepFrequency)
	state.steps.resize(w, h)
	labels, counts, pcts := state.stats.StepFrequencySeries()
	if err := state.renderer.RenderStepFrequencyBars(state.steps, labels, counts, pcts); err != nil {
		return err
	}

	state.score.resize(chartSize(state, charts.KindScoreDistribution))
	bands, values := state.stats.ScoreDistributionSeries()
	if err := state.renderer.RenderScoreDistributionPie(state.score, bands, values); err != nil {
		return err
	}

	w, h = chartSize(state, charts.KindIndustryScores)
	state.industry.resize(w, charts.IndustryChartHeight(h, len(state.stats.Industries)))
	inds, scores, icounts := state.stats.IndustrySeries()
	return state.renderer.RenderIndustryScoresBars(state.industry, inds, scores, icounts)
}

func (state *uiState) redrawRadar() error {
	state.radar.resize(chartSize(state, charts.KindRadar))
	if state.selected < 0 || state.selected >= len(state.reports) {
		return state.renderer.RenderRadar(state.radar, nil, nil)
	}
	values, labels := analysis.RadarSeries(state.reports[state.selected])
	return state.renderer.RenderRadar(state.radar, values, labels)
}

func (state *uiState) currentSurface() *imageSurface {
	if state.tabs == nil {
		return nil
	}
	switch state.tabs.SelectedIndex() {
	case 1:
		return state.steps
	case 2:
		return state.score
	case 3:
		return state.industry
	default:
		return state.radar
	}
}

func exportChartPNG(state *uiState, s *imageSurface) {
	if s == nil || s.img.Image == nil || s.last == nil {
		dialog.ShowInformation("Export", "No chart to export.", state.window)
		return
	}
	fs := dialog.NewFileSave(func(wc fyne.URIWriteCloser, err error) {
		if err != nil || wc == nil {
			return
		}
		defer wc.Close()
		if err := png.Encode(wc, s.img.Image); err != nil {
			dialog.ShowError(err, state.window)
		}
	}, state.window)
	fs.SetFileName(s.Key() + ".png")
	fs.Show()
}

// recent files helpers
func recentFiles(state *uiState) []string {
	raw := state.app.Preferences().StringWithFallback("recentFiles", "")
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, "\n")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p == "" {
			continue
		}
		if _, err := os.Stat(p); err == nil {
			out = append(out, p)
		}
	}
	return out
}

func addRecentFile(state *uiState, path string) {
	filtered := []string{path}
	for _, f := range recentFiles(state) {
		if f != path && len(filtered) < 10 {
			filtered = append(filtered, f)
		}
	}
	state.app.Preferences().SetString("recentFiles", strings.Join(filtered, "\n"))
}

func clearRecentFiles(state *uiState) {
	if state == nil || state.app == nil {
		return
	}
	state.app.Preferences().SetString("recentFiles", "")
}

func truncatePath(p string, n int) string {
	r := []rune(p)
	if len(r) <= n || n < 4 {
		return p
	}
	return "…" + string(r[len(r)-(n-1):])
}
