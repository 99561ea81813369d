package main

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"strings"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/iafilius/FiveStepCharts/src/charts"
)

// imageSurface shows rendered charts in a fyne image, with the tooltip
// lines in a label underneath.
type imageSurface struct {
	key    string
	width  int
	height int

	img  *canvas.Image
	tips *widget.Label
	last *charts.Chart
}

func newImageSurface(key string) *imageSurface {
	img := canvas.NewImageFromImage(image.NewRGBA(image.Rect(0, 0, 100, 60)))
	img.FillMode = canvas.ImageFillContain
	tips := widget.NewLabel("")
	tips.Wrapping = fyne.TextWrapWord
	return &imageSurface{key: key, img: img, tips: tips}
}

func (s *imageSurface) Key() string        { return s.key }
func (s *imageSurface) Bounds() (int, int) { return s.width, s.height }

func (s *imageSurface) resize(w, h int) {
	s.width, s.height = w, h
}

// Present replaces the displayed chart. Only PNG can be shown.
func (s *imageSurface) Present(c *charts.Chart) error {
	if c.Format != charts.FormatPNG {
		return fmt.Errorf("viewer cannot display %s charts", c.Format)
	}
	decoded, err := png.Decode(bytes.NewReader(c.Image))
	if err != nil {
		return fmt.Errorf("decode %s: %w", c.Key, err)
	}
	s.last = c
	s.img.Image = decoded
	s.img.SetMinSize(fyne.NewSize(float32(c.Width), float32(c.Height)))
	s.img.Refresh()
	s.tips.SetText(strings.Join(c.Tooltips, "\n"))
	return nil
}

func (s *imageSurface) content() fyne.CanvasObject {
	return container.NewVBox(s.img, widget.NewSeparator(), s.tips)
}
