package charts

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const emptyText = "暂无数据"

// drawEmpty renders the title and a "no data" placeholder.
func (r *Renderer) drawEmpty(title string, w, h int) ([]byte, error) {
	rr, err := r.format.provider()(w, h)
	if err != nil {
		return nil, err
	}
	fillRect(rr, 0, 0, w, h, colorBackground)
	r.drawTitle(rr, title, w)
	rr.SetFont(r.font)
	rr.SetFontColor(colorTickText)
	rr.SetFontSize(12)
	tb := rr.MeasureText(emptyText)
	rr.Text(emptyText, (w-tb.Width())/2, h/2)

	var buf bytes.Buffer
	if err := rr.Save(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// addFootnote decodes a PNG chart, stamps text bottom-left and re-encodes it.
func addFootnote(pngBytes []byte, text string) ([]byte, error) {
	img, err := png.Decode(bytes.NewReader(pngBytes))
	if err != nil {
		return nil, fmt.Errorf("decode png: %w", err)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, drawFootnote(img, text)); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// drawFootnote draws a small text line near the bottom-left on a light strip.
func drawFootnote(img image.Image, text string) image.Image {
	if img == nil || strings.TrimSpace(text) == "" {
		return img
	}
	b := img.Bounds()
	rgba := image.NewRGBA(b)
	draw.Draw(rgba, b, img, b.Min, draw.Src)
	pad := 4
	face := basicfont.Face7x13
	dr := &font.Drawer{Dst: rgba, Src: image.NewUniform(color.RGBA{R: 102, G: 102, B: 102, A: 255}), Face: face}
	tw := dr.MeasureString(text).Ceil()
	x := b.Min.X + 8
	y := b.Max.Y - 6
	bg := image.NewUniform(color.RGBA{R: 245, G: 245, B: 245, A: 230})
	rect := image.Rect(x-pad, y-face.Metrics().Ascent.Ceil()-pad, x+tw+pad, y+pad/2)
	draw.Draw(rgba, rect, bg, image.Point{}, draw.Over)
	dr.Dot = fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)}
	dr.DrawString(text)
	return rgba
}
