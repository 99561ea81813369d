package charts

import (
	"math"

	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Base colors, opaque. Fills are derived with withAlpha.
var (
	colorPrimary = drawing.Color{R: 13, G: 110, B: 253, A: 255}
	colorRed     = drawing.Color{R: 255, G: 99, B: 132, A: 255}
	colorBlue    = drawing.Color{R: 54, G: 162, B: 235, A: 255}
	colorYellow  = drawing.Color{R: 255, G: 206, B: 86, A: 255}
	colorTeal    = drawing.Color{R: 75, G: 192, B: 192, A: 255}
	colorPurple  = drawing.Color{R: 153, G: 102, B: 255, A: 255}
	colorGray    = drawing.Color{R: 201, G: 203, B: 207, A: 255}

	colorBackground = drawing.Color{R: 255, G: 255, B: 255, A: 255}
	colorGrid       = drawing.Color{R: 0, G: 0, B: 0, A: 26}
	colorTickText   = drawing.Color{R: 102, G: 102, B: 102, A: 255}
	colorLabelText  = drawing.Color{R: 51, G: 51, B: 51, A: 255}
)

// stepPalette colors the five step bars by position.
var stepPalette = []drawing.Color{colorRed, colorBlue, colorYellow, colorTeal, colorPurple}

// scorePalette colors the score bands by position: 优秀, 良好, 一般, 差.
var scorePalette = []drawing.Color{colorTeal, colorBlue, colorYellow, colorRed}

func withAlpha(c drawing.Color, a float64) drawing.Color {
	return c.WithAlpha(uint8(math.Round(a * 255)))
}
