package charts

import (
	"encoding/base64"
	"errors"
	"fmt"
	"html/template"
	"io"
)

// ErrSurfaceNotFound is returned when a page has no canvas with the requested key.
var ErrSurfaceNotFound = errors.New("charts: surface not found")

// Page is a hosting document: an ordered set of named canvases, each holding
// at most one chart. Canvases live as long as the page; rendering onto one
// replaces its chart.
type Page struct {
	Title    string
	order    []string
	canvases map[string]*pageCanvas
}

type pageCanvas struct {
	key    string
	width  int
	height int
	chart  *Chart
}

func (c *pageCanvas) Key() string        { return c.key }
func (c *pageCanvas) Bounds() (int, int) { return c.width, c.height }

func (c *pageCanvas) Present(ch *Chart) error {
	c.chart = ch
	return nil
}

func NewPage(title string) *Page {
	return &Page{Title: title, canvases: map[string]*pageCanvas{}}
}

// AddCanvas creates the canvas key, or resizes it if it exists, and returns it.
func (p *Page) AddCanvas(key string, width, height int) Surface {
	if c, ok := p.canvases[key]; ok {
		c.width, c.height = width, height
		return c
	}
	c := &pageCanvas{key: key, width: width, height: height}
	p.canvases[key] = c
	p.order = append(p.order, key)
	return c
}

// Lookup returns the canvas registered under key.
func (p *Page) Lookup(key string) (Surface, error) {
	c, ok := p.canvases[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrSurfaceNotFound, key)
	}
	return c, nil
}

// Chart returns the chart currently on canvas key, or nil.
func (p *Page) Chart(key string) *Chart {
	if c, ok := p.canvases[key]; ok {
		return c.chart
	}
	return nil
}

// Keys lists canvas keys in insertion order.
func (p *Page) Keys() []string { return append([]string(nil), p.order...) }

var pageTmpl = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="zh-CN">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body{font-family:sans-serif;margin:24px;color:#333}
figure{margin:0 0 32px 0}
figcaption ul{list-style:none;padding:0;font-size:13px;color:#666}
.empty{color:#999}
</style>
</head>
<body>
<h1>{{.Title}}</h1>
{{range .Canvases}}<figure id="{{.Key}}">
{{if .Src}}<img src="{{.Src}}" width="{{.Width}}" height="{{.Height}}" alt="{{.Key}}">
{{if .Tooltips}}<figcaption><ul>{{range .Tooltips}}<li>{{.}}</li>{{end}}</ul></figcaption>{{end}}
{{else}}<p class="empty">{{.Key}}: not rendered</p>{{end}}
</figure>
{{end}}</body>
</html>
`))

type pageCanvasView struct {
	Key      string
	Src      template.URL
	Width    int
	Height   int
	Tooltips []string
}

// WriteHTML writes the page as a standalone HTML document with the charts
// inlined as data URLs and their tooltips listed under each image.
func (p *Page) WriteHTML(w io.Writer) error {
	views := make([]pageCanvasView, 0, len(p.order))
	for _, key := range p.order {
		c := p.canvases[key]
		v := pageCanvasView{Key: key, Width: c.width, Height: c.height}
		if ch := c.chart; ch != nil {
			v.Src = template.URL("data:" + ch.Format.MIME() + ";base64," + base64.StdEncoding.EncodeToString(ch.Image))
			v.Width, v.Height = ch.Width, ch.Height
			v.Tooltips = ch.Tooltips
		}
		views = append(views, v)
	}
	data := struct {
		Title    string
		Canvases []pageCanvasView
	}{Title: p.Title, Canvases: views}
	if err := pageTmpl.Execute(w, data); err != nil {
		return fmt.Errorf("write page: %w", err)
	}
	return nil
}
