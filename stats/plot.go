// Copyright ©2025 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"image/color"
	"io"
	"os"

	stdfnt "golang.org/x/image/font"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/font/liberation"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Figure dimensions and raster resolution.
const (
	Width  = 12 * vg.Inch
	Height = 10 * vg.Inch
	DPI    = 100
)

// DefaultFormat is the image format used when none is given.
const DefaultFormat = "png"

// TitleFont is the font of each panel title.
var TitleFont = font.Font{
	Typeface: "Liberation",
	Variant:  "Serif",
	Weight:   stdfnt.WeightBold,
	Size:     vg.Points(14),
}

// pdfTitleFont names the bold serif face at normal weight. The PDF
// backend embeds every face under the regular style, so it can only
// select a bold face registered this way.
var pdfTitleFont = font.Font{Typeface: "Liberation", Variant: "SerifBold"}

func init() {
	for _, f := range liberation.Collection() {
		if f.Font.Variant == "Serif" && f.Font.Weight == stdfnt.WeightBold && f.Font.Style == stdfnt.StyleNormal {
			font.DefaultCache.Add(font.Collection{{Font: pdfTitleFont, Face: f.Face}})
			return
		}
	}
}

// Plots returns one horizontal boxplot per statistic in Columns, each
// with its own value axis.
func Plots(t *Table) ([]*plot.Plot, error) {
	plots := make([]*plot.Plot, len(Columns))
	for i, col := range Columns {
		v := t.Values(col.Name)
		if len(v) == 0 {
			return nil, fmt.Errorf("%w: %s", ErrEmptyColumn, col.Name)
		}
		b, err := plotter.NewBoxPlot(vg.Points(40), 0, plotter.Values(v))
		if err != nil {
			return nil, fmt.Errorf("stats: %s: %w", col.Name, err)
		}
		b.Horizontal = true
		b.FillColor = col.Color
		b.GlyphStyle = draw.GlyphStyle{
			Color:  color.Black,
			Radius: vg.Points(2.5),
			Shape:  draw.CircleGlyph{},
		}

		p := plot.New()
		p.BackgroundColor = nil
		p.Title.Text = col.Title
		p.Title.TextStyle.Font = TitleFont
		p.Title.Padding = vg.Points(4)
		p.X.Label.Text = col.Title
		p.HideY()
		p.Add(plotter.NewGrid(), b)
		plots[i] = p
	}
	return plots, nil
}

// Render draws the statistics figure in the given image format. When
// transparent is false the figure has a white background.
func Render(t *Table, format string, transparent bool) (io.WriterTo, error) {
	plots, err := Plots(t)
	if err != nil {
		return nil, err
	}
	c, err := newCanvas(format, transparent)
	if err != nil {
		return nil, fmt.Errorf("stats: %w", err)
	}
	if format == "pdf" {
		for _, p := range plots {
			p.Title.TextStyle.Font = pdfFont(p.Title.TextStyle.Font)
		}
	}
	dc := draw.New(c)
	if !transparent {
		dc.FillPolygon(color.White, []vg.Point{
			dc.Min,
			{X: dc.Max.X, Y: dc.Min.Y},
			dc.Max,
			{X: dc.Min.X, Y: dc.Max.Y},
		})
	}

	tiles := draw.Tiles{
		Rows:      len(plots),
		Cols:      1,
		PadX:      vg.Millimeter,
		PadY:      vg.Millimeter * 3,
		PadTop:    vg.Millimeter * 2,
		PadBottom: vg.Millimeter * 2,
		PadLeft:   vg.Millimeter * 2,
		PadRight:  vg.Millimeter * 4,
	}
	grid := make([][]*plot.Plot, len(plots))
	for i, p := range plots {
		grid[i] = []*plot.Plot{p}
	}
	canvases := plot.Align(grid, tiles, dc)
	for i, p := range plots {
		p.Draw(canvases[i][0])
	}
	return c, nil
}

// pdfFont returns the descriptor the PDF backend can resolve for fnt.
func pdfFont(fnt font.Font) font.Font {
	if fnt.Typeface == TitleFont.Typeface && fnt.Variant == TitleFont.Variant &&
		fnt.Weight == stdfnt.WeightBold && fnt.Style == stdfnt.StyleNormal {
		f := pdfTitleFont
		f.Size = fnt.Size
		return f
	}
	return fnt
}

// newCanvas returns a canvas for the format. Raster formats are drawn
// at DPI with the background chosen by transparent.
func newCanvas(format string, transparent bool) (vg.CanvasWriterTo, error) {
	var bg color.Color = color.White
	if transparent {
		bg = color.Transparent
	}
	img := func() *vgimg.Canvas {
		return vgimg.NewWith(vgimg.UseWH(Width, Height), vgimg.UseDPI(DPI), vgimg.UseBackgroundColor(bg))
	}
	switch format {
	case "png":
		return vgimg.PngCanvas{Canvas: img()}, nil
	case "jpg", "jpeg":
		return vgimg.JpegCanvas{Canvas: img()}, nil
	case "tif", "tiff":
		return vgimg.TiffCanvas{Canvas: img()}, nil
	}
	return draw.NewFormattedCanvas(Width, Height, format)
}

// Save renders the figure to the file stem.format and returns the
// path written.
func Save(t *Table, stem, format string, transparent bool) (path string, err error) {
	wt, err := Render(t, format, transparent)
	if err != nil {
		return "", err
	}
	path = stem + "." + format
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer func() {
		e := f.Close()
		if err == nil {
			err = e
		}
	}()
	_, err = wt.WriteTo(f)
	return path, err
}
