package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ExportTaperedElevation exports the elevation of a tapered member to an
// image file. The format follows the file extension (png, svg, pdf);
// anything else is written as png.
func ExportTaperedElevation(data ElevationData, filename string) error {
	if len(data.Breakpoints) < 2 {
		return fmt.Errorf("tapered section %q has fewer than two breakpoints", data.Name)
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Tapered Section %s", data.Name)
	if data.Material != "" {
		p.Title.Text += fmt.Sprintf(" (%s)", data.Material)
	}
	p.X.Label.Text = "Position along member"
	p.Y.Label.Text = "Depth"

	scale := data.scale()
	top := make(plotter.XYs, len(data.Breakpoints))
	bottom := make(plotter.XYs, len(data.Breakpoints))
	outline := make(plotter.XYs, 0, 2*len(data.Breakpoints)+1)
	for i, b := range data.Breakpoints {
		x := b.Position * scale
		top[i] = plotter.XY{X: x, Y: b.Depth / 2}
		bottom[i] = plotter.XY{X: x, Y: -b.Depth / 2}
		outline = append(outline, top[i])
	}
	for i := len(bottom) - 1; i >= 0; i-- {
		outline = append(outline, bottom[i])
	}

	// Member outline, filled
	member, err := plotter.NewPolygon(outline)
	if err != nil {
		return err
	}
	member.Color = color.RGBA{R: 100, G: 149, B: 237, A: 150}
	member.LineStyle.Color = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	member.LineStyle.Width = vg.Points(2)
	p.Add(member)

	// Member axis
	axis, err := plotter.NewLine(plotter.XYs{{X: 0, Y: 0}, {X: scale, Y: 0}})
	if err != nil {
		return err
	}
	axis.LineStyle.Width = vg.Points(1)
	axis.LineStyle.Color = color.Gray{Y: 128}
	axis.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	p.Add(axis)

	// Breakpoints
	marks, err := plotter.NewScatter(append(top, bottom...))
	if err != nil {
		return err
	}
	marks.GlyphStyle.Color = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	marks.GlyphStyle.Radius = vg.Points(4)
	marks.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(marks)
	p.Legend.Add("breakpoints", marks)

	// Create directory if needed
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	width := 8 * vg.Inch
	height := 4 * vg.Inch

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}
