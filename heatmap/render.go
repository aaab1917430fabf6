// render.go
// Composes the generator outputs into one GitHub-like calendar heatmap SVG.
package heatmap

import (
	"fmt"
	"strings"
)

// Document is the renderable surface produced by one render pass: the SVG
// text plus the geometry and cells it was computed from. It holds no
// references back into the input data.
type Document struct {
	SVG      string
	Geometry Geometry
	Cells    []Cell
}

// Render runs the full pipeline over data: geometry resolution, color
// scale construction, label and cell generation, and SVG assembly.
// data must be non-empty and in ascending order by date.
func Render(data []DataPoint, opts *Options) (*Document, error) {
	// default options
	if opts == nil {
		opts = &Options{Width: 700}
	}
	fontSize := opts.FontSize
	if fontSize <= 0 {
		fontSize = 14
	}
	fontColor := opts.FontColor
	if fontColor == "" {
		fontColor = "#666"
	}
	formatter := opts.Formatter
	if formatter == nil {
		formatter = ForLocale(opts.Locale)
	}

	g, err := ResolveGeometry(data, opts.Width)
	if err != nil {
		return nil, err
	}

	scale := NewColorScale(data)
	cells := buildCells(data, g, scale)

	start := data[0].Date
	end := data[len(data)-1].Date

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<svg width="%g" height="%g" xmlns="http://www.w3.org/2000/svg">`+"\n",
		g.Width, g.Height))
	sb.WriteString(fmt.Sprintf(`  <style>.label{font-family:sans-serif;font-size:%gpx;fill:%s}.legend{font-family:sans-serif;font-size:%gpx;font-weight:bold;fill:%s}</style>`+"\n",
		fontSize, fontColor, 1.5*g.CellSize, fontColor))

	// Every group shares one fixed translation: one cell in from the left,
	// the top margin down from the canvas edge.
	sb.WriteString(fmt.Sprintf(`  <g transform="translate(%g,%g)">`+"\n", g.CellSize, g.MarginTop))
	sb.WriteString(yearLegend(data, g, formatter))
	sb.WriteString(monthLabels(start, end, g, formatter, fontSize))
	sb.WriteString(weekdayLabels(g, formatter))
	sb.WriteString(cellsSVG(cells, g, formatter))
	sb.WriteString(`  </g>` + "\n")
	sb.WriteString(`</svg>`)

	return &Document{
		SVG:      sb.String(),
		Geometry: *g,
		Cells:    cells,
	}, nil
}
