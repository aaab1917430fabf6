package widget

import (
	"log"

	"github.com/google/uuid"

	"github.com/stsysd/shibafu/heatmap"
	"github.com/stsysd/shibafu/model"
)

// Surface is one mounted heatmap instance. A host creates a surface,
// attaches the SVG it exposes, forwards pointer events to it, and calls
// Refresh whenever the theme, viewport, or configuration changes.
//
// Every render fully re-derives geometry, colors, and cells; nothing is
// cached across calls. Surfaces share no state with each other. A surface
// is not safe for concurrent use: the host must serialize calls, which an
// ordinary UI event queue already does.
type Surface struct {
	id        uuid.UUID
	logger    *log.Logger
	formatter heatmap.Formatter
	doc       *heatmap.Document
	tooltip   *Tooltip
	destroyed bool
}

// New creates an unmounted surface for the given locale tag. measure may
// be nil to use the built-in text estimate.
func New(locale string, measure MeasureFunc) *Surface {
	return &Surface{
		id:        uuid.New(),
		logger:    log.Default(),
		formatter: heatmap.ForLocale(locale),
		tooltip:   NewTooltip(0, measure),
	}
}

// ID returns the surface instance ID used in diagnostics.
func (s *Surface) ID() uuid.UUID {
	return s.id
}

// Refresh re-runs the full pipeline against this surface. On EmptyData or
// InvalidWidth the previous document and geometry are retained untouched
// and the failure is reported; it never produces degenerate geometry.
func (s *Surface) Refresh(data []heatmap.DataPoint, width float64, fontColor string, fontSize float64) error {
	if s.destroyed {
		s.logger.Printf("surface %s: refresh on destroyed surface", s.id)
		return model.ErrSurfaceDestroyed
	}

	doc, err := heatmap.Render(data, &heatmap.Options{
		Width:     width,
		FontColor: fontColor,
		FontSize:  fontSize,
		Formatter: s.formatter,
	})
	if err != nil {
		s.logger.Printf("surface %s: refresh rejected: %v", s.id, err)
		return err
	}

	// The new cell slice replaces the old one wholesale; the previous
	// render's cells are released together.
	s.doc = doc
	s.tooltip.resize(doc.Geometry.Width)
	return nil
}

// SVG returns the current document text, or "" before the first
// successful refresh.
func (s *Surface) SVG() string {
	if s.doc == nil {
		return ""
	}
	return s.doc.SVG
}

// Geometry returns the current geometry and whether one has been computed.
func (s *Surface) Geometry() (heatmap.Geometry, bool) {
	if s.doc == nil {
		return heatmap.Geometry{}, false
	}
	return s.doc.Geometry, true
}

// Tooltip exposes the surface's tooltip controller.
func (s *Surface) Tooltip() *Tooltip {
	return s.tooltip
}

// PointerMove hit-tests the cell under the given surface coordinates and
// shows the tooltip for it, anchored above the cell's center. Coordinates
// outside every cell hide the tooltip.
func (s *Surface) PointerMove(x, y float64) {
	if s.destroyed || s.doc == nil {
		return
	}
	g := s.doc.Geometry

	// Cells are laid out inside the translated grid group.
	cx := x - g.CellSize
	cy := y - g.MarginTop
	for _, c := range s.doc.Cells {
		if cx >= c.X && cx <= c.X+g.CellSize && cy >= c.Y && cy <= c.Y+g.CellSize {
			content := s.formatter.CellTooltip(c.Date, c.Count)
			anchorX := g.CellSize + c.X + g.CellSize/2
			anchorY := g.MarginTop + c.Y
			s.tooltip.Show(content, anchorX, anchorY)
			return
		}
	}
	s.tooltip.Hide()
}

// PointerLeave hides the tooltip when the pointer leaves the surface.
func (s *Surface) PointerLeave() {
	s.tooltip.Hide()
}

// Destroy releases the document, cells, and hover state. Further Refresh
// and pointer calls are rejected; the host drops its reference afterward.
func (s *Surface) Destroy() {
	if s.destroyed {
		return
	}
	s.destroyed = true
	s.doc = nil
	s.tooltip.Hide()
}
