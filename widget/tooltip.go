// Package widget provides the interactive rendering surface: refresh and
// teardown entry points for a host view, and the hover tooltip controller.
package widget

import (
	"unicode/utf8"

	"github.com/stsysd/shibafu/heatmap"
)

// MeasureFunc reports the rendered width and height of tooltip text.
// Hosts that can measure real text inject their own; the default is a
// per-rune estimate.
type MeasureFunc func(content string) (w, h float64)

// defaultMeasure estimates text extents from the rune count at the
// default label font size.
func defaultMeasure(content string) (float64, float64) {
	const fontSize = 14.0
	return 0.6*fontSize*float64(utf8.RuneCountInString(content)) + 12, fontSize + 8
}

// Tooltip is the hover popup controller. At most one tooltip is visible
// per surface; the most recent Show or Hide call wins. It keeps no timers
// and no queue, and is driven synchronously from pointer events.
type Tooltip struct {
	visible      bool
	content      string
	x, y         float64
	width        float64
	surfaceWidth float64
	measure      MeasureFunc
}

// NewTooltip creates a tooltip controller bound to a surface width.
// measure may be nil to use the built-in estimate.
func NewTooltip(surfaceWidth float64, measure MeasureFunc) *Tooltip {
	if measure == nil {
		measure = defaultMeasure
	}
	return &Tooltip{surfaceWidth: surfaceWidth, measure: measure}
}

// Show makes the tooltip visible with the given text, horizontally
// centered on anchorX and clamped so it never overflows the surface's
// left or right edge, and vertically placed above anchorY.
func (t *Tooltip) Show(content string, anchorX, anchorY float64) {
	w, h := t.measure(content)

	center := anchorX
	if center-w/2 < 0 {
		center = w / 2
	}
	if center+w/2 > t.surfaceWidth {
		center = t.surfaceWidth - w/2
	}

	t.visible = true
	t.content = content
	t.width = w
	t.x = center
	t.y = anchorY - h - heatmap.CellGap
}

// Hide turns visibility off. Content and position are retained but
// irrelevant until the next Show.
func (t *Tooltip) Hide() {
	t.visible = false
}

// Visible reports whether the tooltip is currently shown.
func (t *Tooltip) Visible() bool {
	return t.visible
}

// Content returns the most recently shown text.
func (t *Tooltip) Content() string {
	return t.content
}

// Position returns the tooltip's center x and top y.
func (t *Tooltip) Position() (x, y float64) {
	return t.x, t.y
}

// Width returns the measured width of the current content.
func (t *Tooltip) Width() float64 {
	return t.width
}

// resize re-binds the controller to a new surface width after a refresh.
func (t *Tooltip) resize(surfaceWidth float64) {
	t.surfaceWidth = surfaceWidth
}
