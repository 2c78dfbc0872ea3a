package crosshair

import (
	"image/color"
	"log"

	"chosenoffset.com/wanderer/internal/render"
)

// Widget presents an aggregator's decision: it applies the cursor mode to
// the window and draws the crosshair at the centre of the screen.
type Widget struct {
	*Aggregator

	cursor   render.CursorController
	current  Decision
	applied  bool
	resolves int

	DotRadius   float32
	SquareSize  float32
	StrokeWidth float32
	Color       color.Color
}

// NewWidget creates a widget for a new gameplay scene.
func NewWidget(cursor render.CursorController) *Widget {
	return &Widget{
		Aggregator:  NewAggregator(),
		cursor:      cursor,
		DotRadius:   2.5,
		SquareSize:  14,
		StrokeWidth: 2,
		Color:       color.RGBA{240, 240, 240, 220},
	}
}

// Update resolves and applies the requests made this tick. It does nothing
// when no request changed since the previous call, so it must run after
// every system that requests or releases.
func (w *Widget) Update() {
	if !w.Changed() {
		return
	}
	d := w.Resolve()
	w.resolves++

	if !w.applied || d.CursorMode != w.current.CursorMode {
		if w.cursor != nil {
			w.cursor.SetCursorMode(d.CursorMode)
		}
	}
	if !w.applied || d != w.current {
		log.Printf("crosshair: %s %s, cursor %s", d.Visibility, d.Glyph, d.CursorMode)
	}
	w.current = d
	w.applied = true
}

// Decision returns the decision applied by the last Update.
func (w *Widget) Decision() Decision {
	return w.current
}

// Resolves returns how many times Update actually re-resolved.
func (w *Widget) Resolves() int {
	return w.resolves
}

// Draw renders the crosshair in the centre of screen.
func (w *Widget) Draw(screen render.Image, r render.Renderer) {
	if w.current.Visibility == Hidden {
		return
	}
	width, height := screen.Size()
	cx := float32(width) / 2
	cy := float32(height) / 2

	switch w.current.Glyph {
	case Square:
		half := w.SquareSize / 2
		r.StrokeRect(screen, cx-half, cy-half, w.SquareSize, w.SquareSize, w.StrokeWidth, w.Color)
	default:
		r.FillCircle(screen, cx, cy, w.DotRadius, w.Color)
	}
}

// Close releases the cursor when the scene ends.
func (w *Widget) Close() {
	w.Reset()
	if w.cursor != nil {
		w.cursor.SetCursorMode(render.CursorFree)
	}
}
