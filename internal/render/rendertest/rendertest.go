// Package rendertest provides in-memory render backends for tests.
package rendertest

import (
	"image/color"

	"chosenoffset.com/wanderer/internal/render"
)

// Image is a render.Image with a fixed size that draws nothing.
type Image struct {
	W, H int
}

// NewImage returns an image of the given size.
func NewImage(width, height int) *Image {
	return &Image{W: width, H: height}
}

func (i *Image) Size() (int, int)     { return i.W, i.H }
func (i *Image) Fill(clr color.Color) {}

// Call records one draw operation.
type Call struct {
	Op   string
	Text string
	X, Y float32
	W, H float32
}

// Renderer records draw calls.
type Renderer struct {
	Calls []Call
}

func (r *Renderer) FillCircle(dst render.Image, x, y, radius float32, clr color.Color) {
	r.Calls = append(r.Calls, Call{Op: "fill-circle", X: x, Y: y, W: radius, H: radius})
}

func (r *Renderer) StrokeCircle(dst render.Image, x, y, radius float32, strokeWidth float32, clr color.Color) {
	r.Calls = append(r.Calls, Call{Op: "stroke-circle", X: x, Y: y, W: radius, H: radius})
}

func (r *Renderer) FillRect(dst render.Image, x, y, width, height float32, clr color.Color) {
	r.Calls = append(r.Calls, Call{Op: "fill-rect", X: x, Y: y, W: width, H: height})
}

func (r *Renderer) StrokeRect(dst render.Image, x, y, width, height float32, strokeWidth float32, clr color.Color) {
	r.Calls = append(r.Calls, Call{Op: "stroke-rect", X: x, Y: y, W: width, H: height})
}

func (r *Renderer) StrokeLine(dst render.Image, x0, y0, x1, y1 float32, strokeWidth float32, clr color.Color) {
	r.Calls = append(r.Calls, Call{Op: "line", X: x0, Y: y0, W: x1 - x0, H: y1 - y0})
}

func (r *Renderer) DrawText(dst render.Image, text string, x, y int, clr color.Color, scale float64) {
	r.Calls = append(r.Calls, Call{Op: "text", Text: text, X: float32(x), Y: float32(y)})
}

func (r *Renderer) MeasureText(text string, scale float64) (int, int) {
	return int(float64(len([]rune(text))*6) * scale), int(16 * scale)
}

// Ops returns the recorded operation names in order.
func (r *Renderer) Ops() []string {
	out := make([]string, len(r.Calls))
	for i, c := range r.Calls {
		out[i] = c.Op
	}
	return out
}

// Texts returns every string passed to DrawText.
func (r *Renderer) Texts() []string {
	var out []string
	for _, c := range r.Calls {
		if c.Op == "text" {
			out = append(out, c.Text)
		}
	}
	return out
}

// Reset forgets recorded calls.
func (r *Renderer) Reset() {
	r.Calls = nil
}

// Input is a scriptable render.InputManager. Just-pressed state lasts until
// the next call to Step.
type Input struct {
	Held        map[render.Key]bool
	Just        map[render.Key]bool
	ButtonsJust map[render.MouseButton]bool
	X, Y        int
}

// NewInput returns an input with nothing pressed.
func NewInput() *Input {
	return &Input{
		Held:        map[render.Key]bool{},
		Just:        map[render.Key]bool{},
		ButtonsJust: map[render.MouseButton]bool{},
	}
}

// Press marks key as pressed this tick.
func (in *Input) Press(key render.Key) {
	in.Held[key] = true
	in.Just[key] = true
}

// Release lets go of key.
func (in *Input) Release(key render.Key) {
	delete(in.Held, key)
}

// Click presses button at (x, y) this tick.
func (in *Input) Click(button render.MouseButton, x, y int) {
	in.X, in.Y = x, y
	in.ButtonsJust[button] = true
}

// Step ends a tick: just-pressed state is cleared.
func (in *Input) Step() {
	clear(in.Just)
	clear(in.ButtonsJust)
}

func (in *Input) IsKeyPressed(key render.Key) bool     { return in.Held[key] }
func (in *Input) IsKeyJustPressed(key render.Key) bool { return in.Just[key] }
func (in *Input) GetCursorPosition() (int, int)        { return in.X, in.Y }

func (in *Input) IsMouseButtonJustPressed(button render.MouseButton) bool {
	return in.ButtonsJust[button]
}

// Engine records window settings instead of opening a window.
type Engine struct {
	Mode      render.CursorMode
	ModeSets  int
	Vsync     bool
	Tps       int
	Title     string
	Width     int
	Height    int
	Resizable bool
}

// NewEngine returns an engine with default settings.
func NewEngine() *Engine {
	return &Engine{Vsync: true, Tps: 60}
}

func (e *Engine) SetCursorMode(mode render.CursorMode) {
	e.Mode = mode
	e.ModeSets++
}

func (e *Engine) SetWindowSize(width, height int)   { e.Width, e.Height = width, height }
func (e *Engine) SetWindowTitle(title string)       { e.Title = title }
func (e *Engine) SetWindowResizable(resizable bool) { e.Resizable = resizable }
func (e *Engine) SetVsyncEnabled(enabled bool)      { e.Vsync = enabled }
func (e *Engine) TPS() int                          { return e.Tps }

func (e *Engine) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	e.Tps = tps
}

// RunGame runs a single update and draw.
func (e *Engine) RunGame(game render.Game) error {
	if err := game.Update(); err != nil {
		return err
	}
	game.Draw(NewImage(e.Width, e.Height))
	return nil
}
