// Package dialogue runs conversations with NPCs. While a conversation is
// open the crosshair is hidden, the cursor is freed and player input is
// blocked; everything is restored when it completes.
package dialogue

import (
	"fmt"
	"image/color"
	"log"
	"strings"

	"chosenoffset.com/wanderer/internal/core/tokenset"
	"chosenoffset.com/wanderer/internal/render"
	"chosenoffset.com/wanderer/internal/ui/crosshair"
)

// Dialogue is the conversation state of one scene.
type Dialogue struct {
	crosshair *crosshair.Aggregator
	blocks    *tokenset.Set
	token     crosshair.Token

	speaker     string
	lines       []string
	index       int
	active      bool
	justStarted bool

	// OnComplete is called with the speaker when a conversation ends.
	OnComplete func(speaker string)
}

// New creates the dialogue system for a scene.
func New(c *crosshair.Aggregator, blocks *tokenset.Set) *Dialogue {
	return &Dialogue{
		crosshair: c,
		blocks:    blocks,
		token:     crosshair.NewToken("dialogue"),
	}
}

// Active reports whether a conversation is open.
func (d *Dialogue) Active() bool {
	return d.active
}

// Speaker returns who is talking.
func (d *Dialogue) Speaker() string {
	return d.speaker
}

// Line returns the current line, or "" when no conversation is open.
func (d *Dialogue) Line() string {
	if !d.active {
		return ""
	}
	return d.lines[d.index]
}

// Start opens a conversation. It fails if one is already open or there is
// nothing to say.
func (d *Dialogue) Start(speaker string, lines []string) error {
	if d.active {
		return fmt.Errorf("dialogue with %s already running", d.speaker)
	}
	if len(lines) == 0 {
		return fmt.Errorf("%s has nothing to say", speaker)
	}
	d.speaker = speaker
	d.lines = lines
	d.index = 0
	d.active = true
	d.justStarted = true

	d.crosshair.Request(crosshair.WantsInvisible, d.token)
	d.crosshair.Request(crosshair.WantsFreeCursor, d.token)
	d.blocks.Insert(d.token)
	log.Printf("Dialogue started with %s", speaker)
	return nil
}

// Advance shows the next line, completing the conversation after the last.
func (d *Dialogue) Advance() {
	if !d.active {
		return
	}
	d.index++
	if d.index >= len(d.lines) {
		d.complete()
	}
}

// Update advances on E, Enter, Space or a left click. The key press that
// started the conversation does not also skip its first line.
func (d *Dialogue) Update(input render.InputManager) {
	if !d.active {
		return
	}
	if d.justStarted {
		d.justStarted = false
		return
	}
	if input.IsKeyJustPressed(render.KeyE) ||
		input.IsKeyJustPressed(render.KeyEnter) ||
		input.IsKeyJustPressed(render.KeySpace) ||
		input.IsMouseButtonJustPressed(render.MouseButtonLeft) {
		d.Advance()
	}
}

// Abort closes the conversation without notifying OnComplete, e.g. when the
// scene is torn down.
func (d *Dialogue) Abort() {
	if !d.active {
		return
	}
	d.release()
}

func (d *Dialogue) complete() {
	speaker := d.speaker
	d.release()
	log.Printf("Dialogue with %s completed", speaker)
	if d.OnComplete != nil {
		d.OnComplete(speaker)
	}
}

func (d *Dialogue) release() {
	d.active = false
	d.justStarted = false
	d.lines = nil
	d.index = 0
	d.crosshair.ReleaseAll(d.token)
	d.blocks.Remove(d.token)
}

// Draw renders the dialogue box along the bottom of the screen.
func (d *Dialogue) Draw(screen render.Image, r render.Renderer) {
	if !d.active {
		return
	}
	w, h := screen.Size()
	boxH := 110
	x, y := 40, h-boxH-30
	r.FillRect(screen, float32(x), float32(y), float32(w-80), float32(boxH), color.RGBA{10, 10, 20, 220})
	r.StrokeRect(screen, float32(x), float32(y), float32(w-80), float32(boxH), 1, color.RGBA{180, 180, 200, 255})
	r.DrawText(screen, d.speaker, x+16, y+12, color.RGBA{255, 220, 140, 255}, 1)
	for i, line := range wrapText(d.Line(), w-112, r.MeasureText) {
		r.DrawText(screen, line, x+16, y+40+i*18, color.White, 1)
	}
	r.DrawText(screen, fmt.Sprintf("[E] continue  %d/%d", d.index+1, len(d.lines)), x+16, y+boxH-26, color.RGBA{150, 150, 150, 255}, 1)
}

// wrapText splits text into lines no wider than maxWidth. A single word
// wider than maxWidth gets a line of its own.
func wrapText(text string, maxWidth int, measure func(string, float64) (int, int)) []string {
	var lines []string
	var current string
	for _, word := range strings.Fields(text) {
		next := word
		if current != "" {
			next = current + " " + word
		}
		if w, _ := measure(next, 1); w > maxWidth && current != "" {
			lines = append(lines, current)
			current = word
			continue
		}
		current = next
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}
