// Package interact finds what the player is looking at and shows the
// interaction prompt for it.
package interact

import (
	"image/color"
	"math"

	"chosenoffset.com/wanderer/internal/core/geom"
	"chosenoffset.com/wanderer/internal/render"
	"chosenoffset.com/wanderer/internal/ui/crosshair"
)

const (
	// Reach is how far away the player can interact.
	Reach = 2.5
	// ConeAngle is the half-angle of the view cone in radians.
	ConeAngle = 12 * math.Pi / 180
)

// Kind is what happens when the player interacts.
type Kind int

const (
	KindTalk Kind = iota
	KindPickup
)

// Target is something the player can interact with.
type Target struct {
	Kind  Kind
	Index int // index into the level's NPCs or props
	Name  string
	Pos   geom.Vec2
	Text  string
}

// Focus returns the nearest target within reach inside the view cone.
func Focus(eye, forward geom.Vec2, targets []Target) (Target, bool) {
	var best Target
	bestDist := math.Inf(1)
	found := false
	for _, t := range targets {
		to := t.Pos.Sub(eye)
		dist := to.Len()
		if dist > Reach || dist >= bestDist {
			continue
		}
		if dist > 0 && geom.AngleBetween(forward, to) > ConeAngle {
			continue
		}
		best, bestDist, found = t, dist, true
	}
	return best, found
}

// Prompt shows "E: <text>" next to the crosshair while a target is in focus
// and asks the crosshair for the square glyph.
type Prompt struct {
	token   crosshair.Token
	current Target
	active  bool
	changed bool
}

// NewPrompt creates an empty prompt.
func NewPrompt() *Prompt {
	return &Prompt{token: crosshair.NewToken("interaction-prompt")}
}

// Set replaces the focused target. Passing ok=false clears it.
func (p *Prompt) Set(t Target, ok bool) {
	if ok == p.active && (!ok || t == p.current) {
		return
	}
	p.current, p.active, p.changed = t, ok, true
}

// Clear removes the prompt.
func (p *Prompt) Clear() {
	p.Set(Target{}, false)
}

// Current returns the focused target.
func (p *Prompt) Current() (Target, bool) {
	return p.current, p.active
}

// Text returns the label shown to the player, or "" when nothing is focused.
func (p *Prompt) Text() string {
	if !p.active {
		return ""
	}
	return "E: " + p.current.Text
}

// Update forwards a changed prompt to the crosshair.
func (p *Prompt) Update(c *crosshair.Aggregator) {
	if !p.changed {
		return
	}
	p.changed = false
	if p.active {
		c.Request(crosshair.WantsSquare, p.token)
	} else {
		c.Release(crosshair.WantsSquare, p.token)
	}
}

// Draw renders the prompt to the right of the screen centre.
func (p *Prompt) Draw(screen render.Image, r render.Renderer) {
	if !p.active {
		return
	}
	w, h := screen.Size()
	_, th := r.MeasureText(p.Text(), 1)
	r.DrawText(screen, p.Text(), w/2+50, h/2-th/2, color.White, 1)
}
