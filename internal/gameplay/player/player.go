// Package player moves the first-person player and steers the view with
// the mouse.
package player

import (
	"math"

	"chosenoffset.com/wanderer/internal/core/geom"
	"chosenoffset.com/wanderer/internal/core/tokenset"
	"chosenoffset.com/wanderer/internal/render"
)

const (
	// RadiansPerPixel is the look speed at sensitivity 1.
	RadiansPerPixel = 0.0025
	// MaxPitch keeps the view from flipping over.
	MaxPitch = 89 * math.Pi / 180
	// StepInterval is the time between footsteps while moving.
	StepInterval = 0.45
	// DefaultSpeed is the walking speed in units per second.
	DefaultSpeed = 4.0
)

// Player is the first-person player.
type Player struct {
	Pos   geom.Vec2
	Yaw   float64 // radians, 0 looks along +X
	Pitch float64 // radians, positive looks up
	Speed float64

	// BlocksInput holds a token for every system that currently takes the
	// input away from the player, such as the pause menu or a dialogue.
	BlocksInput tokenset.Set

	// OnStep is called for every footstep.
	OnStep func()

	look      MouseLook
	stepTimer float64
	moving    bool
}

// New creates a player standing at pos facing yaw.
func New(pos geom.Vec2, yaw float64) *Player {
	return &Player{Pos: pos, Yaw: yaw, Speed: DefaultSpeed}
}

// Blocked reports whether any system is blocking player input.
func (p *Player) Blocked() bool {
	return !p.BlocksInput.Empty()
}

// Moving reports whether the player moved during the last update.
func (p *Player) Moving() bool {
	return p.moving
}

// Forward returns the horizontal view direction.
func (p *Player) Forward() geom.Vec2 {
	return geom.FromAngle(p.Yaw)
}

// Look turns the view by a mouse delta in pixels.
func (p *Player) Look(dx, dy, sensitivity float64) {
	p.Yaw = math.Mod(p.Yaw+dx*RadiansPerPixel*sensitivity, 2*math.Pi)
	if p.Yaw < 0 {
		p.Yaw += 2 * math.Pi
	}
	p.Pitch -= dy * RadiansPerPixel * sensitivity
	p.Pitch = math.Max(-MaxPitch, math.Min(MaxPitch, p.Pitch))
}

// Move walks the player for dt seconds. forward and strafe are in [-1, 1];
// the combined direction is normalized so diagonals are not faster.
func (p *Player) Move(forward, strafe, dt float64) {
	fwd := p.Forward()
	right := geom.Vec2{X: -fwd.Y, Y: fwd.X}
	dir := fwd.Scale(forward).Add(right.Scale(strafe)).Normalize()
	p.Pos = p.Pos.Add(dir.Scale(p.Speed * dt))
}

// Update reads movement keys and mouse look for one tick. While input is
// blocked the player stands still and the mouse is ignored.
func (p *Player) Update(input render.InputManager, sensitivity, dt float64) {
	if p.Blocked() {
		p.look.Reset()
		p.moving = false
		p.stepTimer = 0
		return
	}

	x, y := input.GetCursorPosition()
	dx, dy := p.look.Sample(x, y)
	p.Look(dx, dy, sensitivity)

	var forward, strafe float64
	if input.IsKeyPressed(render.KeyW) || input.IsKeyPressed(render.KeyUp) {
		forward++
	}
	if input.IsKeyPressed(render.KeyS) || input.IsKeyPressed(render.KeyDown) {
		forward--
	}
	if input.IsKeyPressed(render.KeyD) || input.IsKeyPressed(render.KeyRight) {
		strafe++
	}
	if input.IsKeyPressed(render.KeyA) || input.IsKeyPressed(render.KeyLeft) {
		strafe--
	}

	p.moving = forward != 0 || strafe != 0
	if !p.moving {
		p.stepTimer = 0
		return
	}
	p.Move(forward, strafe, dt)

	p.stepTimer += dt
	if p.stepTimer >= StepInterval {
		p.stepTimer -= StepInterval
		if p.OnStep != nil {
			p.OnStep()
		}
	}
}

// MouseLook turns absolute cursor positions into per-tick deltas.
type MouseLook struct {
	lastX, lastY int
	primed       bool
}

// Sample returns the movement since the previous sample. The first sample
// after a reset returns zero so regaining control does not jerk the view.
func (m *MouseLook) Sample(x, y int) (dx, dy float64) {
	if !m.primed {
		m.lastX, m.lastY, m.primed = x, y, true
		return 0, 0
	}
	dx, dy = float64(x-m.lastX), float64(y-m.lastY)
	m.lastX, m.lastY = x, y
	return dx, dy
}

// Reset forgets the last position.
func (m *MouseLook) Reset() {
	m.primed = false
}
