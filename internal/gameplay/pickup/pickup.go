// Package pickup lets the player carry props around. The crosshair is
// hidden while something is held.
package pickup

import (
	"fmt"
	"log"
	"math"

	"chosenoffset.com/wanderer/internal/core/geom"
	"chosenoffset.com/wanderer/internal/ui/crosshair"
	"chosenoffset.com/wanderer/internal/world/level"
)

const (
	// HoldDistance is how far in front of the player a held prop floats.
	HoldDistance = 1.2
	// ThrowSpeed is the launch speed of a thrown prop of mass 1.
	ThrowSpeed = 9.0
	// Friction is the fraction of velocity a sliding prop keeps per second.
	Friction = 0.05
	// MaxMass is the heaviest prop that can be lifted.
	MaxMass = 25.0
)

// Prop is a prop in the world.
type Prop struct {
	Name string
	Pos  geom.Vec2
	Vel  geom.Vec2
	Mass float64
}

// Holder tracks the props of a scene and which one the player carries.
type Holder struct {
	crosshair *crosshair.Aggregator
	token     crosshair.Token
	props     []*Prop
	held      int

	// OnPickup and OnDrop are called with the prop involved.
	OnPickup func(p *Prop)
	OnDrop   func(p *Prop)
}

// New creates a holder for the props of a level.
func New(c *crosshair.Aggregator, props []level.Prop) *Holder {
	h := &Holder{
		crosshair: c,
		token:     crosshair.NewToken("pickup"),
		held:      -1,
	}
	for _, p := range props {
		mass := p.Mass
		if mass <= 0 {
			mass = 1
		}
		h.props = append(h.props, &Prop{Name: p.Name, Pos: p.Pos, Mass: mass})
	}
	return h
}

// Props returns every prop.
func (h *Holder) Props() []*Prop {
	return h.props
}

// Holding reports whether a prop is carried.
func (h *Holder) Holding() bool {
	return h.held >= 0
}

// Held returns the carried prop, or nil.
func (h *Holder) Held() *Prop {
	if h.held < 0 {
		return nil
	}
	return h.props[h.held]
}

// Pick lifts the prop at index.
func (h *Holder) Pick(index int) error {
	if h.Holding() {
		return fmt.Errorf("already holding %s", h.Held().Name)
	}
	if index < 0 || index >= len(h.props) {
		return fmt.Errorf("no prop %d", index)
	}
	p := h.props[index]
	if p.Mass > MaxMass {
		return fmt.Errorf("%s is too heavy", p.Name)
	}
	h.held = index
	p.Vel = geom.Vec2{}
	h.crosshair.Request(crosshair.WantsInvisible, h.token)
	log.Printf("Picked up %s", p.Name)
	if h.OnPickup != nil {
		h.OnPickup(p)
	}
	return nil
}

// Drop lets go of the carried prop where it is.
func (h *Holder) Drop() {
	h.release(geom.Vec2{})
}

// Throw lets go of the carried prop, launching it along dir. Heavier props
// fly slower.
func (h *Holder) Throw(dir geom.Vec2) {
	p := h.Held()
	if p == nil {
		return
	}
	h.release(dir.Normalize().Scale(ThrowSpeed / p.Mass))
}

func (h *Holder) release(vel geom.Vec2) {
	p := h.Held()
	if p == nil {
		return
	}
	p.Vel = vel
	h.held = -1
	h.crosshair.Release(crosshair.WantsInvisible, h.token)
	log.Printf("Dropped %s", p.Name)
	if h.OnDrop != nil {
		h.OnDrop(p)
	}
}

// Update carries the held prop in front of the player and slides loose
// props to a stop inside bounds.
func (h *Holder) Update(eye, forward geom.Vec2, bounds *level.Level, dt float64) {
	for i, p := range h.props {
		if i == h.held {
			p.Pos = eye.Add(forward.Normalize().Scale(HoldDistance))
		} else if p.Vel != (geom.Vec2{}) {
			p.Pos = p.Pos.Add(p.Vel.Scale(dt))
			p.Vel = p.Vel.Scale(math.Pow(Friction, dt))
			if p.Vel.Len() < 0.01 {
				p.Vel = geom.Vec2{}
			}
		}
		if bounds != nil {
			p.Pos = bounds.Clamp(p.Pos)
		}
	}
}

// Reset drops everything without callbacks, for scene teardown.
func (h *Holder) Reset() {
	h.held = -1
	h.crosshair.Release(crosshair.WantsInvisible, h.token)
}
