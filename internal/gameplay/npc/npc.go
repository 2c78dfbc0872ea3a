// Package npc moves the level's characters. The only behaviour is walking
// straight towards the player and stopping at talking distance.
package npc

import (
	"log"
	"math"

	"chosenoffset.com/wanderer/internal/core/geom"
	"chosenoffset.com/wanderer/internal/world/level"
)

const (
	// Speed is the walking speed in units per second.
	Speed = 7.0
	// StopDistance is how close an NPC comes before it stops. It is inside
	// the interaction reach so the player can talk without stepping closer.
	StopDistance = 2.0
	// StepInterval is the footstep period at StepReferenceSpeed. Faster
	// NPCs step more often.
	StepInterval = 0.3
	// StepReferenceSpeed is the speed that steps exactly every StepInterval.
	StepReferenceSpeed = 5.0
	// MinStepSpeed is the slowest speed that makes footstep sounds.
	MinStepSpeed = 1.0
)

const arriveEpsilon = 1e-6

// NPC is one character in the scene.
type NPC struct {
	level.NPC
	Vel geom.Vec2

	stepTimer float64
}

// Crowd holds every NPC of a scene.
type Crowd struct {
	NPCs []*NPC

	// OnStep is called for every footstep of a walking NPC.
	OnStep func(n *NPC)
}

// New creates the NPCs of a level.
func New(npcs []level.NPC) *Crowd {
	c := &Crowd{}
	for _, n := range npcs {
		c.NPCs = append(c.NPCs, &NPC{NPC: n})
	}
	return c
}

// Update walks every NPC towards target for dt seconds, keeping it inside
// bounds. An NPC never walks closer than StopDistance.
func (c *Crowd) Update(target geom.Vec2, bounds *level.Level, dt float64) {
	for _, n := range c.NPCs {
		to := target.Sub(n.Pos)
		dist := to.Len()
		if dist <= StopDistance+arriveEpsilon || dt <= 0 {
			c.stop(n)
			continue
		}
		step := math.Min(Speed*dt, dist-StopDistance)
		next := n.Pos.Add(to.Normalize().Scale(step))
		if bounds != nil {
			next = bounds.Clamp(next)
		}
		n.Vel = next.Sub(n.Pos).Scale(1 / dt)
		n.Pos = next
		c.step(n, dt)
	}
}

// Halt stops every NPC where it stands, e.g. while the player is busy.
func (c *Crowd) Halt() {
	for _, n := range c.NPCs {
		c.stop(n)
	}
}

func (c *Crowd) stop(n *NPC) {
	if n.Vel != (geom.Vec2{}) {
		log.Printf("%s stopped at (%.1f, %.1f)", n.Name, n.Pos.X, n.Pos.Y)
	}
	n.Vel = geom.Vec2{}
	n.stepTimer = 0
}

func (c *Crowd) step(n *NPC, dt float64) {
	speed := n.Vel.Len()
	if speed < MinStepSpeed {
		n.stepTimer = 0
		return
	}
	n.stepTimer += dt
	if n.stepTimer < StepPeriod(speed) {
		return
	}
	n.stepTimer = 0
	if c.OnStep != nil {
		c.OnStep(n)
	}
}

// StepPeriod returns the time between footsteps at speed, never below 0.1 s.
func StepPeriod(speed float64) float64 {
	factor := 1 - (speed-StepReferenceSpeed)/StepReferenceSpeed
	return math.Max(0.1, StepInterval*factor)
}
