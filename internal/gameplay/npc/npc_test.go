package npc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/wanderer/internal/core/geom"
	"chosenoffset.com/wanderer/internal/world/level"
)

func crowdAt(x, y float64) *Crowd {
	return New([]level.NPC{{Name: "Keeper", Pos: geom.Vec2{X: x, Y: y}, Dialogue: []string{"Hi."}}})
}

func TestNewKeepsLevelData(t *testing.T) {
	c := crowdAt(3, 4)
	require.Len(t, c.NPCs, 1)
	assert.Equal(t, "Keeper", c.NPCs[0].Name)
	assert.Equal(t, []string{"Hi."}, c.NPCs[0].Dialogue)
	assert.Equal(t, geom.Vec2{}, c.NPCs[0].Vel)
}

func TestWalksTowardsTarget(t *testing.T) {
	c := crowdAt(10, 0)
	c.Update(geom.Vec2{}, nil, 0.1)

	n := c.NPCs[0]
	assert.InDelta(t, 10-Speed*0.1, n.Pos.X, 1e-9)
	assert.InDelta(t, 0, n.Pos.Y, 1e-9)
	assert.InDelta(t, -Speed, n.Vel.X, 1e-9)
}

func TestStopsAtStopDistance(t *testing.T) {
	c := crowdAt(10, 0)
	for i := 0; i < 120; i++ {
		c.Update(geom.Vec2{}, nil, 1.0/60)
	}

	n := c.NPCs[0]
	assert.InDelta(t, StopDistance, n.Pos.X, 1e-6)
	assert.Equal(t, geom.Vec2{}, n.Vel)
}

func TestDoesNotOvershoot(t *testing.T) {
	c := crowdAt(2.5, 0)
	c.Update(geom.Vec2{}, nil, 1)
	assert.InDelta(t, StopDistance, c.NPCs[0].Pos.X, 1e-9)
}

func TestStaysPutWhenClose(t *testing.T) {
	c := crowdAt(1, 0)
	c.Update(geom.Vec2{}, nil, 1)
	assert.Equal(t, geom.Vec2{X: 1}, c.NPCs[0].Pos)
	assert.Equal(t, geom.Vec2{}, c.NPCs[0].Vel)
}

func TestClampedToLevel(t *testing.T) {
	bounds := &level.Level{Width: 10, Height: 10}
	c := crowdAt(9.5, 5)
	c.Update(geom.Vec2{X: 20, Y: 5}, bounds, 1)
	assert.Equal(t, geom.Vec2{X: 10, Y: 5}, c.NPCs[0].Pos)
}

func TestFootsteps(t *testing.T) {
	c := crowdAt(100, 0)
	var steps []string
	c.OnStep = func(n *NPC) { steps = append(steps, n.Name) }

	for i := 0; i < 60; i++ {
		c.Update(geom.Vec2{}, nil, 1.0/60)
	}
	// 0.18 s per step at full speed.
	assert.Len(t, steps, 5)
	assert.Equal(t, "Keeper", steps[0])
}

func TestNoFootstepsWhenStanding(t *testing.T) {
	c := crowdAt(1, 0)
	c.OnStep = func(n *NPC) { t.Fatal("standing NPC stepped") }
	for i := 0; i < 60; i++ {
		c.Update(geom.Vec2{}, nil, 1.0/60)
	}
}

func TestHalt(t *testing.T) {
	c := crowdAt(10, 0)
	c.Update(geom.Vec2{}, nil, 0.1)
	require.NotEqual(t, geom.Vec2{}, c.NPCs[0].Vel)

	pos := c.NPCs[0].Pos
	c.Halt()
	assert.Equal(t, geom.Vec2{}, c.NPCs[0].Vel)
	assert.Equal(t, pos, c.NPCs[0].Pos)
}

func TestStepPeriod(t *testing.T) {
	tests := []struct {
		speed, want float64
	}{
		{StepReferenceSpeed, StepInterval},
		{Speed, 0.18},
		{20, 0.1},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, StepPeriod(tt.speed), 1e-9, "speed %v", tt.speed)
	}
}
