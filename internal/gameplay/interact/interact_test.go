package interact

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/wanderer/internal/core/geom"
	"chosenoffset.com/wanderer/internal/render/rendertest"
	"chosenoffset.com/wanderer/internal/ui/crosshair"
)

func TestFocus(t *testing.T) {
	targets := []Target{
		{Name: "far", Pos: geom.Vec2{X: 10}},
		{Name: "near", Pos: geom.Vec2{X: 1.5}},
		{Name: "behind", Pos: geom.Vec2{X: -1}},
		{Name: "aside", Pos: geom.Vec2{X: 1, Y: 1}},
		{Name: "ahead", Pos: geom.Vec2{X: 2}},
	}
	forward := geom.Vec2{X: 1}

	got, ok := Focus(geom.Vec2{}, forward, targets)
	require.True(t, ok)
	assert.Equal(t, "near", got.Name)

	_, ok = Focus(geom.Vec2{}, geom.Vec2{Y: -1}, targets)
	assert.False(t, ok)
}

func TestFocusSlightlyOffAxis(t *testing.T) {
	targets := []Target{{Name: "lamp", Pos: geom.Vec2{X: 2, Y: 0.2}}}

	_, ok := Focus(geom.Vec2{}, geom.Vec2{X: 1}, targets)
	assert.True(t, ok, "about 5.7 degrees off axis is inside the cone")
}

func TestPromptRequestsSquare(t *testing.T) {
	c := crosshair.NewAggregator()
	p := NewPrompt()

	p.Set(Target{Name: "Keeper", Text: "Talk"}, true)
	p.Update(c)
	assert.Equal(t, crosshair.Square, c.Resolve().Glyph)
	assert.Equal(t, "E: Talk", p.Text())

	p.Clear()
	p.Update(c)
	assert.Equal(t, crosshair.Dot, c.Resolve().Glyph)
	assert.Equal(t, "", p.Text())
}

func TestPromptUpdatesOnlyOnChange(t *testing.T) {
	c := crosshair.NewAggregator()
	p := NewPrompt()
	target := Target{Name: "Crate", Text: "Pick up"}

	p.Set(target, true)
	p.Update(c)
	c.Resolve()

	p.Set(target, true)
	p.Update(c)
	assert.False(t, c.Changed())

	p.Clear()
	p.Clear()
	p.Update(c)
	assert.True(t, c.Changed())
}

func TestPromptDraw(t *testing.T) {
	r := &rendertest.Renderer{}
	p := NewPrompt()
	screen := rendertest.NewImage(400, 300)

	p.Draw(screen, r)
	assert.Empty(t, r.Calls)

	p.Set(Target{Text: "Talk"}, true)
	p.Draw(screen, r)
	assert.Equal(t, []string{"E: Talk"}, r.Texts())
	assert.Equal(t, float32(250), r.Calls[0].X)
}
