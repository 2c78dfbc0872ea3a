package crosshair

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"chosenoffset.com/wanderer/internal/render"
	"chosenoffset.com/wanderer/internal/render/rendertest"
)

func TestWidgetAppliesInitialState(t *testing.T) {
	engine := rendertest.NewEngine()
	engine.Mode = render.CursorFree
	w := NewWidget(engine)

	w.Update()

	assert.Equal(t, render.CursorLocked, engine.Mode)
	assert.Equal(t, 1, w.Resolves())
}

func TestWidgetSkipsUnchangedTicks(t *testing.T) {
	engine := rendertest.NewEngine()
	w := NewWidget(engine)
	w.Update()

	for i := 0; i < 10; i++ {
		w.Update()
	}

	assert.Equal(t, 1, w.Resolves())
	assert.Equal(t, 1, engine.ModeSets)
}

func TestWidgetOnlyTouchesCursorWhenModeChanges(t *testing.T) {
	engine := rendertest.NewEngine()
	w := NewWidget(engine)
	w.Update()

	w.Request(WantsSquare, NewToken("prompt"))
	w.Update()
	assert.Equal(t, 2, w.Resolves())
	assert.Equal(t, 1, engine.ModeSets)

	menu := NewToken("menu")
	w.Request(WantsFreeCursor, menu)
	w.Update()
	assert.Equal(t, render.CursorFree, engine.Mode)
	assert.Equal(t, 2, engine.ModeSets)

	w.Release(WantsFreeCursor, menu)
	w.Update()
	assert.Equal(t, render.CursorLocked, engine.Mode)
	assert.Equal(t, 3, engine.ModeSets)
}

func TestWidgetDrawsGlyph(t *testing.T) {
	r := &rendertest.Renderer{}
	screen := rendertest.NewImage(200, 100)
	w := NewWidget(rendertest.NewEngine())

	w.Update()
	w.Draw(screen, r)
	assert.Equal(t, []string{"fill-circle"}, r.Ops())
	assert.Equal(t, float32(100), r.Calls[0].X)
	assert.Equal(t, float32(50), r.Calls[0].Y)

	r.Reset()
	w.Request(WantsSquare, NewToken("prompt"))
	w.Update()
	w.Draw(screen, r)
	assert.Equal(t, []string{"stroke-rect"}, r.Ops())
}

func TestWidgetHiddenDrawsNothing(t *testing.T) {
	r := &rendertest.Renderer{}
	w := NewWidget(rendertest.NewEngine())

	w.Request(WantsFreeCursor, NewToken("menu"))
	w.Update()
	w.Draw(rendertest.NewImage(200, 100), r)

	assert.Empty(t, r.Calls)
	assert.Equal(t, Hidden, w.Decision().Visibility)
}

func TestWidgetCloseFreesCursor(t *testing.T) {
	engine := rendertest.NewEngine()
	w := NewWidget(engine)
	w.Request(WantsSquare, NewToken("prompt"))
	w.Update()

	w.Close()

	assert.Equal(t, render.CursorFree, engine.Mode)
	assert.Equal(t, 0, w.Len(WantsSquare))
}
