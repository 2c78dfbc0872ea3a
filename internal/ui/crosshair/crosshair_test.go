package crosshair

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/wanderer/internal/render"
)

func TestResolveDefaults(t *testing.T) {
	a := NewAggregator()

	d := a.Resolve()
	assert.Equal(t, Decision{Glyph: Dot, Visibility: Visible, CursorMode: render.CursorLocked}, d)
}

func TestRequestReleaseRoundTrip(t *testing.T) {
	for _, set := range []Set{WantsSquare, WantsInvisible, WantsFreeCursor} {
		t.Run(set.String(), func(t *testing.T) {
			a := NewAggregator()
			other := NewToken("other")
			tok := NewToken("caller")
			a.Request(set, other)
			before := a.Requesters(set)

			a.Request(set, tok)
			assert.True(t, a.Contains(set, tok))
			a.Release(set, tok)

			assert.Equal(t, before, a.Requesters(set))
			assert.False(t, a.Contains(set, tok))
		})
	}
}

func TestReleaseAbsentIsNoop(t *testing.T) {
	a := NewAggregator()
	a.Resolve()

	a.Release(WantsSquare, NewToken("never-requested"))
	a.Release(WantsFreeCursor, NewToken("never-requested"))

	assert.False(t, a.Changed(), "releasing an absent token must not mark the state dirty")
	assert.Equal(t, 0, a.Len(WantsSquare))
}

func TestRequestIsIdempotent(t *testing.T) {
	a := NewAggregator()
	tok := NewToken("prompt")

	a.Request(WantsSquare, tok)
	a.Resolve()
	a.Request(WantsSquare, tok)

	assert.False(t, a.Changed())
	assert.Equal(t, 1, a.Len(WantsSquare))
}

func TestSquareUnionSemantics(t *testing.T) {
	a := NewAggregator()
	first := NewToken("a")
	second := NewToken("b")

	a.Request(WantsSquare, first)
	assert.Equal(t, Square, a.Resolve().Glyph)

	a.Request(WantsSquare, second)
	a.Release(WantsSquare, first)
	assert.Equal(t, Square, a.Resolve().Glyph, "b still wants a square")

	a.Release(WantsSquare, second)
	assert.Equal(t, Dot, a.Resolve().Glyph)
}

func TestFreeCursorHidesCrosshair(t *testing.T) {
	a := NewAggregator()
	menu := NewToken("pause-menu")

	a.Request(WantsFreeCursor, menu)
	d := a.Resolve()
	assert.Equal(t, render.CursorFree, d.CursorMode)
	assert.Equal(t, Hidden, d.Visibility)

	a.Release(WantsFreeCursor, menu)
	d = a.Resolve()
	assert.Equal(t, render.CursorLocked, d.CursorMode)
	assert.Equal(t, Visible, d.Visibility)
	assert.Equal(t, 0, a.Len(WantsInvisible))
}

func TestFreeCursorKeepsCallerInvisibility(t *testing.T) {
	a := NewAggregator()
	menu := NewToken("pause-menu")
	dialogue := NewToken("dialogue")

	a.Request(WantsInvisible, dialogue)
	a.Request(WantsFreeCursor, menu)
	a.Resolve()
	a.Release(WantsFreeCursor, menu)

	d := a.Resolve()
	assert.Equal(t, render.CursorLocked, d.CursorMode)
	assert.Equal(t, Hidden, d.Visibility, "dialogue still hides the crosshair")
	assert.True(t, a.Contains(WantsInvisible, dialogue))
}

func TestCallerCannotReleaseReservedToken(t *testing.T) {
	a := NewAggregator()
	menu := NewToken("pause-menu")

	a.Request(WantsFreeCursor, menu)
	a.Resolve()
	for _, tok := range a.Requesters(WantsInvisible) {
		require.True(t, tok.IsReserved())
	}

	a.Release(WantsInvisible, NewToken("crosshair.free-cursor"))
	assert.Equal(t, Hidden, a.Resolve().Visibility)
}

func TestFixedPointAdjustmentIsNotAChange(t *testing.T) {
	a := NewAggregator()
	a.Request(WantsFreeCursor, NewToken("menu"))
	require.True(t, a.Changed())

	a.Resolve()
	assert.False(t, a.Changed())
	a.Resolve()
	assert.False(t, a.Changed())
}

func TestResetClearsEverything(t *testing.T) {
	a := NewAggregator()
	a.Request(WantsSquare, NewToken("a"))
	a.Request(WantsFreeCursor, NewToken("b"))
	a.Resolve()

	a.Reset()
	assert.True(t, a.Changed())
	assert.Equal(t, Decision{Glyph: Dot, Visibility: Visible, CursorMode: render.CursorLocked}, a.Resolve())
}

func TestReleaseAll(t *testing.T) {
	a := NewAggregator()
	tok := NewToken("dialogue")
	a.Request(WantsInvisible, tok)
	a.Request(WantsFreeCursor, tok)

	a.ReleaseAll(tok)

	assert.False(t, a.Contains(WantsInvisible, tok))
	assert.False(t, a.Contains(WantsFreeCursor, tok))
}

func TestInvalidSetIgnored(t *testing.T) {
	a := NewAggregator()
	a.Resolve()
	a.Request(Set(42), NewToken("x"))

	assert.False(t, a.Changed())
	assert.Equal(t, 0, a.Len(Set(-1)))
	assert.Equal(t, "unknown", Set(42).String())
}
