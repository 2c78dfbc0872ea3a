package dialogue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/wanderer/internal/core/tokenset"
	"chosenoffset.com/wanderer/internal/render"
	"chosenoffset.com/wanderer/internal/render/rendertest"
	"chosenoffset.com/wanderer/internal/ui/crosshair"
)

func newDialogue() (*Dialogue, *crosshair.Aggregator, *tokenset.Set) {
	c := crosshair.NewAggregator()
	var blocks tokenset.Set
	return New(c, &blocks), c, &blocks
}

func TestStartHidesCrosshairAndFreesCursor(t *testing.T) {
	d, c, blocks := newDialogue()

	require.NoError(t, d.Start("Keeper", []string{"Hello.", "Bye."}))

	dec := c.Resolve()
	assert.Equal(t, crosshair.Hidden, dec.Visibility)
	assert.Equal(t, render.CursorFree, dec.CursorMode)
	assert.False(t, blocks.Empty())
	assert.Equal(t, "Hello.", d.Line())
}

func TestCompletionRestoresEverything(t *testing.T) {
	d, c, blocks := newDialogue()
	var finished string
	d.OnComplete = func(s string) { finished = s }

	require.NoError(t, d.Start("Keeper", []string{"Hello.", "Bye."}))
	c.Resolve()
	d.Advance()
	assert.Equal(t, "Bye.", d.Line())
	d.Advance()

	assert.False(t, d.Active())
	assert.Equal(t, "Keeper", finished)
	assert.True(t, blocks.Empty())
	dec := c.Resolve()
	assert.Equal(t, crosshair.Visible, dec.Visibility)
	assert.Equal(t, render.CursorLocked, dec.CursorMode)
}

func TestStartTwiceFails(t *testing.T) {
	d, _, _ := newDialogue()
	require.NoError(t, d.Start("Keeper", []string{"Hi."}))

	assert.Error(t, d.Start("Rat", []string{"Squeak."}))
	assert.Equal(t, "Keeper", d.Speaker())
}

func TestStartWithoutLinesFails(t *testing.T) {
	d, c, _ := newDialogue()
	assert.Error(t, d.Start("Mute", nil))
	assert.False(t, d.Active())
	assert.Equal(t, 0, c.Len(crosshair.WantsInvisible))
}

func TestUpdateSkipsStartingKeyPress(t *testing.T) {
	d, _, _ := newDialogue()
	in := rendertest.NewInput()

	in.Press(render.KeyE)
	require.NoError(t, d.Start("Keeper", []string{"One.", "Two."}))
	d.Update(in)
	assert.Equal(t, "One.", d.Line())

	in.Step()
	in.Press(render.KeyE)
	d.Update(in)
	assert.Equal(t, "Two.", d.Line())

	in.Step()
	in.Click(render.MouseButtonLeft, 0, 0)
	d.Update(in)
	assert.False(t, d.Active())
}

func TestAbortSkipsCallback(t *testing.T) {
	d, c, blocks := newDialogue()
	called := false
	d.OnComplete = func(string) { called = true }
	require.NoError(t, d.Start("Keeper", []string{"Hi."}))

	d.Abort()
	d.Abort()

	assert.False(t, called)
	assert.True(t, blocks.Empty())
	assert.Equal(t, 0, c.Len(crosshair.WantsFreeCursor))
}

func TestOtherHiderSurvivesDialogue(t *testing.T) {
	d, c, _ := newDialogue()
	holder := crosshair.NewToken("pickup")
	c.Request(crosshair.WantsInvisible, holder)

	require.NoError(t, d.Start("Keeper", []string{"Hi."}))
	d.Advance()

	assert.Equal(t, crosshair.Hidden, c.Resolve().Visibility)
}

func TestDraw(t *testing.T) {
	d, _, _ := newDialogue()
	r := &rendertest.Renderer{}
	screen := rendertest.NewImage(800, 600)

	d.Draw(screen, r)
	assert.Empty(t, r.Calls)

	require.NoError(t, d.Start("Keeper", []string{"Hello."}))
	d.Draw(screen, r)
	assert.Equal(t, []string{"Keeper", "Hello.", "[E] continue  1/1"}, r.Texts())
}

func TestWrapText(t *testing.T) {
	r := &rendertest.Renderer{}
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"fits", "short", []string{"short"}},
		{"breaks between words", "one two three four", []string{"one two", "three four"}},
		{"long word alone", "abcdefghijklmnop x", []string{"abcdefghijklmnop", "x"}},
		{"empty", "   ", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, wrapText(tt.text, 60, r.MeasureText))
		})
	}
}
