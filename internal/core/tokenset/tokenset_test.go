package tokenset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTokensAreDistinct(t *testing.T) {
	a := New("dialogue")
	b := New("dialogue")

	assert.NotEqual(t, a, b, "tokens with the same name must still differ")
	assert.Equal(t, "dialogue", a.Name())
	assert.False(t, a.IsReserved())
}

func TestReservedNeverCollidesWithNew(t *testing.T) {
	r := Reserved("crosshair")
	require.True(t, r.IsReserved())

	for i := 0; i < 100; i++ {
		assert.NotEqual(t, r, New("reserved:crosshair"))
	}
	assert.Equal(t, r, Reserved("crosshair"))
	assert.False(t, Token{}.IsReserved())
}

func TestSetInsertRemove(t *testing.T) {
	var s Set
	a := New("a")
	b := New("b")

	assert.True(t, s.Empty())
	assert.True(t, s.Insert(a))
	assert.False(t, s.Insert(a), "second insert is a no-op")
	assert.True(t, s.Insert(b))
	assert.Equal(t, 2, s.Len())

	assert.True(t, s.Remove(a))
	assert.False(t, s.Remove(a), "second remove is a no-op")
	assert.True(t, s.Contains(b))
	assert.False(t, s.Contains(a))
}

func TestRemoveFromEmptySet(t *testing.T) {
	var s Set
	assert.False(t, s.Remove(New("ghost")))
	assert.True(t, s.Empty())
	assert.False(t, s.Clear())
}

func TestClear(t *testing.T) {
	var s Set
	s.Insert(New("a"))
	s.Insert(New("b"))

	assert.True(t, s.Clear())
	assert.True(t, s.Empty())
	assert.Empty(t, s.Tokens())
}

func TestTokensOrderedByName(t *testing.T) {
	var s Set
	s.Insert(New("pause"))
	s.Insert(New("dialogue"))
	s.Insert(Reserved("crosshair"))

	tokens := s.Tokens()
	require.Len(t, tokens, 3)
	assert.Equal(t, "dialogue", tokens[0].Name())
	assert.Equal(t, "pause", tokens[1].Name())
	assert.Equal(t, "reserved:crosshair", tokens[2].Name())
}
