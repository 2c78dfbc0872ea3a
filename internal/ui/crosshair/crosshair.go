// Package crosshair aggregates crosshair and cursor requests from
// independent gameplay systems into one visual decision per tick.
//
// Each system holds its own token and adds it to or removes it from one of
// three request sets. A set is active while it has at least one member, so a
// single system asking to hide the crosshair always wins over any number of
// systems that do not.
package crosshair

import (
	"chosenoffset.com/wanderer/internal/core/tokenset"
	"chosenoffset.com/wanderer/internal/render"
)

// Token identifies one requesting system.
type Token = tokenset.Token

// NewToken returns a token unique to one logical requester. Create it once
// per requester and keep it; a fresh token cannot release an older request.
func NewToken(name string) Token {
	return tokenset.New(name)
}

// Set names one of the request sets.
type Set int

const (
	// WantsSquare asks for the square glyph instead of the dot.
	WantsSquare Set = iota
	// WantsInvisible asks for the crosshair to be hidden.
	WantsInvisible
	// WantsFreeCursor asks for the pointer to be released from the window.
	WantsFreeCursor

	setCount
)

// String implements fmt.Stringer.
func (s Set) String() string {
	switch s {
	case WantsSquare:
		return "wants_square"
	case WantsInvisible:
		return "wants_invisible"
	case WantsFreeCursor:
		return "wants_free_cursor"
	default:
		return "unknown"
	}
}

// Glyph is the crosshair image.
type Glyph int

const (
	Dot Glyph = iota
	Square
)

// String implements fmt.Stringer.
func (g Glyph) String() string {
	if g == Square {
		return "square"
	}
	return "dot"
}

// Visibility of the crosshair.
type Visibility int

const (
	Visible Visibility = iota
	Hidden
)

// String implements fmt.Stringer.
func (v Visibility) String() string {
	if v == Hidden {
		return "hidden"
	}
	return "visible"
}

// Decision is the resolved presentation state.
type Decision struct {
	Glyph      Glyph
	Visibility Visibility
	CursorMode render.CursorMode
}

// freeCursorToken is added to WantsInvisible while the cursor is free so the
// crosshair never draws over a visible pointer. tokenset.New cannot produce it.
var freeCursorToken = tokenset.Reserved("crosshair.free-cursor")

// Aggregator holds the request sets for one scene. It is not safe for
// concurrent use; all systems of a tick run sequentially.
type Aggregator struct {
	sets [setCount]tokenset.Set

	version  uint64
	resolved uint64
}

// NewAggregator returns an aggregator with no requests. The first call to
// Changed reports true so the initial state gets applied.
func NewAggregator() *Aggregator {
	return &Aggregator{version: 1}
}

// Request adds token to set. Requesting twice has no further effect.
func (a *Aggregator) Request(set Set, token Token) {
	if !valid(set) {
		return
	}
	if a.sets[set].Insert(token) {
		a.version++
	}
}

// Release removes token from set. Releasing a token that is not present is
// a no-op.
func (a *Aggregator) Release(set Set, token Token) {
	if !valid(set) {
		return
	}
	if a.sets[set].Remove(token) {
		a.version++
	}
}

// ReleaseAll removes token from every set.
func (a *Aggregator) ReleaseAll(token Token) {
	for s := Set(0); s < setCount; s++ {
		a.Release(s, token)
	}
}

// Contains reports whether token is currently in set.
func (a *Aggregator) Contains(set Set, token Token) bool {
	if !valid(set) {
		return false
	}
	return a.sets[set].Contains(token)
}

// Len returns the number of tokens in set, including reserved ones.
func (a *Aggregator) Len(set Set) int {
	if !valid(set) {
		return 0
	}
	return a.sets[set].Len()
}

// Requesters lists the tokens in set, for debugging.
func (a *Aggregator) Requesters(set Set) []Token {
	if !valid(set) {
		return nil
	}
	return a.sets[set].Tokens()
}

// Changed reports whether any set changed since the last Resolve.
func (a *Aggregator) Changed() bool {
	return a.version != a.resolved
}

// Resolve computes the decision for the current requests and clears the
// change flag.
//
// Resolving the cursor mode also updates WantsInvisible with a reserved
// token: present while the cursor is free, absent while it is locked. That
// adjustment happens before visibility is read and does not count as a
// change.
func (a *Aggregator) Resolve() Decision {
	d := Decision{Glyph: Dot, Visibility: Visible, CursorMode: render.CursorLocked}

	if !a.sets[WantsSquare].Empty() {
		d.Glyph = Square
	}

	if a.sets[WantsFreeCursor].Empty() {
		a.sets[WantsInvisible].Remove(freeCursorToken)
	} else {
		d.CursorMode = render.CursorFree
		a.sets[WantsInvisible].Insert(freeCursorToken)
	}

	if !a.sets[WantsInvisible].Empty() {
		d.Visibility = Hidden
	}

	a.resolved = a.version
	return d
}

// Reset drops every request, including reserved ones.
func (a *Aggregator) Reset() {
	changed := false
	for s := range a.sets {
		if a.sets[s].Clear() {
			changed = true
		}
	}
	if changed {
		a.version++
	}
}

func valid(s Set) bool {
	return s >= 0 && s < setCount
}
