// Package tokenset tracks which independent requesters currently ask for
// something. A request is active while at least one token is present.
package tokenset

import (
	"sort"

	"github.com/google/uuid"
)

// Token identifies one logical requester. Tokens are comparable and can be
// used as map keys. Every call to New returns a distinct token, so two call
// sites never share one by accident.
type Token struct {
	id   uuid.UUID
	name string
}

// New creates a token for a requester. The name is only used for logging.
func New(name string) Token {
	return Token{id: uuid.New(), name: name}
}

// Reserved creates a token that New can never produce. Packages use it for
// requests they make on their own behalf.
func Reserved(name string) Token {
	return Token{id: uuid.Nil, name: "reserved:" + name}
}

// Name returns the requester name given at creation.
func (t Token) Name() string {
	return t.name
}

// IsReserved reports whether the token came from Reserved.
func (t Token) IsReserved() bool {
	return t.id == uuid.Nil && t.name != ""
}

// String implements fmt.Stringer.
func (t Token) String() string {
	if t.IsReserved() {
		return t.name
	}
	return t.name + "#" + t.id.String()[:8]
}

// Set is a set of tokens. The zero value is an empty set ready to use.
type Set struct {
	members map[Token]struct{}
}

// Insert adds t and reports whether the set changed.
func (s *Set) Insert(t Token) bool {
	if s.members == nil {
		s.members = make(map[Token]struct{})
	}
	if _, ok := s.members[t]; ok {
		return false
	}
	s.members[t] = struct{}{}
	return true
}

// Remove deletes t and reports whether the set changed.
// Removing a token that is not present is a no-op.
func (s *Set) Remove(t Token) bool {
	if _, ok := s.members[t]; !ok {
		return false
	}
	delete(s.members, t)
	return true
}

// Contains reports whether t is in the set.
func (s *Set) Contains(t Token) bool {
	_, ok := s.members[t]
	return ok
}

// Len returns the number of tokens.
func (s *Set) Len() int {
	return len(s.members)
}

// Empty reports whether no token is present.
func (s *Set) Empty() bool {
	return len(s.members) == 0
}

// Clear removes every token and reports whether the set changed.
func (s *Set) Clear() bool {
	if len(s.members) == 0 {
		return false
	}
	clear(s.members)
	return true
}

// Tokens returns the members ordered by name, for logging and debugging.
func (s *Set) Tokens() []Token {
	out := make([]Token, 0, len(s.members))
	for t := range s.members {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].String() < out[j].String()
	})
	return out
}
