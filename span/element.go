// Package span builds TripleElements: contiguous-ish token spans collected
// by walking a Sentence's dependency tree, the way the extractor's nominal
// and complement phrases are assembled.
package span

import (
	"encoding/json"
	"sort"

	"github.com/oiextractor/core/ud"
)

// Element is an ordered set of Token references drawn from a single
// Sentence. Core is always a member; members are kept sorted by sentence
// index for rendering.
type Element struct {
	Core      ud.Token
	members   map[int]ud.Token
	Synthetic bool
}

// NewElement starts a new Element anchored at core.
func NewElement(core ud.Token) *Element {
	e := &Element{members: make(map[int]ud.Token)}
	e.members[core.Index] = core
	e.Core = core
	return e
}

// NewSynthetic builds a single-token synthetic Element (e.g. the injected
// appositive copula "é").
func NewSynthetic(t ud.Token) *Element {
	e := NewElement(t)
	e.Synthetic = true
	return e
}

// Add inserts t into the member set.
func (e *Element) Add(t ud.Token) {
	e.members[t.Index] = t
}

// Empty reports whether the element has no members at all. A freshly
// constructed Element is never empty (Core is always present); the zero
// value is used by callers to represent "no element".
func (e *Element) Empty() bool {
	return e == nil || len(e.members) == 0
}

// Tokens returns the member tokens sorted by sentence index.
func (e *Element) Tokens() []ud.Token {
	if e == nil {
		return nil
	}
	out := make([]ud.Token, 0, len(e.members))
	for _, t := range e.members {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Index < out[j].Index })
	return out
}

// Has reports whether a token at the given index belongs to the element.
func (e *Element) Has(index int) bool {
	if e == nil {
		return false
	}
	_, ok := e.members[index]
	return ok
}

// HasVerbal reports whether the element contains at least one VERB or AUX
// token, the check C4's relation validity rule depends on.
func (e *Element) HasVerbal() bool {
	if e == nil {
		return false
	}
	for _, t := range e.members {
		if t.IsVerbal() {
			return true
		}
	}
	return false
}

// IsSingleRelativePronoun reports whether the element's only member is a
// relative pronoun, the shape C8's validator rejects as a subject.
func (e *Element) IsSingleRelativePronoun() bool {
	if e == nil || len(e.members) != 1 {
		return false
	}
	return e.Core.IsRelativePronoun()
}

type elementJSON struct {
	Core      ud.Token   `json:"core"`
	Tokens    []ud.Token `json:"tokens"`
	Synthetic bool       `json:"synthetic"`
}

// MarshalJSON serializes the element as its core token, member tokens (in
// sentence order) and synthetic flag.
func (e *Element) MarshalJSON() ([]byte, error) {
	return json.Marshal(elementJSON{Core: e.Core, Tokens: e.Tokens(), Synthetic: e.Synthetic})
}

// UnmarshalJSON rebuilds the element from the wire form produced by
// MarshalJSON.
func (e *Element) UnmarshalJSON(data []byte) error {
	var w elementJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	members := make(map[int]ud.Token, len(w.Tokens))
	for _, t := range w.Tokens {
		members[t.Index] = t
	}
	e.Core = w.Core
	e.members = members
	e.Synthetic = w.Synthetic
	return nil
}
