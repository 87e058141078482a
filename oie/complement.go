package oie

import (
	"sort"

	"github.com/oiextractor/core/span"
	"github.com/oiextractor/core/ud"
)

// extractFn is how the complement extractor recurses into a subordinate
// clause's own proposition(s); it is the orchestrator's per-predicate
// routine, passed in as a parameter. This file and extract.go both live in
// package oie, so the named type only makes the recursion readable; there is
// no import cycle to break.
type extractFn func(s *ud.Sentence, head ud.Token, cfg Config) []*Extraction

// buildComplements implements C5. subject and relation belong to the
// extraction in progress; effectiveVerb and relation are as returned by
// buildRelation. It returns one or more sibling Extractions (same subject
// and relation, distinct complements) when coordinating_conjunctions calls
// for decomposition, plus sub-extractions attached to the first.
func buildComplements(s *ud.Sentence, subject, relation *span.Element, effectiveVerb ud.Token, cfg Config, recurse extractFn) []*Extraction {
	complementRoot := effectiveVerb
	isCopula := relation.Core.Dep == ud.DepCop
	if isCopula {
		if head, ok := s.Head(relation.Core); ok {
			complementRoot = head
		}
	}

	heads := complementHeads(s, complementRoot, isCopula)
	if len(heads) == 0 {
		return []*Extraction{{Subject: subject, Relation: relation, Complement: &span.Element{}}}
	}

	var subExtractions []*Extraction
	var combined *span.Element
	var decomposed []*span.Element

	for _, h := range heads {
		if ud.SubordinateClauseDeps[h.Dep] {
			if subj, _, ok := findSubject(s, h, cfg, false); ok && !subj.Empty() {
				if cfg.SubordinatingConjunctions {
					subExtractions = append(subExtractions, recurse(s, h, cfg)...)
				}
				part := markerSpan(s, h)
				combined = mergeSpan(combined, part)
				continue
			}
			// No own subject: there is no sub-extraction to carve the
			// marker out of, so fold it back into the flat span (h's own
			// mark child is otherwise a Complement boundary).
			part := mergeSpan(span.Complement(s, h), markerSpan(s, h))
			combined = mergeSpan(combined, part)
			decomposed = append(decomposed, part)
			continue
		}

		part, own, peers := coordinatedSpan(s, h)
		combined = mergeSpan(combined, part)
		decomposed = append(decomposed, own)
		decomposed = append(decomposed, peers...)
	}

	if combined == nil {
		combined = &span.Element{}
	}

	primary := &Extraction{Subject: subject, Relation: relation, Complement: combined, SubExtractions: subExtractions}

	if !cfg.CoordinatingConjunctions || len(decomposed) <= 1 {
		return []*Extraction{primary}
	}

	out := []*Extraction{primary}
	for _, part := range decomposed {
		out = append(out, &Extraction{Subject: subject, Relation: relation, Complement: part})
	}
	return out
}

// complementHeads collects the complement-head candidates for root, sorted
// by sentence index. For a copula complement_root, root itself is an
// additional head (the predicate nominal). When root has conj children that
// are verbs, only root itself is used here — its coordinated verb peers are
// handled independently by the conjunction module (C7).
func complementHeads(s *ud.Sentence, root ud.Token, isCopula bool) []ud.Token {
	var heads []ud.Token
	if isCopula {
		heads = append(heads, root)
	}
	for _, c := range s.Children(root.Index) {
		if ud.ComplementHeadDeps[c.Dep] || ud.SubordinateClauseDeps[c.Dep] {
			heads = append(heads, c)
		}
	}
	sort.Slice(heads, func(i, j int) bool { return heads[i].Index < heads[j].Index })
	return heads
}

// markerSpan builds the parent's contribution for a subordinate head H that
// became a sub-extraction: just H's mark child (the subordinating
// conjunction), if present, with no further descent into H.
func markerSpan(s *ud.Sentence, h ud.Token) *span.Element {
	mark, ok := s.ChildWithDep(h, ud.DepMark)
	if !ok {
		return nil
	}
	return span.NewElement(mark)
}

// coordinatedSpan builds H's coordinated complement span: the head's own
// phrase plus every conj-linked peer, borrowing H's leading preposition into
// peers that lack their own, and the cc connectors between them. Returns the
// merged span (for the primary extraction), H's own standalone span, and
// each peer's standalone span (the latter two for §4.7 decomposition).
func coordinatedSpan(s *ud.Sentence, h ud.Token) (combined, own *span.Element, peers []*span.Element) {
	var hSpan *span.Element
	if h.Dep == ud.DepXcomp || h.Dep == ud.DepAdvmod {
		hSpan = span.Complement(s, h)
	} else {
		hSpan = span.Nominal(s, h, span.NominalOpts{IgnoreConjunctions: true})
	}

	own = span.NewElement(h)
	for _, t := range hSpan.Tokens() {
		own.Add(t)
	}

	combined = span.NewElement(h)
	for _, t := range hSpan.Tokens() {
		combined.Add(t)
	}

	leadingCase, hasCase := leadingCaseOf(s, h)

	var peerSpans []*span.Element
	for _, peer := range conjPeers(s, h) {
		peerSpan := span.Nominal(s, peer, span.NominalOpts{IgnoreConjunctions: true})
		if !hasOwnCase(s, peer) && hasCase {
			peerSpan.Add(leadingCase)
		}
		peerSpans = append(peerSpans, peerSpan)
		for _, t := range peerSpan.Tokens() {
			combined.Add(t)
		}
	}

	for _, cc := range ccConnectorsBetween(s, h, conjPeers(s, h)) {
		combined.Add(cc)
	}

	return combined, own, peerSpans
}

// conjPeers returns the tokens transitively connected to h by conj chains,
// in sentence order.
func conjPeers(s *ud.Sentence, h ud.Token) []ud.Token {
	var peers []ud.Token
	visited := map[int]bool{h.Index: true}
	queue := []ud.Token{h}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, c := range s.ChildrenWithDep(cur, ud.DepConj) {
			if visited[c.Index] {
				continue
			}
			visited[c.Index] = true
			peers = append(peers, c)
			queue = append(queue, c)
		}
	}
	sort.Slice(peers, func(i, j int) bool { return peers[i].Index < peers[j].Index })
	return peers
}

// ccConnectorsBetween returns the cc children of h and of each peer — the
// coordinating conjunction tokens ("e", "ou") linking the coordinated group.
func ccConnectorsBetween(s *ud.Sentence, h ud.Token, peers []ud.Token) []ud.Token {
	var out []ud.Token
	for _, c := range s.ChildrenWithDep(h, ud.DepCc) {
		out = append(out, c)
	}
	for _, p := range peers {
		out = append(out, s.ChildrenWithDep(p, ud.DepCc)...)
	}
	return out
}

func leadingCaseOf(s *ud.Sentence, h ud.Token) (ud.Token, bool) {
	return s.ChildWithDep(h, ud.DepCase)
}

func hasOwnCase(s *ud.Sentence, t ud.Token) bool {
	_, ok := s.ChildWithDep(t, ud.DepCase)
	return ok
}

// mergeSpan folds extra's tokens into base (creating base from the first
// non-nil part if it was nil). Nil parts are ignored.
func mergeSpan(base, extra *span.Element) *span.Element {
	if extra == nil {
		return base
	}
	if base == nil {
		e := span.NewElement(extra.Core)
		for _, t := range extra.Tokens() {
			e.Add(t)
		}
		return e
	}
	for _, t := range extra.Tokens() {
		base.Add(t)
	}
	return base
}
