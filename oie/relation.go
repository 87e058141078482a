package oie

import (
	"github.com/oiextractor/core/span"
	"github.com/oiextractor/core/ud"
)

// buildRelation implements C4: assemble the verbal nucleus rooted at s (a
// VERB or AUX, or a copula) with its auxiliaries, clitics and selected
// adverbs. Returns the relation element and its effective_verb (s itself,
// or s.Head when s is a copula).
func buildRelation(s *ud.Sentence, start ud.Token) (*span.Element, ud.Token) {
	e := span.NewElement(start)

	effectiveVerb := start
	if start.Dep == ud.DepCop {
		if head, ok := s.Head(start); ok {
			effectiveVerb = head
		}
	}

	visited := map[int]bool{start.Index: true}
	chainCore := start

	var walk func(t ud.Token)
	walk = func(t ud.Token) {
		for _, c := range s.Children(t.Index) {
			if visited[c.Index] {
				continue
			}
			include := false
			switch {
			case ud.RelationVerbDeps[c.Dep] && c.IsVerbal():
				include = true
			case ud.RelationModifierDeps[c.Dep]:
				include = true
			case c.Dep == ud.DepAdvmod && ud.RelationAdverbsLemmas[c.Lemma]:
				include = true
			}
			if !include {
				continue
			}
			visited[c.Index] = true
			e.Add(c)

			// Supplemented feature: an xcomp continuation whose own
			// aux/aux:pass chain keeps extending reassigns the relation's
			// core to the deepest chained verb (see SPEC_FULL.md §4).
			if c.Dep == ud.DepXcomp && c.IsVerbal() {
				if hasAuxChild(s, c) {
					chainCore = c
				}
			}

			walk(c)
		}
	}
	walk(start)

	e.Core = chainCore
	return e, effectiveVerb
}

func hasAuxChild(s *ud.Sentence, t ud.Token) bool {
	_, ok := s.ChildWithDep(t, ud.DepAux, ud.DepAuxPass)
	return ok
}
