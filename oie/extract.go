package oie

import (
	"github.com/oiextractor/core/span"
	"github.com/oiextractor/core/ud"
)

// Extract is the core's pure entry point: extract(Sentence, Config) ->
// ExtractionSet. It iterates predicate heads, runs C3-C5 and C7 for each,
// independently runs C6 over the whole tree, and sanitizes/validates/dedupes
// the result via ExtractionSet.Add.
func Extract(s *ud.Sentence, cfg Config) *ExtractionSet {
	set := NewExtractionSet()

	var clausal []*Extraction
	for _, v := range s.PredicateHeads() {
		if v.Dep == ud.DepAux || v.Dep == ud.DepAuxPass || v.Dep == ud.DepXcomp {
			// aux/aux:pass/xcomp verbs are already captured inside their
			// governor's relation (RELATION_VERB_DEPS), so they are not
			// independent predicate heads. A cop token is: it is never a
			// RELATION_VERB_DEPS member, so it is the only top-level
			// predicate head whose subject finder redirects to v.head.
			continue
		}
		extractions := extractPredicate(s, v, cfg)
		clausal = append(clausal, extractions...)
		for _, e := range extractions {
			set.Add(e, cfg)
		}
	}

	if cfg.Appositive {
		appos := appositiveExtractions(s)
		for _, e := range appos {
			set.Add(e, cfg)
		}
		if cfg.AppositiveTransitivity {
			for _, e := range appositiveTransitivity(appos, clausal) {
				set.Add(e, cfg)
			}
		}
	}

	return set
}

// extractPredicate runs C3-C5 (and, for verbal heads when
// cfg.CoordinatingConjunctions is set, C7) for a single
// predicate head v, returning every Extraction it (and its coordinated
// peers) produced. It is the recursion point C5 uses for subordinate
// clauses with their own subject.
func extractPredicate(s *ud.Sentence, v ud.Token, cfg Config) []*Extraction {
	subject, _, ok := findSubject(s, v, cfg, true)
	if !ok {
		return nil
	}
	if subject == nil {
		subject = &span.Element{}
	}

	relation, effectiveVerb := buildRelation(s, v)
	group := buildComplements(s, subject, relation, effectiveVerb, cfg, extractPredicate)

	if v.IsVerbal() && cfg.CoordinatingConjunctions {
		for _, w := range verbalConjPeers(s, v) {
			peerRelation, peerEffectiveVerb := buildRelation(s, w)
			peerGroup := buildComplements(s, subject, peerRelation, peerEffectiveVerb, cfg, extractPredicate)
			group = append(group, peerGroup...)
		}
	}

	if cfg.CoordinatingConjunctions {
		redistributeComplements(group)
	}

	return group
}
