package oie

import "github.com/oiextractor/core/ud"

// preferredConjLemmas are the cc connector lemmas §4.7 prefers between
// coordinated verbal predicates. verbalConjPeers does not consult it: every
// connector is accepted alike (there is no second-class representation for
// an Extraction).
var preferredConjLemmas = map[string]bool{"e": true, "ou": true}

// verbalConjPeers implements C7's peer detection: a conj child w of v is a
// valid verbal conjunction peer iff it is VERB/AUX and has no subject child
// of its own (otherwise it is an independent proposition handled by the
// top-level loop). The connector between v and w is not inspected.
func verbalConjPeers(s *ud.Sentence, v ud.Token) []ud.Token {
	var out []ud.Token
	for _, w := range s.ChildrenWithDep(v, ud.DepConj) {
		if !w.IsVerbal() {
			continue
		}
		if _, hasSubj := s.ChildWithDep(w, ud.DepNsubj, ud.DepNsubjPass, ud.DepCsubj, ud.DepCsubjPass); hasSubj {
			continue
		}
		out = append(out, w)
	}
	return out
}

// redistributeComplements implements the shared-complement redistribution of
// §4.5: group is a sequence of Extractions sharing a subject (the parent
// plus its C7 peers, in sentence order). If the last member has a
// non-empty complement and an earlier member has an empty one, and both
// relation cores are POS=VERB (not AUX-only), the earlier member's
// complement is filled in from the last.
func redistributeComplements(group []*Extraction) {
	if len(group) < 2 {
		return
	}
	last := group[len(group)-1]
	if last.Complement.Empty() || last.Relation.Core.Pos != ud.VERB {
		return
	}
	for _, e := range group[:len(group)-1] {
		if !e.Complement.Empty() {
			continue
		}
		if e.Relation.Core.Pos != ud.VERB {
			continue
		}
		e.Complement = last.Complement
	}
}
