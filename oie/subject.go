package oie

import (
	"github.com/oiextractor/core/span"
	"github.com/oiextractor/core/ud"
)

// findSubject implements C3: locate the logical subject of predicate head v.
// Returns the subject element (nil if none was found and none applies) and
// whether an empty subject was explicitly permitted as "hidden" rather than
// simply absent.
//
// allowHidden gates step 6c (the hidden_subjects fallback); the complement
// extractor's subordinate-clause probe (§4.5) calls this with
// allowHidden=false regardless of cfg, per spec.
func findSubject(s *ud.Sentence, v ud.Token, cfg Config, allowHidden bool) (subj *span.Element, hidden bool, ok bool) {
	// Step 1: redirect aux/aux:pass/cop to the true predicate.
	if v.Dep == ud.DepAux || v.Dep == ud.DepAuxPass || v.Dep == ud.DepCop {
		if head, found := s.Head(v); found {
			v = head
		}
	}

	// Step 2: first SUBJECT_DEPS child in sentence order (tie-break: smallest index).
	candidates := s.ChildrenWithDep(v, ud.DepNsubj, ud.DepNsubjPass, ud.DepCsubj, ud.DepCsubjPass)
	if len(candidates) > 0 {
		sel := candidates[0]

		// Step 3: relative pronoun subject resolves to the antecedent.
		if sel.IsRelativePronoun() {
			if head, found := s.Head(v); found {
				e := span.Nominal(s, head, span.NominalOpts{IsSubject: true, IgnoreAppos: true})
				return e, false, true
			}
			return nil, false, false
		}

		// Step 4: clausal subject.
		if sel.Dep == ud.DepCsubj || sel.Dep == ud.DepCsubjPass {
			e := span.Complement(s, sel)
			return e, false, true
		}

		// Step 5: nominal subject. The appositive module (C6) handles an
		// appos child's own proposition; it is not folded into the plain
		// subject span here.
		e := span.Nominal(s, sel, span.NominalOpts{IsSubject: true, IgnoreAppos: true})
		return e, false, true
	}

	// Step 6a: passive/existential promotion of an obj child.
	if _, hasAuxPass := s.ChildWithDep(v, ud.DepAuxPass); hasAuxPass || ud.ExistentialVerbsLemmas[v.Lemma] {
		if obj, found := s.ChildWithDep(v, ud.DepObj); found {
			e := span.Nominal(s, obj, span.NominalOpts{IsSubject: true, IgnoreAppos: true})
			return e, false, true
		}
	}

	// Step 6b: relative-clause/acl subject is the modified head.
	if v.Dep == ud.DepAcl || v.Dep == ud.DepAclRelcl {
		if head, found := s.Head(v); found {
			e := span.Nominal(s, head, span.NominalOpts{IsSubject: true, IgnoreAppos: true})
			return e, false, true
		}
	}

	// Step 6c: hidden-subject fallback.
	if allowHidden && (cfg.HiddenSubjects || isImpersonal(s, v)) {
		return nil, true, true
	}

	// Step 6d: no subject.
	return nil, false, false
}

// isImpersonal reports whether v is a 3rd-person verb with no subject
// child — the impersonal-construction half of the hidden-subject gate.
func isImpersonal(s *ud.Sentence, v ud.Token) bool {
	if _, ok := s.ChildWithDep(v, ud.DepNsubj, ud.DepNsubjPass, ud.DepCsubj, ud.DepCsubjPass); ok {
		return false
	}
	return v.Feats.Has("Person", "3")
}
