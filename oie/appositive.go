package oie

import (
	"github.com/oiextractor/core/span"
	"github.com/oiextractor/core/ud"
)

// syntheticCopula is the injected relation element for an appositive
// extraction: a single token with no sentence index of its own.
func syntheticCopula() *span.Element {
	return span.NewSynthetic(ud.Token{
		Text:      "é",
		Lemma:     "ser",
		Pos:       ud.AUX,
		Synthetic: true,
	})
}

// appositiveExtractions implements the synthesis half of C6: scan every
// token with dep=appos and emit an "is-a" extraction, unless its head is
// itself attached as ccomp/xcomp (which would be redundant with that clause's
// own extraction). Only the head's own dep is checked, not its ancestors.
func appositiveExtractions(s *ud.Sentence) []*Extraction {
	var out []*Extraction
	for _, a := range s.Tokens() {
		if a.Dep != ud.DepAppos {
			continue
		}
		head, ok := s.Head(a)
		if !ok {
			continue
		}
		if head.Dep == ud.DepCcomp || head.Dep == ud.DepXcomp {
			continue
		}

		subject := span.Nominal(s, head, span.NominalOpts{IgnoreAppos: true})
		complement := span.Nominal(s, a, span.NominalOpts{})

		out = append(out, &Extraction{
			Subject:    subject,
			Relation:   syntheticCopula(),
			Complement: complement,
		})
	}
	return out
}

// appositiveTransitivity implements C6's single-pass transitivity: for every
// appositive extraction (A; é; B) and clausal extraction (A'; R; C) where
// A' matches A by surface-text equality of the subject span, emit (B; R; C).
// New extractions are derived from the pre-transitivity set only.
func appositiveTransitivity(appositives, clausal []*Extraction) []*Extraction {
	var out []*Extraction
	for _, ap := range appositives {
		aText := Render(ap.Subject)
		for _, cl := range clausal {
			if Render(cl.Subject) != aText {
				continue
			}
			out = append(out, &Extraction{
				Subject:    ap.Complement,
				Relation:   cl.Relation,
				Complement: cl.Complement,
			})
		}
	}
	return out
}
