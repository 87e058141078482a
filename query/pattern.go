// Package query implements an interactive lemma/relation search over a
// corpus's extracted triples, the way the teacher's query/edit packages
// browse and refine a topic-matched sentence corpus.
package query

import (
	"strings"

	"github.com/oiextractor/core/oie"
	"github.com/oiextractor/core/span"
)

// Term is a single lemma expression matched against one TripleElement's
// lemmas. "" matches anything. A "!" prefix negates (none of the element's
// lemmas may equal the rest of the term). A "|"-separated term matches if
// any alternative is present among the element's lemmas.
type Term string

// Matches reports whether el's lemma set satisfies the term.
func (t Term) Matches(el *span.Element) bool {
	if t == "" {
		return true
	}
	s := string(t)
	if strings.HasPrefix(s, "!") {
		return !hasLemma(el, strings.TrimPrefix(s, "!"))
	}
	for _, alt := range strings.Split(s, "|") {
		if hasLemma(el, alt) {
			return true
		}
	}
	return false
}

func hasLemma(el *span.Element, lemma string) bool {
	for _, t := range el.Tokens() {
		if t.Lemma == lemma {
			return true
		}
	}
	return false
}

// Pattern matches an Extraction by its subject, relation and complement
// lemma terms. Each empty Term matches any element, including an empty one.
type Pattern struct {
	Subject, Relation, Complement Term
}

// Matches reports whether e satisfies every term of the pattern.
func (p Pattern) Matches(e *oie.Extraction) bool {
	return p.Subject.Matches(e.Subject) &&
		p.Relation.Matches(e.Relation) &&
		p.Complement.Matches(e.Complement)
}

// IndexLemmas returns the positive (non-negated, non-OR) lemmas of the
// pattern, suitable for an indexed storage candidate lookup; fine-grained
// matching (negation, OR, empty terms) is then done by Matches on the
// retrieved candidates, mirroring the teacher's "positive lemmas for
// retrieval, full semantics for matching" split.
func (p Pattern) IndexLemmas() []string {
	var out []string
	for _, t := range []Term{p.Subject, p.Relation, p.Complement} {
		s := string(t)
		if s == "" || strings.HasPrefix(s, "!") || strings.Contains(s, "|") {
			continue
		}
		out = append(out, s)
	}
	return out
}

// ParsePattern parses up to three space-separated terms ("_" as an explicit
// wildcard) into a Pattern: subject, relation, complement.
func ParsePattern(fields []string) Pattern {
	var p Pattern
	terms := []*Term{&p.Subject, &p.Relation, &p.Complement}
	for i, f := range fields {
		if i >= len(terms) {
			break
		}
		if f == "_" {
			continue
		}
		*terms[i] = Term(f)
	}
	return p
}
