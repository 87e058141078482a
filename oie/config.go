// Package oie implements the rule-based Open Information Extraction core:
// given a parsed ud.Sentence, it produces the set of valid, deduplicated
// (subject; relation; complement) extractions, with nested sub-extractions
// for subordinate clauses.
package oie

// Config enables or disables the extraction modules. The zero value is the
// minimal baseline: every module off, emitting only the basic triple from
// each non-subordinate predicate head.
type Config struct {
	// CoordinatingConjunctions enables C7 verb-coordination splitting and
	// multi-complement decomposition.
	CoordinatingConjunctions bool

	// SubordinatingConjunctions enables sub-extraction emission for
	// ccomp/advcl heads that have their own explicit subject.
	SubordinatingConjunctions bool

	// HiddenSubjects permits empty-subject extractions where the subject
	// finder would otherwise discard the predicate. Reserved: it does not
	// synthesize an antecedent, it only relaxes the non-empty-subject
	// requirement.
	HiddenSubjects bool

	// Appositive enables C6 appositive synthesis.
	Appositive bool

	// AppositiveTransitivity enables C6 transitivity inference. Has no
	// effect unless Appositive is also set.
	AppositiveTransitivity bool

	// Debug enables verbose tracing; it has no effect on outputs.
	Debug bool
}
