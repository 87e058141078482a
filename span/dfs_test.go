package span

import (
	"testing"

	"github.com/oiextractor/core/ud"
)

// o grande preto cachorro corre rapidamente
func buildSentence(t *testing.T) (*ud.Sentence, ud.Token, ud.Token) {
	t.Helper()
	tokens := []ud.Token{
		{Index: 1, Text: "O", Pos: ud.DET, Head: 4, Dep: ud.DepDet},
		{Index: 2, Text: "grande", Pos: ud.ADJ, Head: 4, Dep: ud.DepAmod},
		{Index: 3, Text: "preto", Pos: ud.ADJ, Head: 4, Dep: ud.DepAmod},
		{Index: 4, Text: "cachorro", Pos: ud.NOUN, Head: 5, Dep: ud.DepNsubj},
		{Index: 5, Text: "corre", Pos: ud.VERB, Head: 0, Dep: ud.DepRoot},
		{Index: 6, Text: "rapidamente", Pos: ud.ADV, Head: 5, Dep: ud.DepAdvmod},
	}
	s, err := ud.NewSentence(1, "O grande preto cachorro corre rapidamente", tokens)
	if err != nil {
		t.Fatalf("NewSentence: %v", err)
	}
	subject, _ := s.Token(4)
	root, _ := s.Token(5)
	return s, subject, root
}

func TestNominalCollectsModifiers(t *testing.T) {
	s, subject, _ := buildSentence(t)

	e := Nominal(s, subject, NominalOpts{})
	tokens := e.Tokens()
	if len(tokens) != 4 {
		t.Fatalf("Nominal span has %d tokens, want 4 (det + 2 amod + core): %v", len(tokens), tokens)
	}
}

func TestNominalIsSubjectTrimsLeadingCase(t *testing.T) {
	tokens := []ud.Token{
		{Index: 1, Text: "de", Pos: ud.ADP, Head: 2, Dep: ud.DepCase},
		{Index: 2, Text: "casa", Pos: ud.NOUN, Head: 3, Dep: ud.DepNsubj},
		{Index: 3, Text: "corre", Pos: ud.VERB, Head: 0, Dep: ud.DepRoot},
	}
	s, err := ud.NewSentence(1, "de casa corre", tokens)
	if err != nil {
		t.Fatalf("NewSentence: %v", err)
	}
	subject, _ := s.Token(2)

	e := Nominal(s, subject, NominalOpts{IsSubject: true})
	if e.Has(1) {
		t.Error("expected leading case/ADP child to be trimmed from a subject span")
	}
	if !e.Has(2) {
		t.Error("expected the core subject token to remain")
	}
}

func TestComplementStopsAtBoundary(t *testing.T) {
	// corre rapidamente que late (mark-bounded clause, corre is root)
	tokens := []ud.Token{
		{Index: 1, Text: "corre", Pos: ud.VERB, Head: 0, Dep: ud.DepRoot},
		{Index: 2, Text: "rapidamente", Pos: ud.ADV, Head: 1, Dep: ud.DepAdvmod},
		{Index: 3, Text: "que", Pos: ud.SCONJ, Head: 1, Dep: ud.DepMark},
		{Index: 4, Text: "late", Pos: ud.VERB, Head: 3, Dep: ud.DepDep},
	}
	s, err := ud.NewSentence(1, "corre rapidamente que late", tokens)
	if err != nil {
		t.Fatalf("NewSentence: %v", err)
	}
	root, _ := s.Token(1)

	e := Complement(s, root)
	if !e.Has(2) {
		t.Error("expected advmod child to be included in complement span")
	}
	if e.Has(3) || e.Has(4) {
		t.Error("expected mark boundary child and its subtree to be excluded")
	}
}

func TestComplementIgnoresSubject(t *testing.T) {
	s, subject, root := buildSentence(t)
	e := Complement(s, root)
	if e.Has(subject.Index) {
		t.Error("expected subject child to be ignored by Complement")
	}
	if !e.Has(6) {
		t.Error("expected advmod complement child to be collected")
	}
}
