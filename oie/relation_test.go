package oie

import (
	"testing"

	"github.com/oiextractor/core/ud"
)

// O cachorro foi visto. -> relation spans foi+visto (aux:pass chain)
func TestBuildRelationCollectsAuxPass(t *testing.T) {
	tokens := []ud.Token{
		{Index: 1, Text: "O", Lemma: "o", Pos: ud.DET, Head: 2, Dep: ud.DepDet},
		{Index: 2, Text: "cachorro", Lemma: "cachorro", Pos: ud.NOUN, Head: 4, Dep: ud.DepNsubjPass},
		{Index: 3, Text: "foi", Lemma: "ser", Pos: ud.AUX, Head: 4, Dep: ud.DepAuxPass},
		{Index: 4, Text: "visto", Lemma: "ver", Pos: ud.VERB, Head: 0, Dep: ud.DepRoot},
	}
	s, err := ud.NewSentence(1, "O cachorro foi visto", tokens)
	if err != nil {
		t.Fatalf("NewSentence: %v", err)
	}

	root, _ := s.Root()
	rel, effectiveVerb := buildRelation(s, root)

	if !rel.Has(3) || !rel.Has(4) {
		t.Errorf("expected relation to contain both the aux and the root verb, got %+v", rel.Tokens())
	}
	if effectiveVerb.Index != 4 {
		t.Errorf("effectiveVerb.Index = %d, want 4 (root is not a copula)", effectiveVerb.Index)
	}
}

// Ele é professor. -> effective verb redirects to the head when start is a
// copula.
func TestBuildRelationRedirectsCopulaToHead(t *testing.T) {
	tokens := []ud.Token{
		{Index: 1, Text: "Ele", Lemma: "ele", Pos: ud.PRON, Head: 3, Dep: ud.DepNsubj},
		{Index: 2, Text: "é", Lemma: "ser", Pos: ud.AUX, Head: 3, Dep: ud.DepCop},
		{Index: 3, Text: "professor", Lemma: "professor", Pos: ud.NOUN, Head: 0, Dep: ud.DepRoot},
	}
	s, err := ud.NewSentence(1, "Ele é professor", tokens)
	if err != nil {
		t.Fatalf("NewSentence: %v", err)
	}

	cop, ok := s.Token(2)
	if !ok {
		t.Fatal("expected token 2 to exist")
	}
	_, effectiveVerb := buildRelation(s, cop)
	if effectiveVerb.Index != 3 {
		t.Errorf("effectiveVerb.Index = %d, want 3 (copula redirects to its head)", effectiveVerb.Index)
	}
}

// Ele quer a trabalhar. -> chained xcomp with its own aux moves
// the relation core to the deepest chained verb (SPEC_FULL.md §4).
func TestBuildRelationChainsXcompWithAux(t *testing.T) {
	tokens := []ud.Token{
		{Index: 1, Text: "Ele", Lemma: "ele", Pos: ud.PRON, Head: 2, Dep: ud.DepNsubj},
		{Index: 2, Text: "quer", Lemma: "querer", Pos: ud.VERB, Head: 0, Dep: ud.DepRoot},
		{Index: 3, Text: "a", Lemma: "a", Pos: ud.AUX, Head: 4, Dep: ud.DepAux},
		{Index: 4, Text: "trabalhar", Lemma: "trabalhar", Pos: ud.VERB, Head: 2, Dep: ud.DepXcomp},
	}
	s, err := ud.NewSentence(1, "Ele quer a trabalhar", tokens)
	if err != nil {
		t.Fatalf("NewSentence: %v", err)
	}

	root, _ := s.Root()
	rel, _ := buildRelation(s, root)
	if rel.Core.Index != 4 {
		t.Errorf("rel.Core.Index = %d, want 4 (chained xcomp with its own aux becomes the core)", rel.Core.Index)
	}
	if !rel.Has(2) || !rel.Has(3) || !rel.Has(4) {
		t.Errorf("expected relation to contain the whole chain, got %+v", rel.Tokens())
	}
}
