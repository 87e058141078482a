package ud

import "testing"

// o cachorro corre
func buildSentence(t *testing.T) *Sentence {
	t.Helper()
	tokens := []Token{
		{Index: 1, Text: "O", Lemma: "o", Pos: DET, Head: 2, Dep: DepDet},
		{Index: 2, Text: "cachorro", Lemma: "cachorro", Pos: NOUN, Head: 3, Dep: DepNsubj},
		{Index: 3, Text: "corre", Lemma: "correr", Pos: VERB, Head: 0, Dep: DepRoot},
	}
	s, err := NewSentence(1, "O cachorro corre", tokens)
	if err != nil {
		t.Fatalf("NewSentence: %v", err)
	}
	return s
}

func TestNewSentenceBuildsTree(t *testing.T) {
	s := buildSentence(t)

	root, ok := s.Root()
	if !ok || root.Text != "corre" {
		t.Fatalf("Root() = %v, %v; want corre, true", root, ok)
	}

	children := s.Children(3)
	if len(children) != 1 || children[0].Text != "cachorro" {
		t.Fatalf("Children(3) = %v; want [cachorro]", children)
	}

	nsubj, ok := s.ChildWithDep(root, DepNsubj)
	if !ok || nsubj.Text != "cachorro" {
		t.Fatalf("ChildWithDep(root, nsubj) = %v, %v; want cachorro, true", nsubj, ok)
	}
}

func TestNewSentenceRejectsMissingHead(t *testing.T) {
	tokens := []Token{
		{Index: 1, Text: "corre", Pos: VERB, Head: 5, Dep: DepRoot},
	}
	if _, err := NewSentence(1, "corre", tokens); err == nil {
		t.Fatal("expected error for a head pointing outside the sentence")
	}
}

func TestNewSentenceRejectsCycle(t *testing.T) {
	tokens := []Token{
		{Index: 1, Text: "a", Pos: NOUN, Head: 2, Dep: DepDep},
		{Index: 2, Text: "b", Pos: NOUN, Head: 1, Dep: DepDep},
	}
	if _, err := NewSentence(1, "a b", tokens); err == nil {
		t.Fatal("expected error for a cyclic head chain")
	}
}

func TestSentencePredicateHeads(t *testing.T) {
	s := buildSentence(t)
	heads := s.PredicateHeads()
	if len(heads) != 1 || heads[0].Text != "corre" {
		t.Fatalf("PredicateHeads() = %v; want [corre]", heads)
	}
}

func TestSentenceJSONRoundtrip(t *testing.T) {
	s := buildSentence(t)

	data, err := s.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}

	var got Sentence
	if err := got.UnmarshalJSON(data); err != nil {
		t.Fatalf("UnmarshalJSON: %v", err)
	}

	if got.ID != s.ID || got.Text != s.Text || got.Len() != s.Len() {
		t.Fatalf("roundtrip mismatch: got %+v, want ID=%d Text=%q Len=%d", got, s.ID, s.Text, s.Len())
	}

	root, ok := got.Root()
	if !ok || root.Text != "corre" {
		t.Fatalf("roundtripped Root() = %v, %v; want corre, true", root, ok)
	}
}
