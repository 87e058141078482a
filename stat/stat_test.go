package stat

import (
	"testing"

	"github.com/oiextractor/core/corpus"
	"github.com/oiextractor/core/oie"
	"github.com/oiextractor/core/span"
	"github.com/oiextractor/core/ud"
)

func TestHandlerAggregate(t *testing.T) {
	gato := ud.Token{Index: 1, Text: "gato", Lemma: "gato", Pos: ud.NOUN, Head: 2, Dep: ud.DepNsubj}
	corre := ud.Token{Index: 2, Text: "corre", Lemma: "correr", Pos: ud.VERB, Head: 0, Dep: ud.DepRoot}
	s, err := ud.NewSentence(1, "gato corre", []ud.Token{gato, corre})
	if err != nil {
		t.Fatalf("NewSentence: %v", err)
	}

	set := oie.NewExtractionSet()
	set.Add(&oie.Extraction{
		Subject:  span.NewElement(gato),
		Relation: span.NewElement(corre),
	}, oie.Config{})

	doc := corpus.Doc{ID: 1, Sentences: []*ud.Sentence{s}}

	h := NewHandler()
	h.Aggregate(doc, map[int]*oie.ExtractionSet{1: set})

	got := h.Get()
	if got.NumSentences != 1 {
		t.Errorf("expected 1 sentence, got %d", got.NumSentences)
	}
	if got.NumTokens != 2 {
		t.Errorf("expected 2 tokens, got %d", got.NumTokens)
	}
	if got.NumExtractions != 1 {
		t.Errorf("expected 1 extraction, got %d", got.NumExtractions)
	}
	if got.TokensPerSentenceMean != 2 {
		t.Errorf("expected mean 2, got %d", got.TokensPerSentenceMean)
	}
	if got.SubjectLenDis[1] != 1 {
		t.Errorf("expected subject len distribution[1]=1, got %d", got.SubjectLenDis[1])
	}
}
