package filesystem

import (
	"testing"

	"github.com/oiextractor/core/corpus"
	"github.com/oiextractor/core/oie"
	"github.com/oiextractor/core/span"
	"github.com/oiextractor/core/storage"
	"github.com/oiextractor/core/ud"
)

func buildTestSentence(t *testing.T) *ud.Sentence {
	t.Helper()
	s, err := ud.NewSentence(1, "O cachorro corre", []ud.Token{
		{Index: 1, Text: "O", Lemma: "o", Pos: ud.DET, Head: 2, Dep: ud.DepDet},
		{Index: 2, Text: "cachorro", Lemma: "cachorro", Pos: ud.NOUN, Head: 3, Dep: ud.DepNsubj},
		{Index: 3, Text: "corre", Lemma: "correr", Pos: ud.VERB, Head: 0, Dep: ud.DepRoot},
	})
	if err != nil {
		t.Fatalf("NewSentence: %v", err)
	}
	return s
}

func TestSentenceStoreWriteThenPreloadAndFindCandidates(t *testing.T) {
	dir := t.TempDir()

	sentence := buildTestSentence(t)
	doc := corpus.Doc{Title: "doc1.json", Labels: []string{"fable"}, Sentences: []*ud.Sentence{sentence}}

	set := oie.NewExtractionSet()
	set.Add(&oie.Extraction{
		Subject:  span.NewElement(ud.Token{Index: 2, Text: "cachorro", Lemma: "cachorro"}),
		Relation: span.NewElement(ud.Token{Index: 3, Text: "corre", Lemma: "correr", Pos: ud.VERB}),
	}, oie.Config{})

	writer, err := NewSentenceStore(dir)
	if err != nil {
		t.Fatalf("NewSentenceStore (pre-write): %v", err)
	}
	if err := writer.Write(doc, map[int]*oie.ExtractionSet{1: set}); err != nil {
		t.Fatalf("Write: %v", err)
	}

	store, err := NewSentenceStore(dir)
	if err != nil {
		t.Fatalf("NewSentenceStore: %v", err)
	}

	docs, err := store.List("")
	if err != nil || len(docs) != 1 {
		t.Fatalf("List(\"\") = %v, %v; want 1 doc", docs, err)
	}

	if err := store.Preload(nil, nil); err != nil {
		t.Fatalf("Preload: %v", err)
	}

	read, err := store.Read(docs[0].ID)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(read.Sentences) != 1 || read.Sentences[0].Text != "O cachorro corre" {
		t.Fatalf("Read() = %+v, want one sentence with the original text", read)
	}

	labels, err := store.Labels("")
	if err != nil || len(labels) != 1 || labels[0] != "fable" {
		t.Fatalf("Labels(\"\") = %v, %v; want [fable]", labels, err)
	}

	var got []string
	_, err = store.FindCandidates([]string{"cachorro", "correr"}, 0, 10, func(r storage.SentenceResult) error {
		got = append(got, r.Sentence.Text)
		return nil
	})
	if err != nil {
		t.Fatalf("FindCandidates: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("FindCandidates matched %d sentences, want 1", len(got))
	}

	var none []string
	_, err = store.FindCandidates([]string{"gato"}, 0, 10, func(r storage.SentenceResult) error {
		none = append(none, r.Sentence.Text)
		return nil
	})
	if err != nil {
		t.Fatalf("FindCandidates (no match): %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("FindCandidates matched %d for an absent lemma, want 0", len(none))
	}
}
