package zombiezen

import (
	"path/filepath"
	"testing"

	"github.com/oiextractor/core/corpus"
	"github.com/oiextractor/core/oie"
	"github.com/oiextractor/core/span"
	"github.com/oiextractor/core/storage"
	"github.com/oiextractor/core/ud"
)

func openTestPool(t *testing.T) *SentenceStore {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	pool, err := NewPool(dbPath)
	if err != nil {
		t.Fatalf("NewPool: %v", err)
	}
	t.Cleanup(func() { pool.Close() })
	return NewSentenceStore(pool)
}

func TestSentenceStoreWriteListReadRoundtrip(t *testing.T) {
	store := openTestPool(t)

	sentence, err := ud.NewSentence(1, "O cachorro corre", []ud.Token{
		{Index: 1, Text: "O", Lemma: "o", Pos: ud.DET, Head: 2, Dep: ud.DepDet},
		{Index: 2, Text: "cachorro", Lemma: "cachorro", Pos: ud.NOUN, Head: 3, Dep: ud.DepNsubj},
		{Index: 3, Text: "corre", Lemma: "correr", Pos: ud.VERB, Head: 0, Dep: ud.DepRoot},
	})
	if err != nil {
		t.Fatalf("NewSentence: %v", err)
	}

	set := oie.NewExtractionSet()
	set.Add(&oie.Extraction{
		Subject:  span.NewElement(ud.Token{Index: 2, Text: "cachorro", Lemma: "cachorro"}),
		Relation: span.NewElement(ud.Token{Index: 3, Text: "corre", Lemma: "correr", Pos: ud.VERB}),
	}, oie.Config{})

	doc := corpus.Doc{Title: "fables.json", Labels: []string{"fable"}, Sentences: []*ud.Sentence{sentence}}
	if err := store.Write(doc, map[int]*oie.ExtractionSet{1: set}); err != nil {
		t.Fatalf("Write: %v", err)
	}

	docs, err := store.List("")
	if err != nil || len(docs) != 1 || docs[0].Title != "fables.json" {
		t.Fatalf("List(\"\") = %+v, %v; want one doc titled fables.json", docs, err)
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

	var matched []string
	_, err = store.FindCandidates([]string{"cachorro", "correr"}, 0, 10, func(r storage.SentenceResult) error {
		matched = append(matched, r.Sentence.Text)
		return nil
	})
	if err != nil {
		t.Fatalf("FindCandidates: %v", err)
	}
	if len(matched) != 1 {
		t.Fatalf("FindCandidates matched %d, want 1", len(matched))
	}

	var none []string
	_, err = store.FindCandidates([]string{"gato"}, 0, 10, func(r storage.SentenceResult) error {
		none = append(none, r.Sentence.Text)
		return nil
	})
	if err != nil {
		t.Fatalf("FindCandidates (absent lemma): %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("FindCandidates matched %d for an absent lemma, want 0", len(none))
	}
}

func TestSentenceStoreReadMissingDoc(t *testing.T) {
	store := openTestPool(t)
	if _, err := store.Read(999); err == nil {
		t.Error("expected an error reading a nonexistent doc id")
	}
}
