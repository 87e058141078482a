package render

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/oiextractor/core/oie"
	"github.com/oiextractor/core/span"
	"github.com/oiextractor/core/ud"
)

func TestJSONRendererRenderEmpty(t *testing.T) {
	var buf bytes.Buffer
	r := NewJSONRenderer(&buf)
	if err := r.Render(nil); err != nil {
		t.Fatalf("Render: %v", err)
	}

	var results []jsonResult
	if err := json.Unmarshal(buf.Bytes(), &results); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}

	if len(results) != 0 {
		t.Fatalf("expected 0 results, got %d", len(results))
	}
}

func TestJSONRendererRenderOneResult(t *testing.T) {
	corre := ud.Token{Index: 1, Text: "corre", Lemma: "correr", Pos: ud.VERB, Head: 0, Dep: ud.DepRoot}
	s, err := ud.NewSentence(5, "corre", []ud.Token{corre})
	if err != nil {
		t.Fatalf("NewSentence: %v", err)
	}

	set := oie.NewExtractionSet()
	set.Add(&oie.Extraction{
		Subject:  span.NewElement(corre),
		Relation: span.NewElement(corre),
	}, oie.Config{})

	var buf bytes.Buffer
	r := NewJSONRenderer(&buf)
	if err := r.Render([]Result{{DocID: 1, DocTitle: "doc.json", Sentence: s, Set: set}}); err != nil {
		t.Fatalf("Render: %v", err)
	}

	var results []jsonResult
	if err := json.Unmarshal(buf.Bytes(), &results); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}

	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].DocTitle != "doc.json" {
		t.Errorf("expected doc_title 'doc.json', got %q", results[0].DocTitle)
	}
	if results[0].SentenceID != 5 {
		t.Errorf("expected sentence_id 5, got %d", results[0].SentenceID)
	}
}
