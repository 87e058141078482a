package span

import (
	"encoding/json"
	"testing"

	"github.com/oiextractor/core/ud"
)

func TestElementAddAndTokens(t *testing.T) {
	core := ud.Token{Index: 2, Text: "cachorro", Pos: ud.NOUN}
	e := NewElement(core)
	e.Add(ud.Token{Index: 1, Text: "o", Pos: ud.DET})

	tokens := e.Tokens()
	if len(tokens) != 2 || tokens[0].Index != 1 || tokens[1].Index != 2 {
		t.Fatalf("Tokens() = %v; want [o, cachorro] in sentence order", tokens)
	}

	if !e.Has(1) || !e.Has(2) {
		t.Error("expected Has to report both added tokens")
	}
	if e.Has(3) {
		t.Error("expected Has(3) to be false")
	}
}

func TestElementEmpty(t *testing.T) {
	var nilElement *Element
	if !nilElement.Empty() {
		t.Error("nil *Element should be Empty")
	}

	e := NewElement(ud.Token{Index: 1, Text: "x"})
	if e.Empty() {
		t.Error("a freshly constructed Element should never be Empty")
	}
}

func TestElementHasVerbal(t *testing.T) {
	e := NewElement(ud.Token{Index: 1, Text: "corre", Pos: ud.VERB})
	if !e.HasVerbal() {
		t.Error("expected element anchored on a VERB to report HasVerbal")
	}

	nounOnly := NewElement(ud.Token{Index: 1, Text: "cachorro", Pos: ud.NOUN})
	if nounOnly.HasVerbal() {
		t.Error("expected element with no VERB/AUX member not to report HasVerbal")
	}
}

func TestElementIsSingleRelativePronoun(t *testing.T) {
	rel := NewElement(ud.Token{Index: 1, Text: "que", Pos: ud.PRON, Feats: ud.Feats{"PronType": "Rel"}})
	if !rel.IsSingleRelativePronoun() {
		t.Error("expected single relative-pronoun element to report true")
	}

	rel.Add(ud.Token{Index: 2, Text: "corre", Pos: ud.VERB})
	if rel.IsSingleRelativePronoun() {
		t.Error("expected a two-member element not to report IsSingleRelativePronoun")
	}
}

func TestElementJSONRoundtrip(t *testing.T) {
	core := ud.Token{Index: 3, Text: "corre", Lemma: "correr", Pos: ud.VERB}
	e := NewElement(core)
	e.Synthetic = true

	data, err := json.Marshal(e)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var got Element
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if got.Core.Text != "corre" || !got.Synthetic || !got.Has(3) {
		t.Fatalf("roundtrip mismatch: got %+v", got)
	}
}
