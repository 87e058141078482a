package conllu

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/oiextractor/core/oie"
	"github.com/oiextractor/core/ud"
)

const sample = `# text = O cachorro corre
1	O	o	DET	_	_	2	det	_	_
2	cachorro	cachorro	NOUN	_	_	3	nsubj	_	_
3	corre	correr	VERB	_	_	0	root	_	_

# text = A menina que corre
1	A	o	DET	_	_	2	det	_	_
2	menina	menina	NOUN	_	_	0	root	_	_
3	que	que	PRON	_	PronType=Rel	4	nsubj	_	_
4	corre	correr	VERB	_	_	2	acl:relcl	_	_
`

func TestReaderNextParsesSentence(t *testing.T) {
	r := NewReader(strings.NewReader(sample))

	s1, err := r.Next()
	if err != nil {
		t.Fatalf("Next() (1st): %v", err)
	}
	if s1.Text != "O cachorro corre" {
		t.Errorf("Text = %q, want %q", s1.Text, "O cachorro corre")
	}
	if s1.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", s1.Len())
	}
	root, ok := s1.Root()
	if !ok || root.Text != "corre" {
		t.Errorf("Root() = %v, %v; want corre, true", root, ok)
	}

	s2, err := r.Next()
	if err != nil {
		t.Fatalf("Next() (2nd): %v", err)
	}
	que, ok := s2.Token(3)
	if !ok || !que.IsRelativePronoun() {
		t.Errorf("expected token 3 to be a relative pronoun, got %+v", que)
	}

	if _, err := r.Next(); err != io.EOF {
		t.Errorf("Next() at stream end = %v, want io.EOF", err)
	}
}

func TestReaderSkipsMultiwordTokens(t *testing.T) {
	const block = `# text = dos gatos
1-2	dos	_	_	_	_	_	_	_	_
1	de	de	ADP	_	_	2	case	_	_
2	gatos	gato	NOUN	_	_	0	root	_	_
`
	r := NewReader(strings.NewReader(block))
	s, err := r.Next()
	if err != nil {
		t.Fatalf("Next(): %v", err)
	}
	if s.Len() != 2 {
		t.Fatalf("Len() = %d, want 2 (multiword row skipped)", s.Len())
	}
}

func TestReaderReportsMalformedRow(t *testing.T) {
	const block = `# text = broken
1	a	a	NOUN
`
	r := NewReader(strings.NewReader(block))
	_, err := r.Next()
	if err == nil {
		t.Fatal("expected an error for a row with too few columns")
	}
	var malformed *oie.MalformedSentence
	if !errors.As(err, &malformed) {
		t.Errorf("expected *oie.MalformedSentence, got %T: %v", err, err)
	}
}

func TestReaderReadAllContinuesAfterMalformedBlock(t *testing.T) {
	const block = `# text = broken
1	a	a	NOUN
` + "\n" + sample

	r := NewReader(strings.NewReader(block))
	var sentences []*ud.Sentence
	var errs []error
	err := r.ReadAll(func(s *ud.Sentence) error {
		sentences = append(sentences, s)
		return nil
	}, func(e error) {
		errs = append(errs, e)
	})
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(errs) != 1 {
		t.Fatalf("got %d errors, want 1", len(errs))
	}
	if len(sentences) != 2 {
		t.Fatalf("got %d sentences, want 2 (the two valid blocks in sample)", len(sentences))
	}
}
