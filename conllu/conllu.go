// Package conllu reads CoNLL-U v2 text into ud.Sentence values: blocks of
// tab-separated rows (ID FORM LEMMA UPOS XPOS FEATS HEAD DEPREL DEPS MISC),
// one sentence per block, blank line as separator.
package conllu

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/oiextractor/core/oie"
	"github.com/oiextractor/core/ud"
)

// Reader reads successive CoNLL-U blocks from an underlying stream.
type Reader struct {
	scanner *bufio.Scanner
	nextID  int
}

// NewReader wraps r as a CoNLL-U sentence source.
func NewReader(r io.Reader) *Reader {
	return &Reader{scanner: bufio.NewScanner(r), nextID: 1}
}

// Next reads and parses the next sentence block. It returns io.EOF (wrapped
// by neither MalformedSentence nor InternalInvariant) once the stream is
// exhausted. A malformed block is reported as *oie.MalformedSentence; the
// reader does not attempt to recover mid-block, but resumes at the next
// blank-line boundary for the following call.
func (r *Reader) Next() (*ud.Sentence, error) {
	var lines []string
	var text string
	for r.scanner.Scan() {
		line := r.scanner.Text()
		if strings.TrimSpace(line) == "" {
			if len(lines) == 0 {
				continue
			}
			break
		}
		if strings.HasPrefix(line, "# text = ") {
			text = strings.TrimPrefix(line, "# text = ")
			continue
		}
		if strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	if err := r.scanner.Err(); err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, io.EOF
	}

	id := r.nextID
	r.nextID++

	tokens, err := parseRows(id, lines)
	if err != nil {
		return nil, err
	}

	s, err := ud.NewSentence(id, text, tokens)
	if err != nil {
		return nil, &oie.MalformedSentence{SentenceID: id, Reason: "invalid head graph", Err: err}
	}
	return s, nil
}

// ReadAll drains the reader, calling onSentence for every successfully
// parsed sentence. A malformed block is reported to onError and skipped;
// reading continues with the next block. Matches the "reader rejects the
// block, the core never receives it" policy of the error handling design.
func (r *Reader) ReadAll(onSentence func(*ud.Sentence) error, onError func(error)) error {
	for {
		s, err := r.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			if onError != nil {
				onError(err)
			}
			continue
		}
		if cbErr := onSentence(s); cbErr != nil {
			return cbErr
		}
	}
}

func parseRows(sentenceID int, lines []string) ([]ud.Token, error) {
	tokens := make([]ud.Token, 0, len(lines))
	for _, line := range lines {
		cols := strings.Split(line, "\t")
		if len(cols) < 10 {
			return nil, &oie.MalformedSentence{SentenceID: sentenceID, Reason: "row has fewer than 10 columns: " + line}
		}

		// Multiword/empty-node ids ("3-4", "3.1") are not independent
		// syntactic tokens; skip them per UD convention.
		if strings.ContainsAny(cols[0], "-.") {
			continue
		}

		index, err := strconv.Atoi(cols[0])
		if err != nil {
			return nil, &oie.MalformedSentence{SentenceID: sentenceID, Reason: "non-integer id " + cols[0], Err: err}
		}

		head := 0
		if cols[6] != "_" {
			head, err = strconv.Atoi(cols[6])
			if err != nil {
				return nil, &oie.MalformedSentence{SentenceID: sentenceID, Reason: "non-integer head " + cols[6], Err: err}
			}
		}

		tokens = append(tokens, ud.Token{
			Index: index,
			Text:  cols[1],
			Lemma: cols[2],
			Pos:   ud.POS(cols[3]),
			Head:  head,
			Dep:   ud.Dep(baseDep(cols[7])),
			Feats: parseFeats(cols[5]),
		})
	}
	return tokens, nil
}

// baseDep keeps relation labels as-is; UD subtype labels (e.g. nsubj:pass)
// already appear verbatim in column 8 and match ud.Dep's constants.
func baseDep(col string) string {
	return col
}

func parseFeats(col string) ud.Feats {
	if col == "_" || col == "" {
		return nil
	}
	feats := make(ud.Feats)
	for _, pair := range strings.Split(col, "|") {
		kv := strings.SplitN(pair, "=", 2)
		if len(kv) != 2 {
			continue
		}
		feats[kv[0]] = kv[1]
	}
	return feats
}
