package ud

import (
	"encoding/json"
	"fmt"
	"sort"
)

// Sentence is an ordered, immutable sequence of Tokens plus the tree induced
// by their head pointers. Tokens are addressed by their 1-based Index.
type Sentence struct {
	ID     int
	Text   string
	tokens []Token

	// children maps a token index (0 = virtual root) to the indices of its
	// dependents, kept sorted by sentence index.
	children map[int][]int

	root int
}

// NewSentence builds the immutable token graph for one sentence. It rejects
// malformed input the way the CoNLL-U reader boundary would: non-existent
// heads or a cycle in the head chain is reported as an error rather than
// silently producing a broken tree.
func NewSentence(id int, text string, tokens []Token) (*Sentence, error) {
	s := &Sentence{
		ID:       id,
		Text:     text,
		tokens:   tokens,
		children: make(map[int][]int, len(tokens)),
	}

	byIndex := make(map[int]bool, len(tokens))
	for _, t := range tokens {
		byIndex[t.Index] = true
	}

	for _, t := range tokens {
		if t.Head != 0 && !byIndex[t.Head] {
			return nil, fmt.Errorf("ud: token %d (%q) has head %d, which does not exist in the sentence", t.Index, t.Text, t.Head)
		}
		s.children[t.Head] = append(s.children[t.Head], t.Index)
		if t.Dep == DepRoot {
			s.root = t.Index
		}
	}
	for head := range s.children {
		sort.Ints(s.children[head])
	}

	if err := s.checkAcyclic(); err != nil {
		return nil, err
	}

	return s, nil
}

// checkAcyclic walks the head chain of every token with a visited set,
// guarding against malformed cyclic "trees" the way every DFS in this
// package does locally.
func (s *Sentence) checkAcyclic() error {
	for _, t := range s.tokens {
		visited := map[int]bool{t.Index: true}
		cur := t.Head
		for cur != 0 {
			if visited[cur] {
				return fmt.Errorf("ud: cycle detected in head chain starting at token %d", t.Index)
			}
			visited[cur] = true
			next, ok := s.Token(cur)
			if !ok {
				break
			}
			cur = next.Head
		}
	}
	return nil
}

// sentenceJSON is the wire form of a Sentence: the tree is re-derived from
// the head pointers on unmarshal via NewSentence.
type sentenceJSON struct {
	ID     int     `json:"id"`
	Text   string  `json:"text"`
	Tokens []Token `json:"tokens"`
}

// MarshalJSON serializes the sentence as its id, text and flat token list.
func (s *Sentence) MarshalJSON() ([]byte, error) {
	return json.Marshal(sentenceJSON{ID: s.ID, Text: s.Text, Tokens: s.tokens})
}

// UnmarshalJSON rebuilds the sentence, including its tree, from the wire
// form produced by MarshalJSON.
func (s *Sentence) UnmarshalJSON(data []byte) error {
	var w sentenceJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	built, err := NewSentence(w.ID, w.Text, w.Tokens)
	if err != nil {
		return err
	}
	*s = *built
	return nil
}

// Tokens returns the sentence's tokens in sentence order.
func (s *Sentence) Tokens() []Token {
	return s.tokens
}

// Len returns the number of tokens in the sentence.
func (s *Sentence) Len() int {
	return len(s.tokens)
}

// Token returns the token at the given 1-based index.
func (s *Sentence) Token(index int) (Token, bool) {
	for _, t := range s.tokens {
		if t.Index == index {
			return t, true
		}
	}
	return Token{}, false
}

// Root returns the sentence's root token (dep_ = root), if any.
func (s *Sentence) Root() (Token, bool) {
	if s.root == 0 {
		return Token{}, false
	}
	return s.Token(s.root)
}

// Head returns the head of a token, if it has one (head index != 0).
func (s *Sentence) Head(t Token) (Token, bool) {
	if t.Head == 0 {
		return Token{}, false
	}
	return s.Token(t.Head)
}

// Children returns the direct dependents of the token at the given index, in
// sentence order. Pass 0 to retrieve the top-level (root) children.
func (s *Sentence) Children(index int) []Token {
	idxs := s.children[index]
	out := make([]Token, 0, len(idxs))
	for _, i := range idxs {
		if t, ok := s.Token(i); ok {
			out = append(out, t)
		}
	}
	return out
}

// ChildWithDep returns the first child of t (in sentence order) whose
// dependency label is one of deps.
func (s *Sentence) ChildWithDep(t Token, deps ...Dep) (Token, bool) {
	for _, c := range s.Children(t.Index) {
		for _, d := range deps {
			if c.Dep == d {
				return c, true
			}
		}
	}
	return Token{}, false
}

// ChildrenWithDep returns all children of t (in sentence order) whose
// dependency label is one of deps.
func (s *Sentence) ChildrenWithDep(t Token, deps ...Dep) []Token {
	var out []Token
	for _, c := range s.Children(t.Index) {
		for _, d := range deps {
			if c.Dep == d {
				out = append(out, c)
				break
			}
		}
	}
	return out
}

// PredicateHeads returns the tokens that can serve as a predicate head for
// the orchestrator's top-level loop: every VERB/AUX token of the sentence.
// A non-verbal root (e.g. the predicate nominal of a copula) is not
// included. Order follows sentence index.
func (s *Sentence) PredicateHeads() []Token {
	var out []Token
	for _, t := range s.tokens {
		if t.IsVerbal() {
			out = append(out, t)
		}
	}
	return out
}
