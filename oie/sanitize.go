package oie

import (
	"strings"

	"github.com/oiextractor/core/span"
	"github.com/oiextractor/core/ud"
)

// validMidSpanPunct is the punctuation whitelist original_source/src/extraction.py
// applies inside a span (not just at its edges): anything else (";", ":",
// "--") is filtered out by the sanitizer before rendering.
var validMidSpanPunct = map[string]bool{
	"(": true, ")": true,
	"{": true, "}": true,
	`"`: true, "'": true,
	"[": true, "]": true,
	",": true,
}

var bracketPairs = map[string]string{
	"(": ")",
	"[": "]",
	"{": "}",
}

// Render sanitizes and joins an Element's member tokens into its surface
// string, per C8 steps 1-4.
func Render(e *span.Element) string {
	tokens := filterMidSpanPunct(e.Tokens())
	tokens = trimBracketPair(tokens)
	tokens = trimLeadingPunctOrCC(tokens)
	tokens = trimTrailingPunct(tokens)
	return joinTokens(tokens)
}

// filterMidSpanPunct drops any PUNCT token whose surface text is not in the
// whitelist, wherever it falls in the span.
func filterMidSpanPunct(tokens []ud.Token) []ud.Token {
	out := make([]ud.Token, 0, len(tokens))
	for _, t := range tokens {
		if t.Pos == ud.PUNCT && !validMidSpanPunct[t.Text] {
			continue
		}
		out = append(out, t)
	}
	return out
}

// trimBracketPair drops the first and last tokens if they form a matching
// bracket pair from {(,),[,],{,}}.
func trimBracketPair(tokens []ud.Token) []ud.Token {
	if len(tokens) < 2 {
		return tokens
	}
	first, last := tokens[0], tokens[len(tokens)-1]
	if close, ok := bracketPairs[first.Text]; ok && last.Text == close {
		return tokens[1 : len(tokens)-1]
	}
	return tokens
}

func isBracket(t ud.Token) bool {
	if _, ok := bracketPairs[t.Text]; ok {
		return true
	}
	for _, c := range bracketPairs {
		if t.Text == c {
			return true
		}
	}
	return false
}

// trimLeadingPunctOrCC drops leading tokens that are PUNCT (excluding
// brackets) or a cc connector.
func trimLeadingPunctOrCC(tokens []ud.Token) []ud.Token {
	i := 0
	for i < len(tokens) {
		t := tokens[i]
		isPunct := t.Pos == ud.PUNCT && !isBracket(t)
		if isPunct || t.Dep == ud.DepCc {
			i++
			continue
		}
		break
	}
	return tokens[i:]
}

// trimTrailingPunct drops trailing tokens that are PUNCT, excluding a
// surviving half of a bracket pair.
func trimTrailingPunct(tokens []ud.Token) []ud.Token {
	j := len(tokens)
	for j > 0 {
		t := tokens[j-1]
		if t.Pos == ud.PUNCT && !isBracket(t) {
			j--
			continue
		}
		break
	}
	return tokens[:j]
}

// joinTokens renders surviving tokens with a single space between them,
// except that a clitic marker "-" is attached without surrounding spaces
// (e.g. "Vende-se").
func joinTokens(tokens []ud.Token) string {
	var b strings.Builder
	for i, t := range tokens {
		if i == 0 {
			b.WriteString(t.Text)
			continue
		}
		if t.Text == "-" || tokens[i-1].Text == "-" {
			b.WriteString(t.Text)
			continue
		}
		b.WriteByte(' ')
		b.WriteString(t.Text)
	}
	return b.String()
}
