// Package stat aggregates corpus-wide statistics over extraction sets, the
// way the teacher's stat package aggregates token statistics over a Doc.
package stat

import (
	"github.com/oiextractor/core/corpus"
	"github.com/oiextractor/core/oie"
)

// Stats holds aggregated extraction and token counts over a corpus.
type Stats struct {
	NumSentences   int
	NumTokens      int
	NumExtractions int

	TokensPerSentenceMean int
	TokensPerSentenceDis  map[int]int

	ExtractionsPerSentenceMean int
	ExtractionsPerSentenceDis  map[int]int

	SubjectLenDis    map[int]int
	RelationLenDis   map[int]int
	ComplementLenDis map[int]int
}

// Handler accumulates Stats across repeated calls to Aggregate.
type Handler struct {
	stats Stats
}

// NewHandler returns an empty Handler.
func NewHandler() *Handler {
	return &Handler{stats: Stats{
		TokensPerSentenceDis:      map[int]int{},
		ExtractionsPerSentenceDis: map[int]int{},
		SubjectLenDis:             map[int]int{},
		RelationLenDis:            map[int]int{},
		ComplementLenDis:          map[int]int{},
	}}
}

// Get returns the stats accumulated so far.
func (h *Handler) Get() Stats {
	return h.stats
}

// Aggregate folds one document's sentences and their extraction sets into
// the running stats.
func (h *Handler) Aggregate(doc corpus.Doc, extractions map[int]*oie.ExtractionSet) {
	h.stats.NumSentences += len(doc.Sentences)

	for _, sentence := range doc.Sentences {
		n := sentence.Len()
		h.stats.NumTokens += n
		h.stats.TokensPerSentenceDis[n]++

		set := extractions[sentence.ID]
		if set == nil {
			continue
		}
		num := set.Len()
		h.stats.NumExtractions += num
		h.stats.ExtractionsPerSentenceDis[num]++

		for _, e := range set.Extractions() {
			h.countExtraction(e)
		}
	}

	if h.stats.NumSentences > 0 {
		h.stats.TokensPerSentenceMean = h.stats.NumTokens / h.stats.NumSentences
		h.stats.ExtractionsPerSentenceMean = h.stats.NumExtractions / h.stats.NumSentences
	}
}

func (h *Handler) countExtraction(e *oie.Extraction) {
	h.stats.SubjectLenDis[len(e.Subject.Tokens())]++
	h.stats.RelationLenDis[len(e.Relation.Tokens())]++
	h.stats.ComplementLenDis[len(e.Complement.Tokens())]++

	for _, sub := range e.SubExtractions {
		h.countExtraction(sub)
	}
}
