// Package storage defines the repository interfaces both backends
// (filesystem and sqlite) implement: a sentence corpus and a cache of the
// extraction sets computed from it.
package storage

import (
	"github.com/oiextractor/core/corpus"
	"github.com/oiextractor/core/oie"
	"github.com/oiextractor/core/ud"
)

// Cursor paginates lemma-indexed queries over stored sentences.
type Cursor int64

// SentenceResult is one sentence returned by FindCandidates, annotated with
// enough of its owning document to render a result line.
type SentenceResult struct {
	RowID    int64
	DocID    int
	DocTitle string
	Sentence *ud.Sentence
}

// SentenceReader defines read operations for sentence corpus storage.
type SentenceReader interface {
	// List returns document metadata (Id, Title, Labels); sentence content
	// is not loaded. If labelMatch is non-empty, only documents with a
	// matching label are returned.
	List(labelMatch string) ([]corpus.Doc, error)

	// Read returns a document, with its sentences loaded, by id.
	Read(id int) (corpus.Doc, error)

	// FindCandidates returns sentences whose extraction lemmas (subject,
	// relation or complement) match ALL of lemmas, resuming after cursor.
	// It calls onCandidate for each result and returns the new cursor.
	FindCandidates(lemmas []string, after Cursor, limit int, onCandidate func(SentenceResult) error) (Cursor, error)

	// Labels returns all unique document labels, optionally filtered by a
	// substring pattern, sorted alphabetically.
	Labels(pattern string) ([]string, error)
}

// SentenceWriter defines write operations for sentence corpus storage.
type SentenceWriter interface {
	// Write persists a document and its sentences, indexing the lemmas of
	// the extractions computed for each sentence.
	Write(doc corpus.Doc, extractions map[int]*oie.ExtractionSet) error
}

// SentenceRepository combines read and write operations.
type SentenceRepository interface {
	SentenceReader
	SentenceWriter
}

// ExtractionReader reads a cached ExtractionSet for a sentence, avoiding
// recomputation on repeated queries over the same corpus.
type ExtractionReader interface {
	Extractions(docID, sentenceID int) (*oie.ExtractionSet, bool, error)
}

// Preloader is an optional capability for repositories that support eager
// loading of an entire corpus into memory.
type Preloader interface {
	Preload(labels []string, cb func(current, total int, name string)) error
}
