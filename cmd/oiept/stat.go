package main

import (
	"fmt"

	"github.com/oiextractor/core/corpus"
	"github.com/oiextractor/core/oie"
	"github.com/oiextractor/core/stat"
)

// statCommand aggregates token and extraction statistics over the stored
// corpus, or over a single document when opts.Doc is set.
func statCommand(opts StatOptions, ui UI) error {
	repo, closeRepo, err := openRepository(opts.CorpusPath)
	if err != nil {
		return err
	}
	defer closeRepo()

	var docs []corpus.Doc
	if opts.Doc != nil {
		doc, err := repo.Read(*opts.Doc)
		if err != nil {
			return err
		}
		docs = []corpus.Doc{doc}
	} else {
		list, err := repo.List("")
		if err != nil {
			return err
		}
		for _, d := range list {
			doc, err := repo.Read(d.ID)
			if err != nil {
				return err
			}
			docs = append(docs, doc)
		}
	}

	h := stat.NewHandler()
	for _, doc := range docs {
		extractions := make(map[int]*oie.ExtractionSet, len(doc.Sentences))
		for _, s := range doc.Sentences {
			extractions[s.ID] = oie.Extract(s, oie.Config{
				CoordinatingConjunctions: true, SubordinatingConjunctions: true, Appositive: true,
			})
		}
		h.Aggregate(doc, extractions)
	}

	s := h.Get()
	fmt.Fprintf(ui.Out, "sentences: %d\n", s.NumSentences)
	fmt.Fprintf(ui.Out, "tokens: %d (mean %d per sentence)\n", s.NumTokens, s.TokensPerSentenceMean)
	fmt.Fprintf(ui.Out, "extractions: %d (mean %d per sentence)\n", s.NumExtractions, s.ExtractionsPerSentenceMean)
	return nil
}
