package main

import (
	"fmt"
	"os"

	"github.com/gosuri/uiprogress"

	"github.com/oiextractor/core/conllu"
	"github.com/oiextractor/core/corpus"
	"github.com/oiextractor/core/oie"
	"github.com/oiextractor/core/ud"
)

// importCommand reads a CoNLL-U file, extracts triples from each sentence
// with opts.Config, and writes the document and its extractions to the
// corpus store.
func importCommand(opts ImportOptions, ui UI) error {
	f, err := os.Open(opts.File)
	if err != nil {
		return fmt.Errorf("opening %s: %w", opts.File, err)
	}
	defer f.Close()

	reader := conllu.NewReader(f)

	var sentences []*ud.Sentence
	for {
		s, err := reader.Next()
		if err != nil {
			break
		}
		sentences = append(sentences, s)
	}

	uiprogress.Start()
	bar := uiprogress.AddBar(len(sentences))
	bar.AppendCompleted()
	bar.PrependElapsed()

	extractions := make(map[int]*oie.ExtractionSet, len(sentences))
	for _, s := range sentences {
		extractions[s.ID] = oie.Extract(s, opts.Config)
		bar.Incr()
	}
	uiprogress.Stop()

	repo, closeRepo, err := openRepository(opts.CorpusPath)
	if err != nil {
		return err
	}
	defer closeRepo()

	doc := corpus.Doc{Title: opts.Title, Labels: opts.Labels, Sentences: sentences}
	if err := repo.Write(doc, extractions); err != nil {
		return err
	}

	numExtractions := 0
	for _, set := range extractions {
		numExtractions += set.Len()
	}
	fmt.Fprintf(ui.Out, "imported %d sentences, %d extractions\n", len(sentences), numExtractions)
	return nil
}
