package main

import (
	"fmt"
)

// sentenceCommand prints per-token detail for one sentence: index, form,
// lemma, UPOS tag, head index and dependency relation.
func sentenceCommand(opts SentenceOptions, docID, sentID int, ui UI) error {
	repo, closeRepo, err := openRepository(opts.CorpusPath)
	if err != nil {
		return err
	}
	defer closeRepo()

	doc, err := repo.Read(docID)
	if err != nil {
		return err
	}

	for _, s := range doc.Sentences {
		if s.ID != sentID {
			continue
		}
		fmt.Fprintf(ui.Out, "✍  %d.%d %s\n", docID, s.ID, s.Text)
		for _, t := range s.Tokens() {
			fmt.Fprintf(ui.Out, "%4d %20q %15q %8s %6d %10s\n", t.Index, t.Text, t.Lemma, t.Pos, t.Head, t.Dep)
		}
		return nil
	}
	return fmt.Errorf("sentence not found: %d.%d", docID, sentID)
}
