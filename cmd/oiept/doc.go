package main

import (
	"fmt"
	"strconv"

	"github.com/oiextractor/core/render"
)

// docCommand lists documents when no argument is given, or renders every
// sentence of one document otherwise.
func docCommand(opts DocOptions, arg string, ui UI) error {
	repo, closeRepo, err := openRepository(opts.CorpusPath)
	if err != nil {
		return err
	}
	defer closeRepo()

	if arg == "" {
		docs, err := repo.List("")
		if err != nil {
			return err
		}
		for _, d := range docs {
			fmt.Fprintf(ui.Out, "📖 %d %s\n", d.ID, d.Title)
		}
		return nil
	}

	docID, err := strconv.Atoi(arg)
	if err != nil {
		return fmt.Errorf("invalid doc_id: %v", err)
	}
	doc, err := repo.Read(docID)
	if err != nil {
		return err
	}

	r := render.NewTextRenderer()
	r.HasColor = false
	for _, s := range doc.Sentences {
		fmt.Fprintf(ui.Out, "✍  %d.%d ", docID, s.ID)
		for i, t := range s.Tokens() {
			if i > 0 {
				fmt.Fprint(ui.Out, " ")
			}
			fmt.Fprint(ui.Out, t.Text)
		}
		fmt.Fprintln(ui.Out)
	}
	return nil
}
