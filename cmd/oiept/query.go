package main

import (
	"github.com/gosuri/uiprogress"

	"github.com/oiextractor/core/oie"
	"github.com/oiextractor/core/query"
	"github.com/oiextractor/core/render"
	"github.com/oiextractor/core/storage"
)

// queryCommand opens the corpus and the saved-query library, preloads the
// corpus when the backend supports it, and hands both to an interactive
// query.Handler REPL.
func queryCommand(opts QueryOptions, ui UI) error {
	repo, closeRepo, err := openRepository(opts.CorpusPath)
	if err != nil {
		return err
	}
	defer closeRepo()

	if err := preload(repo, ui); err != nil {
		return err
	}

	fileRepo := query.NewFileRepository(opts.QueryPath)
	lib, err := fileRepo.ReadAll()
	if err != nil {
		return err
	}

	r := render.NewTextRenderer()
	r.HasColor = !opts.NoColor
	r.HasPrefix = !opts.NoPrefix
	r.Format = opts.Format
	r.W = ui.Out

	cache := map[int]*oie.ExtractionSet{}
	extract := func(sr storage.SentenceResult) (*oie.ExtractionSet, error) {
		key := int(sr.RowID)
		if set, ok := cache[key]; ok {
			return set, nil
		}
		set := oie.Extract(sr.Sentence, opts.Config)
		cache[key] = set
		return set, nil
	}

	h := query.NewHandler(repo, lib, r, extract)
	return h.Run()
}

// preload calls Preload on repo when the backend implements
// storage.Preloader (the filesystem backend always does; the sqlite backend
// serves lemma lookups directly from its index and needs no warm-up).
func preload(repo storage.SentenceReader, ui UI) error {
	preloader, ok := repo.(storage.Preloader)
	if !ok {
		return nil
	}

	docs, err := repo.List("")
	if err != nil {
		return err
	}

	uiprogress.Start()
	bar := uiprogress.AddBar(len(docs))
	bar.AppendCompleted()
	bar.PrependElapsed()
	err = preloader.Preload(nil, func(current, total int, name string) {
		bar.Incr()
	})
	uiprogress.Stop()
	return err
}
