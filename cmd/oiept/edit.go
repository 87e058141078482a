package main

import (
	"github.com/oiextractor/core/query"
)

// editCommand opens the saved-query library and hands it to an interactive
// query.EditHandler REPL for adding and removing saved patterns.
func editCommand(opts EditOptions, ui UI) error {
	fileRepo := query.NewFileRepository(opts.QueryPath)
	lib, err := fileRepo.ReadAll()
	if err != nil {
		return err
	}

	h := query.NewEditHandler(lib, fileRepo, fileRepo)
	return h.Run()
}
