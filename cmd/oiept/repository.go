package main

import (
	"strings"

	"github.com/oiextractor/core/storage"
	"github.com/oiextractor/core/storage/filesystem"
	"github.com/oiextractor/core/storage/sqlite/zombiezen"
	"zombiezen.com/go/sqlite/sqlitex"
)

// openRepository picks the sqlite backend for a ".db" corpusPath and the
// filesystem backend otherwise, mirroring the teacher's file-or-db-id
// dispatch in its own doc/sentence/query commands.
func openRepository(corpusPath string) (storage.SentenceRepository, func() error, error) {
	if strings.HasSuffix(corpusPath, ".db") {
		pool, err := zombiezen.NewPool(corpusPath)
		if err != nil {
			return nil, nil, err
		}
		return zombiezen.NewSentenceStore(pool), closePool(pool), nil
	}

	store, err := filesystem.NewSentenceStore(corpusPath)
	if err != nil {
		return nil, nil, err
	}
	return store, func() error { return nil }, nil
}

func closePool(pool *sqlitex.Pool) func() error {
	return func() error { return pool.Close() }
}
