// Package zombiezen is a zombiezen.com/go/sqlite backed SentenceRepository,
// indexing extraction lemmas the way the teacher's sqlite backend indexes
// topic-match lemmas.
package zombiezen

import (
	"fmt"
	"runtime"

	"zombiezen.com/go/sqlite/sqlitex"
)

// NewPool opens a connection pool at dbPath in WAL mode and applies the
// package's embedded schema before returning it.
func NewPool(dbPath string) (*sqlitex.Pool, error) {
	poolSize := runtime.NumCPU()
	initString := fmt.Sprintf("file:%s?_journal_mode=WAL&_busy_timeout=5000", dbPath)

	pool, err := sqlitex.NewPool(initString, sqlitex.PoolOptions{
		PoolSize: poolSize,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open zombiezen pool at %s: %w", dbPath, err)
	}

	if err := CreateSchemas(pool, "schema.sql"); err != nil {
		pool.Close()
		return nil, err
	}

	return pool, nil
}
