package zombiezen

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"

	"github.com/oiextractor/core/corpus"
	"github.com/oiextractor/core/oie"
	"github.com/oiextractor/core/span"
	"github.com/oiextractor/core/storage"
	"github.com/oiextractor/core/ud"
)

// SentenceStore is a zombiezen.com/go/sqlite backed storage.SentenceRepository.
// Like the teacher's doc_store.go, FindCandidates resolves matching rowIDs
// with one INTERSECT query per call and fetches sentence data in a single
// bulk follow-up query, rather than one round-trip per row.
type SentenceStore struct {
	pool *sqlitex.Pool
}

var _ storage.SentenceRepository = (*SentenceStore)(nil)

// NewSentenceStore wraps an already-open, schema-initialized pool.
func NewSentenceStore(pool *sqlitex.Pool) *SentenceStore {
	return &SentenceStore{pool: pool}
}

func (h *SentenceStore) List(labelMatch string) ([]corpus.Doc, error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return nil, err
	}
	defer h.pool.Put(conn)

	var docs []corpus.Doc
	err = sqlitex.Execute(conn, "SELECT id, title, labels FROM docs ORDER BY title", &sqlitex.ExecOptions{
		ResultFunc: func(stmt *sqlite.Stmt) error {
			doc := corpus.Doc{ID: stmt.ColumnInt(0), Title: stmt.ColumnText(1)}
			if labels := stmt.ColumnText(2); labels != "" {
				doc.Labels = strings.Split(labels, ",")
			}
			if labelMatch != "" {
				matched := false
				for _, l := range doc.Labels {
					if strings.Contains(l, labelMatch) {
						matched = true
						break
					}
				}
				if !matched {
					return nil
				}
			}
			docs = append(docs, doc)
			return nil
		},
	})
	return docs, err
}

func (h *SentenceStore) Read(id int) (corpus.Doc, error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return corpus.Doc{}, err
	}
	defer h.pool.Put(conn)

	doc := corpus.Doc{ID: id}
	found := false
	err = sqlitex.Execute(conn, "SELECT title, labels FROM docs WHERE id = ?", &sqlitex.ExecOptions{
		Args: []interface{}{id},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			found = true
			doc.Title = stmt.ColumnText(0)
			if labels := stmt.ColumnText(1); labels != "" {
				doc.Labels = strings.Split(labels, ",")
			}
			return nil
		},
	})
	if err != nil {
		return corpus.Doc{}, err
	}
	if !found {
		return corpus.Doc{}, fmt.Errorf("doc not found: %d", id)
	}

	err = sqlitex.Execute(conn, "SELECT data FROM sentences WHERE doc_id = ? ORDER BY rowid", &sqlitex.ExecOptions{
		Args: []interface{}{id},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			s := &ud.Sentence{}
			if err := json.Unmarshal([]byte(stmt.ColumnText(0)), s); err != nil {
				return err
			}
			doc.Sentences = append(doc.Sentences, s)
			return nil
		},
	})
	if err != nil {
		return corpus.Doc{}, err
	}
	return doc, nil
}

func (h *SentenceStore) Labels(pattern string) ([]string, error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return nil, err
	}
	defer h.pool.Put(conn)

	seen := map[string]bool{}
	err = sqlitex.Execute(conn, "SELECT labels FROM docs", &sqlitex.ExecOptions{
		ResultFunc: func(stmt *sqlite.Stmt) error {
			for _, l := range strings.Split(stmt.ColumnText(0), ",") {
				if l == "" {
					continue
				}
				if pattern == "" || strings.Contains(l, pattern) {
					seen[l] = true
				}
			}
			return nil
		},
	})
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(seen))
	for l := range seen {
		out = append(out, l)
	}
	sort.Strings(out)
	return out, nil
}

// FindCandidates intersects extraction_lemmas rows for every required
// lemma to resolve matching sentence rowIDs, then fetches sentence data for
// all matched rowIDs in one bulk query.
func (h *SentenceStore) FindCandidates(lemmas []string, after storage.Cursor, limit int, onCandidate func(storage.SentenceResult) error) (storage.Cursor, error) {
	if len(lemmas) == 0 {
		return after, nil
	}

	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return after, err
	}
	defer h.pool.Put(conn)

	var q strings.Builder
	var args []interface{}
	for i, lemma := range lemmas {
		if i > 0 {
			q.WriteString(" INTERSECT ")
		}
		q.WriteString("SELECT sentence_rowid FROM extraction_lemmas WHERE lemma = ? AND sentence_rowid > ?")
		args = append(args, lemma, after)
	}
	q.WriteString(" LIMIT ?")
	args = append(args, limit)

	var rowIDs []int64
	err = sqlitex.Execute(conn, q.String(), &sqlitex.ExecOptions{
		Args: args,
		ResultFunc: func(stmt *sqlite.Stmt) error {
			rowIDs = append(rowIDs, stmt.ColumnInt64(0))
			return nil
		},
	})
	if err != nil {
		return after, err
	}
	if len(rowIDs) == 0 {
		return after, nil
	}

	idStrings := make([]string, len(rowIDs))
	for i, id := range rowIDs {
		idStrings[i] = strconv.FormatInt(id, 10)
	}

	newCursor := after
	query := fmt.Sprintf(`
		SELECT s.rowid, s.doc_id, d.title, s.data
		FROM sentences s JOIN docs d ON s.doc_id = d.id
		WHERE s.rowid IN (%s)
		ORDER BY s.rowid`, strings.Join(idStrings, ","))

	err = sqlitex.Execute(conn, query, &sqlitex.ExecOptions{
		ResultFunc: func(stmt *sqlite.Stmt) error {
			rowID := stmt.ColumnInt64(0)
			if storage.Cursor(rowID) > newCursor {
				newCursor = storage.Cursor(rowID)
			}
			s := &ud.Sentence{}
			if err := json.Unmarshal([]byte(stmt.ColumnText(3)), s); err != nil {
				return err
			}
			return onCandidate(storage.SentenceResult{
				RowID: rowID, DocID: stmt.ColumnInt(1), DocTitle: stmt.ColumnText(2), Sentence: s,
			})
		},
	})
	if err != nil {
		return after, err
	}
	return newCursor, nil
}

// Write inserts doc and its sentences, indexing the lemmas of each
// sentence's extraction set (when present) for FindCandidates lookups.
func (h *SentenceStore) Write(doc corpus.Doc, extractions map[int]*oie.ExtractionSet) error {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return err
	}
	defer h.pool.Put(conn)

	endFn := sqlitex.Save(conn)
	defer endFn(&err)

	err = sqlitex.Execute(conn, "INSERT INTO docs (title, labels) VALUES (?, ?)", &sqlitex.ExecOptions{
		Args: []interface{}{doc.Title, strings.Join(doc.Labels, ",")},
	})
	if err != nil {
		return fmt.Errorf("failed to insert doc: %w", err)
	}
	docID := conn.LastInsertRowID()

	for _, sentence := range doc.Sentences {
		data, marshalErr := json.Marshal(sentence)
		if marshalErr != nil {
			return marshalErr
		}

		err = sqlitex.Execute(conn, "INSERT INTO sentences (doc_id, sentence_id, data) VALUES (?, ?, ?)", &sqlitex.ExecOptions{
			Args: []interface{}{docID, sentence.ID, string(data)},
		})
		if err != nil {
			return fmt.Errorf("failed to insert sentence: %w", err)
		}
		rowID := conn.LastInsertRowID()

		set := extractions[sentence.ID]
		if set == nil {
			continue
		}
		setData, marshalErr := json.Marshal(set)
		if marshalErr != nil {
			return marshalErr
		}
		err = sqlitex.Execute(conn, "INSERT INTO extractions (sentence_rowid, data) VALUES (?, ?)", &sqlitex.ExecOptions{
			Args: []interface{}{rowID, string(setData)},
		})
		if err != nil {
			return fmt.Errorf("failed to insert extraction set: %w", err)
		}

		for lemma := range extractionLemmas(set) {
			err = sqlitex.Execute(conn, "INSERT INTO extraction_lemmas (lemma, sentence_rowid) VALUES (?, ?)", &sqlitex.ExecOptions{
				Args: []interface{}{lemma, rowID},
			})
			if err != nil {
				return fmt.Errorf("failed to insert lemma index: %w", err)
			}
		}
	}

	return nil
}

func extractionLemmas(set *oie.ExtractionSet) map[string]bool {
	lemmas := map[string]bool{}
	var collect func(e *oie.Extraction)
	collect = func(e *oie.Extraction) {
		for _, el := range []*span.Element{e.Subject, e.Relation, e.Complement} {
			for _, t := range el.Tokens() {
				if t.Lemma != "" {
					lemmas[t.Lemma] = true
				}
			}
		}
		for _, sub := range e.SubExtractions {
			collect(sub)
		}
	}
	for _, e := range set.Extractions() {
		collect(e)
	}
	return lemmas
}
