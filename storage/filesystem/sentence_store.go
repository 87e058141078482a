// Package filesystem is a JSON-file backed SentenceRepository: one file per
// document holding its sentences, plus a sidecar file caching the
// extraction set computed for each sentence.
package filesystem

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/oiextractor/core/corpus"
	"github.com/oiextractor/core/oie"
	"github.com/oiextractor/core/span"
	"github.com/oiextractor/core/storage"
)

// SentenceStore is a filesystem-backed SentenceRepository. Document ids and
// titles (the file names) are set at construction; labels and content
// (sentences, cached extractions) are loaded into memory by Preload, which
// must run before List can filter by label and before Labels or
// FindCandidates can return anything.
type SentenceStore struct {
	docDir string

	// in-memory cache
	docs        []corpus.Doc
	extractions map[int]map[int]*oie.ExtractionSet // docID -> sentenceID -> set
}

var _ storage.SentenceRepository = (*SentenceStore)(nil)
var _ storage.Preloader = (*SentenceStore)(nil)

// NewSentenceStore scans docDir for *.json documents (extraction sidecars
// end in .extractions.json and are skipped here).
func NewSentenceStore(docDir string) (*SentenceStore, error) {
	files, err := os.ReadDir(docDir)
	if err != nil {
		return nil, err
	}

	var docs []corpus.Doc
	idx := 0
	for _, file := range files {
		name := file.Name()
		if filepath.Ext(name) != ".json" || strings.HasSuffix(name, ".extractions.json") {
			continue
		}
		docs = append(docs, corpus.Doc{ID: idx, Title: name})
		idx++
	}

	return &SentenceStore{
		docDir:      docDir,
		docs:        docs,
		extractions: make(map[int]map[int]*oie.ExtractionSet),
	}, nil
}

// Preload loads every document's sentences and cached extraction set into
// memory, the way LoadAll does for the teacher's DocStore.
func (h *SentenceStore) Preload(labels []string, cb func(current, total int, name string)) error {
	total := len(h.docs)
	for i := range h.docs {
		doc := &h.docs[i]
		if cb != nil {
			cb(i+1, total, doc.Title)
		}

		loaded, err := readDoc(filepath.Join(h.docDir, doc.Title))
		if err != nil {
			return err
		}
		doc.Sentences = loaded.Sentences
		doc.Labels = loaded.Labels

		sidecar := extractionsPath(h.docDir, doc.Title)
		sets, err := readExtractions(sidecar)
		if err != nil && !os.IsNotExist(err) {
			return err
		}
		h.extractions[doc.ID] = sets
	}
	return nil
}

func (h *SentenceStore) List(labelMatch string) ([]corpus.Doc, error) {
	if labelMatch == "" {
		return h.docs, nil
	}
	var out []corpus.Doc
	for _, d := range h.docs {
		for _, l := range d.Labels {
			if strings.Contains(l, labelMatch) {
				out = append(out, d)
				break
			}
		}
	}
	return out, nil
}

func (h *SentenceStore) Read(id int) (corpus.Doc, error) {
	for _, d := range h.docs {
		if d.ID == id {
			if d.Sentences != nil {
				return d, nil
			}
			return readDoc(filepath.Join(h.docDir, d.Title))
		}
	}
	return corpus.Doc{}, fmt.Errorf("doc id out of range: %d", id)
}

func (h *SentenceStore) Labels(pattern string) ([]string, error) {
	seen := map[string]bool{}
	for _, d := range h.docs {
		for _, l := range d.Labels {
			if pattern == "" || strings.Contains(l, pattern) {
				seen[l] = true
			}
		}
	}
	out := make([]string, 0, len(seen))
	for l := range seen {
		out = append(out, l)
	}
	sort.Strings(out)
	return out, nil
}

// FindCandidates scans the in-memory extraction cache for sentences whose
// subject/relation/complement lemmas match all of lemmas. Unlike the sqlite
// backend there is no index to intersect against; this is a linear scan
// appropriate to the filesystem backend's small-corpus use case.
func (h *SentenceStore) FindCandidates(lemmas []string, after storage.Cursor, limit int, onCandidate func(storage.SentenceResult) error) (storage.Cursor, error) {
	if len(lemmas) == 0 {
		return after, nil
	}

	cursor := after
	matched := 0
	rowID := int64(0)

	for _, doc := range h.docs {
		sets := h.extractions[doc.ID]
		for _, sent := range doc.Sentences {
			rowID++
			if storage.Cursor(rowID) <= after {
				continue
			}
			set := sets[sent.ID]
			if set == nil || !matchesAllLemmas(set, lemmas) {
				continue
			}
			if err := onCandidate(storage.SentenceResult{
				RowID: rowID, DocID: doc.ID, DocTitle: doc.Title, Sentence: sent,
			}); err != nil {
				return cursor, err
			}
			cursor = storage.Cursor(rowID)
			matched++
			if matched >= limit {
				return cursor, nil
			}
		}
	}
	return cursor, nil
}

func matchesAllLemmas(set *oie.ExtractionSet, lemmas []string) bool {
	present := extractionLemmas(set)
	for _, l := range lemmas {
		if !present[l] {
			return false
		}
	}
	return true
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

// Write persists doc's sentences to its own JSON file and the given
// per-sentence extraction sets to its sidecar file.
func (h *SentenceStore) Write(doc corpus.Doc, extractions map[int]*oie.ExtractionSet) error {
	path := filepath.Join(h.docDir, doc.Title)
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("IO error: %w", err)
	}

	if len(extractions) == 0 {
		return nil
	}
	sidecarData, err := json.MarshalIndent(extractions, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(extractionsPath(h.docDir, doc.Title), sidecarData, 0o644); err != nil {
		return fmt.Errorf("IO error: %w", err)
	}
	return nil
}

func extractionsPath(dir, title string) string {
	base := strings.TrimSuffix(title, filepath.Ext(title))
	return filepath.Join(dir, base+".extractions.json")
}

func readDoc(path string) (corpus.Doc, error) {
	f, err := os.ReadFile(path)
	if err != nil {
		return corpus.Doc{}, fmt.Errorf("IO error: %w", err)
	}
	var doc corpus.Doc
	if err := json.Unmarshal(f, &doc); err != nil {
		return corpus.Doc{}, fmt.Errorf("JSON decoding error: %w", err)
	}
	return doc, nil
}

func readExtractions(path string) (map[int]*oie.ExtractionSet, error) {
	f, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	sets := make(map[int]*oie.ExtractionSet)
	if err := json.Unmarshal(f, &sets); err != nil {
		return nil, fmt.Errorf("JSON decoding error: %w", err)
	}
	return sets, nil
}
