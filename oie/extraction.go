package oie

import (
	"encoding/json"

	"github.com/oiextractor/core/span"
)

// Extraction is a surface proposition (subject; relation; complement)
// derived from the tree, possibly carrying nested sub-extractions for
// subordinate clauses. Any of Subject, Relation, Complement may be nil.
type Extraction struct {
	Subject        *span.Element
	Relation       *span.Element
	Complement     *span.Element
	SubExtractions []*Extraction
}

// TupleForm is an Extraction's deduplication key: sanitized subject,
// relation, complement strings plus the ordered tuple forms of its
// sub-extractions.
type TupleForm struct {
	Subject, Relation, Complement string
	Subs                          []TupleForm
}

func (e *Extraction) tupleForm() TupleForm {
	tf := TupleForm{
		Subject:    renderOrEmpty(e.Subject),
		Relation:   renderOrEmpty(e.Relation),
		Complement: renderOrEmpty(e.Complement),
	}
	for _, sub := range e.SubExtractions {
		tf.Subs = append(tf.Subs, sub.tupleForm())
	}
	return tf
}

func renderOrEmpty(e *span.Element) string {
	if e.Empty() {
		return ""
	}
	return Render(e)
}

// key flattens a TupleForm into a single comparable string for use as a map
// key; sanitized rendering is canonical so this is a sufficient equality
// check (§9 Design Notes).
func (tf TupleForm) key() string {
	s := tf.Subject + "\x00" + tf.Relation + "\x00" + tf.Complement
	for _, sub := range tf.Subs {
		s += "\x01" + sub.key()
	}
	return s
}

// IsValid implements C8's is_valid rule.
func (e *Extraction) IsValid(cfg Config) bool {
	if len(e.validSubExtractions(cfg)) > 0 && e.Subject.Empty() && e.Relation.Empty() {
		return true
	}
	if e.Subject.Empty() && !cfg.HiddenSubjects {
		return false
	}
	if e.Subject.IsSingleRelativePronoun() {
		return false
	}
	if e.Relation.Empty() {
		return false
	}
	if !e.Relation.Synthetic && !e.Relation.HasVerbal() {
		return false
	}
	return true
}

func (e *Extraction) validSubExtractions(cfg Config) []*Extraction {
	var out []*Extraction
	for _, sub := range e.SubExtractions {
		if sub.IsValid(cfg) {
			out = append(out, sub)
		}
	}
	return out
}

// ExtractionSet is a set of Extractions keyed by their tuple form;
// duplicates are removed, first occurrence retained. Rendering order is
// deterministic (insertion order, since every producer in this package
// already walks tokens in sentence order).
type ExtractionSet struct {
	order []*Extraction
	seen  map[string]bool
}

// NewExtractionSet returns an empty set.
func NewExtractionSet() *ExtractionSet {
	return &ExtractionSet{seen: make(map[string]bool)}
}

// Add inserts e if it is valid and not a duplicate of an already-inserted
// extraction (by tuple form). Returns true if it was added.
func (es *ExtractionSet) Add(e *Extraction, cfg Config) bool {
	if e == nil || !e.IsValid(cfg) {
		return false
	}
	key := e.tupleForm().key()
	if es.seen[key] {
		return false
	}
	es.seen[key] = true
	es.order = append(es.order, e)
	return true
}

// Extractions returns the set's members in deterministic order.
func (es *ExtractionSet) Extractions() []*Extraction {
	return es.order
}

// Len returns the number of extractions in the set.
func (es *ExtractionSet) Len() int {
	return len(es.order)
}

// MarshalJSON serializes the set's extractions in deterministic order.
func (es *ExtractionSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(es.order)
}

// UnmarshalJSON restores a previously serialized set, re-deriving the
// dedup index from the decoded tuple forms (used when a filesystem or
// sqlite cache is reloaded rather than recomputed).
func (es *ExtractionSet) UnmarshalJSON(data []byte) error {
	var list []*Extraction
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}
	es.order = list
	es.seen = make(map[string]bool, len(list))
	for _, e := range list {
		es.seen[e.tupleForm().key()] = true
	}
	return nil
}
