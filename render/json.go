package render

import (
	"encoding/json"
	"io"
)

// jsonResult is the wire shape of one Result: the extraction set plus
// enough of the owning sentence/document to identify it.
type jsonResult struct {
	DocID       int         `json:"doc_id"`
	DocTitle    string      `json:"doc_title"`
	SentenceID  int         `json:"sentence_id"`
	Text        string      `json:"text"`
	Extractions interface{} `json:"extractions"`
}

// JSONRenderer writes extraction results as a JSON array to a writer.
type JSONRenderer struct {
	W io.Writer
}

var _ Renderer = (*JSONRenderer)(nil)

// NewJSONRenderer creates a JSONRenderer writing to w.
func NewJSONRenderer(w io.Writer) *JSONRenderer {
	return &JSONRenderer{W: w}
}

// Render serializes results as a JSON array.
func (r *JSONRenderer) Render(results []Result) error {
	out := make([]jsonResult, 0, len(results))
	for _, res := range results {
		out = append(out, jsonResult{
			DocID:       res.DocID,
			DocTitle:    res.DocTitle,
			SentenceID:  res.Sentence.ID,
			Text:        res.Sentence.Text,
			Extractions: res.Set,
		})
	}
	return json.NewEncoder(r.W).Encode(out)
}
