package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/oiextractor/core/oie"
)

// TabularRenderer writes one indented line per extraction and nested
// sub-extraction, numbering sub-extractions hierarchically ("1", "1.1",
// "1.2", "2", ...).
type TabularRenderer struct {
	W io.Writer
}

var _ Renderer = (*TabularRenderer)(nil)

// NewTabularRenderer creates a TabularRenderer writing to w.
func NewTabularRenderer(w io.Writer) *TabularRenderer {
	return &TabularRenderer{W: w}
}

func (r *TabularRenderer) Render(results []Result) error {
	for _, res := range results {
		for i, e := range res.Set.Extractions() {
			id := strconv.Itoa(i + 1)
			if err := r.renderExtraction(res, id, 0, e); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *TabularRenderer) renderExtraction(res Result, id string, depth int, e *oie.Extraction) error {
	indent := ""
	for i := 0; i < depth; i++ {
		indent += "  "
	}

	_, err := fmt.Fprintf(r.W, "%5d.%-6s %s(%s; %s; %s)\n",
		res.Sentence.ID, id, indent,
		oie.Render(e.Subject), oie.Render(e.Relation), oie.Render(e.Complement))
	if err != nil {
		return err
	}

	for i, sub := range e.SubExtractions {
		subID := fmt.Sprintf("%s.%d", id, i+1)
		if err := r.renderExtraction(res, subID, depth+1, sub); err != nil {
			return err
		}
	}
	return nil
}
