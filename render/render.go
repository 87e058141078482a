// Package render formats extraction results for terminal and file output,
// the way the teacher's render package formats topic-matched sentences.
package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/oiextractor/core/oie"
	"github.com/oiextractor/core/span"
	"github.com/oiextractor/core/ud"
)

const (
	// Defaultformat is the TextRenderer's starting Format.
	Defaultformat = "all"
)

var (
	Green256 = "\033[1;38;5;70m"
	Teal     = "\033[1;36m"
	Grey256  = "\033[1;38;5;145m"
	Off      = "\033[0m"
)

// SupportedFormats lists the TextRenderer.Format cycle, in NextFormat order.
func SupportedFormats() []string {
	return []string{"all", "tuple", "lemma"}
}

// Result pairs one sentence's extraction set with enough of its owning
// document to render a result line.
type Result struct {
	DocID    int
	DocTitle string
	Sentence *ud.Sentence
	Set      *oie.ExtractionSet
}

// Renderer writes a batch of Results to some destination.
type Renderer interface {
	Render(results []Result) error
}

// TextRenderer prints one line per extraction, coloring the subject,
// relation and complement spans within the original sentence text.
type TextRenderer struct {
	HasColor  bool
	HasPrefix bool

	// Format determines how each extraction is rendered.
	//
	// all: print the whole sentence with matched spans colored.
	// tuple: print "subject ; relation ; complement" tuple form.
	// lemma: print only the lemma sequence of the relation span.
	Format string

	W io.Writer
}

var _ Renderer = (*TextRenderer)(nil)

// NewTextRenderer creates a TextRenderer writing to os.Stdout.
func NewTextRenderer() *TextRenderer {
	return &TextRenderer{Format: Defaultformat, W: os.Stdout}
}

func (r *TextRenderer) Render(results []Result) error {
	for _, res := range results {
		for i, e := range res.Set.Extractions() {
			prefix := r.buildPrefix(res, i)

			var text string
			switch r.Format {
			case "tuple":
				text = tupleLine(e)
			case "lemma":
				text = lemmaLine(e.Relation)
			default:
				text = r.sentence(res.Sentence, e)
			}

			fmt.Fprintf(r.W, "%s%s\n", prefix, strings.ReplaceAll(text, "\n", " "))
		}
	}
	return nil
}

// sentence renders the full sentence text with the extraction's subject,
// relation and complement spans colored.
func (r *TextRenderer) sentence(s *ud.Sentence, e *oie.Extraction) string {
	var str strings.Builder
	for i, t := range s.Tokens() {
		if i > 0 {
			str.WriteString(" ")
		}
		str.WriteString(colorToken(t, e, r.HasColor))
	}
	return str.String()
}

func colorToken(t ud.Token, e *oie.Extraction, hasColor bool) string {
	if !hasColor {
		return t.Text
	}
	switch {
	case e.Subject.Has(t.Index):
		return Green256 + t.Text + Off
	case e.Relation.Has(t.Index):
		return Teal + t.Text + Off
	case e.Complement.Has(t.Index):
		return Green256 + t.Text + Off
	default:
		return t.Text
	}
}

func tupleLine(e *oie.Extraction) string {
	return fmt.Sprintf("(%s; %s; %s)", oie.Render(e.Subject), oie.Render(e.Relation), oie.Render(e.Complement))
}

func lemmaLine(el *span.Element) string {
	words := make([]string, 0)
	for _, t := range el.Tokens() {
		words = append(words, t.Lemma)
	}
	return strings.Join(words, " ")
}

func (r *TextRenderer) buildPrefix(res Result, index int) string {
	if !r.HasPrefix {
		return ""
	}
	return fmt.Sprintf("[%37s %2d %5d.%-2d] ✍  ", r.title(res.DocTitle), res.DocID, res.Sentence.ID, index+1)
}

func (r *TextRenderer) title(title string) string {
	l := len(title)
	var part string
	if l <= 20 {
		part = fmt.Sprintf("%-20s", title)
	} else {
		part = title[:20]
	}
	return Grey256 + part + Off
}

// NextFormat cycles TextRenderer.Format through SupportedFormats().
func (r *TextRenderer) NextFormat() {
	supported := SupportedFormats()
	for i, format := range supported {
		if format == r.Format {
			if i == len(supported)-1 {
				r.Format = supported[0]
			} else {
				r.Format = supported[i+1]
			}
			break
		}
	}
}

// NextPrefix toggles HasPrefix.
func (r *TextRenderer) NextPrefix() {
	r.HasPrefix = !r.HasPrefix
}
