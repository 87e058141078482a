package query

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/c-bata/go-prompt"

	"github.com/oiextractor/core/oie"
	"github.com/oiextractor/core/render"
	"github.com/oiextractor/core/storage"
)

const patternLimit = 2000

// Handler runs an interactive REPL over a sentence corpus, matching a typed
// Pattern against each sentence's extraction set and rendering the results.
type Handler struct {
	SentenceRepo storage.SentenceReader
	Library      Library
	Renderer     *render.TextRenderer

	// Extract computes (or retrieves) the extraction set for a sentence;
	// the CLI wires this to an in-memory cache in front of oie.Extract, so
	// each sentence is extracted at most once per REPL session.
	Extract func(sr storage.SentenceResult) (*oie.ExtractionSet, error)
}

// NewHandler builds a Handler.
func NewHandler(repo storage.SentenceReader, lib Library, r *render.TextRenderer, extract func(storage.SentenceResult) (*oie.ExtractionSet, error)) *Handler {
	return &Handler{SentenceRepo: repo, Library: lib, Renderer: r, Extract: extract}
}

// Run starts the REPL; "quit" exits.
func (h *Handler) Run() error {
	fmt.Println("🔑 Ctrl+X: Toggle prefix, Ctrl+F: next Format, 🔧 quit")

	names := h.Library.Names()
	history := []string{}

	for {
		in := prompt.Input("      🔖 ", h.completer(names),
			prompt.OptionTitle("oiept query"),
			prompt.OptionPrefixTextColor(prompt.Yellow),
			prompt.OptionPreviewSuggestionTextColor(prompt.Blue),
			prompt.OptionSelectedSuggestionBGColor(prompt.LightGray),
			prompt.OptionMaxSuggestion(12),
			prompt.OptionSuggestionBGColor(prompt.DarkGray),
			prompt.OptionHistory(history),
			prompt.OptionAddKeyBind(prompt.KeyBind{
				Key: prompt.ControlF,
				Fn: func(buf *prompt.Buffer) {
					h.Renderer.NextFormat()
					fmt.Println("Format set to: " + h.Renderer.Format)
				}}),
			prompt.OptionAddKeyBind(prompt.KeyBind{
				Key: prompt.ControlX,
				Fn: func(buf *prompt.Buffer) {
					h.Renderer.NextPrefix()
					fmt.Println("Prefix set to " + fmt.Sprintf("%t", h.Renderer.HasPrefix))
				}}),
		)

		if in == "quit" {
			return nil
		}
		history = append(history, in)

		pat, err := h.parse(in)
		if err != nil {
			fmt.Printf("❌ %s\n", err)
			continue
		}

		results, err := h.search(pat)
		if err != nil {
			fmt.Printf("Error searching: %v\n", err)
			continue
		}

		if err := h.Renderer.Render(results); err != nil {
			fmt.Printf("Error rendering: %v\n", err)
		}
	}
}

// search retrieves candidate sentences by the pattern's indexable lemmas,
// then applies the pattern's full semantics (negation, OR, empty terms) to
// each candidate's extraction set. A pattern with no indexable lemma (only
// empty, negated or OR terms) retrieves no candidates and matches nothing.
func (h *Handler) search(pat Pattern) ([]render.Result, error) {
	docList, err := h.SentenceRepo.List("")
	if err != nil {
		return nil, fmt.Errorf("listing docs: %w", err)
	}
	docTitles := make(map[int]string, len(docList))
	for _, d := range docList {
		docTitles[d.ID] = d.Title
	}

	lemmas := pat.IndexLemmas()

	var results []render.Result
	fetched := 0
	cursor := storage.Cursor(0)
	for {
		newCursor, err := h.SentenceRepo.FindCandidates(lemmas, cursor, 500, func(sr storage.SentenceResult) error {
			fetched++
			set, err := h.Extract(sr)
			if err != nil {
				return err
			}

			filtered := oie.NewExtractionSet()
			for _, e := range set.Extractions() {
				if pat.Matches(e) {
					filtered.Add(e, oie.Config{})
				}
			}
			if filtered.Len() == 0 {
				return nil
			}

			results = append(results, render.Result{
				DocID: sr.DocID, DocTitle: docTitles[sr.DocID], Sentence: sr.Sentence, Set: filtered,
			})
			return nil
		})
		if err != nil {
			return results, err
		}
		if newCursor == cursor || fetched >= patternLimit {
			break
		}
		cursor = newCursor
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Set.Len() != results[j].Set.Len() {
			return results[i].Set.Len() > results[j].Set.Len()
		}
		if results[i].DocID != results[j].DocID {
			return results[i].DocID < results[j].DocID
		}
		return results[i].Sentence.ID < results[j].Sentence.ID
	})

	return results, nil
}

func (h *Handler) parse(in string) (Pattern, error) {
	tokens := strings.Fields(in)
	if len(tokens) == 0 {
		return Pattern{}, errors.New("no pattern given")
	}

	if saved, ok := h.Library.Find(tokens[0]); ok {
		if len(tokens) == 1 {
			return saved.Pattern, nil
		}
		return ParsePattern(tokens[1:]), nil
	}

	return ParsePattern(tokens), nil
}

func (h *Handler) completer(names []string) func(in prompt.Document) []prompt.Suggest {
	return func(in prompt.Document) []prompt.Suggest {
		s := []prompt.Suggest{}
		befCursor := in.TextBeforeCursor()
		if befCursor == "" {
			return s
		}

		tokens := strings.Split(befCursor, " ")
		if len(tokens) == 1 {
			for _, name := range names {
				if strings.HasPrefix(name, tokens[0]) {
					s = append(s, prompt.Suggest{Text: name, Description: "🔖 " + name})
				}
			}
		}
		return s
	}
}
