package query

import (
	"errors"
	"fmt"
	"strings"

	prompt "github.com/c-bata/go-prompt"
)

const (
	actionAdd    = 1
	actionDelete = 0
)

// EditHandler runs an interactive REPL to manage the saved-pattern Library:
// adding and deleting named Patterns, mirroring the teacher's standalone
// edit package but over Pattern/Library instead of TopicExpr/Topic.
type EditHandler struct {
	Library Library

	Reader Reader
	Writer Writer
}

// NewEditHandler builds an EditHandler.
func NewEditHandler(lib Library, r Reader, w Writer) *EditHandler {
	return &EditHandler{Library: lib, Reader: r, Writer: w}
}

func (h *EditHandler) Run() error {
	fmt.Println("🔑 Ctrl+L: clear, 🔧 quit")

	history := []string{}

	for {
		in := prompt.Input("      🔖 ", h.completer(),
			prompt.OptionTitle("oiept edit"),
			prompt.OptionPrefixTextColor(prompt.Yellow),
			prompt.OptionPreviewSuggestionTextColor(prompt.Blue),
			prompt.OptionSelectedSuggestionBGColor(prompt.LightGray),
			prompt.OptionSuggestionBGColor(prompt.DarkGray),
			prompt.OptionMaxSuggestion(12),
			prompt.OptionHistory(history),
		)

		if in == "quit" {
			return nil
		}
		history = append(history, in)

		name, pat, action, err := h.parse(in)
		if err != nil {
			fmt.Printf("❌ %s\n", err)
			continue
		}

		_, exists := h.Library.Find(name)

		if action == actionAdd {
			if exists {
				fmt.Printf("❌ %s\n", "A saved query with that name already exists.")
				continue
			}
			h.Library = append(h.Library, SavedQuery{Name: name, Pattern: pat})
		} else {
			if !exists {
				fmt.Printf("❌ %s\n", "No saved query with that name.")
				continue
			}
			h.Library = removeQuery(h.Library, name)
		}

		if err := h.Writer.Write(h.Library); err != nil {
			return err
		}

		reloaded, err := h.Reader.ReadAll()
		if err != nil {
			return err
		}
		h.Library = reloaded
	}
}

func (h *EditHandler) completer() func(in prompt.Document) []prompt.Suggest {
	return func(in prompt.Document) []prompt.Suggest {
		s := []prompt.Suggest{}
		befCursor := in.TextBeforeCursor()
		if befCursor == "" {
			return s
		}

		tokens := strings.Split(befCursor, " ")
		if len(tokens) == 1 {
			for _, q := range h.Library {
				if strings.HasPrefix(q.Name, befCursor) {
					s = append(s, prompt.Suggest{Text: q.Name})
				}
			}
		}
		return s
	}
}

// parse reads "<name> [subject] [relation] [complement]", with a trailing
// "/" on the last field marking a delete, the way the teacher's edit
// package marks expression removal.
func (h *EditHandler) parse(in string) (string, Pattern, int, error) {
	tokens := strings.Fields(in)
	action := actionAdd

	if len(tokens) == 0 {
		return "", Pattern{}, action, errors.New("no name given")
	}

	last := tokens[len(tokens)-1]
	if strings.HasSuffix(last, "/") {
		action = actionDelete
		tokens[len(tokens)-1] = strings.TrimSuffix(last, "/")
	}

	name := tokens[0]
	if name == "" {
		return "", Pattern{}, action, errors.New("no name given")
	}

	if action == actionDelete {
		return name, Pattern{}, action, nil
	}

	if len(tokens) < 2 {
		return "", Pattern{}, action, errors.New("no pattern given")
	}

	return name, ParsePattern(tokens[1:]), action, nil
}

func removeQuery(lib Library, name string) Library {
	out := make(Library, 0, len(lib))
	for _, q := range lib {
		if q.Name != name {
			out = append(out, q)
		}
	}
	return out
}
