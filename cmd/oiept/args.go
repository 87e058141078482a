package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/oiextractor/core/oie"
	"github.com/oiextractor/core/render"
)

const corpusPathEnv = "OIEPT_CORPUS_PATH"
const queryLibPathEnv = "OIEPT_QUERY_PATH"

// stringSliceFlag implements flag.Value for multi-value strings.
type stringSliceFlag []string

func (s *stringSliceFlag) String() string {
	return strings.Join(*s, ", ")
}

func (s *stringSliceFlag) Set(value string) error {
	*s = append(*s, value)
	return nil
}

// enumFlag implements flag.Value for restricted strings.
type enumFlag struct {
	allowed []string
	value   *string
}

func (e *enumFlag) String() string {
	if e.value == nil {
		return ""
	}
	return *e.value
}

func (e *enumFlag) Set(value string) error {
	for _, a := range e.allowed {
		if a == value {
			*e.value = value
			return nil
		}
	}
	return fmt.Errorf("allowed values are %s", strings.Join(e.allowed, ", "))
}

// optionalInt implements flag.Value for optional integer flags.
type optionalInt struct {
	value *int
}

func (o *optionalInt) String() string {
	if o.value == nil {
		return ""
	}
	return strconv.Itoa(*o.value)
}

func (o *optionalInt) Set(s string) error {
	v, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	o.value = &v
	return nil
}

// extractFlags wires the oie.Config module toggles as a shared flag block.
func extractFlags(fs *flag.FlagSet, cfg *oie.Config) {
	fs.BoolVar(&cfg.CoordinatingConjunctions, "coord-conj", true, "Enable verb-coordination splitting")
	fs.BoolVar(&cfg.SubordinatingConjunctions, "subord-conj", true, "Enable sub-extraction emission for subordinate clauses")
	fs.BoolVar(&cfg.HiddenSubjects, "hidden-subjects", false, "Permit empty-subject extractions")
	fs.BoolVar(&cfg.Appositive, "appositive", true, "Enable appositive synthesis")
	fs.BoolVar(&cfg.AppositiveTransitivity, "appositive-transitivity", false, "Enable appositive transitivity inference")
}

type ImportOptions struct {
	CorpusPath string
	File       string
	Title      string
	Labels     []string
	Config     oie.Config
}

type DocOptions struct {
	CorpusPath string
}

type SentenceOptions struct {
	CorpusPath string
}

type QueryOptions struct {
	CorpusPath  string
	QueryPath   string
	NoColor     bool
	NoPrefix    bool
	Format      string
	Config      oie.Config
}

type EditOptions struct {
	QueryPath string
}

type StatOptions struct {
	CorpusPath string
	Doc        *int
}

func parseMainArgs(args []string, ui UI) (string, []string, error) {
	fs := flag.NewFlagSet("oiept", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	setupUsage(fs)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(ui.Out)
			fs.Usage()
			return "", nil, err
		}
		fs.SetOutput(ui.Err)
		fprintErr(ui.Err, err)
		fs.Usage()
		return "", nil, err
	}

	if fs.NArg() == 0 {
		fs.SetOutput(ui.Err)
		fs.Usage()
		return "", nil, errors.New("no command provided")
	}

	cmd := fs.Arg(0)
	cmdArgs := fs.Args()[1:]
	return cmd, cmdArgs, nil
}

func parseImportArgs(args []string, ui UI) (ImportOptions, error) {
	fs := flag.NewFlagSet("import", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var opts ImportOptions
	fs.StringVar(&opts.CorpusPath, "corpus-path", os.Getenv(corpusPathEnv), "Path to corpus directory or SQLite file")
	fs.StringVar(&opts.CorpusPath, "p", os.Getenv(corpusPathEnv), "alias for -corpus-path")
	fs.StringVar(&opts.Title, "title", "", "Document title")

	labels := (*stringSliceFlag)(&opts.Labels)
	fs.Var(labels, "label", "Attach a label to the imported document (repeatable)")

	extractFlags(fs, &opts.Config)

	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s import [options] <conllu_file>\n", os.Args[0])
		_, _ = fmt.Fprintf(fs.Output(), "\nDescription:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  Parse a CoNLL-U file, extract triples for each sentence, and store both.\n")
		_, _ = fmt.Fprintf(fs.Output(), "\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(ui.Out)
			fs.Usage()
			return opts, err
		}
		fs.SetOutput(ui.Err)
		fprintErr(ui.Err, err)
		fs.Usage()
		return opts, err
	}

	if opts.CorpusPath == "" {
		return opts, errors.New("corpus path must be specified via -p or " + corpusPathEnv)
	}
	if fs.NArg() != 1 {
		fs.SetOutput(ui.Err)
		fs.Usage()
		return opts, errors.New("import command needs exactly one argument: <conllu_file>")
	}
	opts.File = fs.Arg(0)
	if opts.Title == "" {
		opts.Title = opts.File
	}

	return opts, nil
}

func parseDocArgs(args []string, ui UI) (DocOptions, string, error) {
	fs := flag.NewFlagSet("doc", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var opts DocOptions
	fs.StringVar(&opts.CorpusPath, "corpus-path", os.Getenv(corpusPathEnv), "Path to corpus directory or SQLite file")
	fs.StringVar(&opts.CorpusPath, "p", os.Getenv(corpusPathEnv), "alias for -corpus-path")

	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s doc [options] [doc_id]\n", os.Args[0])
		_, _ = fmt.Fprintf(fs.Output(), "\nDescription:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  List documents, or show the sentences of one.\n")
		_, _ = fmt.Fprintf(fs.Output(), "\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(ui.Out)
			fs.Usage()
			return opts, "", err
		}
		fs.SetOutput(ui.Err)
		fprintErr(ui.Err, err)
		fs.Usage()
		return opts, "", err
	}

	if opts.CorpusPath == "" {
		return opts, "", errors.New("corpus path must be specified via -p or " + corpusPathEnv)
	}
	if fs.NArg() > 1 {
		fs.SetOutput(ui.Err)
		fs.Usage()
		return opts, "", errors.New("doc command accepts at most one argument")
	}

	return opts, fs.Arg(0), nil
}

func parseSentenceArgs(args []string, ui UI) (SentenceOptions, int, int, error) {
	fs := flag.NewFlagSet("sentence", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var opts SentenceOptions
	fs.StringVar(&opts.CorpusPath, "corpus-path", os.Getenv(corpusPathEnv), "Path to corpus directory or SQLite file")
	fs.StringVar(&opts.CorpusPath, "p", os.Getenv(corpusPathEnv), "alias for -corpus-path")

	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s sentence [options] <doc_id> <sentence_id>\n", os.Args[0])
		_, _ = fmt.Fprintf(fs.Output(), "\nDescription:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  Show token detail for one sentence.\n")
		_, _ = fmt.Fprintf(fs.Output(), "\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(ui.Out)
			fs.Usage()
			return opts, 0, 0, err
		}
		fs.SetOutput(ui.Err)
		fprintErr(ui.Err, err)
		fs.Usage()
		return opts, 0, 0, err
	}

	if opts.CorpusPath == "" {
		return opts, 0, 0, errors.New("corpus path must be specified via -p or " + corpusPathEnv)
	}
	if fs.NArg() != 2 {
		fs.SetOutput(ui.Err)
		fs.Usage()
		return opts, 0, 0, errors.New("sentence command needs exactly two arguments: <doc_id> <sentence_id>")
	}

	docID, err := strconv.Atoi(fs.Arg(0))
	if err != nil {
		return opts, 0, 0, fmt.Errorf("invalid doc_id: %v", err)
	}
	sentID, err := strconv.Atoi(fs.Arg(1))
	if err != nil {
		return opts, 0, 0, fmt.Errorf("invalid sentence_id: %v", err)
	}

	return opts, docID, sentID, nil
}

func parseQueryArgs(args []string, ui UI) (QueryOptions, error) {
	fs := flag.NewFlagSet("query", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var opts QueryOptions
	fs.StringVar(&opts.CorpusPath, "corpus-path", os.Getenv(corpusPathEnv), "Path to corpus directory or SQLite file")
	fs.StringVar(&opts.CorpusPath, "p", os.Getenv(corpusPathEnv), "alias for -corpus-path")
	fs.StringVar(&opts.QueryPath, "query-path", os.Getenv(queryLibPathEnv), "Path to the saved-query directory")
	fs.StringVar(&opts.QueryPath, "q", os.Getenv(queryLibPathEnv), "alias for -query-path")

	fs.BoolVar(&opts.NoColor, "no-color", false, "Show matched sentences without color")
	fs.BoolVar(&opts.NoColor, "c", false, "alias for -no-color")
	fs.BoolVar(&opts.NoPrefix, "no-prefix", false, "Show matched sentences without metadata prefixes")
	fs.BoolVar(&opts.NoPrefix, "x", false, "alias for -no-prefix")

	opts.Format = render.Defaultformat
	formatFlag := &enumFlag{allowed: render.SupportedFormats(), value: &opts.Format}
	fs.Var(formatFlag, "format", "Output format: all, tuple or lemma")
	fs.Var(formatFlag, "f", "alias for -format")

	extractFlags(fs, &opts.Config)

	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s query [options]\n", os.Args[0])
		_, _ = fmt.Fprintf(fs.Output(), "\nDescription:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  Enter interactive query mode over a stored corpus.\n")
		_, _ = fmt.Fprintf(fs.Output(), "\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(ui.Out)
			fs.Usage()
			return opts, err
		}
		fs.SetOutput(ui.Err)
		fprintErr(ui.Err, err)
		fs.Usage()
		return opts, err
	}

	if opts.CorpusPath == "" {
		return opts, errors.New("corpus path must be specified via -p or " + corpusPathEnv)
	}
	if opts.QueryPath == "" {
		return opts, errors.New("query path must be specified via -q or " + queryLibPathEnv)
	}

	return opts, nil
}

func parseEditArgs(args []string, ui UI) (EditOptions, error) {
	fs := flag.NewFlagSet("edit", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var opts EditOptions
	fs.StringVar(&opts.QueryPath, "query-path", os.Getenv(queryLibPathEnv), "Path to the saved-query directory")
	fs.StringVar(&opts.QueryPath, "q", os.Getenv(queryLibPathEnv), "alias for -query-path")

	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s edit [options]\n", os.Args[0])
		_, _ = fmt.Fprintf(fs.Output(), "\nDescription:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  Enter interactive mode to add or remove saved queries.\n")
		_, _ = fmt.Fprintf(fs.Output(), "\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(ui.Out)
			fs.Usage()
			return opts, err
		}
		fs.SetOutput(ui.Err)
		fprintErr(ui.Err, err)
		fs.Usage()
		return opts, err
	}

	if opts.QueryPath == "" {
		return opts, errors.New("query path must be specified via -q or " + queryLibPathEnv)
	}

	return opts, nil
}

func parseStatArgs(args []string, ui UI) (StatOptions, error) {
	fs := flag.NewFlagSet("stat", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var opts StatOptions
	fs.StringVar(&opts.CorpusPath, "corpus-path", os.Getenv(corpusPathEnv), "Path to corpus directory or SQLite file")
	fs.StringVar(&opts.CorpusPath, "p", os.Getenv(corpusPathEnv), "alias for -corpus-path")

	docFlag := &optionalInt{}
	fs.Var(docFlag, "doc", "Restrict statistics to one document id")

	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s stat [options]\n", os.Args[0])
		_, _ = fmt.Fprintf(fs.Output(), "\nDescription:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  Show aggregate statistics over the stored corpus.\n")
		_, _ = fmt.Fprintf(fs.Output(), "\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(ui.Out)
			fs.Usage()
			return opts, err
		}
		fs.SetOutput(ui.Err)
		fprintErr(ui.Err, err)
		fs.Usage()
		return opts, err
	}

	if opts.CorpusPath == "" {
		return opts, errors.New("corpus path must be specified via -p or " + corpusPathEnv)
	}
	opts.Doc = docFlag.value

	return opts, nil
}

func setupUsage(fs *flag.FlagSet) {
	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: %s command [command options] [arguments...]\n", os.Args[0])
		_, _ = fmt.Fprintf(output, "\nDescription:\n")
		_, _ = fmt.Fprintf(output, "  Open Information Extraction over Portuguese UD-v2 corpora\n")
		_, _ = fmt.Fprintf(output, "\nCommands:\n")
		_, _ = fmt.Fprintf(output, "  import    Parse and extract a CoNLL-U file into the corpus store.\n")
		_, _ = fmt.Fprintf(output, "  doc       List documents, or show the sentences of one.\n")
		_, _ = fmt.Fprintf(output, "  sentence  Show token detail for one sentence.\n")
		_, _ = fmt.Fprintf(output, "  query     Enter interactive query mode.\n")
		_, _ = fmt.Fprintf(output, "  edit      Enter interactive saved-query edit mode.\n")
		_, _ = fmt.Fprintf(output, "  stat      Show aggregate corpus statistics.\n")
		_, _ = fmt.Fprintf(output, "  version   Show the build version.\n")
		_, _ = fmt.Fprintf(output, "  help      Show help for a command.\n")
	}
}
