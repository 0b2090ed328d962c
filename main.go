package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/metcalfc/simpletoc/internal/cache"
	"github.com/metcalfc/simpletoc/internal/config"
	"github.com/metcalfc/simpletoc/internal/outline"
	"github.com/metcalfc/simpletoc/internal/source"
	"github.com/metcalfc/simpletoc/internal/toc"
	"github.com/metcalfc/simpletoc/internal/watch"
)

// Version info (injected via ldflags)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

type mode int

const (
	modeInject mode = iota
	modeFragment
	modeMarker
	modeOutline
	modeBrowse
)

type options struct {
	mode       mode
	output     string
	markdown   bool
	useCache   bool
	watch      bool
	input      string
	settings   toc.Settings
	extractOpt toc.ExtractOptions
}

var logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "simpletoc"})

func main() {
	cfg := config.Default()
	if _, err := config.LoadFile(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: loading config: %v\n", err)
		os.Exit(1)
	}

	position := flag.String("p", cfg.Position, "TOC position: "+strings.Join(toc.PositionNames(), ", "))
	title := flag.String("title", cfg.Title, "Title shown above the list of links")
	prefix := flag.String("prefix", cfg.IDPrefix, "Prefix for generated anchor ids")
	keepDiacritics := flag.Bool("no-diacritics", !cfg.StripDiacritics, "Keep accented letters in anchor ids instead of stripping them")
	disable := flag.Bool("disable", !cfg.Enabled, "Pass content through without a TOC")
	fragment := flag.Bool("fragment", false, "Print only the TOC fragment")
	marker := flag.Bool("marker", false, "Replace a [toc] or <!-- toc --> marker instead of inserting automatically")
	showOutline := flag.Bool("outline", false, "Print the heading outline instead of HTML")
	browse := flag.Bool("browse", false, "Pick a heading interactively and print its anchor")
	output := flag.String("o", "", "Write output to file (directory for multi-document input)")
	watchFile := flag.Bool("watch", false, "Re-render whenever the input file changes (requires -o)")
	useCache := flag.Bool("cache", cfg.Cache, "Reuse stored renders for unchanged content")
	markdown := flag.Bool("markdown", false, "Treat stdin as Markdown")
	verbose := flag.Bool("verbose", false, "Debug logging")
	showVersion := flag.Bool("v", false, "Show version information")
	showVersionLong := flag.Bool("version", false, "Show version information")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "simpletoc - Table of Contents generator for HTML articles\n\n")
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  simpletoc [options] [file]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nFormats:\n")
		for _, f := range source.SupportedFormats() {
			fmt.Fprintf(os.Stderr, "  %s\n", f)
		}
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  simpletoc post.html                 TOC at the top, printed to stdout\n")
		fmt.Fprintf(os.Stderr, "  simpletoc -p middle -o out.html post.md\n")
		fmt.Fprintf(os.Stderr, "  simpletoc -outline book.epub        Show headings per chapter\n")
		fmt.Fprintf(os.Stderr, "  cat post.html | simpletoc -fragment Print only the TOC block\n")
		fmt.Fprintf(os.Stderr, "\nConfig file: %s\n", config.ConfigPath())
	}
	flag.Parse()

	if *showVersion || *showVersionLong {
		fmt.Printf("simpletoc %s (commit: %s, built: %s)\n", version, commit, date)
		os.Exit(0)
	}

	if *verbose {
		logger.SetLevel(log.DebugLevel)
	}

	if _, ok := toc.LookupPosition(*position); !ok {
		logger.Warn("unknown position, using top", "position", *position)
	}
	cfg.Position = *position
	cfg.Title = *title
	cfg.IDPrefix = *prefix
	cfg.StripDiacritics = !*keepDiacritics
	cfg.Enabled = !*disable
	cfg.Cache = *useCache

	opts := options{
		output:   *output,
		markdown: *markdown,
		useCache: cfg.Cache,
		watch:    *watchFile,
		settings: cfg.Settings(),
	}
	opts.extractOpt = toc.ExtractOptions{IDPrefix: cfg.IDPrefix, StripDiacritics: cfg.StripDiacritics}
	if flag.NArg() > 0 {
		opts.input = flag.Arg(0)
	}

	m, err := selectMode(*fragment, *marker, *showOutline, *browse)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	opts.mode = m

	if opts.watch && (opts.input == "" || opts.output == "") {
		fmt.Fprintln(os.Stderr, "Error: -watch needs an input file and -o")
		os.Exit(1)
	}

	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if opts.watch {
		if err := watchAndRun(opts); err != nil && !errors.Is(err, context.Canceled) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
}

// selectMode allows at most one of the output mode flags.
func selectMode(fragment, marker, showOutline, browse bool) (mode, error) {
	m := modeInject
	n := 0
	for _, f := range []struct {
		set bool
		m   mode
	}{{fragment, modeFragment}, {marker, modeMarker}, {showOutline, modeOutline}, {browse, modeBrowse}} {
		if f.set {
			m = f.m
			n++
		}
	}
	if n > 1 {
		return modeInject, errors.New("-fragment, -marker, -outline and -browse are mutually exclusive")
	}
	return m, nil
}

func run(opts options) error {
	docs, err := loadInput(opts)
	if err != nil {
		return err
	}

	var store *cache.Store
	if opts.useCache && opts.mode == modeInject {
		store, err = cache.NewStore()
		if err != nil {
			logger.Warn("cache disabled", "err", err)
		}
	}

	switch opts.mode {
	case modeOutline:
		for _, doc := range docs {
			headings, _ := toc.Extract(doc.Content, opts.extractOpt)
			if err := outline.Print(os.Stdout, doc.Name, headings); err != nil {
				return err
			}
		}
		return nil
	case modeBrowse:
		return browseHeadings(docs, opts)
	}

	outputs := make([]string, len(docs))
	for i, doc := range docs {
		out := renderCached(doc.Content, opts, store)
		logger.Debug("rendered", "doc", doc.Name, "in", len(doc.Content), "out", len(out))
		if opts.mode != modeFragment {
			out = doc.Page(out)
		}
		outputs[i] = out
	}
	return writeOutputs(docs, outputs, opts.output)
}

func loadInput(opts options) ([]source.Document, error) {
	if opts.input != "" {
		docs, err := source.Load(opts.input)
		if err != nil {
			return nil, fmt.Errorf("failed to read file '%s': %w", opts.input, err)
		}
		return docs, nil
	}

	stat, _ := os.Stdin.Stat()
	if (stat.Mode() & os.ModeCharDevice) != 0 {
		return nil, errors.New("no input provided. Provide a file or pipe HTML to stdin (try: simpletoc -h)")
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, fmt.Errorf("reading stdin: %w", err)
	}
	if strings.TrimSpace(string(data)) == "" {
		return nil, errors.New("no content to process")
	}

	content := string(data)
	if opts.markdown {
		content, err = source.RenderMarkdown(data)
		if err != nil {
			return nil, err
		}
	}
	return []source.Document{source.NewDocument("stdin", content)}, nil
}

// renderCached renders content, consulting the cache for automatic insertion.
func renderCached(content string, opts options, store *cache.Store) string {
	if store == nil {
		return render(content, opts)
	}
	key := cache.Key(content, opts.settings)
	if out, ok := store.Get(key); ok {
		logger.Debug("cache hit", "key", key)
		return out
	}
	out := render(content, opts)
	if err := store.Put(key, out); err != nil {
		logger.Warn("cache write failed", "err", err)
	}
	return out
}

func render(content string, opts options) string {
	switch opts.mode {
	case modeFragment:
		if !opts.settings.Enabled {
			return ""
		}
		_, f := toc.Build(content, opts.settings)
		if len(f.Items) < toc.MinHeadings {
			logger.Debug("too few headings for a TOC", "headings", len(f.Items))
			return ""
		}
		return f.Markup
	case modeMarker:
		return toc.ExpandMarker(content, opts.settings)
	default:
		return toc.Inject(content, opts.settings)
	}
}

func writeOutputs(docs []source.Document, outputs []string, output string) error {
	if output == "" {
		for i, out := range outputs {
			if len(docs) > 1 {
				fmt.Printf("<!-- %s -->\n", docs[i].Name)
			}
			fmt.Println(out)
		}
		return nil
	}

	if len(docs) == 1 {
		return writeFile(output, outputs[0])
	}
	for i, doc := range docs {
		if err := writeFile(outputTarget(output, doc.Name), outputs[i]); err != nil {
			return err
		}
	}
	return nil
}

// outputTarget places a document inside dir, flattening names that would
// escape it.
func outputTarget(dir, name string) string {
	target := filepath.Join(dir, filepath.FromSlash(name))
	rel, err := filepath.Rel(dir, target)
	if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
		return filepath.Join(dir, filepath.Base(filepath.FromSlash(name)))
	}
	return target
}

func writeFile(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	logger.Debug("wrote", "path", path)
	return nil
}

// browseHeadings opens the picker on the first document that has headings.
func browseHeadings(docs []source.Document, opts options) error {
	for _, doc := range docs {
		headings, _ := toc.Extract(doc.Content, opts.extractOpt)
		if len(headings) == 0 {
			continue
		}

		p := tea.NewProgram(outline.NewBrowser(doc.Name, headings), tea.WithAltScreen())
		final, err := p.Run()
		if err != nil {
			return err
		}
		if h, ok := final.(outline.Browser).Selected(); ok {
			fmt.Println(anchorRef(docs, doc.Name, h.ID))
		}
		return nil
	}
	return errors.New("no headings found")
}

// anchorRef is the link target of a heading, qualified by the document name
// when the input holds several documents.
func anchorRef(docs []source.Document, name, id string) string {
	if len(docs) > 1 {
		return name + "#" + id
	}
	return "#" + id
}

func watchAndRun(opts options) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	w, err := watch.New(opts.input,
		func() {
			if err := run(opts); err != nil {
				logger.Error("render failed", "err", err)
				return
			}
			logger.Info("rendered", "input", opts.input, "output", opts.output)
		},
		func(err error) {
			logger.Error("watch error", "err", err)
		},
	)
	if err != nil {
		return err
	}
	defer w.Close()

	logger.Info("watching", "input", opts.input)
	return w.Run(ctx)
}
