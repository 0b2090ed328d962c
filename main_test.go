package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/metcalfc/simpletoc/internal/cache"
	"github.com/metcalfc/simpletoc/internal/source"
	"github.com/metcalfc/simpletoc/internal/toc"
)

const article = "<h2>Intro</h2><p>text</p><h2>Setup</h2><p>more</p>"

func TestSelectMode(t *testing.T) {
	tests := []struct {
		name                              string
		fragment, marker, outline, browse bool
		want                              mode
		wantErr                           bool
	}{
		{name: "default", want: modeInject},
		{name: "fragment", fragment: true, want: modeFragment},
		{name: "marker", marker: true, want: modeMarker},
		{name: "outline", outline: true, want: modeOutline},
		{name: "browse", browse: true, want: modeBrowse},
		{name: "conflict", fragment: true, outline: true, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := selectMode(tt.fragment, tt.marker, tt.outline, tt.browse)
			if (err != nil) != tt.wantErr {
				t.Fatalf("selectMode() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("selectMode() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRender(t *testing.T) {
	settings := toc.DefaultSettings()

	t.Run("inject", func(t *testing.T) {
		got := render(article, options{mode: modeInject, settings: settings})
		if !strings.HasPrefix(got, "<nav") || !strings.Contains(got, `<h2 id="intro">`) {
			t.Errorf("render() = %q", got)
		}
	})

	t.Run("fragment", func(t *testing.T) {
		got := render(article, options{mode: modeFragment, settings: settings})
		if !strings.HasPrefix(got, "<nav") || !strings.HasSuffix(got, "</nav>") {
			t.Errorf("render() = %q", got)
		}
	})

	t.Run("fragment with one heading", func(t *testing.T) {
		got := render("<h2>Only</h2>", options{mode: modeFragment, settings: settings})
		if got != "" {
			t.Errorf("render() = %q, want empty", got)
		}
	})

	t.Run("marker", func(t *testing.T) {
		got := render("<p>[toc]</p>"+article, options{mode: modeMarker, settings: settings})
		if strings.Contains(got, "[toc]") || !strings.HasPrefix(got, "<nav") {
			t.Errorf("render() = %q", got)
		}
	})

	t.Run("disabled", func(t *testing.T) {
		off := settings
		off.Enabled = false
		if got := render(article, options{mode: modeInject, settings: off}); got != article {
			t.Errorf("render() = %q, want unchanged", got)
		}
		if got := render(article, options{mode: modeFragment, settings: off}); got != "" {
			t.Errorf("render() = %q, want empty fragment", got)
		}
	})
}

func TestRenderCached(t *testing.T) {
	store, err := cache.Open(t.TempDir())
	if err != nil {
		t.Fatalf("cache.Open: %v", err)
	}
	opts := options{mode: modeInject, settings: toc.DefaultSettings()}

	first := renderCached(article, opts, store)
	if store.Len() != 1 {
		t.Fatalf("expected one cached render, got %d", store.Len())
	}

	// A planted entry proves the second call is served from the cache.
	key := cache.Key(article, opts.settings)
	store.Put(key, "cached")
	if got := renderCached(article, opts, store); got != "cached" {
		t.Errorf("renderCached() = %q, want cached value", got)
	}
	if got := renderCached(article, opts, nil); got != first {
		t.Errorf("uncached render differs: %q vs %q", got, first)
	}
}

func TestOutputTarget(t *testing.T) {
	dir := filepath.Join("out", "book")
	tests := []struct {
		name string
		want string
	}{
		{"ch1.xhtml", filepath.Join(dir, "ch1.xhtml")},
		{"Text/ch2.xhtml", filepath.Join(dir, "Text", "ch2.xhtml")},
		{"../../etc/passwd", filepath.Join(dir, "passwd")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := outputTarget(dir, tt.name); got != tt.want {
				t.Errorf("outputTarget(%q) = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}

func TestWriteOutputs(t *testing.T) {
	tmpDir := t.TempDir()

	t.Run("single file", func(t *testing.T) {
		path := filepath.Join(tmpDir, "single", "out.html")
		docs := []source.Document{{Name: "post.html"}}
		if err := writeOutputs(docs, []string{"<p>x</p>"}, path); err != nil {
			t.Fatalf("writeOutputs: %v", err)
		}
		data, err := os.ReadFile(path)
		if err != nil || string(data) != "<p>x</p>" {
			t.Errorf("got %q, %v", data, err)
		}
	})

	t.Run("directory", func(t *testing.T) {
		dir := filepath.Join(tmpDir, "book")
		docs := []source.Document{{Name: "ch1.xhtml"}, {Name: "Text/ch2.xhtml"}}
		if err := writeOutputs(docs, []string{"one", "two"}, dir); err != nil {
			t.Fatalf("writeOutputs: %v", err)
		}
		for name, want := range map[string]string{"ch1.xhtml": "one", filepath.Join("Text", "ch2.xhtml"): "two"} {
			data, err := os.ReadFile(filepath.Join(dir, name))
			if err != nil || string(data) != want {
				t.Errorf("%s: got %q, %v", name, data, err)
			}
		}
	})
}

func TestAnchorRef(t *testing.T) {
	one := []source.Document{{Name: "post.html"}}
	two := []source.Document{{Name: "ch1.xhtml"}, {Name: "ch2.xhtml"}}

	if got := anchorRef(one, "post.html", "intro"); got != "#intro" {
		t.Errorf("anchorRef() = %q", got)
	}
	if got := anchorRef(two, "ch2.xhtml", "intro"); got != "ch2.xhtml#intro" {
		t.Errorf("anchorRef() = %q", got)
	}
}

func TestRunWritesOutput(t *testing.T) {
	tmpDir := t.TempDir()
	input := filepath.Join(tmpDir, "post.html")
	output := filepath.Join(tmpDir, "out.html")
	os.WriteFile(input, []byte(article), 0644)

	opts := options{
		mode:     modeInject,
		input:    input,
		output:   output,
		settings: toc.DefaultSettings(),
	}
	opts.settings.Position = toc.Bottom
	if err := run(opts); err != nil {
		t.Fatalf("run: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.HasPrefix(string(data), `<h2 id="intro">`) || !strings.HasSuffix(string(data), "</nav>") {
		t.Errorf("unexpected output %q", data)
	}
}

func TestRunKeepsPageStructure(t *testing.T) {
	tmpDir := t.TempDir()
	page := "<!DOCTYPE html>\n<html><head><title>T</title></head>\n<body>" + article + "</body></html>\n"
	input := filepath.Join(tmpDir, "page.html")
	output := filepath.Join(tmpDir, "out.html")
	os.WriteFile(input, []byte(page), 0644)

	opts := options{
		mode:     modeInject,
		input:    input,
		output:   output,
		settings: toc.DefaultSettings(),
	}
	if err := run(opts); err != nil {
		t.Fatalf("run: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	got := string(data)
	head := "<!DOCTYPE html>\n<html><head><title>T</title></head>\n<body><nav class=\"simple-toc\">"
	if !strings.HasPrefix(got, head) {
		t.Errorf("table of contents is not the first child of <body>: %q", got)
	}
	if !strings.HasSuffix(got, `<h2 id="setup">Setup</h2><p>more</p></body></html>`+"\n") {
		t.Errorf("closing markup lost: %q", got)
	}
}
