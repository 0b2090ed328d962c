package source

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad(t *testing.T) {
	tmpDir := t.TempDir()

	t.Run("html", func(t *testing.T) {
		content := "<h2>Intro</h2><p>text</p>"
		path := filepath.Join(tmpDir, "post.html")
		os.WriteFile(path, []byte(content), 0644)

		docs, err := Load(path)
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if len(docs) != 1 || docs[0].Content != content || docs[0].Name != "post.html" {
			t.Errorf("got %+v", docs)
		}
	})

	t.Run("unknown extension", func(t *testing.T) {
		content := "<h2>Raw</h2>"
		path := filepath.Join(tmpDir, "post.txt")
		os.WriteFile(path, []byte(content), 0644)

		docs, err := Load(path)
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if len(docs) != 1 || docs[0].Content != content {
			t.Errorf("got %+v", docs)
		}
	})

	t.Run("markdown", func(t *testing.T) {
		path := filepath.Join(tmpDir, "post.md")
		os.WriteFile(path, []byte("## Intro\n\ntext\n"), 0644)

		docs, err := Load(path)
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if len(docs) != 1 || !strings.Contains(docs[0].Content, "<h2>Intro</h2>") {
			t.Errorf("got %+v", docs)
		}
	})

	t.Run("nonexistent file", func(t *testing.T) {
		_, err := Load(filepath.Join(tmpDir, "nonexistent.html"))
		if err == nil {
			t.Error("expected error")
		}
	})
}

func TestLookup(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		{"a.html", "HTML"},
		{"a.HTM", "HTML"},
		{"a.xhtml", "HTML"},
		{"a.md", "Markdown"},
		{"a.markdown", "Markdown"},
		{"book.epub", "EPUB"},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			f, ok := Lookup(tt.filename)
			if !ok {
				t.Fatalf("no format for %s", tt.filename)
			}
			if f.Name() != tt.want {
				t.Errorf("Lookup(%q) = %s, want %s", tt.filename, f.Name(), tt.want)
			}
		})
	}

	if _, ok := Lookup("notes.txt"); ok {
		t.Error("txt should not have a registered format")
	}
}

func TestSupportedFormats(t *testing.T) {
	formats := strings.Join(SupportedFormats(), "; ")
	for _, want := range []string{"HTML (.html, .htm, .xhtml)", "Markdown (.md, .markdown)", "EPUB (.epub)"} {
		if !strings.Contains(formats, want) {
			t.Errorf("SupportedFormats() missing %q: %s", want, formats)
		}
	}
}
