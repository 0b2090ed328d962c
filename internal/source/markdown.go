package source

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// MarkdownFormat implements Format for Markdown files by rendering them to HTML.
type MarkdownFormat struct{}

func init() {
	Register(&MarkdownFormat{})
}

// markdown renders without auto heading ids; anchors are assigned later so
// every input format gets the same ids.
var markdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithRendererOptions(html.WithUnsafe()),
)

func (f *MarkdownFormat) Name() string         { return "Markdown" }
func (f *MarkdownFormat) Extensions() []string { return []string{".md", ".markdown"} }

func (f *MarkdownFormat) Load(filename string) ([]Document, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	out, err := RenderMarkdown(data)
	if err != nil {
		return nil, err
	}
	return []Document{{Name: filepath.Base(filename), Content: out}}, nil
}

// RenderMarkdown converts Markdown source to an HTML body.
func RenderMarkdown(src []byte) (string, error) {
	var buf bytes.Buffer
	if err := markdown.Convert(src, &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return buf.String(), nil
}
