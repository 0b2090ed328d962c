// Package source loads article content from files into HTML documents ready
// for table of contents generation.
package source

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Document is one HTML body to process. Most formats yield a single document;
// EPUB yields one per spine item.
type Document struct {
	Name    string
	Content string
	// Head and Tail surround Content when the source is a complete page.
	Head, Tail string
}

// Format defines a file format loader.
type Format interface {
	Name() string
	Extensions() []string
	Load(filename string) ([]Document, error)
}

var registry []Format

// Register adds a format loader to the registry.
func Register(f Format) {
	registry = append(registry, f)
}

// Lookup returns the registered format handling filename's extension.
func Lookup(filename string) (Format, bool) {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, f := range registry {
		for _, e := range f.Extensions() {
			if ext == e {
				return f, true
			}
		}
	}
	return nil, false
}

// Load reads a file using a registered format, treating unknown extensions as HTML.
func Load(filename string) ([]Document, error) {
	if f, ok := Lookup(filename); ok {
		docs, err := f.Load(filename)
		if err != nil {
			return nil, fmt.Errorf("load %s as %s: %w", filename, f.Name(), err)
		}
		return docs, nil
	}
	return readHTML(filename)
}

// SupportedFormats returns registered format names with their extensions.
func SupportedFormats() []string {
	var out []string
	for _, f := range registry {
		out = append(out, f.Name()+" ("+strings.Join(f.Extensions(), ", ")+")")
	}
	return out
}

func readHTML(filename string) ([]Document, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return []Document{NewDocument(filepath.Base(filename), string(data))}, nil
}
