package source

import (
	"fmt"
	"io"

	"github.com/taylorskalyo/goreader/epub"
)

// EPUBFormat implements Format for EPUB files. Every spine item becomes a
// document whose Content is its <body> and whose Head and Tail keep the rest
// of the XHTML page.
type EPUBFormat struct{}

func init() {
	Register(&EPUBFormat{})
}

func (f *EPUBFormat) Name() string         { return "EPUB" }
func (f *EPUBFormat) Extensions() []string { return []string{".epub"} }

func (f *EPUBFormat) Load(filename string) ([]Document, error) {
	rc, err := epub.OpenReader(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open epub: %w", err)
	}
	defer rc.Close()

	if len(rc.Rootfiles) == 0 {
		return nil, fmt.Errorf("no rootfiles found in epub")
	}

	book := rc.Rootfiles[0]
	var docs []Document

	for _, ref := range book.Spine.Itemrefs {
		if ref.Item == nil {
			continue
		}
		r, err := ref.Item.Open()
		if err != nil {
			continue
		}
		data, err := io.ReadAll(r)
		r.Close()
		if err != nil {
			continue
		}
		docs = append(docs, NewDocument(ref.Item.HREF, string(data)))
	}

	if len(docs) == 0 {
		return nil, fmt.Errorf("no readable spine items in epub")
	}
	return docs, nil
}
