package source

import (
	"strings"

	"golang.org/x/net/html"
)

// NewDocument wraps markup as a Document. A complete page is split so that
// Content holds only the inner HTML of its <body>; the doctype, head and
// closing tags are kept byte for byte in Head and Tail.
func NewDocument(name, markup string) Document {
	head, body, tail := splitPage(markup)
	return Document{Name: name, Content: body, Head: head, Tail: tail}
}

// Page puts a processed body back between the document's head and tail.
func (d Document) Page(body string) string {
	return d.Head + body + d.Tail
}

// splitPage returns the markup through the <body> start tag, the body's
// content and the markup from </body> on. Pages without a <body> tag split
// after </head> and before </html>. Fragments come back whole as the body.
func splitPage(s string) (head, body, tail string) {
	z := html.NewTokenizer(strings.NewReader(s))
	var (
		offset  int
		start   = -1
		headEnd = -1
		bodyEnd = -1
		htmlEnd = -1
	)
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			break
		}
		pos := offset
		offset += len(z.Raw())

		switch tt {
		case html.StartTagToken:
			name, _ := z.TagName()
			if start < 0 && string(name) == "body" {
				start = offset
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			switch string(name) {
			case "head":
				if headEnd < 0 {
					headEnd = offset
				}
			case "body":
				bodyEnd = pos
			case "html":
				if htmlEnd < 0 {
					htmlEnd = pos
				}
			}
		}
	}

	if start < 0 {
		start = headEnd
	}
	if start < 0 {
		return "", s, ""
	}

	end := len(s)
	switch {
	case bodyEnd >= start:
		end = bodyEnd
	case htmlEnd >= start:
		end = htmlEnd
	}
	return s[:start], s[start:end], s[end:]
}
