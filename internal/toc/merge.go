package toc

import (
	"strings"

	"golang.org/x/net/html"
)

// MinHeadings is the smallest number of headings that gets a table of contents.
const MinHeadings = 2

// minMiddleBlocks is the number of top-level blocks needed before Middle
// placement splits the content; below it the fragment goes on top.
const minMiddleBlocks = 3

// Merge places the fragment into content at f.Position. A fragment with fewer
// than MinHeadings items leaves content untouched.
func Merge(content string, f Fragment) string {
	if len(f.Items) < MinHeadings || f.Markup == "" {
		return content
	}

	switch f.Position {
	case Bottom:
		return content + f.Markup
	case Middle:
		off, ok := middleOffset(content)
		if !ok {
			return f.Markup + content
		}
		return content[:off] + f.Markup + content[off:]
	default:
		// Top, FloatLeft and FloatRight differ only in the fragment's classes.
		return f.Markup + content
	}
}

// blockElements close a paragraph-like block when they end at the top level.
var blockElements = map[string]bool{
	"p": true, "div": true, "ul": true, "ol": true, "dl": true,
	"blockquote": true, "pre": true, "table": true, "figure": true,
	"section": true, "article": true, "aside": true, "header": true, "footer": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
}

var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"source": true, "track": true, "wbr": true,
}

// blockBoundaries returns the byte offsets just past every top-level block
// element in content. Unbalanced markup only shifts the depth count, so some
// boundaries may be missed but none are invented inside a tag.
func blockBoundaries(content string) []int {
	z := html.NewTokenizer(strings.NewReader(content))
	var (
		bounds []int
		offset int
		depth  int
	)
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			return bounds
		}
		offset += len(z.Raw())

		switch tt {
		case html.StartTagToken:
			name, _ := z.TagName()
			tag := string(name)
			if voidElements[tag] {
				if tag == "hr" && depth == 0 {
					bounds = append(bounds, offset)
				}
				continue
			}
			depth++
		case html.EndTagToken:
			name, _ := z.TagName()
			if depth > 0 {
				depth--
			}
			if depth == 0 && blockElements[string(name)] {
				bounds = append(bounds, offset)
			}
		case html.SelfClosingTagToken:
			name, _ := z.TagName()
			if string(name) == "hr" && depth == 0 {
				bounds = append(bounds, offset)
			}
		}
	}
}

// middleOffset picks the block boundary closest to the middle of content.
func middleOffset(content string) (int, bool) {
	bounds := blockBoundaries(content)
	if len(bounds) < minMiddleBlocks {
		return 0, false
	}

	end := len(strings.TrimRight(content, " \t\r\n"))
	mid := len(content) / 2
	best, found := 0, false
	for _, b := range bounds {
		if b >= end {
			continue
		}
		if !found || abs(b-mid) < abs(best-mid) {
			best, found = b, true
		}
	}
	return best, found
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
