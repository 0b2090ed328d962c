package toc

import (
	"regexp"
	"slices"
	"strings"

	"golang.org/x/net/html"
)

// shortcodePattern matches the [toc] shortcode in text. The other manual
// marker is an <!-- toc --> comment.
var shortcodePattern = regexp.MustCompile(`(?i)\[toc\]`)

// Markers inside these elements are shown or run as written and never expand.
var literalElements = map[string]bool{
	"code": true, "pre": true, "kbd": true, "samp": true,
	"script": true, "style": true, "textarea": true,
}

// span is a byte range of content.
type span struct {
	start, end int
}

type markupToken struct {
	typ  html.TokenType
	name string
	span
}

// markupScan is what scanMarkup found in content.
type markupScan struct {
	// markers are the manual markers outside literal elements, in order. A
	// marker that is the only thing in its paragraph covers the paragraph.
	markers []span
	// placed reports a rendered table of contents already in content.
	placed bool
}

func scanMarkup(content string) markupScan {
	z := html.NewTokenizer(strings.NewReader(content))
	var (
		scan    markupScan
		tokens  []markupToken
		owners  []int
		offset  int
		literal int
	)
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			break
		}
		tok := markupToken{typ: tt, span: span{offset, offset + len(z.Raw())}}
		offset = tok.end

		switch tt {
		case html.StartTagToken, html.SelfClosingTagToken:
			name, hasAttr := z.TagName()
			tok.name = string(name)
			if tt == html.StartTagToken && literalElements[tok.name] {
				literal++
			}
			if tok.name == "nav" && hasAttr && hasClass(z, classRoot) {
				scan.placed = true
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			tok.name = string(name)
			if literalElements[tok.name] && literal > 0 {
				literal--
			}
		case html.TextToken:
			if literal == 0 {
				for _, m := range shortcodePattern.FindAllStringIndex(content[tok.start:tok.end], -1) {
					scan.markers = append(scan.markers, span{tok.start + m[0], tok.start + m[1]})
					owners = append(owners, len(tokens))
				}
			}
		case html.CommentToken:
			if literal == 0 && strings.EqualFold(strings.TrimSpace(string(z.Text())), "toc") {
				scan.markers = append(scan.markers, tok.span)
				owners = append(owners, len(tokens))
			}
		}
		tokens = append(tokens, tok)
	}

	for i, m := range scan.markers {
		scan.markers[i] = widenToParagraph(content, tokens, owners[i], m)
	}
	return scan
}

// widenToParagraph extends a marker to its enclosing <p> when the paragraph
// holds nothing else, so the table of contents does not end up inside a <p>.
func widenToParagraph(content string, tokens []markupToken, owner int, m span) span {
	blank := func(s span) bool { return strings.TrimSpace(content[s.start:s.end]) == "" }

	tok := tokens[owner]
	if !blank(span{tok.start, m.start}) || !blank(span{m.end, tok.end}) {
		return m
	}

	before := owner - 1
	for before >= 0 && tokens[before].typ == html.TextToken && blank(tokens[before].span) {
		before--
	}
	after := owner + 1
	for after < len(tokens) && tokens[after].typ == html.TextToken && blank(tokens[after].span) {
		after++
	}
	if before < 0 || after >= len(tokens) {
		return m
	}
	open, closing := tokens[before], tokens[after]
	if open.typ != html.StartTagToken || open.name != "p" || closing.typ != html.EndTagToken || closing.name != "p" {
		return m
	}
	return span{open.start, closing.end}
}

func hasClass(z *html.Tokenizer, class string) bool {
	for {
		key, val, more := z.TagAttr()
		if string(key) == "class" && slices.Contains(strings.Fields(string(val)), class) {
			return true
		}
		if !more {
			return false
		}
	}
}

// HasMarker reports whether content asks for manual placement.
func HasMarker(content string) bool {
	return len(scanMarkup(content).markers) > 0
}

// replaceMarkers puts markup in place of the first marker and removes the rest.
func replaceMarkers(content, markup string) string {
	markers := scanMarkup(content).markers
	if len(markers) == 0 {
		return content
	}

	var out strings.Builder
	last := 0
	for i, m := range markers {
		out.WriteString(content[last:m.start])
		if i == 0 {
			out.WriteString(markup)
		}
		last = m.end
	}
	out.WriteString(content[last:])
	return out.String()
}
