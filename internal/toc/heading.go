package toc

import (
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Tier classifies a heading for indentation in the table of contents.
type Tier int

const (
	// Primary is a top-level section (h2).
	Primary Tier = iota
	// Secondary is a subsection (h3).
	Secondary
)

func (t Tier) String() string {
	if t == Secondary {
		return "secondary"
	}
	return "primary"
}

// Heading is one detected heading, in document order.
type Heading struct {
	Tier Tier
	ID   string
	Text string
}

// ExtractOptions controls anchor id generation.
type ExtractOptions struct {
	// IDPrefix is prepended to generated ids. Existing ids are never prefixed.
	IDPrefix string
	// StripDiacritics reduces accented letters to their base letter in ids.
	StripDiacritics bool
}

// fallbackIDPrefix names headings whose text yields no usable id characters.
const fallbackIDPrefix = "section-"

// Extract finds the h2 and h3 headings in content and returns them together
// with content rewritten so that every listed heading carries an id attribute.
// Headings without text are skipped. Markup that cannot be parsed yields no
// headings and the original content.
func Extract(content string, opts ExtractOptions) ([]Heading, string) {
	if strings.TrimSpace(content) == "" {
		return nil, content
	}

	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(content), body)
	if err != nil {
		return nil, content
	}
	for _, n := range nodes {
		body.AppendChild(n)
	}
	doc := goquery.NewDocumentFromNode(body)

	// Ids already present anywhere in the document must not be handed out again.
	anchors := newAnchorSet()
	doc.Find("[id]").Each(func(_ int, s *goquery.Selection) {
		id, _ := s.Attr("id")
		anchors.reserve(id)
	})

	var headings []Heading
	doc.Find("h2, h3").Each(func(_ int, s *goquery.Selection) {
		text := strings.Join(strings.Fields(s.Text()), " ")
		if text == "" {
			return
		}

		tier := Primary
		if goquery.NodeName(s) == "h3" {
			tier = Secondary
		}

		id, ok := s.Attr("id")
		if !ok || strings.TrimSpace(id) == "" {
			base := Slugify(text, opts.StripDiacritics)
			if base == "" {
				base = fallbackIDPrefix + strconv.Itoa(len(headings)+1)
			}
			id = anchors.claim(opts.IDPrefix + base)
			s.SetAttr("id", id)
		}

		headings = append(headings, Heading{Tier: tier, ID: id, Text: text})
	})

	if len(headings) == 0 {
		return nil, content
	}

	annotated, err := doc.Selection.Html()
	if err != nil {
		return nil, content
	}
	return headings, annotated
}
