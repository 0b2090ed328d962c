package toc

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// DefaultTitle is the label shown above the list of links.
const DefaultTitle = "Table of Contents"

// CSS classes of the rendered block. Hosts style against these.
const (
	classRoot  = "simple-toc"
	classTitle = "simple-toc-title"
	classList  = "simple-toc-list"
	classItem  = "simple-toc-item"
	classChild = "simple-toc-item--child"
)

// Fragment is a rendered table of contents, ready to be merged into content.
type Fragment struct {
	Items    []Heading
	Position Position
	Markup   string
}

// RenderOptions controls the markup of a Fragment.
type RenderOptions struct {
	// Title is the label above the list. Empty means DefaultTitle.
	Title string
}

// Render builds the table of contents block for headings. Secondary headings
// stay in the same flat list and are marked with a child class. With no
// headings the Fragment has no markup.
func Render(headings []Heading, pos Position, opts RenderOptions) Fragment {
	f := Fragment{Items: headings, Position: pos}
	if len(headings) == 0 {
		return f
	}

	title := opts.Title
	if title == "" {
		title = DefaultTitle
	}

	nav := element(atom.Nav, rootClass(pos))
	titleDiv := element(atom.Div, classTitle)
	titleDiv.AppendChild(text(title))
	nav.AppendChild(titleDiv)

	list := element(atom.Ul, classList)
	for _, h := range headings {
		class := classItem
		if h.Tier == Secondary {
			class += " " + classChild
		}
		li := element(atom.Li, class)
		a := &html.Node{
			Type:     html.ElementNode,
			DataAtom: atom.A,
			Data:     atom.A.String(),
			Attr:     []html.Attribute{{Key: "href", Val: "#" + h.ID}},
		}
		a.AppendChild(text(h.Text))
		li.AppendChild(a)
		list.AppendChild(li)
	}
	nav.AppendChild(list)

	var buf strings.Builder
	if err := html.Render(&buf, nav); err != nil {
		return Fragment{Items: headings, Position: pos}
	}
	f.Markup = buf.String()
	return f
}

func rootClass(pos Position) string {
	switch pos {
	case FloatLeft:
		return classRoot + " " + classRoot + "--float-left"
	case FloatRight:
		return classRoot + " " + classRoot + "--float-right"
	}
	return classRoot
}

func element(a atom.Atom, class string) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
		Attr:     []html.Attribute{{Key: "class", Val: class}},
	}
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}
