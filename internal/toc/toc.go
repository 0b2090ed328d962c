// Package toc finds the section headings of HTML article content, gives each
// one an anchor id and renders a table of contents that links to them.
//
// The package is pure: every call works on the strings it is given and the
// Settings passed in by the host, and returns new strings.
package toc

import "strings"

// Settings is the per-document configuration owned by the host.
type Settings struct {
	Enabled         bool
	Position        Position
	Title           string
	IDPrefix        string
	StripDiacritics bool
}

// DefaultSettings returns the settings used when the host has none stored.
func DefaultSettings() Settings {
	return Settings{
		Enabled:         true,
		Position:        Top,
		Title:           DefaultTitle,
		StripDiacritics: true,
	}
}

func (s Settings) extractOptions() ExtractOptions {
	return ExtractOptions{IDPrefix: s.IDPrefix, StripDiacritics: s.StripDiacritics}
}

// Build extracts headings and renders the fragment without merging it. Hosts
// that place the table of contents themselves use the annotated content and
// the fragment markup directly.
func Build(content string, s Settings) (string, Fragment) {
	headings, annotated := Extract(content, s.extractOptions())
	return annotated, Render(headings, s.Position, RenderOptions{Title: s.Title})
}

// Inject runs the whole pipeline and returns the content to display. Content
// comes back unchanged when the host disabled the table of contents, when it is
// empty, when it holds a manual marker or an already rendered table of
// contents, or when it has fewer than MinHeadings headings.
func Inject(content string, s Settings) string {
	if !s.Enabled || strings.TrimSpace(content) == "" {
		return content
	}
	if scan := scanMarkup(content); len(scan.markers) > 0 || scan.placed {
		return content
	}

	annotated, f := Build(content, s)
	if len(f.Items) < MinHeadings {
		return content
	}
	return Merge(annotated, f)
}

// ExpandMarker replaces the first manual marker in content with the table of
// contents and drops any further markers. Content without a marker is
// returned unchanged. With too few headings the markers are removed and
// nothing is inserted.
func ExpandMarker(content string, s Settings) string {
	if !HasMarker(content) {
		return content
	}
	if !s.Enabled {
		return replaceMarkers(content, "")
	}

	annotated, f := Build(content, s)
	if len(f.Items) < MinHeadings {
		return replaceMarkers(content, "")
	}
	return replaceMarkers(annotated, f.Markup)
}
