package toc

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// idSeparator joins the words of a generated anchor id.
const idSeparator = "-"

// Slugify converts heading text to an anchor id: lowercase, with every run of
// characters that are not letters, digits or combining marks collapsed into a
// single separator. When stripDiacritics is set, accents on Latin, Greek and
// Cyrillic letters are removed first ("Café" becomes "cafe"); marks that are
// part of other scripts' spelling stay.
func Slugify(text string, stripDiacritics bool) string {
	if stripDiacritics {
		text = removeDiacritics(text)
	} else {
		text = norm.NFC.String(text)
	}

	var buf strings.Builder
	pendingSep := false
	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r) {
			if pendingSep && buf.Len() > 0 {
				buf.WriteString(idSeparator)
			}
			pendingSep = false
			buf.WriteRune(r)
			continue
		}
		pendingSep = true
	}
	return buf.String()
}

// accentedScripts are the scripts whose nonspacing marks are accents.
var accentedScripts = []*unicode.RangeTable{unicode.Latin, unicode.Greek, unicode.Cyrillic}

func removeDiacritics(s string) string {
	var buf strings.Builder
	accented := false
	for _, r := range norm.NFD.String(s) {
		if unicode.Is(unicode.Mn, r) {
			if accented {
				continue
			}
		} else {
			accented = unicode.IsOneOf(accentedScripts, r)
		}
		buf.WriteRune(r)
	}
	return norm.NFC.String(buf.String())
}

// anchorSet hands out ids that are unique within one extraction pass.
type anchorSet struct {
	used map[string]bool
}

func newAnchorSet() *anchorSet {
	return &anchorSet{used: make(map[string]bool)}
}

// reserve marks an id that already exists in the document.
func (a *anchorSet) reserve(id string) {
	if id != "" {
		a.used[id] = true
	}
}

// claim returns base if it is free, otherwise base-1, base-2, ... whichever
// is free first. The returned id is reserved.
func (a *anchorSet) claim(base string) string {
	id := base
	for k := 1; a.used[id]; k++ {
		id = fmt.Sprintf("%s%s%d", base, idSeparator, k)
	}
	a.used[id] = true
	return id
}
