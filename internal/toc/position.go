package toc

import "strings"

// Position says where the table of contents goes relative to the content.
type Position int

const (
	Top Position = iota
	Middle
	Bottom
	FloatLeft
	FloatRight
)

var positionNames = map[Position]string{
	Top:        "top",
	Middle:     "middle",
	Bottom:     "bottom",
	FloatLeft:  "float_left",
	FloatRight: "float_right",
}

func (p Position) String() string {
	if name, ok := positionNames[p]; ok {
		return name
	}
	return positionNames[Top]
}

// ParsePosition maps a host option value to a Position. Matching ignores case
// and surrounding space and accepts "-" in place of "_". Anything unknown,
// including the empty string, is Top.
func ParsePosition(s string) Position {
	p, _ := LookupPosition(s)
	return p
}

// LookupPosition is ParsePosition that also reports whether s was recognized.
func LookupPosition(s string) (Position, bool) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	for p, name := range positionNames {
		if name == key {
			return p, true
		}
	}
	return Top, false
}

// PositionNames lists the accepted option values in display order.
func PositionNames() []string {
	return []string{"top", "middle", "bottom", "float_left", "float_right"}
}
