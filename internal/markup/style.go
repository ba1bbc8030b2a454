package markup

import (
	"strconv"
	"strings"
)

// Overrides is the fixed set of span attributes a highlight run may carry.
// Foreground is always emitted (it defaults to the configured highlight
// color); every other field is emitted only when non-empty, preserving the
// "override only what you specify" merge semantics of the legacy attribute
// dictionaries without their typo-prone open keys.
type Overrides struct {
	Foreground    string // Hex color, e.g. "#0099ff". Required.
	Size          string // Pango units (points x 1024).
	FontFamily    string
	Weight        string // e.g. "bold".
	Style         string // e.g. "italic".
	Underline     string // e.g. "single".
	Strikethrough string // "true" or "false".
	Rise          string // Pango units above the baseline.
}

// String returns the serialized span attributes, used by dry-run previews.
func (o Overrides) String() string { return o.attrs() }

// attrs serializes the overrides as span attributes in a fixed order:
// foreground, size, font_family, weight, style, underline, strikethrough,
// rise. Empty fields are omitted.
func (o Overrides) attrs() string {
	pairs := []struct{ name, value string }{
		{"foreground", o.Foreground},
		{"size", o.Size},
		{"font_family", o.FontFamily},
		{"weight", o.Weight},
		{"style", o.Style},
		{"underline", o.Underline},
		{"strikethrough", o.Strikethrough},
		{"rise", o.Rise},
	}

	parts := make([]string, 0, len(pairs))
	for _, p := range pairs {
		if p.value == "" {
			continue
		}
		parts = append(parts, p.name+"='"+p.value+"'")
	}
	return strings.Join(parts, " ")
}

// pangoSize converts a point size to the Pango markup size attribute value
// (points x 1024, truncated like the legacy int() conversion).
func pangoSize(pt float64) string {
	return strconv.Itoa(int(pt * 1024))
}
