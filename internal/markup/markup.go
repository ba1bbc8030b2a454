// Package markup builds Pango markup documents in which one phrase of a
// sentence is styled differently from the rest. The output is consumed by
// an external rasterizer (ImageMagick's pango delegate); this package only
// annotates text, it never lays it out.
package markup

import (
	"errors"
	"strings"

	"github.com/glowmark/limelight/internal/color"
)

// ErrPhraseNotFound is returned when the highlight phrase is not an exact
// substring of the sentence.
var ErrPhraseNotFound = errors.New("highlight phrase not found in sentence")

// BaseStyle is the document-wide styling applied to the outer span. All
// runs inherit from it unless the highlight span overrides an attribute.
type BaseStyle struct {
	FontFamily string
	SizePt     float64
	Foreground color.RGB
}

// escaper rewrites the five markup-sensitive characters. Ampersand first,
// so already-produced entities are never re-escaped.
var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// Escape returns text safe for embedding as literal character data inside
// Pango markup.
func Escape(text string) string {
	return escaper.Replace(text)
}

// Build produces a markup document for sentence with the FIRST occurrence
// of phrase wrapped in a highlight span. Matching is exact and
// case-sensitive; later identical occurrences stay unhighlighted by policy.
//
// The three runs (prefix, highlighted, suffix) are escaped individually
// before any tags are added, so literal '&', '<', '>' and quotes in the
// input can never break the document structure.
func Build(sentence, phrase string, base BaseStyle, hl Overrides) (string, error) {
	start := strings.Index(sentence, phrase)
	if start < 0 {
		return "", ErrPhraseNotFound
	}
	end := start + len(phrase)

	var b strings.Builder
	b.WriteString("<span ")
	b.WriteString(base.attrs())
	b.WriteString(">")
	b.WriteString(Escape(sentence[:start]))
	b.WriteString("<span ")
	b.WriteString(hl.attrs())
	b.WriteString(">")
	b.WriteString(Escape(phrase))
	b.WriteString("</span>")
	b.WriteString(Escape(sentence[end:]))
	b.WriteString("</span>")
	return b.String(), nil
}

// attrs serializes the base span attributes in the legacy order:
// font_family, size, foreground. Size is in Pango units (points x 1024).
func (s BaseStyle) attrs() string {
	var b strings.Builder
	b.WriteString("font_family='")
	b.WriteString(s.FontFamily)
	b.WriteString("' size='")
	b.WriteString(pangoSize(s.SizePt))
	b.WriteString("' foreground='")
	b.WriteString(s.Foreground.Hex())
	b.WriteString("'")
	return b.String()
}
