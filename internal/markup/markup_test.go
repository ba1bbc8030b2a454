package markup

import (
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/glowmark/limelight/internal/color"
)

// --- Helper builders ---

func legacyBase() BaseStyle {
	return BaseStyle{
		FontFamily: "Arial",
		SizePt:     100,
		Foreground: color.RGB{R: 1, G: 1, B: 1},
	}
}

func blueHighlight() Overrides {
	return Overrides{Foreground: "#0099ff"}
}

var tagRe = regexp.MustCompile(`</?span[^>]*>`)

// stripAndUnescape removes the span tags and reverses entity escaping,
// reconstructing the literal text content of the document.
func stripAndUnescape(doc string) string {
	text := tagRe.ReplaceAllString(doc, "")
	r := strings.NewReplacer(
		"&lt;", "<",
		"&gt;", ">",
		"&quot;", `"`,
		"&#39;", "'",
		"&amp;", "&",
	)
	return r.Replace(text)
}

// --- Build ---

func TestBuild_LegacyDocument(t *testing.T) {
	doc, err := Build(
		"Growth comes from stepping out of the comfort zone.",
		"comfort zone",
		legacyBase(), blueHighlight(),
	)
	if err != nil {
		t.Fatalf("Build() = %v", err)
	}

	want := "<span font_family='Arial' size='102400' foreground='#ffffff'>" +
		"Growth comes from stepping out of the " +
		"<span foreground='#0099ff'>comfort zone</span>" +
		".</span>"
	if doc != want {
		t.Errorf("Build() =\n%s\nwant\n%s", doc, want)
	}
}

func TestBuild_PhraseNotFound(t *testing.T) {
	_, err := Build("no such phrase here", "comfort zone", legacyBase(), blueHighlight())
	if !errors.Is(err, ErrPhraseNotFound) {
		t.Errorf("err = %v, want ErrPhraseNotFound", err)
	}
}

func TestBuild_CaseSensitive(t *testing.T) {
	_, err := Build("The Comfort Zone is capitalized.", "comfort zone", legacyBase(), blueHighlight())
	if !errors.Is(err, ErrPhraseNotFound) {
		t.Errorf("matching must be case-sensitive, err = %v", err)
	}
}

func TestBuild_FirstOccurrenceOnly(t *testing.T) {
	doc, err := Build("go big or go home", "go", legacyBase(), blueHighlight())
	if err != nil {
		t.Fatalf("Build() = %v", err)
	}
	if n := strings.Count(doc, "<span foreground='#0099ff'>"); n != 1 {
		t.Errorf("highlight spans = %d, want exactly 1 (first occurrence policy)", n)
	}
	// The highlighted run must sit at offset 0, before "big".
	if !strings.Contains(doc, "><span foreground='#0099ff'>go</span> big or go home<") {
		t.Errorf("first occurrence not the one highlighted:\n%s", doc)
	}
}

func TestBuild_PhraseAtStartAndEnd(t *testing.T) {
	for _, tt := range []struct {
		name, sentence, phrase string
	}{
		{"at start", "zone of comfort", "zone"},
		{"at end", "the comfort zone", "zone"},
		{"whole sentence", "zone", "zone"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Build(tt.sentence, tt.phrase, legacyBase(), blueHighlight())
			if err != nil {
				t.Fatalf("Build() = %v", err)
			}
			if got := stripAndUnescape(doc); got != tt.sentence {
				t.Errorf("content = %q, want %q", got, tt.sentence)
			}
		})
	}
}

func TestBuild_EscapingRoundTrip(t *testing.T) {
	tests := []struct {
		sentence, phrase string
	}{
		{`Tom & Jerry say "hello" to <everyone>, don't they?`, "Jerry"},
		{`a < b && b > c`, "&&"},
		{`already-escaped &amp; stays literal`, "stays"},
		{`quotes: 'single' and "double"`, `"double"`},
	}
	for _, tt := range tests {
		doc, err := Build(tt.sentence, tt.phrase, legacyBase(), blueHighlight())
		if err != nil {
			t.Fatalf("Build(%q, %q) = %v", tt.sentence, tt.phrase, err)
		}
		if got := stripAndUnescape(doc); got != tt.sentence {
			t.Errorf("round trip of %q = %q", tt.sentence, got)
		}
		// A literal "&amp;" in the input legitimately escapes to
		// "&amp;amp;", so the double-escape check only applies to
		// sentences without pre-existing entities.
		if !strings.Contains(tt.sentence, "&amp;") && strings.Contains(doc, "&amp;amp;") {
			t.Errorf("double escaping in %q", doc)
		}
	}
}

func TestBuild_BalancedTags(t *testing.T) {
	doc, err := Build("Tom & Jerry <together>", "Jerry", legacyBase(), blueHighlight())
	if err != nil {
		t.Fatalf("Build() = %v", err)
	}
	open := strings.Count(doc, "<span")
	closed := strings.Count(doc, "</span>")
	if open != 2 || closed != 2 {
		t.Errorf("tags unbalanced: %d open, %d close\n%s", open, closed, doc)
	}
	// Raw angle brackets from the input must not survive outside tags.
	if strings.Contains(doc, "<together>") {
		t.Errorf("unescaped input leaked into document:\n%s", doc)
	}
}

// --- Escape ---

func TestEscape(t *testing.T) {
	tests := []struct {
		name, in, want string
	}{
		{"ampersand", "a & b", "a &amp; b"},
		{"angle brackets", "<span>", "&lt;span&gt;"},
		{"double quote", `say "hi"`, "say &quot;hi&quot;"},
		{"single quote", "don't", "don&#39;t"},
		{"no double escape", "x &amp; y", "x &amp;amp; y"},
		{"plain text untouched", "hello world", "hello world"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Escape(tt.in); got != tt.want {
				t.Errorf("Escape(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

// --- Overrides serialization ---

func TestOverrides_AttrOrder(t *testing.T) {
	o := Overrides{
		Foreground:    "#0099ff",
		Size:          "143360",
		FontFamily:    "Courier New",
		Weight:        "bold",
		Style:         "italic",
		Underline:     "single",
		Strikethrough: "true",
		Rise:          "10000",
	}
	want := "foreground='#0099ff' size='143360' font_family='Courier New' " +
		"weight='bold' style='italic' underline='single' strikethrough='true' rise='10000'"
	if got := o.attrs(); got != want {
		t.Errorf("attrs() =\n%s\nwant\n%s", got, want)
	}
}

func TestOverrides_EmptyFieldsOmitted(t *testing.T) {
	o := Overrides{Foreground: "#0099ff", Weight: "bold"}
	if got := o.attrs(); got != "foreground='#0099ff' weight='bold'" {
		t.Errorf("attrs() = %q", got)
	}
}
