package markup

import (
	"fmt"
	"strconv"

	"github.com/glowmark/limelight/internal/color"
	"github.com/glowmark/limelight/internal/config"
)

// Variant is one named alternative styling for the highlighted phrase.
// Each variant yields an independent document (and card) from the same
// sentence and phrase.
type Variant struct {
	Suffix    string
	Overrides Overrides
}

// Document is the result of building one variant: the markup string plus
// the suffix used for output naming ("{basename}_{suffix}.png").
type Document struct {
	Suffix string
	Markup string
}

// DefaultVariants returns the built-in demo set, one variant per Pango
// span feature, matching the legacy pango_feature_demos.py list.
func DefaultVariants(basePt float64, highlight color.RGB) []Variant {
	fg := highlight.Hex()
	return []Variant{
		{"color", Overrides{Foreground: color.RGB{R: 0, G: 0.6, B: 1}.Hex()}},
		{"size", Overrides{Foreground: fg, Size: strconv.Itoa(int(basePt * 1.4 * 1024))}},
		{"family", Overrides{Foreground: fg, FontFamily: "Courier New"}},
		{"weight", Overrides{Foreground: fg, Weight: "bold"}},
		{"style", Overrides{Foreground: fg, Style: "italic"}},
		{"underline", Overrides{Foreground: fg, Underline: "single"}},
		{"strike", Overrides{Foreground: fg, Strikethrough: "true"}},
		{"rise", Overrides{Foreground: fg, Rise: "10000"}},
	}
}

// VariantsFromConfig converts the config file's variant list into build-ready
// variants. Per entry, the highlight foreground resolves in precedence order:
// extra_attrs foreground > highlight_color > the config default. When the
// list is empty the built-in demo set is used.
func VariantsFromConfig(cfg *config.Config) []Variant {
	if len(cfg.Variants) == 0 {
		return DefaultVariants(cfg.BaseFontSizePt, cfg.DefaultHighlightColor)
	}

	out := make([]Variant, 0, len(cfg.Variants))
	for _, vc := range cfg.Variants {
		fg := cfg.DefaultHighlightColor.Hex()
		if vc.HighlightColor != nil {
			fg = vc.HighlightColor.Hex()
		}
		if vc.ExtraAttrs.Foreground != "" {
			fg = vc.ExtraAttrs.Foreground
		}
		out = append(out, Variant{
			Suffix: vc.Suffix,
			Overrides: Overrides{
				Foreground:    fg,
				Size:          vc.ExtraAttrs.Size,
				FontFamily:    vc.ExtraAttrs.FontFamily,
				Weight:        vc.ExtraAttrs.Weight,
				Style:         vc.ExtraAttrs.Style,
				Underline:     vc.ExtraAttrs.Underline,
				Strikethrough: vc.ExtraAttrs.Strikethrough,
				Rise:          vc.ExtraAttrs.Rise,
			},
		})
	}
	return out
}

// BuildAll builds one document per variant against the same sentence and
// phrase, preserving variant order. The first failing variant aborts the
// whole set; with a shared sentence and phrase, a phrase miss on one
// variant is a phrase miss on all of them.
func BuildAll(sentence, phrase string, base BaseStyle, variants []Variant) ([]Document, error) {
	docs := make([]Document, 0, len(variants))
	for _, v := range variants {
		m, err := Build(sentence, phrase, base, v.Overrides)
		if err != nil {
			return nil, fmt.Errorf("variant %q: %w", v.Suffix, err)
		}
		docs = append(docs, Document{Suffix: v.Suffix, Markup: m})
	}
	return docs, nil
}
