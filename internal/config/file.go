package config

// This file implements YAML config file loading and the variant list schema.
// File values overlay DefaultConfig; CLI flags are applied afterwards by the
// command layer, so precedence is flags > file > defaults.

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/glowmark/limelight/internal/color"
)

// Load reads the YAML file at path and overlays its values onto cfg.
// Unknown top-level keys are rejected so typos surface immediately.
func Load(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// VariantConfig is one named styling alternative for the highlighted run.
// Only the attributes present in the file are overridden; everything else
// inherits the default highlight styling.
type VariantConfig struct {
	Suffix         string
	ExtraAttrs     VariantOverrides `yaml:"extra_attrs"`
	HighlightColor *color.RGB       `yaml:"highlight_color"` // nil means the config default.
}

// VariantList preserves the file order of the variants mapping, which a
// plain map[string]VariantConfig would lose.
type VariantList []VariantConfig

// UnmarshalYAML decodes "variants: {suffix: {...}, ...}" keeping key order.
func (v *VariantList) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("variants must be a mapping of suffix to settings (line %d)", node.Line)
	}
	out := make(VariantList, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		var vc VariantConfig
		vc.Suffix = node.Content[i].Value
		if vc.Suffix == "" {
			return fmt.Errorf("variant suffix must not be empty (line %d)", node.Content[i].Line)
		}
		if err := node.Content[i+1].Decode(&vc); err != nil {
			return fmt.Errorf("variant %q: %w", vc.Suffix, err)
		}
		out = append(out, vc)
	}
	*v = out
	return nil
}

// VariantOverrides is the fixed-schema record of highlight span attributes a
// variant may override. A closed struct (rather than an open string map)
// catches attribute typos when the config is parsed instead of producing
// markup that Pango silently mis-renders.
type VariantOverrides struct {
	Foreground    string // Hex color or named color; overrides highlight_color.
	Size          string // Pango units (points x 1024).
	FontFamily    string
	Weight        string
	Style         string
	Underline     string
	Strikethrough string
	Rise          string
}

// UnmarshalYAML decodes an extra_attrs mapping, rejecting unknown attribute
// names. Keys use the Pango markup spelling (font_family, not FontFamily).
func (o *VariantOverrides) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("extra_attrs must be a mapping (line %d)", node.Line)
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value
		val := node.Content[i+1].Value
		switch key {
		case "foreground":
			o.Foreground = val
		case "size":
			o.Size = val
		case "font_family":
			o.FontFamily = val
		case "weight":
			o.Weight = val
		case "style":
			o.Style = val
		case "underline":
			o.Underline = val
		case "strikethrough":
			o.Strikethrough = val
		case "rise":
			o.Rise = val
		default:
			return fmt.Errorf("unknown highlight attribute %q (line %d)", key, node.Content[i].Line)
		}
	}
	return nil
}

// IsZero reports whether no attribute is overridden.
func (o VariantOverrides) IsZero() bool {
	return o == VariantOverrides{}
}
