// Package color provides the normalized float color types used by the
// markup builder and configuration: RGB triples in [0,1], hex encoding
// for Pango markup, and HSLA conversion for palette-driven variants.
package color

import (
	"fmt"
	"math"

	"gopkg.in/yaml.v3"
)

// RGB is a normalized color triple with each channel in [0,1].
type RGB struct {
	R, G, B float64
}

// RGBA is an RGB triple plus a normalized alpha channel.
type RGBA struct {
	R, G, B, A float64
}

// Hex returns the 6-hex-digit "#rrggbb" form of c. Channels are rounded,
// not truncated, so values like 0.999 land on 0xff. Alpha never appears
// in the hex form; Pango markup carries no alpha in foreground colors.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", channel(c.R), channel(c.G), channel(c.B))
}

// channel maps a normalized float to a clamped 8-bit value.
func channel(v float64) uint8 {
	n := math.Round(v * 255)
	if n < 0 {
		return 0
	}
	if n > 255 {
		return 255
	}
	return uint8(n)
}

// UnmarshalYAML accepts the config file form of a color: a flow sequence
// of three floats, e.g. "background_color: [0.2, 0.2, 0.2]".
func (c *RGB) UnmarshalYAML(node *yaml.Node) error {
	var vals []float64
	if err := node.Decode(&vals); err != nil {
		return fmt.Errorf("color must be a [r, g, b] float sequence: %w", err)
	}
	if len(vals) != 3 {
		return fmt.Errorf("color needs exactly 3 channels, got %d", len(vals))
	}
	for i, v := range vals {
		if v < 0 || v > 1 {
			return fmt.Errorf("color channel %d out of range [0,1]: %v", i, v)
		}
	}
	c.R, c.G, c.B = vals[0], vals[1], vals[2]
	return nil
}

// HSLAToRGBA converts a hue/saturation/lightness/alpha quadruple (all
// normalized to [0,1], hue included) to RGBA. Alpha passes through
// unchanged.
func HSLAToRGBA(h, s, l, a float64) RGBA {
	if s == 0 {
		return RGBA{R: l, G: l, B: l, A: a}
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	return RGBA{
		R: hueToChannel(p, q, h+1.0/3.0),
		G: hueToChannel(p, q, h),
		B: hueToChannel(p, q, h-1.0/3.0),
		A: a,
	}
}

// hueToChannel is the standard HSL helper for one channel.
func hueToChannel(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6.0:
		return p + (q-p)*6*t
	case t < 1.0/2.0:
		return q
	case t < 2.0/3.0:
		return p + (q-p)*(2.0/3.0-t)*6
	default:
		return p
	}
}
