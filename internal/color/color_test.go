package color

import (
	"math"
	"strconv"
	"testing"
)

func TestHex(t *testing.T) {
	tests := []struct {
		name string
		c    RGB
		want string
	}{
		{"pure red", RGB{1, 0, 0}, "#ff0000"},
		{"black", RGB{0, 0, 0}, "#000000"},
		{"white", RGB{1, 1, 1}, "#ffffff"},
		{"default highlight blue", RGB{0, 0.6, 1}, "#0099ff"},
		{"dark gray canvas", RGB{0.2, 0.2, 0.2}, "#333333"},
		{"near-white rounds up", RGB{0.999, 0.999, 0.999}, "#ffffff"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.Hex(); got != tt.want {
				t.Errorf("Hex(%v) = %q, want %q", tt.c, got, tt.want)
			}
		})
	}
}

func TestHexRoundTrip(t *testing.T) {
	// Arbitrary channel values must survive hex encoding within 1/255.
	for _, v := range []float64{0.0, 0.1, 0.25, 0.333, 0.5, 0.7071, 0.9, 1.0} {
		hex := RGB{v, v, v}.Hex()
		n, err := strconv.ParseUint(hex[1:3], 16, 8)
		if err != nil {
			t.Fatalf("bad hex output %q: %v", hex, err)
		}
		back := float64(n) / 255
		if math.Abs(back-v) > 1.0/255 {
			t.Errorf("round trip %v -> %q -> %v exceeds 1/255 tolerance", v, hex, back)
		}
	}
}

func TestHSLAToRGBAIdentity(t *testing.T) {
	// Pure red: hue 0, full saturation, half lightness.
	c := HSLAToRGBA(0.0, 1.0, 0.5, 1.0)
	if math.Abs(c.R-1.0) > 1e-3 || math.Abs(c.G) > 1e-3 || math.Abs(c.B) > 1e-3 {
		t.Errorf("HSLA(0,1,0.5,1) = %+v, want pure red", c)
	}
	if c.A != 1.0 {
		t.Errorf("alpha = %v, want 1.0", c.A)
	}
}

func TestHSLAToRGBAAlphaPreserved(t *testing.T) {
	c := HSLAToRGBA(0.3, 0.8, 0.4, 0.2)
	if math.Abs(c.A-0.2) > 1e-6 {
		t.Errorf("alpha = %v, want 0.2", c.A)
	}
}

func TestHSLAToRGBAGrayscale(t *testing.T) {
	// Zero saturation collapses to lightness on every channel.
	c := HSLAToRGBA(0.75, 0.0, 0.42, 1.0)
	if c.R != 0.42 || c.G != 0.42 || c.B != 0.42 {
		t.Errorf("desaturated HSLA = %+v, want uniform 0.42", c)
	}
}
