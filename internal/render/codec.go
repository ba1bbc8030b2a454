package render

// Encoder identifiers involved in the selection policy.
const (
	// SoftwareCodec is the default software H.265 encoder.
	SoftwareCodec = "libx265"
	// HardwareCodec is the platform hardware H.265 encoder substituted for
	// SoftwareCodec when hardware acceleration is requested.
	HardwareCodec = "hevc_videotoolbox"
	// vp9AlphaAlias is the user-facing name for VP9-with-alpha output.
	vp9AlphaAlias = "vp9alpha"
	// vp9Codec is the library encoder behind vp9AlphaAlias.
	vp9Codec = "libvpx-vp9"
)

// SelectCodec resolves the configured codec name to the encoder ffmpeg is
// given. Two independent rules, evaluated in fixed order:
//
//  1. Alias resolution: "vp9alpha" maps to libvpx-vp9 regardless of the
//     hardware flag.
//  2. Hardware substitution: only when the resolved name is still the
//     software default and hwAccel is set.
//
// Any other codec name passes through untouched.
func SelectCodec(codec string, hwAccel bool) string {
	if codec == vp9AlphaAlias {
		codec = vp9Codec
	}
	if hwAccel && codec == SoftwareCodec {
		codec = HardwareCodec
	}
	return codec
}
