package render

// easingCurves maps user-facing easing names to the approximate curve
// identifiers the fade filter understands. The table is the single source
// of truth; [NormalizeEasing] is the only lookup path.
var easingCurves = map[string]string{
	"linear":    "linear",
	"easein":    "quadratic", // approximate mapping
	"easeout":   "quadratic",
	"easeinout": "cubic",
}

// NormalizeEasing resolves an easing name to its curve identifier. Unknown
// names fall back to "linear" without error; a bad easing spelling should
// soften a fade, not kill a render.
func NormalizeEasing(name string) string {
	if curve, ok := easingCurves[name]; ok {
		return curve
	}
	return "linear"
}
