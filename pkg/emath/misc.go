package emath

import(
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Some functions that only operate on basic types, that are useful

// https://www.sjbrown.co.uk/posts/gamma-correct-rendering/ - "linear RGB to sRGB"
// `f` is assumed to be in the range [0,1]
func GammaExpand_F64(f float64) float64 {
	if f <= 0.0031308 {
		return 12.92 * f
	}
	return 1.055 * math.Pow(f, 1.0/2.4) - 0.055
}

func Clamp01(f float64) float64 {
	if f < 0 || math.IsNaN(f) { return 0 }
	if f > 1 { return 1 }
	return f
}

// Unlerp is where v sits between lo and hi, as a fraction.
func Unlerp(v, lo, hi float64) float64 {
	if hi == lo { return 0 }
	return (v - lo) / (hi - lo)
}

// Ramp maps [0,1] onto a hue sweep from blue (0) to red (1).
func Ramp(f float64) colorful.Color {
	return colorful.Hsv(240.0 * (1.0 - Clamp01(f)), 1.0, 1.0).Clamped()
}
