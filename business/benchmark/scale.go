package benchmark

import "math"

const (
	ScaleLogMinMax = "logminmax"
	ScaleMinMax    = "minmax"
)

// ScaleTo100 maps a raw benchmark score onto [0, 100] against the [lo, hi]
// percentile bounds. Values outside the bounds clamp to 0/100, never fail.
func ScaleTo100(x, lo, hi float64, method string) float64 {
	lo = math.Max(lo, 1e-6)
	hi = math.Max(hi, lo+1e-6)

	var unit float64
	switch method {
	case ScaleMinMax:
		unit = (x - lo) / (hi - lo)
	default: // logminmax
		unit = (math.Log(math.Max(x, 1e-6)) - math.Log(lo)) / (math.Log(hi) - math.Log(lo))
	}

	return math.Min(1.0, math.Max(0.0, unit)) * 100.0
}
