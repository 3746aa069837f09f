package engine

// point is an (x, y) sample for the trend fit.
type point struct {
	x float64
	y float64
}

// leastSquaresSlope fits an ordinary least squares line through the
// points and returns its slope. ok is false when the fit is degenerate
// (near-zero denominator), so callers can drop the slope instead of
// propagating NaN.
func leastSquaresSlope(points []point) (float64, bool) {
	n := float64(len(points))
	if n == 0 {
		return 0, false
	}

	var sumX, sumY, sumX2, sumXY float64
	for _, p := range points {
		sumX += p.x
		sumY += p.y
		sumX2 += p.x * p.x
		sumXY += p.x * p.y
	}

	denom := n*sumX2 - sumX*sumX
	if denom < 1e-6 && denom > -1e-6 {
		return 0, false
	}
	return (n*sumXY - sumX*sumY) / denom, true
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
