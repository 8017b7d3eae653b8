package analyzer

import "math"

// clamp limits v to the range [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// clamp01 limits v to [0, 1].
func clamp01(v float64) float64 {
	return clamp(v, 0, 1)
}

// mean returns the arithmetic mean of values, or 0 for an empty slice.
func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// stddev returns the population standard deviation of values.
func stddev(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	m := mean(values)
	var sum float64
	for _, v := range values {
		d := v - m
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(values)))
}

// coefficientOfVariation returns stddev/mean, or 0 when the mean is 0 so
// that degenerate all-zero inputs produce a defined score.
func coefficientOfVariation(values []float64) float64 {
	m := mean(values)
	if m == 0 {
		return 0
	}
	return stddev(values) / m
}

// normalizedSlope fits a least-squares line through values (indexed 0..n-1)
// and returns the slope divided by the value range, scaled by n, clamped to
// [-1, 1]. Returns 0 for fewer than 3 points or a zero value range.
func normalizedSlope(values []float64) float64 {
	n := len(values)
	if n < 3 {
		return 0
	}

	lo, hi := values[0], values[0]
	for _, v := range values {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	valueRange := hi - lo
	if valueRange == 0 {
		return 0
	}

	xMean := float64(n-1) / 2
	yMean := mean(values)

	var num, den float64
	for i, v := range values {
		dx := float64(i) - xMean
		num += dx * (v - yMean)
		den += dx * dx
	}
	if den == 0 {
		return 0
	}

	slope := num / den
	return clamp(slope/valueRange*float64(n), -1, 1)
}

// round2 rounds v to two decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
