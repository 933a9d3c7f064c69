package bounce

import "math"

// Result is the state of the ball at the apex of the n-th bounce.
type Result struct {
	Count         int     `json:"count"`
	BounceHeight  float64 `json:"bounce_height"`
	TotalDistance float64 `json:"total_distance"`
	TotalTime     float64 `json:"total_time"`
}

// FreeFallTime is the time to fall (or rise) h metres from rest under g.
func FreeFallTime(h, g float64) float64 {
	return math.Sqrt(2 * h / g)
}

// Compute returns the apex height, distance travelled and elapsed time when
// the ball reaches the top of its n-th bounce. The initial drop is counted
// once, every intermediate bounce counts its rise and fall, and the final
// bounce counts only its rise.
//
// n is expected to be >= 1. n = 0 degenerates to the initial drop alone.
func Compute(n int, p Params) Result {
	h0, g := p.Height, p.Gravity

	distance := h0
	elapsed := FreeFallTime(h0, g)
	for i := 1; i < n; i++ {
		h := p.ApexHeight(i)
		distance += 2 * h
		elapsed += 2 * FreeFallTime(h, g)
	}

	last := p.ApexHeight(n)
	if n > 0 {
		distance += last
		elapsed += FreeFallTime(last, g)
	}

	return Result{
		Count:         n,
		BounceHeight:  last,
		TotalDistance: distance,
		TotalTime:     elapsed,
	}
}

// ComputeDefault is Compute with H0 = 100 m and g = 9.8 m/s^2.
func ComputeDefault(n int) Result {
	return Compute(n, DefaultParams())
}

// ComputeClosedForm evaluates the same sums as Compute using geometric series.
// Heights shrink by 1/2 per bounce and fall times by 1/sqrt(2).
func ComputeClosedForm(n int, p Params) Result {
	h0, g := p.Height, p.Gravity
	t0 := FreeFallTime(h0, g)
	if n <= 0 {
		return Result{Count: n, BounceHeight: p.ApexHeight(n), TotalDistance: h0, TotalTime: t0}
	}

	last := p.ApexHeight(n)

	// sum_{i=1}^{n-1} 2*h0/2^i
	midDistance := 2 * h0 * (1 - math.Ldexp(1, -(n-1)))

	// sum_{i=1}^{n-1} 2*t0*r^i with r = 1/sqrt(2)
	r := math.Sqrt2 / 2
	midTime := 2 * t0 * r * (1 - math.Pow(r, float64(n-1))) / (1 - r)

	return Result{
		Count:         n,
		BounceHeight:  last,
		TotalDistance: h0 + midDistance + last,
		TotalTime:     t0 + midTime + t0*math.Pow(r, float64(n)),
	}
}
