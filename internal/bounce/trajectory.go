package bounce

import "math"

// Sample is the ball's height above ground at time T.
type Sample struct {
	T      float64 `json:"t"`
	Height float64 `json:"height"`
}

// Trajectory samples the analytic height every dt seconds from release until
// the n-th apex. The final sample always sits exactly on that apex.
func Trajectory(n int, p Params, dt float64) ([]Sample, error) {
	if !(dt > 0) {
		return nil, ErrInvalidStep
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	segs := Segments(n, p)
	end := segs[len(segs)-1].Time

	samples := make([]Sample, 0, int(end/dt)+2)
	k, start := 0, 0.0
	for i := 0; float64(i)*dt < end; i++ {
		t := float64(i) * dt
		for k < len(segs)-1 && t >= segs[k].Time {
			start = segs[k].Time
			k++
		}
		samples = append(samples, Sample{T: t, Height: heightAt(segs[k], t-start, p.Gravity)})
	}

	last := segs[len(segs)-1]
	final := 0.0
	if last.Phase == PhaseRise {
		final = last.Height
	}
	samples = append(samples, Sample{T: end, Height: final})
	return samples, nil
}

// heightAt evaluates the height tau seconds into seg.
func heightAt(seg Segment, tau, g float64) float64 {
	var y float64
	switch seg.Phase {
	case PhaseRise:
		rem := seg.Duration - tau
		y = seg.Height - 0.5*g*rem*rem
	default:
		y = seg.Height - 0.5*g*tau*tau
	}
	return math.Max(y, 0)
}
