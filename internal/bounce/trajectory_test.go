package bounce

import (
	"errors"
	"math"
	"testing"
)

func TestSegmentsMatchCompute(t *testing.T) {
	p := DefaultParams()
	for n := 1; n <= 12; n++ {
		segs := Segments(n, p)
		if len(segs) != 2*n {
			t.Fatalf("n=%d: expected %d segments, got %d", n, 2*n, len(segs))
		}

		last := segs[len(segs)-1]
		r := Compute(n, p)
		if math.Abs(last.Distance-r.TotalDistance) > 1e-9 {
			t.Errorf("n=%d: distance %f vs %f", n, last.Distance, r.TotalDistance)
		}
		if math.Abs(last.Time-r.TotalTime) > 1e-9 {
			t.Errorf("n=%d: time %f vs %f", n, last.Time, r.TotalTime)
		}
		if last.Phase != PhaseRise || last.Bounce != n {
			t.Errorf("n=%d: expected final rise of bounce %d, got %s of %d", n, n, last.Phase, last.Bounce)
		}
	}
}

func TestSegmentsOrder(t *testing.T) {
	segs := Segments(3, DefaultParams())
	want := []Phase{PhaseDrop, PhaseRise, PhaseFall, PhaseRise, PhaseFall, PhaseRise}
	for i, ph := range want {
		if segs[i].Phase != ph {
			t.Errorf("segment %d: expected %s, got %s", i, ph, segs[i].Phase)
		}
	}
}

func TestTrajectory(t *testing.T) {
	p := DefaultParams()
	samples, err := Trajectory(3, p, 0.05)
	if err != nil {
		t.Fatalf("trajectory failed: %v", err)
	}

	if samples[0].T != 0 || samples[0].Height != p.Height {
		t.Errorf("expected first sample at (0, %f), got (%f, %f)", p.Height, samples[0].T, samples[0].Height)
	}

	r := Compute(3, p)
	end := samples[len(samples)-1]
	if math.Abs(end.T-r.TotalTime) > 1e-9 {
		t.Errorf("expected final time %f, got %f", r.TotalTime, end.T)
	}
	if end.Height != r.BounceHeight {
		t.Errorf("expected final height %f, got %f", r.BounceHeight, end.Height)
	}

	for i, s := range samples {
		if s.Height < 0 || s.Height > p.Height {
			t.Errorf("sample %d out of range: %f", i, s.Height)
		}
		if i > 0 && s.T <= samples[i-1].T {
			t.Errorf("sample %d not after previous: %f <= %f", i, s.T, samples[i-1].T)
		}
	}
}

func TestTrajectoryGroundContact(t *testing.T) {
	p := DefaultParams()
	t0 := FreeFallTime(p.Height, p.Gravity)

	samples, err := Trajectory(2, p, t0/4)
	if err != nil {
		t.Fatalf("trajectory failed: %v", err)
	}
	// sample 4 lands exactly on first impact
	if math.Abs(samples[4].Height) > 1e-9 {
		t.Errorf("expected ground contact at t=%f, got height %f", samples[4].T, samples[4].Height)
	}
}

func TestTrajectoryInvalid(t *testing.T) {
	if _, err := Trajectory(3, DefaultParams(), 0); !errors.Is(err, ErrInvalidStep) {
		t.Errorf("expected ErrInvalidStep, got %v", err)
	}
	if _, err := Trajectory(3, Params{Height: -1, Gravity: 9.8}, 0.1); !errors.Is(err, ErrNonPositiveHeight) {
		t.Errorf("expected ErrNonPositiveHeight, got %v", err)
	}
}

func TestCheckCount(t *testing.T) {
	for _, n := range []int{1, 10, MaxCount} {
		if err := CheckCount(n); err != nil {
			t.Errorf("n=%d: unexpected error %v", n, err)
		}
	}

	for _, n := range []int{MaxCount + 1, math.MaxInt} {
		err := CheckCount(n)
		if !errors.Is(err, ErrCountTooLarge) {
			t.Errorf("n=%d: expected ErrCountTooLarge, got %v", n, err)
		}
		var ce *CountError
		if !errors.As(err, &ce) || ce.Count != n || ce.Max != MaxCount {
			t.Errorf("n=%d: expected CountError with count and max, got %#v", n, err)
		}
	}

	if math.Ldexp(1, -MaxCount) == 0 || math.Ldexp(1, -(MaxCount+1)) != 0 {
		t.Error("MaxCount no longer marks the underflow of a 1 m drop")
	}
}

func TestSegmentsPastMaxCount(t *testing.T) {
	n := MaxCount + 3
	segs := Segments(n, DefaultParams())
	if len(segs) != 2*n {
		t.Fatalf("expected %d segments, got %d", 2*n, len(segs))
	}
	if last := segs[len(segs)-1]; last.Bounce != n || last.Phase != PhaseRise {
		t.Errorf("expected final rise of bounce %d, got %s of %d", n, last.Phase, last.Bounce)
	}
}
