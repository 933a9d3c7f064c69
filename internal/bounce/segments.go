package bounce

// Phase is the direction of travel within a segment.
type Phase int

const (
	PhaseDrop Phase = iota
	PhaseRise
	PhaseFall
)

func (ph Phase) String() string {
	switch ph {
	case PhaseDrop:
		return "drop"
	case PhaseRise:
		return "rise"
	case PhaseFall:
		return "fall"
	default:
		return "unknown"
	}
}

// Segment is one uninterrupted rise or fall. Distance and Time are
// cumulative from the release of the ball to the end of the segment.
type Segment struct {
	Bounce   int     `json:"bounce"`
	Phase    Phase   `json:"phase"`
	Height   float64 `json:"height"`
	Duration float64 `json:"duration"`
	Distance float64 `json:"distance"`
	Time     float64 `json:"time"`
}

// Segments breaks the motion up to the n-th apex into drop, rise and fall
// phases in the order they happen. The last segment's cumulative distance and
// time match Compute(n, p).
func Segments(n int, p Params) []Segment {
	if n < 0 {
		n = 0
	}
	hint := n
	if hint > MaxCount {
		hint = MaxCount
	}
	segs := make([]Segment, 0, 2*hint)

	var distance, elapsed float64
	add := func(bounce int, phase Phase, h float64) {
		d := FreeFallTime(h, p.Gravity)
		distance += h
		elapsed += d
		segs = append(segs, Segment{
			Bounce:   bounce,
			Phase:    phase,
			Height:   h,
			Duration: d,
			Distance: distance,
			Time:     elapsed,
		})
	}

	add(0, PhaseDrop, p.Height)
	for i := 1; i < n; i++ {
		h := p.ApexHeight(i)
		add(i, PhaseRise, h)
		add(i, PhaseFall, h)
	}
	if n > 0 {
		add(n, PhaseRise, p.ApexHeight(n))
	}
	return segs
}
