package bounce

import "math"

const (
	DefaultHeight  = 100.0
	DefaultGravity = 9.8

	// MaxCount is the largest bounce count accepted at the CLI boundary.
	// A 1 m drop halved more than 1074 times underflows to zero.
	MaxCount = 1074
)

// Params holds the drop height in metres and gravity in m/s^2.
type Params struct {
	Height  float64
	Gravity float64
}

func DefaultParams() Params {
	return Params{
		Height:  DefaultHeight,
		Gravity: DefaultGravity,
	}
}

// Validate reports whether p can be fed to Compute. Compute itself never
// validates; callers at the config and CLI boundary do.
func (p Params) Validate() error {
	if !(p.Height > 0) || math.IsInf(p.Height, 0) {
		return &ParamError{Name: "height", Value: p.Height, Wrapped: ErrNonPositiveHeight}
	}
	if !(p.Gravity > 0) || math.IsInf(p.Gravity, 0) {
		return &ParamError{Name: "gravity", Value: p.Gravity, Wrapped: ErrNonPositiveGravity}
	}
	return nil
}

// ApexHeight returns the apex reached after the i-th bounce, H0 / 2^i.
func (p Params) ApexHeight(i int) float64 {
	return math.Ldexp(p.Height, -i)
}

// CheckCount rejects counts above MaxCount. Compute accepts any n; the
// segment and trajectory helpers allocate per bounce and need the bound.
func CheckCount(n int) error {
	if n > MaxCount {
		return &CountError{Count: n, Max: MaxCount, Wrapped: ErrCountTooLarge}
	}
	return nil
}
