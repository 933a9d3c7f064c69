package bounce

import (
	"errors"
	"fmt"
)

var (
	// ErrNonPositiveHeight indicates an initial drop height <= 0.
	ErrNonPositiveHeight = errors.New("bounce: initial height must be positive")

	// ErrNonPositiveGravity indicates a gravitational acceleration <= 0.
	ErrNonPositiveGravity = errors.New("bounce: gravity must be positive")

	// ErrInvalidStep indicates a sampling interval <= 0.
	ErrInvalidStep = errors.New("bounce: sample interval must be positive")

	// ErrCountTooLarge indicates a bounce count above MaxCount.
	ErrCountTooLarge = errors.New("bounce: bounce count too large")
)

// ParamError wraps a parameter error with the offending value.
type ParamError struct {
	Name    string
	Value   float64
	Wrapped error
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("%s (%s=%g)", e.Wrapped.Error(), e.Name, e.Value)
}

func (e *ParamError) Unwrap() error {
	return e.Wrapped
}

// CountError reports a bounce count outside the supported range.
type CountError struct {
	Count   int
	Max     int
	Wrapped error
}

func (e *CountError) Error() string {
	return fmt.Sprintf("%s (n=%d, max %d)", e.Wrapped.Error(), e.Count, e.Max)
}

func (e *CountError) Unwrap() error {
	return e.Wrapped
}
