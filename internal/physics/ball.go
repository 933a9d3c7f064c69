package physics

import (
	"math"

	"github.com/san-kum/bouncesim/internal/dynamo"
)

var (
	_ dynamo.System      = (*Ball)(nil)
	_ dynamo.Hamiltonian = (*Ball)(nil)
)

// Ball is a point mass in vertical free fall with no air resistance.
type Ball struct {
	Gravity float64
}

func NewBall(gravity float64) *Ball {
	return &Ball{Gravity: gravity}
}

func (b *Ball) StateDim() int { return 2 }

func (b *Ball) Derive(x dynamo.State, t float64) dynamo.State {
	return dynamo.State{x[1], -b.Gravity}
}

// Energy is the mechanical energy per unit mass, g*y + v^2/2.
func (b *Ball) Energy(x dynamo.State) float64 {
	return b.Gravity*x[0] + 0.5*x[1]*x[1]
}

// TimeToGround returns how long until the ball reaches y = 0 from x.
func (b *Ball) TimeToGround(x dynamo.State) float64 {
	y, v := math.Max(x[0], 0), x[1]
	return (v + math.Sqrt(v*v+2*b.Gravity*y)) / b.Gravity
}

// TimeToApex returns how long until the velocity reaches zero; 0 if the
// ball is already falling.
func (b *Ball) TimeToApex(x dynamo.State) float64 {
	if x[1] <= 0 {
		return 0
	}
	return x[1] / b.Gravity
}
