package integrators

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/bouncesim/internal/dynamo"
)

type oscillator struct{}

func (s *oscillator) Derive(x dynamo.State, t float64) dynamo.State {
	return dynamo.State{x[1], -x[0]}
}

func (s *oscillator) StateDim() int { return 2 }

type freeFall struct{ g float64 }

func (f *freeFall) Derive(x dynamo.State, t float64) dynamo.State {
	return dynamo.State{x[1], -f.g}
}

func (f *freeFall) StateDim() int { return 2 }

func TestRK4Accuracy(t *testing.T) {
	dyn := &oscillator{}
	integ := NewRK4()

	x := dynamo.State{1.0, 0.0}
	dt := 0.01
	steps := 100

	for i := 0; i < steps; i++ {
		x = integ.Step(dyn, x, float64(i)*dt, dt)
	}

	expectedX := math.Cos(float64(steps) * dt)
	expectedV := -math.Sin(float64(steps) * dt)

	if math.Abs(x[0]-expectedX) > 1e-4 {
		t.Errorf("position error too large: got %.6f, expected %.6f", x[0], expectedX)
	}

	if math.Abs(x[1]-expectedV) > 1e-4 {
		t.Errorf("velocity error too large: got %.6f, expected %.6f", x[1], expectedV)
	}
}

func TestConstantAcceleration(t *testing.T) {
	// RK4 and velocity Verlet are exact for constant acceleration
	dyn := &freeFall{g: 9.8}
	for _, name := range []string{"rk4", "verlet"} {
		integ, err := Get(name)
		if err != nil {
			t.Fatalf("get %s: %v", name, err)
		}

		x := dynamo.State{100, 0}
		dt := 0.01
		for i := 0; i < 300; i++ {
			x = integ.Step(dyn, x, float64(i)*dt, dt)
		}

		tEnd := 3.0
		wantY := 100 - 0.5*9.8*tEnd*tEnd
		if math.Abs(x[0]-wantY) > 1e-9 {
			t.Errorf("%s: expected y=%f, got %f", name, wantY, x[0])
		}
		if math.Abs(x[1]+9.8*tEnd) > 1e-9 {
			t.Errorf("%s: expected v=%f, got %f", name, -9.8*tEnd, x[1])
		}
	}
}

func TestEulerFirstOrder(t *testing.T) {
	dyn := &freeFall{g: 10}
	x := NewEuler().Step(dyn, dynamo.State{0, 0}, 0, 0.1)
	if x[0] != 0 || x[1] != -1 {
		t.Errorf("expected [0 -1], got %v", x)
	}
}

func TestGet(t *testing.T) {
	for _, name := range Names() {
		if _, err := Get(name); err != nil {
			t.Errorf("get %s: %v", name, err)
		}
	}
	if _, err := Get("rk45"); !errors.Is(err, dynamo.ErrUnknownIntegrator) {
		t.Errorf("expected ErrUnknownIntegrator, got %v", err)
	}
}
