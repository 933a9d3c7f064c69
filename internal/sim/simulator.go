package sim

import (
	"context"
	"fmt"
	"math"

	"github.com/san-kum/bouncesim/internal/dynamo"
	"github.com/san-kum/bouncesim/internal/physics"
)

// Simulator integrates a dropped ball numerically until the apex of the
// requested bounce. Ground contacts and apexes inside a step are located
// exactly and the step is split there, so flight between events is left to
// the integrator.
type Simulator struct {
	ball        *physics.Ball
	energy      dynamo.Hamiltonian
	integrator  dynamo.Integrator
	name        string
	restitution float64
}

func New(ball *physics.Ball, integrator dynamo.Integrator, name string) *Simulator {
	return &Simulator{
		ball:        ball,
		energy:      ball,
		integrator:  integrator,
		name:        name,
		restitution: Restitution,
	}
}

func (s *Simulator) validateConfig(cfg Config) error {
	if !(cfg.Dt > 0) {
		return fmt.Errorf("%w: dt must be positive, got %f", dynamo.ErrInvalidConfig, cfg.Dt)
	}
	if cfg.Bounces < 1 {
		return fmt.Errorf("%w: bounces must be at least 1, got %d", dynamo.ErrInvalidConfig, cfg.Bounces)
	}
	if !(cfg.Height > 0) {
		return fmt.Errorf("%w: height must be positive, got %f", dynamo.ErrInvalidConfig, cfg.Height)
	}
	if !(s.ball.Gravity > 0) {
		return fmt.Errorf("%w: gravity must be positive, got %f", dynamo.ErrInvalidConfig, s.ball.Gravity)
	}
	return nil
}

func (s *Simulator) Run(ctx context.Context, cfg Config) (*Result, error) {
	if err := s.validateConfig(cfg); err != nil {
		return nil, err
	}
	maxSteps := cfg.MaxSteps
	if maxSteps <= 0 {
		maxSteps = DefaultMaxSteps
	}

	result := &Result{
		Integrator: s.name,
		Apexes:     make([]Event, 0, cfg.Bounces),
		Impacts:    make([]Event, 0, cfg.Bounces),
		Metrics:    make(map[string]float64),
	}

	x := dynamo.State{cfg.Height, 0}
	t := 0.0
	initialEnergy := s.energy.Energy(x)

	record := func() {
		if cfg.Record {
			result.Samples = append(result.Samples, Sample{T: t, Height: x[0], Velocity: x[1]})
		}
	}
	record()

	// advance moves the ball by h seconds and accumulates travelled distance.
	advance := func(step int, h float64) error {
		next := s.integrator.Step(s.ball, x, t, h)
		if len(next) != s.ball.StateDim() {
			return &dynamo.SimulationError{Step: step, Time: t, State: x.Clone(), Wrapped: dynamo.ErrDimensionMismatch}
		}
		result.Distance += math.Abs(next[0] - x[0])
		x = next
		t += h
		return nil
	}

	for step := 0; ; step++ {
		if step >= maxSteps {
			return result, &dynamo.SimulationError{Step: step, Time: t, State: x.Clone(), Wrapped: dynamo.ErrStepLimit}
		}
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		remaining := cfg.Dt
		for remaining > 0 {
			if x[1] > 0 {
				tau := s.ball.TimeToApex(x)
				if tau > remaining {
					if err := advance(step, remaining); err != nil {
						return result, err
					}
					break
				}
				if err := advance(step, tau); err != nil {
					return result, err
				}
				remaining -= tau
				x[1] = 0
				result.Apexes = append(result.Apexes, Event{Bounce: len(result.Apexes) + 1, Time: t, Height: x[0]})
				if len(result.Apexes) == cfg.Bounces {
					result.Steps = step + 1
					record()
					s.finish(result, x, t, initialEnergy)
					return result, nil
				}
				continue
			}

			tau := s.ball.TimeToGround(x)
			if tau > remaining {
				if err := advance(step, remaining); err != nil {
					return result, err
				}
				break
			}
			if err := advance(step, tau); err != nil {
				return result, err
			}
			remaining -= tau
			speed := math.Abs(x[1])
			result.Impacts = append(result.Impacts, Event{Bounce: len(result.Impacts) + 1, Time: t, Speed: speed})
			x[0] = 0
			x[1] = s.restitution * speed
		}

		if !x.IsValid() {
			return result, &dynamo.SimulationError{Step: step, Time: t, State: x.Clone(), Wrapped: dynamo.ErrInvalidState}
		}
		result.Steps = step + 1
		record()
	}
}

func (s *Simulator) finish(result *Result, x dynamo.State, t, initialEnergy float64) {
	result.Time = t
	result.Final = x.Clone()
	if initialEnergy != 0 {
		result.Metrics["energy_ratio"] = s.energy.Energy(x) / initialEnergy
	}
	result.Metrics["impacts"] = float64(len(result.Impacts))
}
