package sim

import (
	"math"

	"github.com/san-kum/bouncesim/internal/dynamo"
)

const DefaultMaxSteps = 10_000_000

// Restitution is the speed ratio kept at each impact. It halves the rebound
// height, since apex height scales with the square of launch speed.
var Restitution = math.Sqrt2 / 2

type Config struct {
	Height   float64
	Dt       float64
	Bounces  int
	MaxSteps int
	Record   bool
}

func DefaultConfig() Config {
	return Config{
		Height:   100,
		Dt:       0.01,
		Bounces:  10,
		MaxSteps: DefaultMaxSteps,
	}
}

// Event marks an impact or an apex located inside an integration step.
type Event struct {
	Bounce int     `json:"bounce"`
	Time   float64 `json:"time"`
	Height float64 `json:"height"`
	Speed  float64 `json:"speed"`
}

type Sample struct {
	T        float64 `json:"t"`
	Height   float64 `json:"height"`
	Velocity float64 `json:"velocity"`
}

type Result struct {
	Integrator string             `json:"integrator"`
	Apexes     []Event            `json:"apexes"`
	Impacts    []Event            `json:"impacts"`
	Distance   float64            `json:"distance"`
	Time       float64            `json:"time"`
	Steps      int                `json:"steps"`
	Final      dynamo.State       `json:"final"`
	Samples    []Sample           `json:"samples,omitempty"`
	Metrics    map[string]float64 `json:"metrics"`
}

// LastApex returns the final recorded apex, or false if none was reached.
func (r *Result) LastApex() (Event, bool) {
	if len(r.Apexes) == 0 {
		return Event{}, false
	}
	return r.Apexes[len(r.Apexes)-1], true
}
