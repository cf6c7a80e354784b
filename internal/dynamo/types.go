package dynamo

import "math"

type State []float64

func (s State) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// System is a first-order ODE right-hand side evaluated at position z.
type System interface {
	Derive(x State, z float64) State
	StateDim() int
}

type Integrator interface {
	Name() string
	Step(sys System, x State, z float64, dz float64) State
}

type Metric interface {
	Name() string
	Observe(x State, z float64)
	Value() float64
	Reset()
}
