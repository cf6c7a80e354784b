package reactor

import (
	"math"

	"github.com/san-kum/pfrsim/internal/dynamo"
	"github.com/san-kum/pfrsim/internal/integrators"
)

// Profile is the discretized solution along the reactor axis. Z, T and C
// are parallel slices of equal length.
type Profile struct {
	Z []float64
	T []float64
	C []float64
}

func (p *Profile) Len() int { return len(p.Z) }

// State returns the [C, T] state at grid index i.
func (p *Profile) State(i int) dynamo.State {
	return dynamo.State{p.C[i], p.T[i]}
}

// CheckFinite reports the first grid point holding NaN or Inf.
func (p *Profile) CheckFinite() error {
	for i := range p.Z {
		x := p.State(i)
		if !x.IsValid() {
			return &dynamo.SimulationError{
				Step:     i,
				Position: p.Z[i],
				State:    x,
				Wrapped:  dynamo.ErrInvalidState,
			}
		}
	}
	return nil
}

// Integrate solves the balances with forward Euler at the fixed step p.Dz.
// req is not validated; TIn and Velocity must be positive.
func Integrate(req Request, p Params) *Profile {
	return IntegrateWith(req, p, integrators.NewEuler())
}

// IntegrateWith is Integrate with a caller-chosen fixed-step integrator.
// Concentration is floored at zero after every step; temperature is not.
func IntegrateWith(req Request, p Params, integ dynamo.Integrator) *Profile {
	n := p.GridSize()
	prof := &Profile{
		Z: axialGrid(p.Length, n),
		T: make([]float64, n),
		C: make([]float64, n),
	}

	model := NewModel(req, p)
	x := dynamo.State{p.CInlet, req.TIn}
	prof.C[0] = x[IdxConcentration]
	prof.T[0] = x[IdxTemperature]

	for i := 0; i < n-1; i++ {
		x = integ.Step(model, x, prof.Z[i], p.Dz)
		x[IdxConcentration] = math.Max(x[IdxConcentration], 0)

		prof.C[i+1] = x[IdxConcentration]
		prof.T[i+1] = x[IdxTemperature]
	}

	return prof
}

// axialGrid spaces n points evenly on [0, length] with the last point
// pinned to length.
func axialGrid(length float64, n int) []float64 {
	z := make([]float64, n)
	if n < 2 {
		return z
	}
	step := length / float64(n-1)
	for i := range z {
		z[i] = float64(i) * step
	}
	z[n-1] = length
	return z
}
