package integrators

import "github.com/san-kum/pfrsim/internal/dynamo"

// Euler is the explicit first-order scheme: x(z+dz) = x(z) + dz·f(x, z).
type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Name() string { return "euler" }

func (e *Euler) Step(sys dynamo.System, x dynamo.State, z float64, dz float64) dynamo.State {
	dx := sys.Derive(x, z)
	result := make(dynamo.State, len(x))
	for i := range x {
		result[i] = x[i] + dx[i]*dz
	}
	return result
}
