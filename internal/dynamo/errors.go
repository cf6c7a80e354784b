package dynamo

import (
	"errors"
	"fmt"
)

// Domain errors for simulation operations.
var (
	// ErrInvalidRequest indicates a boundary condition the core cannot accept.
	ErrInvalidRequest = errors.New("dynamo: invalid simulation request")

	// ErrInvalidState indicates a state vector with NaN or Inf values.
	ErrInvalidState = errors.New("dynamo: invalid state (NaN or Inf detected)")

	// ErrParameterBounds indicates a parameter value is outside valid range.
	ErrParameterBounds = errors.New("dynamo: parameter out of valid bounds")

	// ErrUnknownIntegrator indicates an integrator name with no registration.
	ErrUnknownIntegrator = errors.New("dynamo: unknown integrator")

	// ErrUnknownPreset indicates an operating-point preset that does not exist.
	ErrUnknownPreset = errors.New("dynamo: unknown preset")
)

// SimulationError wraps an error with the grid position where it surfaced.
type SimulationError struct {
	Step     int
	Position float64
	State    State
	Wrapped  error
}

func (e *SimulationError) Error() string {
	return fmt.Sprintf("step %d (z=%.4f): %v", e.Step, e.Position, e.Wrapped)
}

func (e *SimulationError) Unwrap() error {
	return e.Wrapped
}
