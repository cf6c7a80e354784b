package reactor

import (
	"fmt"
	"math"

	"github.com/san-kum/pfrsim/internal/dynamo"
)

// Request carries the three boundary conditions of a simulation.
type Request struct {
	TIn      float64 `json:"T_in" yaml:"t_in"`
	Velocity float64 `json:"Flow_Velocity" yaml:"velocity"`
	TJacket  float64 `json:"T_jacket" yaml:"t_jacket"`
}

// Validate rejects requests the balances cannot be evaluated for.
func (r Request) Validate() error {
	if !(r.Velocity > 0) || math.IsInf(r.Velocity, 0) {
		return fmt.Errorf("%w: flow velocity must be positive, got %g", dynamo.ErrInvalidRequest, r.Velocity)
	}
	if !(r.TIn > 0) || math.IsInf(r.TIn, 0) {
		return fmt.Errorf("%w: inlet temperature must be positive, got %g", dynamo.ErrInvalidRequest, r.TIn)
	}
	if math.IsNaN(r.TJacket) || math.IsInf(r.TJacket, 0) {
		return fmt.Errorf("%w: jacket temperature must be finite, got %g", dynamo.ErrInvalidRequest, r.TJacket)
	}
	return nil
}
