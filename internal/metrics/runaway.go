package metrics

import (
	"github.com/san-kum/pfrsim/internal/dynamo"
	"github.com/san-kum/pfrsim/internal/reactor"
)

// Runaway is the fraction of grid points whose temperature exceeds the
// inlet temperature by more than threshold kelvin.
type Runaway struct {
	name       string
	threshold  float64
	inlet      float64
	violations int
	samples    int
}

func NewRunaway(threshold float64) *Runaway {
	return &Runaway{
		name:      "runaway_fraction",
		threshold: threshold,
	}
}

func (r *Runaway) Name() string {
	return r.name
}

func (r *Runaway) Observe(x dynamo.State, z float64) {
	t := x[reactor.IdxTemperature]
	if r.samples == 0 {
		r.inlet = t
	}
	r.samples++
	if t-r.inlet > r.threshold {
		r.violations++
	}
}

func (r *Runaway) Value() float64 {
	if r.samples == 0 {
		return 0
	}
	return float64(r.violations) / float64(r.samples)
}

func (r *Runaway) Reset() {
	r.violations = 0
	r.samples = 0
	r.inlet = 0
}
