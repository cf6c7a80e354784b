package metrics

import (
	"github.com/san-kum/pfrsim/internal/analysis"
	"github.com/san-kum/pfrsim/internal/dynamo"
	"github.com/san-kum/pfrsim/internal/reactor"
)

// DefaultOscillationCutoff is the fraction of the Nyquist frequency above
// which temperature increments count as grid-scale oscillation.
const DefaultOscillationCutoff = 0.5

// Oscillation reports the high-frequency power share of the temperature
// profile. Values near one mean the step is too coarse for the kinetics.
type Oscillation struct {
	name   string
	cutoff float64
	temps  []float64
}

func NewOscillation(cutoff float64) *Oscillation {
	return &Oscillation{name: "oscillation_index", cutoff: cutoff}
}

func (o *Oscillation) Name() string { return o.name }

func (o *Oscillation) Observe(x dynamo.State, z float64) {
	o.temps = append(o.temps, x[reactor.IdxTemperature])
}

func (o *Oscillation) Value() float64 {
	return analysis.HighFrequencyFraction(o.temps, o.cutoff)
}

func (o *Oscillation) Reset() { o.temps = o.temps[:0] }
